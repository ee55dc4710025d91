// Package crypto defines the core structures of the textbook RSA scheme used by the signer,
// such as public and private keys, key pairs and the error taxonomy shared by key generation,
// encryption, decryption, signing and verification.
package crypto
