// Package cryptoalg defines the core interfaces for the textbook RSA primitives:
// primality testing, key pair generation, encryption, decryption, signing and verification.
package cryptoalg
