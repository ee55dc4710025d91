package cryptoalg

import (
	"math/big"

	"github.com/wba6/secure-signer/internal/domain/crypto"
)

// PrimalityTester is a probabilistic primality oracle.
type PrimalityTester interface {
	// IsProbablyPrime reports whether candidate is probably prime after the given number of rounds.
	// A false result is always correct; a true result may be wrong with small probability.
	IsProbablyPrime(candidate *big.Int, rounds int) bool
}

// KeyGenerator produces textbook RSA key pairs from two freshly generated primes.
type KeyGenerator interface {
	// GenerateKeyPair returns a key pair including the primes p and q it was derived from.
	GenerateKeyPair() (*crypto.KeyPair, error)
}

// RSAProcessor handles unpadded RSA operations.
// NOTE: there is no padding, message representatives must be smaller than the modulus.
type RSAProcessor interface {
	// Encrypt parses messageHex as a base-16 integer m and returns m^e mod n.
	Encrypt(messageHex string, publicKey *crypto.PublicKey) (*big.Int, error)

	// Decrypt returns the hexadecimal representation of cipher^d mod n.
	Decrypt(cipher *big.Int, privateKey *crypto.PrivateKey) (string, error)

	// Sign hashes content and returns the signature as a fixed-width hex string.
	Sign(content []byte, privateKey *crypto.PrivateKey) (string, error)

	// SignContent returns content immediately followed by its fixed-width hex signature.
	SignContent(content []byte, privateKey *crypto.PrivateKey) ([]byte, error)

	// Verify splits the trailing signature off signed and checks it against the remaining content.
	Verify(signed []byte, publicKey *crypto.PublicKey) (bool, error)
}
