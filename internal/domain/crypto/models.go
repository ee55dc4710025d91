package crypto

import (
	"fmt"
	"math/big"
)

// PublicKey is the textbook RSA public key (e, n)
type PublicKey struct {
	E *big.Int
	N *big.Int
}

// PrivateKey is the textbook RSA private key (d, n)
type PrivateKey struct {
	D *big.Int
	N *big.Int
}

// KeyPair bundles both keys with the primes they were derived from.
// P and Q are only kept so the caller can persist them; they are nil
// for key pairs loaded from e_n.txt / d_n.txt.
type KeyPair struct {
	PublicKey  *PublicKey
	PrivateKey *PrivateKey
	P          *big.Int
	Q          *big.Int
}

// Validate checks that the public key has a usable exponent and modulus
func (k *PublicKey) Validate() error {
	if k == nil || k.E == nil || k.N == nil {
		return fmt.Errorf("public key: %w", ErrInvalidKey)
	}
	if k.N.Cmp(big.NewInt(3)) < 0 || k.E.Sign() <= 0 {
		return fmt.Errorf("public key out of range: %w", ErrInvalidKey)
	}
	return nil
}

// Validate checks that the private key has a usable exponent and modulus
func (k *PrivateKey) Validate() error {
	if k == nil || k.D == nil || k.N == nil {
		return fmt.Errorf("private key: %w", ErrInvalidKey)
	}
	if k.N.Cmp(big.NewInt(3)) < 0 || k.D.Sign() < 0 {
		return fmt.Errorf("private key out of range: %w", ErrInvalidKey)
	}
	return nil
}

// ByteSize returns the length of the modulus in bytes
func (k *PublicKey) ByteSize() int {
	return (k.N.BitLen() + 7) / 8
}

// SignatureWidth returns the number of hex characters a signature occupies
func (k *PublicKey) SignatureWidth() int {
	return 2 * k.ByteSize()
}
