package cryptography

import (
	"crypto/sha256"
	"fmt"
	"math/big"
	"strings"

	cryptoDomain "github.com/wba6/secure-signer/internal/domain/crypto"
	"github.com/wba6/secure-signer/internal/domain/cryptoalg"
	"github.com/wba6/secure-signer/internal/pkg/logger"
)

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	logger logger.Logger
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor
func NewRSAProcessor(logger logger.Logger) (cryptoalg.RSAProcessor, error) {
	return &rsaProcessor{
		logger: logger,
	}, nil
}

// Encrypt computes messageHex^e mod n.
// NOTE: textbook RSA, messages not smaller than n are rejected instead of wrapping.
func (r *rsaProcessor) Encrypt(messageHex string, publicKey *cryptoDomain.PublicKey) (*big.Int, error) {
	if err := publicKey.Validate(); err != nil {
		return nil, err
	}

	m, err := parseHex(strings.TrimSpace(messageHex))
	if err != nil {
		return nil, fmt.Errorf("failed to parse message: %w", err)
	}

	if m.Cmp(publicKey.N) >= 0 {
		return nil, fmt.Errorf("failed to encrypt data: %w", cryptoDomain.ErrMessageTooLarge)
	}

	c := new(big.Int).Exp(m, publicKey.E, publicKey.N)

	r.logger.Info("RSA encryption succeeded")
	return c, nil
}

// Decrypt computes cipher^d mod n and returns it as lowercase hex without leading zeros.
func (r *rsaProcessor) Decrypt(cipher *big.Int, privateKey *cryptoDomain.PrivateKey) (string, error) {
	if err := privateKey.Validate(); err != nil {
		return "", err
	}
	if cipher == nil {
		return "", fmt.Errorf("cipher cannot be nil: %w", cryptoDomain.ErrInvalidEncoding)
	}

	if cipher.Sign() < 0 || cipher.Cmp(privateKey.N) >= 0 {
		return "", fmt.Errorf("failed to decrypt data: %w", cryptoDomain.ErrMessageTooLarge)
	}

	m := new(big.Int).Exp(cipher, privateKey.D, privateKey.N)

	r.logger.Info("RSA decryption succeeded")
	return m.Text(16), nil
}

// Sign computes SHA-256(content)^d mod n, zero-padded to twice the modulus byte length.
func (r *rsaProcessor) Sign(content []byte, privateKey *cryptoDomain.PrivateKey) (string, error) {
	if err := privateKey.Validate(); err != nil {
		return "", err
	}

	digest := digestOf(content)
	if digest.Cmp(privateKey.N) >= 0 {
		return "", fmt.Errorf("failed to sign data: digest exceeds %d-bit modulus: %w", privateKey.N.BitLen(), cryptoDomain.ErrMessageTooLarge)
	}

	signature := new(big.Int).Exp(digest, privateKey.D, privateKey.N)

	r.logger.Info("RSA signing succeeded")
	return fmt.Sprintf("%0*x", signatureWidth(privateKey.N), signature), nil
}

// SignContent appends the fixed-width signature to a copy of content.
func (r *rsaProcessor) SignContent(content []byte, privateKey *cryptoDomain.PrivateKey) ([]byte, error) {
	signature, err := r.Sign(content, privateKey)
	if err != nil {
		return nil, err
	}

	signed := make([]byte, 0, len(content)+len(signature))
	signed = append(signed, content...)
	signed = append(signed, signature...)
	return signed, nil
}

// Verify splits off the trailing signature, whose width is derived from n,
// and compares signature^e mod n with the digest of the remaining content.
func (r *rsaProcessor) Verify(signed []byte, publicKey *cryptoDomain.PublicKey) (bool, error) {
	if err := publicKey.Validate(); err != nil {
		return false, err
	}

	width := publicKey.SignatureWidth()
	if len(signed) < width {
		return false, fmt.Errorf("got %d bytes, need at least %d: %w", len(signed), width, cryptoDomain.ErrMalformedSignedContent)
	}

	content := signed[:len(signed)-width]
	signature, err := parseHex(string(signed[len(signed)-width:]))
	if err != nil {
		return false, fmt.Errorf("failed to parse signature: %w", err)
	}

	if signature.Cmp(publicKey.N) >= 0 {
		r.logger.Warn("RSA signature is out of range")
		return false, nil
	}

	recovered := new(big.Int).Exp(signature, publicKey.E, publicKey.N)
	if recovered.Cmp(digestOf(content)) != 0 {
		r.logger.Warn("RSA signature does not match content")
		return false, nil
	}

	r.logger.Info("RSA signature verified successfully")
	return true, nil
}

// digestOf interprets the SHA-256 digest of content as a big-endian integer
func digestOf(content []byte) *big.Int {
	sum := sha256.Sum256(content)
	return new(big.Int).SetBytes(sum[:])
}

// signatureWidth is the number of hex characters needed for any value below n
func signatureWidth(n *big.Int) int {
	return 2 * ((n.BitLen() + 7) / 8)
}

// parseHex parses an unsigned base-16 integer with an optional 0x prefix.
func parseHex(s string) (*big.Int, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")

	if s == "" {
		return nil, fmt.Errorf("empty hex string: %w", cryptoDomain.ErrInvalidEncoding)
	}
	for _, c := range s {
		if !isHexDigit(c) {
			return nil, fmt.Errorf("unexpected character %q: %w", c, cryptoDomain.ErrInvalidEncoding)
		}
	}

	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("cannot parse %q: %w", s, cryptoDomain.ErrInvalidEncoding)
	}
	return v, nil
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
