package cryptography

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	cryptoDomain "github.com/wba6/secure-signer/internal/domain/crypto"
	"github.com/wba6/secure-signer/internal/domain/cryptoalg"
	"github.com/wba6/secure-signer/internal/pkg/config"
	"github.com/wba6/secure-signer/internal/pkg/logger"
)

// keyGenerator struct that implements the KeyGenerator interface
type keyGenerator struct {
	settings config.GeneratorSettings
	tester   cryptoalg.PrimalityTester
	random   io.Reader
	logger   logger.Logger
}

// NewKeyGenerator creates a generator producing primes of settings.BitLength bits.
// The same random source feeds prime and exponent sampling; crypto/rand.Reader is used when nil.
func NewKeyGenerator(settings config.GeneratorSettings, tester cryptoalg.PrimalityTester, random io.Reader, logger logger.Logger) (cryptoalg.KeyGenerator, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator settings: %w", err)
	}
	if tester == nil {
		return nil, fmt.Errorf("primality tester cannot be nil")
	}
	if random == nil {
		random = rand.Reader
	}

	return &keyGenerator{
		settings: settings,
		tester:   tester,
		random:   random,
		logger:   logger,
	}, nil
}

// GenerateKeyPair generates distinct primes p and q, a random public exponent
// 1 < e < φ coprime to φ = (p-1)(q-1), and d = e^-1 mod φ.
func (g *keyGenerator) GenerateKeyPair() (*cryptoDomain.KeyPair, error) {
	p, err := g.generatePrime(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate prime p: %w", err)
	}

	q, err := g.generatePrime(p)
	if err != nil {
		return nil, fmt.Errorf("failed to generate prime q: %w", err)
	}

	n := new(big.Int).Mul(p, q)
	phi := totient(p, q)

	e, err := randomCoprime(g.random, g.settings.BitLength, phi, g.settings.MaxAttempts)
	if err != nil {
		return nil, fmt.Errorf("failed to generate public exponent: %w", err)
	}

	// e was chosen coprime to φ, so a failure here is a broken invariant
	d, err := ModInverse(e, phi)
	if err != nil {
		return nil, fmt.Errorf("failed to derive private exponent: %w", err)
	}

	g.logger.Info("Generated RSA key pair with ", n.BitLen(), "-bit modulus")

	return &cryptoDomain.KeyPair{
		PublicKey:  &cryptoDomain.PublicKey{E: e, N: n},
		PrivateKey: &cryptoDomain.PrivateKey{D: d, N: new(big.Int).Set(n)},
		P:          p,
		Q:          q,
	}, nil
}

// generatePrime samples odd BitLength-bit candidates until the primality tester accepts one.
// Candidates equal to exclude are skipped.
func (g *keyGenerator) generatePrime(exclude *big.Int) (*big.Int, error) {
	for attempt := 0; attempt < g.settings.MaxAttempts; attempt++ {
		candidate, err := randomBits(g.random, g.settings.BitLength)
		if err != nil {
			return nil, err
		}
		candidate.SetBit(candidate, 0, 1)

		if exclude != nil && candidate.Cmp(exclude) == 0 {
			continue
		}

		if g.tester.IsProbablyPrime(candidate, g.settings.Rounds) {
			g.logger.Debug("Accepted prime candidate after ", attempt+1, " samples")
			return candidate, nil
		}
	}

	return nil, fmt.Errorf("no prime found after %d attempts: %w", g.settings.MaxAttempts, cryptoDomain.ErrGenerationFailed)
}

// totient returns (p-1)(q-1)
func totient(p, q *big.Int) *big.Int {
	pMinus1 := new(big.Int).Sub(p, one)
	qMinus1 := new(big.Int).Sub(q, one)
	return pMinus1.Mul(pMinus1, qMinus1)
}
