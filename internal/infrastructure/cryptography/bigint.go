package cryptography

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	cryptoDomain "github.com/wba6/secure-signer/internal/domain/crypto"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// extendedGCD returns g = gcd(a, b) together with x, y such that a*x + b*y = g.
// a and b must be non-negative.
func extendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	for r.Sign() != 0 {
		q := new(big.Int).Quo(oldR, r)
		oldR, r = r, new(big.Int).Sub(oldR, new(big.Int).Mul(q, r))
		oldS, s = s, new(big.Int).Sub(oldS, new(big.Int).Mul(q, s))
		oldT, t = t, new(big.Int).Sub(oldT, new(big.Int).Mul(q, t))
	}

	return oldR, oldS, oldT
}

// ModInverse returns x in [0, m) with a*x ≡ 1 (mod m).
// It fails with ErrNoModularInverse when gcd(a, m) != 1 or m < 2.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if a == nil || m == nil || m.Cmp(two) < 0 {
		return nil, fmt.Errorf("modulus must be at least 2: %w", cryptoDomain.ErrNoModularInverse)
	}

	reduced := new(big.Int).Mod(a, m)
	g, x, _ := extendedGCD(reduced, m)
	if g.Cmp(one) != 0 {
		return nil, fmt.Errorf("gcd(%s, %s) = %s: %w", a, m, g, cryptoDomain.ErrNoModularInverse)
	}

	return x.Mod(x, m), nil
}

// randomBits returns a uniformly random integer of exactly bits bits (top bit set).
func randomBits(random io.Reader, bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("bit length %d too small: %w", bits, cryptoDomain.ErrDomain)
	}

	limit := new(big.Int).Lsh(one, uint(bits-1))
	v, err := rand.Int(random, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read random bits: %w", err)
	}

	return v.SetBit(v, bits-1, 1), nil
}

// randomInRange returns a uniformly random integer in [lo, hi].
func randomInRange(random io.Reader, lo, hi *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(hi, lo)
	span.Add(span, one)
	if span.Sign() <= 0 {
		return nil, fmt.Errorf("empty range [%s, %s]: %w", lo, hi, cryptoDomain.ErrDomain)
	}

	v, err := rand.Int(random, span)
	if err != nil {
		return nil, fmt.Errorf("failed to read random bits: %w", err)
	}

	return v.Add(v, lo), nil
}

// randomCoprime samples bits-bit integers until one lies strictly between 1 and
// limit and is coprime to limit. At most maxAttempts samples are drawn.
func randomCoprime(random io.Reader, bits int, limit *big.Int, maxAttempts int) (*big.Int, error) {
	g := new(big.Int)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		e, err := randomBits(random, bits)
		if err != nil {
			return nil, err
		}

		if e.Cmp(one) <= 0 || e.Cmp(limit) >= 0 {
			continue
		}

		if g.GCD(nil, nil, e, limit).Cmp(one) == 0 {
			return e, nil
		}
	}

	return nil, fmt.Errorf("no exponent coprime to the totient after %d attempts: %w", maxAttempts, cryptoDomain.ErrGenerationFailed)
}
