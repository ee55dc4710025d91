package cryptography

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	cryptoDomain "github.com/wba6/secure-signer/internal/domain/crypto"
	"github.com/wba6/secure-signer/internal/domain/cryptoalg"
	"github.com/wba6/secure-signer/internal/pkg/logger"
)

// odd primes below 100, used for deterministic trial division
var smallPrimes = []int64{3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97}

// NewPrimalityTester returns the tester selected by testType ("fermat" or "miller-rabin").
// random is the entropy source for the witnesses; crypto/rand.Reader is used when nil.
func NewPrimalityTester(testType string, random io.Reader, logger logger.Logger) (cryptoalg.PrimalityTester, error) {
	if random == nil {
		random = rand.Reader
	}

	switch testType {
	case cryptoDomain.PrimalityTestFermat:
		return &fermatTester{random: random, logger: logger}, nil
	case cryptoDomain.PrimalityTestMillerRabin:
		return &millerRabinTester{random: random, logger: logger}, nil
	default:
		return nil, fmt.Errorf("unsupported primality test: %s", testType)
	}
}

// screen decides the trivial cases: below 2, even, or sharing a factor with a small prime.
// decided is false when the candidate needs the probabilistic phase.
func screen(candidate *big.Int) (prime bool, decided bool) {
	if candidate == nil || candidate.Cmp(two) < 0 {
		return false, true
	}
	if candidate.Cmp(two) == 0 {
		return true, true
	}
	if candidate.Bit(0) == 0 {
		return false, true
	}

	rem := new(big.Int)
	for _, p := range smallPrimes {
		bp := big.NewInt(p)
		if candidate.Cmp(bp) == 0 {
			return true, true
		}
		if rem.Mod(candidate, bp).Sign() == 0 {
			return false, true
		}
	}

	return false, false
}

// fermatTester implements the Fermat probabilistic primality test.
// It is deliberately the weaker test: Carmichael numbers without a factor
// below 100 pass every round. Use millerRabinTester where that matters.
type fermatTester struct {
	random io.Reader
	logger logger.Logger
}

// IsProbablyPrime reports false as soon as a base a in [2, n-2] with a^(n-1) mod n != 1 is found.
func (f *fermatTester) IsProbablyPrime(candidate *big.Int, rounds int) bool {
	if prime, decided := screen(candidate); decided {
		return prime
	}
	if rounds < 1 {
		rounds = 1
	}

	nMinus1 := new(big.Int).Sub(candidate, one)
	nMinus2 := new(big.Int).Sub(candidate, two)
	result := new(big.Int)

	for i := 0; i < rounds; i++ {
		a, err := randomInRange(f.random, two, nMinus2)
		if err != nil {
			f.logger.Error("fermat test: ", err)
			return false
		}

		if result.Exp(a, nMinus1, candidate).Cmp(one) != 0 {
			return false
		}
	}

	return true
}

// millerRabinTester implements the Miller-Rabin probabilistic primality test.
type millerRabinTester struct {
	random io.Reader
	logger logger.Logger
}

// IsProbablyPrime runs rounds Miller-Rabin rounds with random bases in [2, n-2].
func (m *millerRabinTester) IsProbablyPrime(candidate *big.Int, rounds int) bool {
	if prime, decided := screen(candidate); decided {
		return prime
	}
	if rounds < 1 {
		rounds = 1
	}

	nMinus1 := new(big.Int).Sub(candidate, one)
	nMinus2 := new(big.Int).Sub(candidate, two)

	// n-1 = d * 2^s with d odd
	s := nMinus1.TrailingZeroBits()
	d := new(big.Int).Rsh(nMinus1, s)

	x := new(big.Int)

WitnessLoop:
	for i := 0; i < rounds; i++ {
		a, err := randomInRange(m.random, two, nMinus2)
		if err != nil {
			m.logger.Error("miller-rabin test: ", err)
			return false
		}

		x.Exp(a, d, candidate)
		if x.Cmp(one) == 0 || x.Cmp(nMinus1) == 0 {
			continue
		}

		for r := uint(1); r < s; r++ {
			x.Exp(x, two, candidate)
			if x.Cmp(nMinus1) == 0 {
				continue WitnessLoop
			}
			if x.Cmp(one) == 0 {
				return false
			}
		}

		return false
	}

	return true
}
