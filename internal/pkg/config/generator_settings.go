package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/wba6/secure-signer/internal/domain/crypto"
	"github.com/wba6/secure-signer/internal/pkg/validators"
)

// Primality test constants
const (
	PrimalityTestFermat      = crypto.PrimalityTestFermat
	PrimalityTestMillerRabin = crypto.PrimalityTestMillerRabin
)

// GeneratorSettings holds the key generation parameters: prime size, primality rounds
// and the cap applied to every resampling loop.
type GeneratorSettings struct {
	BitLength     int    `mapstructure:"bit_length" validate:"required,primebits"`
	Rounds        int    `mapstructure:"rounds" validate:"required,min=1,max=1000"`
	MaxAttempts   int    `mapstructure:"max_attempts" validate:"required,min=1"`
	PrimalityTest string `mapstructure:"primality_test" validate:"required,oneof=fermat miller-rabin"`
}

// DefaultGeneratorSettings returns 256-bit primes, 64 Fermat rounds and 10000 attempts per loop
func DefaultGeneratorSettings() GeneratorSettings {
	return GeneratorSettings{
		BitLength:     crypto.DefaultPrimeBitLength,
		Rounds:        crypto.DefaultPrimalityRounds,
		MaxAttempts:   crypto.DefaultMaxAttempts,
		PrimalityTest: PrimalityTestFermat,
	}
}

// Validate checks that all fields in GeneratorSettings are valid
func (s *GeneratorSettings) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("primebits", validators.PrimeBitLengthValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for GeneratorSettings: %w", err)
	}
	return nil
}
