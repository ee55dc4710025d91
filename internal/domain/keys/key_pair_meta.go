package keys

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wba6/secure-signer/internal/pkg/validators"
)

// KeyPairMeta entity
type KeyPairMeta struct {
	ID              string    `validate:"required,uuid4"`
	Algorithm       string    `validate:"required,oneof=RSA"`
	BitLength       uint32    `validate:"required,primebits"`
	Rounds          uint32    `validate:"required,min=1"`
	PrimalityTest   string    `validate:"required,oneof=fermat miller-rabin"`
	ModulusBits     uint32    `validate:"required,min=1"`
	Fingerprint     string    `validate:"required,hexadecimal,len=64"`
	KeyDir          string    `validate:"required"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating KeyPairMeta struct
func (k *KeyPairMeta) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("primebits", validators.PrimeBitLengthValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	return formatValidationError(validate.Struct(k))
}

// KeyPairQuery represents filters, pagination and sorting for listing key pairs
type KeyPairQuery struct {
	BitLength       uint32    `validate:"omitempty,primebits"`
	PrimalityTest   string    `validate:"omitempty,oneof=fermat miller-rabin"`
	DateTimeCreated time.Time `validate:"omitempty"`

	Limit     int    `validate:"omitempty,gt=0"`
	Offset    int    `validate:"omitempty,gte=0"`
	SortBy    string `validate:"omitempty,oneof=id bit_length date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewKeyPairQuery creates a KeyPairQuery with default values.
func NewKeyPairQuery() *KeyPairQuery {
	return &KeyPairQuery{}
}

// Validate for validating KeyPairQuery struct
func (q *KeyPairQuery) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("primebits", validators.PrimeBitLengthValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	return formatValidationError(validate.Struct(q))
}

func formatValidationError(err error) error {
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("validation failed: %v", messages)
	}
	return fmt.Errorf("validation error: %w", err)
}
