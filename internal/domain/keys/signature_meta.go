package keys

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// SignatureMeta records a signature produced with a registered key pair
type SignatureMeta struct {
	ID              string    `validate:"required,uuid4"`
	KeyPairID       string    `validate:"required,uuid4"`
	FileName        string    `validate:"omitempty,max=255"`
	Digest          string    `validate:"required,hexadecimal,len=64"`
	Signature       string    `validate:"required,hexadecimal"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating SignatureMeta struct
func (s *SignatureMeta) Validate() error {
	return formatValidationError(validator.New().Struct(s))
}
