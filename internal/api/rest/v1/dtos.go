package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Message string `json:"message"`
}

// PublicKeyResponse carries e and n as decimal strings
type PublicKeyResponse struct {
	E string `json:"e"`
	N string `json:"n"`
}

// KeyPairMetaResponse describes a registered key pair
type KeyPairMetaResponse struct {
	ID              string             `json:"id"`
	Algorithm       string             `json:"algorithm"`
	BitLength       uint32             `json:"bit_length"`
	Rounds          uint32             `json:"rounds"`
	PrimalityTest   string             `json:"primality_test"`
	ModulusBits     uint32             `json:"modulus_bits"`
	Fingerprint     string             `json:"fingerprint"`
	DateTimeCreated time.Time          `json:"date_time_created"`
	PublicKey       *PublicKeyResponse `json:"public_key,omitempty"`
}

// VerifyResponse reports the outcome of a signature check
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

// SignatureResponse describes a recorded signature
type SignatureResponse struct {
	ID              string    `json:"id"`
	KeyPairID       string    `json:"key_pair_id"`
	FileName        string    `json:"file_name,omitempty"`
	Digest          string    `json:"digest"`
	Signature       string    `json:"signature"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// EncryptRequest carries the message representative as hex
type EncryptRequest struct {
	MessageHex string `json:"message_hex" validate:"required,max=8192"`
}

// Validate for validating EncryptRequest struct
func (r *EncryptRequest) Validate() error {
	return formatValidationError(validator.New().Struct(r))
}

// EncryptResponse carries the cipher as a decimal string
type EncryptResponse struct {
	Cipher string `json:"cipher"`
}

// DecryptRequest carries the cipher as a decimal string
type DecryptRequest struct {
	Cipher string `json:"cipher" validate:"required,numeric,max=8192"`
}

// Validate for validating DecryptRequest struct
func (r *DecryptRequest) Validate() error {
	return formatValidationError(validator.New().Struct(r))
}

// DecryptResponse carries the recovered message as lowercase hex
type DecryptResponse struct {
	MessageHex string `json:"message_hex"`
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
