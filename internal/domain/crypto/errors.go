package crypto

import (
	"errors"
	"fmt"
)

// Error categories. Every specific error below wraps exactly one of them.
var (
	// ErrEncoding reports malformed hexadecimal or decimal text input
	ErrEncoding = errors.New("encoding error")
	// ErrDomain reports values outside the arithmetic domain or a broken invariant
	ErrDomain = errors.New("domain error")
	// ErrIO reports missing or unreadable key and content files
	ErrIO = errors.New("io error")
)

var (
	// ErrInvalidEncoding is returned when a hex or decimal string cannot be parsed
	ErrInvalidEncoding = fmt.Errorf("%w: invalid encoding", ErrEncoding)

	// ErrMalformedSignedContent is returned when signed content is shorter than the signature width
	ErrMalformedSignedContent = fmt.Errorf("%w: signed content is shorter than the signature width", ErrEncoding)

	// ErrMessageTooLarge is returned when a message or digest is not smaller than the modulus
	ErrMessageTooLarge = fmt.Errorf("%w: message representative must be smaller than the modulus", ErrDomain)

	// ErrNoModularInverse is returned when gcd(a, m) != 1
	ErrNoModularInverse = fmt.Errorf("%w: no modular inverse exists", ErrDomain)

	// ErrGenerationFailed is returned when a bounded resampling loop is exhausted
	ErrGenerationFailed = fmt.Errorf("%w: key generation failed", ErrDomain)

	// ErrInvalidKey is returned for nil or structurally invalid keys
	ErrInvalidKey = fmt.Errorf("%w: invalid key", ErrDomain)
)
