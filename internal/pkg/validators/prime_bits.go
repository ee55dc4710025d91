package validators

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

// MinPrimeBitLength is the smallest supported prime size
const MinPrimeBitLength = 16

// MaxPrimeBitLength is the largest supported prime size
const MaxPrimeBitLength = 4096

// PrimeBitLengthValidation validates the size in bits of a generated prime.
// Sizes must be whole bytes between MinPrimeBitLength and MaxPrimeBitLength.
func PrimeBitLengthValidation(fl validator.FieldLevel) bool {
	field := fl.Field()

	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if field.Int() < 0 {
			return false
		}
		return IsValidPrimeBitLength(uint64(field.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return IsValidPrimeBitLength(field.Uint())
	default:
		return false
	}
}

// IsValidPrimeBitLength reports whether bits is a supported prime size
func IsValidPrimeBitLength(bits uint64) bool {
	return bits%8 == 0 && bits >= MinPrimeBitLength && bits <= MaxPrimeBitLength
}
