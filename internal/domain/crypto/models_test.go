//go:build unit
// +build unit

package crypto

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicKeyValidate(t *testing.T) {
	tests := []struct {
		name    string
		key     *PublicKey
		wantErr bool
	}{
		{"valid", &PublicKey{E: big.NewInt(7), N: big.NewInt(33)}, false},
		{"nil key", nil, true},
		{"missing modulus", &PublicKey{E: big.NewInt(7)}, true},
		{"zero exponent", &PublicKey{E: big.NewInt(0), N: big.NewInt(33)}, true},
		{"modulus too small", &PublicKey{E: big.NewInt(7), N: big.NewInt(2)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.key.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidKey)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPrivateKeyValidate(t *testing.T) {
	assert.NoError(t, (&PrivateKey{D: big.NewInt(3), N: big.NewInt(33)}).Validate())
	assert.ErrorIs(t, (&PrivateKey{N: big.NewInt(33)}).Validate(), ErrInvalidKey)
	assert.ErrorIs(t, (&PrivateKey{D: big.NewInt(-1), N: big.NewInt(33)}).Validate(), ErrInvalidKey)
}

func TestSignatureWidth(t *testing.T) {
	// 2^511 is a 512-bit modulus
	n := new(big.Int).Lsh(big.NewInt(1), 511)
	key := &PublicKey{E: big.NewInt(3), N: n}

	assert.Equal(t, 64, key.ByteSize())
	assert.Equal(t, 128, key.SignatureWidth())
}

func TestErrorCategories(t *testing.T) {
	assert.True(t, errors.Is(ErrInvalidEncoding, ErrEncoding))
	assert.True(t, errors.Is(ErrMalformedSignedContent, ErrEncoding))
	assert.True(t, errors.Is(ErrMessageTooLarge, ErrDomain))
	assert.True(t, errors.Is(ErrNoModularInverse, ErrDomain))
	assert.True(t, errors.Is(ErrGenerationFailed, ErrDomain))
	assert.False(t, errors.Is(ErrMessageTooLarge, ErrEncoding))
}
