//go:build unit
// +build unit

package v1

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncryptRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   EncryptRequest
		shouldErr bool
	}{
		{"Valid hex", EncryptRequest{MessageHex: "cafe"}, false},
		{"Prefixed hex", EncryptRequest{MessageHex: "0xcafe"}, false},
		{"Empty", EncryptRequest{}, true},
		{"Too long", EncryptRequest{MessageHex: strings.Repeat("a", 8193)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestDecryptRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   DecryptRequest
		shouldErr bool
	}{
		{"Valid decimal", DecryptRequest{Cipher: "2790"}, false},
		{"Hex", DecryptRequest{Cipher: "ff"}, true},
		{"Empty", DecryptRequest{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}
