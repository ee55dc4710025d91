//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wba6/secure-signer/internal/domain/keys"
)

func TestKeyPairModel_ToDomain(t *testing.T) {
	model := &KeyPairModel{
		ID:              "test-id",
		Algorithm:       "RSA",
		BitLength:       256,
		Rounds:          64,
		PrimalityTest:   "fermat",
		ModulusBits:     511,
		Fingerprint:     "ab",
		KeyDir:          "keys/test-id",
		DateTimeCreated: time.Now(),
	}

	meta := model.ToDomain()

	assert.Equal(t, model.ID, meta.ID)
	assert.Equal(t, model.Algorithm, meta.Algorithm)
	assert.Equal(t, model.BitLength, meta.BitLength)
	assert.Equal(t, model.Rounds, meta.Rounds)
	assert.Equal(t, model.PrimalityTest, meta.PrimalityTest)
	assert.Equal(t, model.ModulusBits, meta.ModulusBits)
	assert.Equal(t, model.Fingerprint, meta.Fingerprint)
	assert.Equal(t, model.KeyDir, meta.KeyDir)
	assert.Equal(t, model.DateTimeCreated, meta.DateTimeCreated)
}

func TestKeyPairModel_FromDomain(t *testing.T) {
	meta := &keys.KeyPairMeta{
		ID:              "test-id",
		Algorithm:       "RSA",
		BitLength:       512,
		Rounds:          20,
		PrimalityTest:   "miller-rabin",
		ModulusBits:     1024,
		Fingerprint:     "cd",
		KeyDir:          "keys/test-id",
		DateTimeCreated: time.Now(),
	}

	model := &KeyPairModel{}
	model.FromDomain(meta)

	assert.Equal(t, meta, model.ToDomain())
	assert.Equal(t, "key_pairs", model.TableName())
}

func TestSignatureModel_Conversion(t *testing.T) {
	meta := &keys.SignatureMeta{
		ID:              "sig-id",
		KeyPairID:       "key-id",
		FileName:        "report.pdf",
		Digest:          "00ff",
		Signature:       "0abc",
		DateTimeCreated: time.Now(),
	}

	model := &SignatureModel{}
	model.FromDomain(meta)

	assert.Equal(t, meta.KeyPairID, model.KeyPairID)
	assert.Equal(t, meta.FileName, model.FileName)
	assert.Equal(t, meta, model.ToDomain())
	assert.Equal(t, "signatures", model.TableName())
}
