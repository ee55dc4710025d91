package models

import (
	"time"

	"github.com/wba6/secure-signer/internal/domain/keys"
)

// KeyPairModel is the GORM database model for key pair metadata
type KeyPairModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Algorithm       string    `gorm:"type:varchar(20)"`
	BitLength       uint32    `gorm:"type:integer;index"`
	Rounds          uint32    `gorm:"type:integer"`
	PrimalityTest   string    `gorm:"type:varchar(20)"`
	ModulusBits     uint32    `gorm:"type:integer"`
	Fingerprint     string    `gorm:"type:char(64);uniqueIndex"`
	KeyDir          string    `gorm:"not null;type:varchar(1024)"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (KeyPairModel) TableName() string {
	return "key_pairs"
}

// ToDomain converts GORM model to domain entity
func (m *KeyPairModel) ToDomain() *keys.KeyPairMeta {
	return &keys.KeyPairMeta{
		ID:              m.ID,
		Algorithm:       m.Algorithm,
		BitLength:       m.BitLength,
		Rounds:          m.Rounds,
		PrimalityTest:   m.PrimalityTest,
		ModulusBits:     m.ModulusBits,
		Fingerprint:     m.Fingerprint,
		KeyDir:          m.KeyDir,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *KeyPairModel) FromDomain(k *keys.KeyPairMeta) {
	m.ID = k.ID
	m.Algorithm = k.Algorithm
	m.BitLength = k.BitLength
	m.Rounds = k.Rounds
	m.PrimalityTest = k.PrimalityTest
	m.ModulusBits = k.ModulusBits
	m.Fingerprint = k.Fingerprint
	m.KeyDir = k.KeyDir
	m.DateTimeCreated = k.DateTimeCreated
}
