package models

import (
	"time"

	"github.com/wba6/secure-signer/internal/domain/keys"
)

// SignatureModel is the GORM database model for signature records
type SignatureModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	KeyPairID       string    `gorm:"not null;index;type:uuid"`
	FileName        string    `gorm:"type:varchar(255)"`
	Digest          string    `gorm:"type:char(64)"`
	Signature       string    `gorm:"type:text"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SignatureModel) TableName() string {
	return "signatures"
}

// ToDomain converts GORM model to domain entity
func (m *SignatureModel) ToDomain() *keys.SignatureMeta {
	return &keys.SignatureMeta{
		ID:              m.ID,
		KeyPairID:       m.KeyPairID,
		FileName:        m.FileName,
		Digest:          m.Digest,
		Signature:       m.Signature,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SignatureModel) FromDomain(s *keys.SignatureMeta) {
	m.ID = s.ID
	m.KeyPairID = s.KeyPairID
	m.FileName = s.FileName
	m.Digest = s.Digest
	m.Signature = s.Signature
	m.DateTimeCreated = s.DateTimeCreated
}
