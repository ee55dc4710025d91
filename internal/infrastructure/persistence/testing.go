//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/wba6/secure-signer/internal/domain/crypto"
	"github.com/wba6/secure-signer/internal/domain/keys"
	"github.com/wba6/secure-signer/internal/pkg/config"
	"github.com/wba6/secure-signer/internal/pkg/testutil"
	"gorm.io/gorm"
)

// Test constants
const (
	TestBitLength128 = 128
	TestBitLength256 = 256
	TestRounds       = 64
)

// TestContext holds test database and repositories
type TestContext struct {
	DB            *gorm.DB
	KeyPairRepo   keys.KeyPairRepository
	SignatureRepo keys.SignatureRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	logger := testutil.SetupTestLogger(t)

	keyPairRepo, err := NewGormKeyPairRepository(db, logger)
	require.NoError(t, err, "Failed to create key pair repository")

	signatureRepo, err := NewGormSignatureRepository(db, logger)
	require.NoError(t, err, "Failed to create signature repository")

	return &TestContext{
		DB:            db,
		KeyPairRepo:   keyPairRepo,
		SignatureRepo: signatureRepo,
	}
}

// CreateTestKeyPairMeta creates key pair metadata with default values
func CreateTestKeyPairMeta(t *testing.T, bitLength uint32, primalityTest string) *keys.KeyPairMeta {
	t.Helper()

	id := uuid.NewString()
	return &keys.KeyPairMeta{
		ID:              id,
		Algorithm:       crypto.AlgorithmRSA,
		BitLength:       bitLength,
		Rounds:          TestRounds,
		PrimalityTest:   primalityTest,
		ModulusBits:     2 * bitLength,
		Fingerprint:     strings.Repeat(strings.ReplaceAll(id, "-", "")[:16], 4),
		KeyDir:          "/tmp/keys/" + id,
		DateTimeCreated: time.Now(),
	}
}

// CreateTestSignatureMeta creates a signature record for the given key pair
func CreateTestSignatureMeta(t *testing.T, keyPair *keys.KeyPairMeta, fileName string) *keys.SignatureMeta {
	t.Helper()

	return &keys.SignatureMeta{
		ID:              uuid.NewString(),
		KeyPairID:       keyPair.ID,
		FileName:        fileName,
		Digest:          "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
		Signature:       "0a1b2c3d",
		DateTimeCreated: time.Now(),
	}
}
