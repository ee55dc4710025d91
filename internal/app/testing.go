//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wba6/secure-signer/internal/domain/keys"
	"github.com/wba6/secure-signer/internal/infrastructure/connector"
	"github.com/wba6/secure-signer/internal/infrastructure/cryptography"
	"github.com/wba6/secure-signer/internal/infrastructure/persistence"
	"github.com/wba6/secure-signer/internal/pkg/config"
	"github.com/wba6/secure-signer/internal/pkg/testutil"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	KeyPairService keys.KeyPairService
	SigningService keys.SigningService
	KeyStore       keys.KeyStore

	KeysRoot  string
	DBContext *persistence.TestContext
}

// SetupTestServices wires the services against a fresh database and a temporary keys root
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)
	keysRoot := t.TempDir()
	settings := config.DefaultGeneratorSettings()

	keyStore, err := connector.NewFileKeyConnector(logger)
	require.NoError(t, err, "Failed to create key store")

	tester, err := cryptography.NewPrimalityTester(settings.PrimalityTest, nil, logger)
	require.NoError(t, err, "Failed to create primality tester")

	generator, err := cryptography.NewKeyGenerator(settings, tester, nil, logger)
	require.NoError(t, err, "Failed to create key generator")

	rsaProcessor, err := cryptography.NewRSAProcessor(logger)
	require.NoError(t, err, "Failed to create RSA processor")

	keyPairService, err := NewKeyPairService(keysRoot, settings, generator, keyStore, dbContext.KeyPairRepo, logger)
	require.NoError(t, err, "Failed to create key pair service")

	signingService, err := NewSigningService(keyPairService, dbContext.SignatureRepo, rsaProcessor, logger)
	require.NoError(t, err, "Failed to create signing service")

	return &TestServices{
		KeyPairService: keyPairService,
		SigningService: signingService,
		KeyStore:       keyStore,
		KeysRoot:       keysRoot,
		DBContext:      dbContext,
	}
}
