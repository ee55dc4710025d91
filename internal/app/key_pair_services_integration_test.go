//go:build integration
// +build integration

package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wba6/secure-signer/internal/domain/crypto"
	"github.com/wba6/secure-signer/internal/domain/keys"
	"github.com/wba6/secure-signer/internal/pkg/config"
)

func TestKeyPairService_Generate(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	meta, err := services.KeyPairService.Generate(ctx)
	require.NoError(t, err)

	assert.Equal(t, crypto.AlgorithmRSA, meta.Algorithm)
	assert.Equal(t, uint32(256), meta.BitLength)
	assert.Equal(t, crypto.PrimalityTestFermat, meta.PrimalityTest)
	assert.Contains(t, []uint32{511, 512}, meta.ModulusBits)
	assert.Equal(t, filepath.Join(services.KeysRoot, meta.ID), meta.KeyDir)

	for _, name := range []string{crypto.PrimesFileName, crypto.PublicKeyFileName, crypto.PrivateKeyFileName} {
		_, err := os.Stat(filepath.Join(meta.KeyDir, name))
		assert.NoError(t, err, name)
	}

	publicKey, err := services.KeyPairService.LoadPublicKey(ctx, meta.ID)
	require.NoError(t, err)
	assert.Equal(t, meta.Fingerprint, Fingerprint(publicKey))
	assert.Equal(t, int(meta.ModulusBits), publicKey.N.BitLen())

	privateKey, err := services.KeyPairService.LoadPrivateKey(ctx, meta.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, privateKey.N.Cmp(publicKey.N))
}

func TestKeyPairService_GetAndList(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	first, err := services.KeyPairService.Generate(ctx)
	require.NoError(t, err)
	second, err := services.KeyPairService.Generate(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first.Fingerprint, second.Fingerprint)

	fetched, err := services.KeyPairService.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Fingerprint, fetched.Fingerprint)

	all, err := services.KeyPairService.List(ctx, keys.NewKeyPairQuery())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestKeyPairService_UnknownKeyPair(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	id := uuid.NewString()

	_, err := services.KeyPairService.GetByID(ctx, id)
	assert.ErrorIs(t, err, keys.ErrKeyPairNotFound)

	_, err = services.KeyPairService.LoadPublicKey(ctx, id)
	assert.ErrorIs(t, err, keys.ErrKeyPairNotFound)

	_, err = services.KeyPairService.LoadPrivateKey(ctx, id)
	assert.ErrorIs(t, err, keys.ErrKeyPairNotFound)
}

func TestKeyPairService_DeleteByID(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	meta, err := services.KeyPairService.Generate(ctx)
	require.NoError(t, err)

	require.NoError(t, services.KeyPairService.DeleteByID(ctx, meta.ID))

	_, err = os.Stat(meta.KeyDir)
	assert.True(t, os.IsNotExist(err))

	_, err = services.KeyPairService.GetByID(ctx, meta.ID)
	assert.ErrorIs(t, err, keys.ErrKeyPairNotFound)

	err = services.KeyPairService.DeleteByID(ctx, meta.ID)
	assert.ErrorIs(t, err, keys.ErrKeyPairNotFound)
}

func TestKeyPairService_MissingKeyFiles(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	meta, err := services.KeyPairService.Generate(ctx)
	require.NoError(t, err)
	require.NoError(t, os.Remove(filepath.Join(meta.KeyDir, crypto.PrivateKeyFileName)))

	_, err = services.KeyPairService.LoadPrivateKey(ctx, meta.ID)
	assert.ErrorIs(t, err, crypto.ErrIO)
}
