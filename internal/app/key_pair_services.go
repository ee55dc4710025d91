package app

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/wba6/secure-signer/internal/domain/crypto"
	"github.com/wba6/secure-signer/internal/domain/cryptoalg"
	"github.com/wba6/secure-signer/internal/domain/keys"
	"github.com/wba6/secure-signer/internal/pkg/config"
	"github.com/wba6/secure-signer/internal/pkg/logger"
)

// keyPairService implements the KeyPairService interface
type keyPairService struct {
	keysRoot    string
	settings    config.GeneratorSettings
	generator   cryptoalg.KeyGenerator
	keyStore    keys.KeyStore
	keyPairRepo keys.KeyPairRepository
	logger      logger.Logger
}

// NewKeyPairService creates a new keyPairService instance.
// Key files of every generated key pair are stored in keysRoot/<id>.
func NewKeyPairService(
	keysRoot string,
	settings config.GeneratorSettings,
	generator cryptoalg.KeyGenerator,
	keyStore keys.KeyStore,
	keyPairRepo keys.KeyPairRepository,
	logger logger.Logger,
) (keys.KeyPairService, error) {
	if keysRoot == "" {
		return nil, fmt.Errorf("keys root cannot be empty")
	}

	return &keyPairService{
		keysRoot:    keysRoot,
		settings:    settings,
		generator:   generator,
		keyStore:    keyStore,
		keyPairRepo: keyPairRepo,
		logger:      logger,
	}, nil
}

// Generate creates a key pair, writes its key files and records its metadata.
// It returns the KeyPairMeta of the new key pair and any error encountered.
// A failure after the key files were started leaves neither files nor a registry row.
func (s *keyPairService) Generate(ctx context.Context) (*keys.KeyPairMeta, error) {
	keyPair, err := s.generator.GenerateKeyPair()
	if err != nil {
		return nil, fmt.Errorf("failed to generate key pair: %w", err)
	}

	id := uuid.New().String()
	keyDir := filepath.Join(s.keysRoot, id)

	if err := s.keyStore.SaveKeyPair(keyDir, keyPair); err != nil {
		s.removeKeyDir(keyDir)
		return nil, fmt.Errorf("failed to store key pair: %w", err)
	}

	meta := &keys.KeyPairMeta{
		ID:              id,
		Algorithm:       crypto.AlgorithmRSA,
		BitLength:       uint32(s.settings.BitLength),
		Rounds:          uint32(s.settings.Rounds),
		PrimalityTest:   s.settings.PrimalityTest,
		ModulusBits:     uint32(keyPair.PublicKey.N.BitLen()),
		Fingerprint:     Fingerprint(keyPair.PublicKey),
		KeyDir:          keyDir,
		DateTimeCreated: time.Now().UTC(),
	}

	if err := s.keyPairRepo.Create(ctx, meta); err != nil {
		s.removeKeyDir(keyDir)
		return nil, fmt.Errorf("failed to register key pair: %w", err)
	}

	s.logger.Info("Generated key pair ", id, " in ", keyDir)
	return meta, nil
}

// List retrieves key pair metadata matching query
func (s *keyPairService) List(ctx context.Context, query *keys.KeyPairQuery) ([]*keys.KeyPairMeta, error) {
	metas, err := s.keyPairRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list key pairs: %w", err)
	}
	return metas, nil
}

// GetByID retrieves the metadata of a single key pair
func (s *keyPairService) GetByID(ctx context.Context, keyPairID string) (*keys.KeyPairMeta, error) {
	meta, err := s.keyPairRepo.GetByID(ctx, keyPairID)
	if err != nil {
		return nil, err
	}
	return meta, nil
}

func (s *keyPairService) LoadPublicKey(ctx context.Context, keyPairID string) (*crypto.PublicKey, error) {
	meta, err := s.keyPairRepo.GetByID(ctx, keyPairID)
	if err != nil {
		return nil, err
	}

	publicKey, err := s.keyStore.LoadPublicKey(meta.KeyDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load public key of %s: %w", keyPairID, err)
	}
	return publicKey, nil
}

func (s *keyPairService) LoadPrivateKey(ctx context.Context, keyPairID string) (*crypto.PrivateKey, error) {
	meta, err := s.keyPairRepo.GetByID(ctx, keyPairID)
	if err != nil {
		return nil, err
	}

	privateKey, err := s.keyStore.LoadPrivateKey(meta.KeyDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load private key of %s: %w", keyPairID, err)
	}
	return privateKey, nil
}

// DeleteByID unregisters the key pair and removes its key directory
func (s *keyPairService) DeleteByID(ctx context.Context, keyPairID string) error {
	meta, err := s.keyPairRepo.GetByID(ctx, keyPairID)
	if err != nil {
		return err
	}

	if err := s.keyPairRepo.DeleteByID(ctx, keyPairID); err != nil {
		return fmt.Errorf("failed to delete key pair %s: %w", keyPairID, err)
	}

	if err := os.RemoveAll(meta.KeyDir); err != nil {
		return fmt.Errorf("failed to remove %s: %v: %w", meta.KeyDir, err, crypto.ErrIO)
	}

	s.logger.Info("Deleted key pair ", keyPairID)
	return nil
}

// removeKeyDir discards the key files of a key pair that was not registered
func (s *keyPairService) removeKeyDir(keyDir string) {
	if err := os.RemoveAll(keyDir); err != nil {
		s.logger.Error("failed to remove unregistered key directory ", keyDir, ": ", err)
	}
}

// Fingerprint is the hex SHA-256 of the decimal modulus
func Fingerprint(publicKey *crypto.PublicKey) string {
	sum := sha256.Sum256([]byte(publicKey.N.Text(10)))
	return hex.EncodeToString(sum[:])
}
