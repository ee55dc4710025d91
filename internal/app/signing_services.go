package app

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/wba6/secure-signer/internal/domain/crypto"
	"github.com/wba6/secure-signer/internal/domain/cryptoalg"
	"github.com/wba6/secure-signer/internal/domain/keys"
	"github.com/wba6/secure-signer/internal/pkg/logger"
)

const signedFilePerm os.FileMode = 0600

// signingService implements the SigningService interface
type signingService struct {
	keyPairService keys.KeyPairService
	signatureRepo  keys.SignatureRepository
	rsaProcessor   cryptoalg.RSAProcessor
	logger         logger.Logger
}

// NewSigningService creates a new signingService instance
func NewSigningService(
	keyPairService keys.KeyPairService,
	signatureRepo keys.SignatureRepository,
	rsaProcessor cryptoalg.RSAProcessor,
	logger logger.Logger,
) (keys.SigningService, error) {
	return &signingService{
		keyPairService: keyPairService,
		signatureRepo:  signatureRepo,
		rsaProcessor:   rsaProcessor,
		logger:         logger,
	}, nil
}

// SignFile signs the file at path and writes path + ".signed".
// The signature is only recorded once the signed file exists.
func (s *signingService) SignFile(ctx context.Context, keyPairID, path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %v: %w", path, err, crypto.ErrIO)
	}

	signed, meta, err := s.sign(ctx, keyPairID, filepath.Base(path), content)
	if err != nil {
		return "", err
	}

	signedPath := path + crypto.SignedFileExtension
	if err := os.WriteFile(signedPath, signed, signedFilePerm); err != nil {
		return "", fmt.Errorf("failed to write %s: %v: %w", signedPath, err, crypto.ErrIO)
	}

	if err := s.record(ctx, meta); err != nil {
		if removeErr := os.Remove(signedPath); removeErr != nil {
			s.logger.Error("failed to remove unrecorded signed file ", signedPath, ": ", removeErr)
		}
		return "", err
	}

	s.logger.Info("Wrote signed file ", signedPath)
	return signedPath, nil
}

// VerifyFile checks the signature appended to the file at signedPath
func (s *signingService) VerifyFile(ctx context.Context, keyPairID, signedPath string) (bool, error) {
	signed, err := os.ReadFile(signedPath)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %v: %w", signedPath, err, crypto.ErrIO)
	}
	return s.Verify(ctx, keyPairID, signed)
}

// Sign appends the signature of content and records it under fileName, which may be empty
func (s *signingService) Sign(ctx context.Context, keyPairID, fileName string, content []byte) ([]byte, error) {
	signed, meta, err := s.sign(ctx, keyPairID, fileName, content)
	if err != nil {
		return nil, err
	}

	if err := s.record(ctx, meta); err != nil {
		return nil, err
	}
	return signed, nil
}

// sign produces the signed content and its unrecorded SignatureMeta
func (s *signingService) sign(ctx context.Context, keyPairID, fileName string, content []byte) ([]byte, *keys.SignatureMeta, error) {
	privateKey, err := s.keyPairService.LoadPrivateKey(ctx, keyPairID)
	if err != nil {
		return nil, nil, err
	}

	signature, err := s.rsaProcessor.Sign(content, privateKey)
	if err != nil {
		return nil, nil, err
	}

	digest := sha256.Sum256(content)
	meta := &keys.SignatureMeta{
		ID:              uuid.New().String(),
		KeyPairID:       keyPairID,
		FileName:        fileName,
		Digest:          hex.EncodeToString(digest[:]),
		Signature:       signature,
		DateTimeCreated: time.Now().UTC(),
	}

	signed := make([]byte, 0, len(content)+len(signature))
	signed = append(signed, content...)
	signed = append(signed, signature...)
	return signed, meta, nil
}

func (s *signingService) record(ctx context.Context, meta *keys.SignatureMeta) error {
	if err := s.signatureRepo.Create(ctx, meta); err != nil {
		return fmt.Errorf("failed to record signature: %w", err)
	}
	return nil
}

func (s *signingService) Verify(ctx context.Context, keyPairID string, signed []byte) (bool, error) {
	publicKey, err := s.keyPairService.LoadPublicKey(ctx, keyPairID)
	if err != nil {
		return false, err
	}
	return s.rsaProcessor.Verify(signed, publicKey)
}

// ListSignatures returns the signature records of a registered key pair
func (s *signingService) ListSignatures(ctx context.Context, keyPairID string) ([]*keys.SignatureMeta, error) {
	if _, err := s.keyPairService.GetByID(ctx, keyPairID); err != nil {
		return nil, err
	}

	records, err := s.signatureRepo.ListByKeyPairID(ctx, keyPairID)
	if err != nil {
		return nil, fmt.Errorf("failed to list signatures of %s: %w", keyPairID, err)
	}
	return records, nil
}

func (s *signingService) Encrypt(ctx context.Context, keyPairID, messageHex string) (*big.Int, error) {
	publicKey, err := s.keyPairService.LoadPublicKey(ctx, keyPairID)
	if err != nil {
		return nil, err
	}
	return s.rsaProcessor.Encrypt(messageHex, publicKey)
}

func (s *signingService) Decrypt(ctx context.Context, keyPairID string, cipher *big.Int) (string, error) {
	privateKey, err := s.keyPairService.LoadPrivateKey(ctx, keyPairID)
	if err != nil {
		return "", err
	}
	return s.rsaProcessor.Decrypt(cipher, privateKey)
}
