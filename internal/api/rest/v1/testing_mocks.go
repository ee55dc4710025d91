//go:build unit
// +build unit

package v1

import (
	"context"
	"math/big"

	"github.com/stretchr/testify/mock"
	"github.com/wba6/secure-signer/internal/domain/crypto"
	"github.com/wba6/secure-signer/internal/domain/keys"
)

// MockKeyPairService is a mock implementation of KeyPairService
type MockKeyPairService struct {
	mock.Mock
}

func (m *MockKeyPairService) Generate(ctx context.Context) (*keys.KeyPairMeta, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyPairMeta), args.Error(1)
}

func (m *MockKeyPairService) List(ctx context.Context, query *keys.KeyPairQuery) ([]*keys.KeyPairMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyPairMeta), args.Error(1)
}

func (m *MockKeyPairService) GetByID(ctx context.Context, keyPairID string) (*keys.KeyPairMeta, error) {
	args := m.Called(ctx, keyPairID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyPairMeta), args.Error(1)
}

func (m *MockKeyPairService) LoadPublicKey(ctx context.Context, keyPairID string) (*crypto.PublicKey, error) {
	args := m.Called(ctx, keyPairID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crypto.PublicKey), args.Error(1)
}

func (m *MockKeyPairService) LoadPrivateKey(ctx context.Context, keyPairID string) (*crypto.PrivateKey, error) {
	args := m.Called(ctx, keyPairID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crypto.PrivateKey), args.Error(1)
}

func (m *MockKeyPairService) DeleteByID(ctx context.Context, keyPairID string) error {
	args := m.Called(ctx, keyPairID)
	return args.Error(0)
}

// MockSigningService is a mock implementation of SigningService
type MockSigningService struct {
	mock.Mock
}

func (m *MockSigningService) SignFile(ctx context.Context, keyPairID, path string) (string, error) {
	args := m.Called(ctx, keyPairID, path)
	return args.String(0), args.Error(1)
}

func (m *MockSigningService) VerifyFile(ctx context.Context, keyPairID, signedPath string) (bool, error) {
	args := m.Called(ctx, keyPairID, signedPath)
	return args.Bool(0), args.Error(1)
}

func (m *MockSigningService) Sign(ctx context.Context, keyPairID, fileName string, content []byte) ([]byte, error) {
	args := m.Called(ctx, keyPairID, fileName, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockSigningService) Verify(ctx context.Context, keyPairID string, signed []byte) (bool, error) {
	args := m.Called(ctx, keyPairID, signed)
	return args.Bool(0), args.Error(1)
}

func (m *MockSigningService) Encrypt(ctx context.Context, keyPairID, messageHex string) (*big.Int, error) {
	args := m.Called(ctx, keyPairID, messageHex)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockSigningService) ListSignatures(ctx context.Context, keyPairID string) ([]*keys.SignatureMeta, error) {
	args := m.Called(ctx, keyPairID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.SignatureMeta), args.Error(1)
}

func (m *MockSigningService) Decrypt(ctx context.Context, keyPairID string, cipher *big.Int) (string, error) {
	args := m.Called(ctx, keyPairID, cipher)
	return args.String(0), args.Error(1)
}
