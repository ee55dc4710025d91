//go:build unit
// +build unit

package app

import (
	"context"
	"math/big"

	"github.com/stretchr/testify/mock"
	"github.com/wba6/secure-signer/internal/domain/crypto"
	"github.com/wba6/secure-signer/internal/domain/keys"
)

type mockKeyGenerator struct {
	mock.Mock
}

func (m *mockKeyGenerator) GenerateKeyPair() (*crypto.KeyPair, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crypto.KeyPair), args.Error(1)
}

type mockKeyPairRepository struct {
	mock.Mock
}

func (m *mockKeyPairRepository) Create(ctx context.Context, meta *keys.KeyPairMeta) error {
	return m.Called(ctx, meta).Error(0)
}

func (m *mockKeyPairRepository) List(ctx context.Context, query *keys.KeyPairQuery) ([]*keys.KeyPairMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyPairMeta), args.Error(1)
}

func (m *mockKeyPairRepository) GetByID(ctx context.Context, keyPairID string) (*keys.KeyPairMeta, error) {
	args := m.Called(ctx, keyPairID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyPairMeta), args.Error(1)
}

func (m *mockKeyPairRepository) DeleteByID(ctx context.Context, keyPairID string) error {
	return m.Called(ctx, keyPairID).Error(0)
}

type mockSignatureRepository struct {
	mock.Mock
}

func (m *mockSignatureRepository) Create(ctx context.Context, meta *keys.SignatureMeta) error {
	return m.Called(ctx, meta).Error(0)
}

func (m *mockSignatureRepository) ListByKeyPairID(ctx context.Context, keyPairID string) ([]*keys.SignatureMeta, error) {
	args := m.Called(ctx, keyPairID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.SignatureMeta), args.Error(1)
}

// mockKeyPairService only serves keys; the signing service never generates or lists
type mockKeyPairService struct {
	mock.Mock
}

func (m *mockKeyPairService) Generate(ctx context.Context) (*keys.KeyPairMeta, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyPairMeta), args.Error(1)
}

func (m *mockKeyPairService) List(ctx context.Context, query *keys.KeyPairQuery) ([]*keys.KeyPairMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyPairMeta), args.Error(1)
}

func (m *mockKeyPairService) GetByID(ctx context.Context, keyPairID string) (*keys.KeyPairMeta, error) {
	args := m.Called(ctx, keyPairID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyPairMeta), args.Error(1)
}

func (m *mockKeyPairService) LoadPublicKey(ctx context.Context, keyPairID string) (*crypto.PublicKey, error) {
	args := m.Called(ctx, keyPairID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crypto.PublicKey), args.Error(1)
}

func (m *mockKeyPairService) LoadPrivateKey(ctx context.Context, keyPairID string) (*crypto.PrivateKey, error) {
	args := m.Called(ctx, keyPairID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crypto.PrivateKey), args.Error(1)
}

func (m *mockKeyPairService) DeleteByID(ctx context.Context, keyPairID string) error {
	return m.Called(ctx, keyPairID).Error(0)
}

// textbookKeyPair is p=61, q=53, e=17, d=2753
func textbookKeyPair() *crypto.KeyPair {
	return &crypto.KeyPair{
		PublicKey:  &crypto.PublicKey{E: big.NewInt(17), N: big.NewInt(3233)},
		PrivateKey: &crypto.PrivateKey{D: big.NewInt(2753), N: big.NewInt(3233)},
		P:          big.NewInt(61),
		Q:          big.NewInt(53),
	}
}
