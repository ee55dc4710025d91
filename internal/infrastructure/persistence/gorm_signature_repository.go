package persistence

import (
	"context"
	"fmt"

	"github.com/wba6/secure-signer/internal/domain/keys"
	"github.com/wba6/secure-signer/internal/infrastructure/persistence/models"
	"github.com/wba6/secure-signer/internal/pkg/logger"
	"gorm.io/gorm"
)

type gormSignatureRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSignatureRepository creates a new GORM-based SignatureRepository implementation
func NewGormSignatureRepository(db *gorm.DB, logger logger.Logger) (keys.SignatureRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection cannot be nil")
	}

	return &gormSignatureRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSignatureRepository) Create(ctx context.Context, meta *keys.SignatureMeta) error {
	if err := meta.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SignatureModel{}
	model.FromDomain(meta)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create signature record: %w", err)
	}

	r.logger.Info("Recorded signature ", meta.ID, " for key pair ", meta.KeyPairID)
	return nil
}

// ListByKeyPairID returns the signature records of a key pair, oldest first
func (r *gormSignatureRepository) ListByKeyPairID(ctx context.Context, keyPairID string) ([]*keys.SignatureMeta, error) {
	var modelList []*models.SignatureModel
	err := r.db.WithContext(ctx).
		Where("key_pair_id = ?", keyPairID).
		Order("date_time_created asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch signature records: %w", err)
	}

	domainList := make([]*keys.SignatureMeta, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}
