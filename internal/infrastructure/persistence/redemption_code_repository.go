package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/promokit/backend/internal/domain/campaign"
	"github.com/promokit/backend/internal/domain/shared"
	"github.com/promokit/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormRedemptionCodeRepository implements RedemptionCodeRepository using GORM
type GormRedemptionCodeRepository struct {
	db *gorm.DB
}

// NewGormRedemptionCodeRepository creates a new GormRedemptionCodeRepository
func NewGormRedemptionCodeRepository(db *gorm.DB) *GormRedemptionCodeRepository {
	return &GormRedemptionCodeRepository{db: db}
}

// Create persists a new redemption code. The unique index on code maps
// collisions to shared.ErrAlreadyExists so issuers can retry with a fresh code.
func (r *GormRedemptionCodeRepository) Create(ctx context.Context, code *campaign.RedemptionCode) error {
	model := models.RedemptionCodeModelFromDomain(code)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// FindByCode finds a code by its literal value
func (r *GormRedemptionCodeRepository) FindByCode(ctx context.Context, code string) (*campaign.RedemptionCode, error) {
	var model models.RedemptionCodeModel
	if err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Redeem atomically consumes an unredeemed code. The guarded UPDATE is the
// check-and-set: concurrent double-submits race on redeemed_at IS NULL and
// exactly one wins.
func (r *GormRedemptionCodeRepository) Redeem(ctx context.Context, code string, at time.Time) (*campaign.RedemptionCode, error) {
	result := r.db.WithContext(ctx).
		Model(&models.RedemptionCodeModel{}).
		Where("code = ? AND redeemed_at IS NULL", code).
		Updates(map[string]interface{}{
			"redeemed_at": at,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, campaign.ErrCodeAlreadyRedeemed
	}

	return r.FindByCode(ctx, code)
}

// Ensure GormRedemptionCodeRepository implements RedemptionCodeRepository
var _ campaign.RedemptionCodeRepository = (*GormRedemptionCodeRepository)(nil)
