package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/promokit/backend/internal/domain/campaign"
	"github.com/promokit/backend/internal/domain/shared"
	"github.com/promokit/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCampaignRepository implements CampaignRepository using GORM
type GormCampaignRepository struct {
	db *gorm.DB
}

// NewGormCampaignRepository creates a new GormCampaignRepository
func NewGormCampaignRepository(db *gorm.DB) *GormCampaignRepository {
	return &GormCampaignRepository{db: db}
}

// CreateWithLinks persists a campaign and its tracker links in a single
// transaction. The unique (shop_id, brief_fingerprint) index maps duplicate
// submissions to shared.ErrAlreadyExists so callers can re-find the winning
// record; a failed link insert rolls the campaign back with it.
func (r *GormCampaignRepository) CreateWithLinks(ctx context.Context, c *campaign.Campaign, links []*campaign.TrackerLink) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(models.CampaignModelFromDomain(c)).Error; err != nil {
			return err
		}
		for _, link := range links {
			if err := tx.Create(models.TrackerLinkModelFromDomain(link)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Save updates an existing campaign
func (r *GormCampaignRepository) Save(ctx context.Context, c *campaign.Campaign) error {
	model := models.CampaignModelFromDomain(c)
	return r.db.WithContext(ctx).Save(model).Error
}

// FindByID finds a campaign by its ID
func (r *GormCampaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*campaign.Campaign, error) {
	var model models.CampaignModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForShop finds a campaign by ID scoped to its owning shop
func (r *GormCampaignRepository) FindByIDForShop(ctx context.Context, shopID, id uuid.UUID) (*campaign.Campaign, error) {
	var model models.CampaignModel
	if err := r.db.WithContext(ctx).
		Where("shop_id = ? AND id = ?", shopID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByFingerprint finds the campaign a shop committed for a brief fingerprint
func (r *GormCampaignRepository) FindByFingerprint(ctx context.Context, shopID uuid.UUID, fingerprint string) (*campaign.Campaign, error) {
	var model models.CampaignModel
	if err := r.db.WithContext(ctx).
		Where("shop_id = ? AND brief_fingerprint = ?", shopID, fingerprint).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForShop returns campaigns owned by a shop, newest first
func (r *GormCampaignRepository) FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]*campaign.Campaign, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.CampaignModel{}).
		Where("shop_id = ?", shopID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var campaignModels []models.CampaignModel
	if err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&campaignModels).Error; err != nil {
		return nil, 0, err
	}

	campaigns := make([]*campaign.Campaign, len(campaignModels))
	for i := range campaignModels {
		campaigns[i] = campaignModels[i].ToDomain()
	}
	return campaigns, total, nil
}

// IncrementScans atomically bumps the campaign scan counter
func (r *GormCampaignRepository) IncrementScans(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.CampaignModel{}).
		Where("id = ?", id).
		Update("scans", gorm.Expr("scans + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// IncrementRedemptions atomically bumps the campaign redemption counter
func (r *GormCampaignRepository) IncrementRedemptions(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.CampaignModel{}).
		Where("id = ?", id).
		Update("redemptions", gorm.Expr("redemptions + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormCampaignRepository implements CampaignRepository
var _ campaign.CampaignRepository = (*GormCampaignRepository)(nil)
