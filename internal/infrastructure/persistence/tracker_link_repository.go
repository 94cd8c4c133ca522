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

// GormTrackerLinkRepository implements TrackerLinkRepository using GORM
type GormTrackerLinkRepository struct {
	db *gorm.DB
}

// NewGormTrackerLinkRepository creates a new GormTrackerLinkRepository
func NewGormTrackerLinkRepository(db *gorm.DB) *GormTrackerLinkRepository {
	return &GormTrackerLinkRepository{db: db}
}

// FindByToken resolves an opaque tracker token
func (r *GormTrackerLinkRepository) FindByToken(ctx context.Context, token string) (*campaign.TrackerLink, error) {
	var model models.TrackerLinkModel
	if err := r.db.WithContext(ctx).
		Where("token = ?", token).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCampaign returns all tracker links for a campaign, oldest first so
// the main link always comes before the share link
func (r *GormTrackerLinkRepository) FindByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*campaign.TrackerLink, error) {
	var linkModels []models.TrackerLinkModel
	if err := r.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("created_at ASC").
		Find(&linkModels).Error; err != nil {
		return nil, err
	}

	links := make([]*campaign.TrackerLink, len(linkModels))
	for i := range linkModels {
		links[i] = linkModels[i].ToDomain()
	}
	return links, nil
}

// IncrementScans atomically bumps the per-link scan counter
func (r *GormTrackerLinkRepository) IncrementScans(ctx context.Context, token string) error {
	result := r.db.WithContext(ctx).
		Model(&models.TrackerLinkModel{}).
		Where("token = ?", token).
		Update("scans", gorm.Expr("scans + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormTrackerLinkRepository implements TrackerLinkRepository
var _ campaign.TrackerLinkRepository = (*GormTrackerLinkRepository)(nil)
