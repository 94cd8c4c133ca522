package campaign

import (
	"time"

	"github.com/google/uuid"
	"github.com/promokit/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CampaignStatus represents the lifecycle status of a campaign
type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusCompleted CampaignStatus = "completed"
)

// Campaign represents a committed marketing campaign owned by a shop.
// It is created exactly once, at asset-generation time.
type Campaign struct {
	shared.ShopAggregateRoot
	Name             string
	Theme            string
	Offer            string
	Budget           decimal.Decimal
	StartDate        time.Time
	EndDate          time.Time
	Status           CampaignStatus
	Scans            int64
	Redemptions      int64
	BriefFingerprint string
}

// NewCampaign creates an active campaign from a validated brief
func NewCampaign(shopID uuid.UUID, brief Brief, fingerprint string) (*Campaign, error) {
	if shopID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SHOP_ID", "Shop ID cannot be empty")
	}
	if err := brief.Validate(); err != nil {
		return nil, err
	}
	if fingerprint == "" {
		return nil, shared.NewDomainError("INVALID_FINGERPRINT", "Brief fingerprint cannot be empty")
	}

	return &Campaign{
		ShopAggregateRoot: shared.NewShopAggregateRoot(shopID),
		Name:              brief.Theme + " Campaign",
		Theme:             brief.Theme,
		Offer:             brief.Offer,
		Budget:            brief.Budget,
		StartDate:         brief.StartDate,
		EndDate:           brief.EndDate,
		Status:            CampaignStatusActive,
		Scans:             0,
		Redemptions:       0,
		BriefFingerprint:  fingerprint,
	}, nil
}

// RecordScan increments the scan counter
func (c *Campaign) RecordScan() {
	c.Scans++
	c.Touch()
	c.IncrementVersion()
}

// RecordRedemption increments the redemption counter
func (c *Campaign) RecordRedemption() {
	c.Redemptions++
	c.Touch()
	c.IncrementVersion()
}

// Complete marks the campaign as finished
func (c *Campaign) Complete() error {
	if c.Status == CampaignStatusCompleted {
		return shared.ErrInvalidState
	}
	c.Status = CampaignStatusCompleted
	c.Touch()
	c.IncrementVersion()
	return nil
}

// IsActive reports whether the campaign is still running
func (c *Campaign) IsActive() bool {
	return c.Status == CampaignStatusActive
}
