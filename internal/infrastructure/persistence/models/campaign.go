package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/promokit/backend/internal/domain/campaign"
	"github.com/shopspring/decimal"
)

// CampaignModel is the persistence model for the Campaign aggregate.
// The (shop_id, brief_fingerprint) unique index is what makes asset
// generation idempotent under concurrent duplicate submissions.
type CampaignModel struct {
	ShopAggregateModel
	Name             string                  `gorm:"type:varchar(250);not null"`
	Theme            string                  `gorm:"type:varchar(200);not null"`
	Offer            string                  `gorm:"type:varchar(500);not null"`
	Budget           decimal.Decimal         `gorm:"type:decimal(18,4);not null"`
	StartDate        time.Time               `gorm:"not null"`
	EndDate          time.Time               `gorm:"not null"`
	Status           campaign.CampaignStatus `gorm:"type:varchar(20);not null;default:'active'"`
	Scans            int64                   `gorm:"not null;default:0"`
	Redemptions      int64                   `gorm:"not null;default:0"`
	// Unique per shop via idx_campaigns_shop_fingerprint, defined in migrations
	BriefFingerprint string `gorm:"type:varchar(64);not null;index"`
}

// TableName returns the table name for GORM
func (CampaignModel) TableName() string {
	return "campaigns"
}

// ToDomain converts the persistence model to a domain Campaign
func (m *CampaignModel) ToDomain() *campaign.Campaign {
	return &campaign.Campaign{
		ShopAggregateRoot: m.ToDomainShopAggregateRoot(),
		Name:              m.Name,
		Theme:             m.Theme,
		Offer:             m.Offer,
		Budget:            m.Budget,
		StartDate:         m.StartDate,
		EndDate:           m.EndDate,
		Status:            m.Status,
		Scans:             m.Scans,
		Redemptions:       m.Redemptions,
		BriefFingerprint:  m.BriefFingerprint,
	}
}

// CampaignModelFromDomain converts a domain Campaign to a persistence model
func CampaignModelFromDomain(c *campaign.Campaign) *CampaignModel {
	m := &CampaignModel{
		Name:             c.Name,
		Theme:            c.Theme,
		Offer:            c.Offer,
		Budget:           c.Budget,
		StartDate:        c.StartDate,
		EndDate:          c.EndDate,
		Status:           c.Status,
		Scans:            c.Scans,
		Redemptions:      c.Redemptions,
		BriefFingerprint: c.BriefFingerprint,
	}
	m.FromDomainShopAggregateRoot(c.ShopAggregateRoot)
	return m
}

// TrackerLinkModel is the persistence model for tracker links
type TrackerLinkModel struct {
	BaseModel
	CampaignID uuid.UUID               `gorm:"type:uuid;not null;index"`
	Channel    campaign.TrackerChannel `gorm:"type:varchar(20);not null"`
	Token      string                  `gorm:"type:varchar(64);not null;uniqueIndex"`
	Scans      int64                   `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (TrackerLinkModel) TableName() string {
	return "tracker_links"
}

// ToDomain converts the persistence model to a domain TrackerLink
func (m *TrackerLinkModel) ToDomain() *campaign.TrackerLink {
	return &campaign.TrackerLink{
		BaseEntity: m.BaseModel.ToDomain(),
		CampaignID: m.CampaignID,
		Channel:    m.Channel,
		Token:      m.Token,
		Scans:      m.Scans,
	}
}

// TrackerLinkModelFromDomain converts a domain TrackerLink to a persistence model
func TrackerLinkModelFromDomain(l *campaign.TrackerLink) *TrackerLinkModel {
	m := &TrackerLinkModel{
		CampaignID: l.CampaignID,
		Channel:    l.Channel,
		Token:      l.Token,
		Scans:      l.Scans,
	}
	m.FromDomainBaseEntity(l.BaseEntity)
	return m
}

// RedemptionCodeModel is the persistence model for redemption codes
type RedemptionCodeModel struct {
	BaseModel
	CampaignID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Code       string     `gorm:"type:varchar(20);not null;uniqueIndex"`
	ValidUntil time.Time  `gorm:"not null"`
	RedeemedAt *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (RedemptionCodeModel) TableName() string {
	return "redemption_codes"
}

// ToDomain converts the persistence model to a domain RedemptionCode
func (m *RedemptionCodeModel) ToDomain() *campaign.RedemptionCode {
	return &campaign.RedemptionCode{
		BaseEntity: m.BaseModel.ToDomain(),
		CampaignID: m.CampaignID,
		Code:       m.Code,
		ValidUntil: m.ValidUntil,
		RedeemedAt: m.RedeemedAt,
	}
}

// RedemptionCodeModelFromDomain converts a domain RedemptionCode to a persistence model
func RedemptionCodeModelFromDomain(c *campaign.RedemptionCode) *RedemptionCodeModel {
	m := &RedemptionCodeModel{
		CampaignID: c.CampaignID,
		Code:       c.Code,
		ValidUntil: c.ValidUntil,
		RedeemedAt: c.RedeemedAt,
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}
