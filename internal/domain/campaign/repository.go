package campaign

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/promokit/backend/internal/domain/shared"
)

// CampaignRepository defines the persistence contract for Campaign aggregates
type CampaignRepository interface {
	// CreateWithLinks persists a campaign and its tracker links in a single
	// transaction. Returns shared.ErrAlreadyExists when a campaign with the
	// same brief fingerprint exists for the shop; no links are written then.
	CreateWithLinks(ctx context.Context, c *Campaign, links []*TrackerLink) error

	// Save updates an existing campaign
	Save(ctx context.Context, c *Campaign) error

	// FindByID finds a campaign by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Campaign, error)

	// FindByIDForShop finds a campaign by ID scoped to its owning shop
	FindByIDForShop(ctx context.Context, shopID, id uuid.UUID) (*Campaign, error)

	// FindByFingerprint finds the campaign a shop committed for a given brief fingerprint
	FindByFingerprint(ctx context.Context, shopID uuid.UUID, fingerprint string) (*Campaign, error)

	// FindAllForShop returns all campaigns owned by a shop, newest first
	FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]*Campaign, int64, error)

	// IncrementScans atomically bumps the campaign scan counter
	IncrementScans(ctx context.Context, id uuid.UUID) error

	// IncrementRedemptions atomically bumps the campaign redemption counter
	IncrementRedemptions(ctx context.Context, id uuid.UUID) error
}

// TrackerLinkRepository defines the persistence contract for tracker links
type TrackerLinkRepository interface {
	// FindByToken resolves an opaque tracker token
	FindByToken(ctx context.Context, token string) (*TrackerLink, error)

	// FindByCampaign returns all tracker links for a campaign
	FindByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*TrackerLink, error)

	// IncrementScans atomically bumps the per-link scan counter
	IncrementScans(ctx context.Context, token string) error
}

// RedemptionCodeRepository defines the persistence contract for redemption codes
type RedemptionCodeRepository interface {
	// Create persists a new code. Returns shared.ErrAlreadyExists on code collision.
	Create(ctx context.Context, code *RedemptionCode) error

	// FindByCode finds a code by its literal value
	FindByCode(ctx context.Context, code string) (*RedemptionCode, error)

	// Redeem atomically consumes an unredeemed code. Returns
	// ErrCodeAlreadyRedeemed when the code is missing or already consumed.
	Redeem(ctx context.Context, code string, at time.Time) (*RedemptionCode, error)
}
