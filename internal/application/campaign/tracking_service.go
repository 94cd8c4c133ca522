package campaign

import (
	"context"
	"errors"
	"fmt"

	"github.com/promokit/backend/internal/domain/campaign"
	"github.com/promokit/backend/internal/domain/identity"
	"github.com/promokit/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Retries for the rare case two freshly issued codes collide
const codeIssueAttempts = 5

// Default terms shown on the customer landing page
const offerTerms = "Valid on minimum purchase of ₹500. Cannot be combined with other offers."

// TrackingService resolves public tracker tokens into offer payloads and
// counts scans
type TrackingService struct {
	campaignRepo    campaign.CampaignRepository
	trackerLinkRepo campaign.TrackerLinkRepository
	codeRepo        campaign.RedemptionCodeRepository
	shopRepo        identity.ShopRepository
	dedupStore      shared.IdempotencyStore
	dedup           shared.IdempotencyConfig
	logger          *zap.Logger
}

// NewTrackingService creates a new tracking service
func NewTrackingService(
	campaignRepo campaign.CampaignRepository,
	trackerLinkRepo campaign.TrackerLinkRepository,
	codeRepo campaign.RedemptionCodeRepository,
	shopRepo identity.ShopRepository,
	dedupStore shared.IdempotencyStore,
	dedup shared.IdempotencyConfig,
	logger *zap.Logger,
) *TrackingService {
	return &TrackingService{
		campaignRepo:    campaignRepo,
		trackerLinkRepo: trackerLinkRepo,
		codeRepo:        codeRepo,
		shopRepo:        shopRepo,
		dedupStore:      dedupStore,
		dedup:           dedup,
		logger:          logger,
	}
}

// Scan resolves a tracker token, counts the scan, and issues a single-use
// redemption code. Repeat scans from the same visitor within the dedup
// window still get a code but are only counted once.
func (s *TrackingService) Scan(ctx context.Context, input ScanInput) (*ScanResult, error) {
	link, err := s.trackerLinkRepo.FindByToken(ctx, input.Token)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Invalid or expired tracking link")
		}
		s.logger.Error("Failed to resolve tracker token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL", "Failed to resolve tracking link")
	}

	c, err := s.campaignRepo.FindByID(ctx, link.CampaignID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Invalid or expired tracking link")
		}
		s.logger.Error("Failed to load campaign for scan", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL", "Failed to resolve tracking link")
	}

	shop, err := s.shopRepo.FindByID(ctx, c.ShopID)
	if err != nil {
		s.logger.Error("Failed to load shop for scan", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL", "Failed to resolve tracking link")
	}

	s.countScan(ctx, link, c, input.Visitor)

	code, err := s.issueCode(ctx, c)
	if err != nil {
		return nil, err
	}

	return &ScanResult{
		ShopName:     shop.ShopName,
		CampaignName: c.Name,
		Offer:        c.Offer,
		UniqueCode:   code.Code,
		ValidUntil:   c.EndDate.Format("2006-01-02"),
		ShopAddress:  shop.Address,
		ShopPhone:    shop.PhoneNumber,
		Terms:        offerTerms,
	}, nil
}

// countScan bumps the link and campaign counters unless this visitor already
// scanned within the dedup window. Counting is best effort; a failed bump
// never blocks the landing page.
func (s *TrackingService) countScan(ctx context.Context, link *campaign.TrackerLink, c *campaign.Campaign, visitor string) {
	if s.dedup.Enabled && visitor != "" {
		key := fmt.Sprintf("scan:%s:%s", link.Token, visitor)
		fresh, err := s.dedupStore.MarkProcessed(ctx, key, s.dedup.TTL)
		if err != nil {
			s.logger.Warn("Scan dedup check failed, counting scan", zap.Error(err))
		} else if !fresh {
			return
		}
	}

	if err := s.trackerLinkRepo.IncrementScans(ctx, link.Token); err != nil {
		s.logger.Error("Failed to count link scan", zap.Error(err))
	}
	if err := s.campaignRepo.IncrementScans(ctx, c.ID); err != nil {
		s.logger.Error("Failed to count campaign scan", zap.Error(err))
	}
}

// issueCode persists a fresh single-use code, retrying on the off chance the
// generated code collides with an existing one
func (s *TrackingService) issueCode(ctx context.Context, c *campaign.Campaign) (*campaign.RedemptionCode, error) {
	for attempt := 0; attempt < codeIssueAttempts; attempt++ {
		code, err := campaign.NewRedemptionCode(c.ID, c.EndDate)
		if err != nil {
			s.logger.Error("Failed to generate redemption code", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL", "Failed to issue redemption code")
		}

		err = s.codeRepo.Create(ctx, code)
		if err == nil {
			return code, nil
		}
		if !errors.Is(err, shared.ErrAlreadyExists) {
			s.logger.Error("Failed to persist redemption code", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL", "Failed to issue redemption code")
		}
	}

	s.logger.Error("Exhausted redemption code attempts", zap.String("campaign_id", c.ID.String()))
	return nil, shared.NewDomainError("INTERNAL", "Failed to issue redemption code")
}
