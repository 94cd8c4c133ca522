package campaign

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/promokit/backend/internal/domain/campaign"
	"github.com/promokit/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CampaignService handles campaign planning and asset generation
type CampaignService struct {
	campaignRepo    campaign.CampaignRepository
	trackerLinkRepo campaign.TrackerLinkRepository
	planner         SuggestionPlanner
	trackingBaseURL string
	logger          *zap.Logger
}

// NewCampaignService creates a new campaign service
func NewCampaignService(
	campaignRepo campaign.CampaignRepository,
	trackerLinkRepo campaign.TrackerLinkRepository,
	planner SuggestionPlanner,
	trackingBaseURL string,
	logger *zap.Logger,
) *CampaignService {
	return &CampaignService{
		campaignRepo:    campaignRepo,
		trackerLinkRepo: trackerLinkRepo,
		planner:         planner,
		trackingBaseURL: trackingBaseURL,
		logger:          logger,
	}
}

// List returns a page of the shop's campaigns, newest first
func (s *CampaignService) List(ctx context.Context, input ListInput) (*ListResult, error) {
	campaigns, total, err := s.campaignRepo.FindAllForShop(ctx, input.ShopID, input.Filter)
	if err != nil {
		s.logger.Error("Failed to list campaigns", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL", "Failed to list campaigns")
	}
	return &ListResult{Campaigns: campaigns, Total: total}, nil
}

// Plan validates a brief and returns channel suggestions. Nothing is
// persisted; the client carries the brief through the wizard until assets
// are generated.
func (s *CampaignService) Plan(ctx context.Context, input PlanInput) (*PlanResult, error) {
	if err := input.Brief.Validate(); err != nil {
		return nil, err
	}

	suggestions := s.planner.Suggest(input.Brief)

	s.logger.Info("Suggestions generated",
		zap.String("shop_id", input.ShopID.String()),
		zap.String("theme", input.Brief.Theme),
		zap.Int("count", len(suggestions)))

	return &PlanResult{Suggestions: suggestions}, nil
}

// AddChannel acknowledges a channel selection. The selection only becomes
// durable as part of the asset-generation commit.
func (s *CampaignService) AddChannel(ctx context.Context, input AddChannelInput) (*AddChannelResult, error) {
	if input.Channel == "" {
		return nil, shared.NewDomainError("INVALID_BRIEF", "Channel cannot be empty")
	}

	s.logger.Info("Channel added",
		zap.String("shop_id", input.ShopID.String()),
		zap.String("channel", input.Channel))

	return &AddChannelResult{
		Message:   "Channel added successfully",
		ChannelID: fmt.Sprintf("channel_%d", time.Now().UnixMilli()),
	}, nil
}

// GenerateAssets commits the brief as a campaign and produces its deliverable
// bundle. Generation is idempotent per shop and brief: resubmitting the same
// brief returns the assets of the originally committed campaign instead of
// creating a duplicate.
func (s *CampaignService) GenerateAssets(ctx context.Context, input GenerateAssetsInput) (*GenerateAssetsResult, error) {
	if err := input.Brief.Validate(); err != nil {
		return nil, err
	}
	if len(input.SelectedChannels) == 0 {
		return nil, shared.NewDomainError("INVALID_BRIEF", "At least one channel must be selected")
	}

	fingerprint := input.Brief.Fingerprint(input.ShopID, input.SelectedChannels)

	existing, err := s.campaignRepo.FindByFingerprint(ctx, input.ShopID, fingerprint)
	if err == nil {
		return s.rebuildAssets(ctx, existing)
	}
	if !errors.Is(err, shared.ErrNotFound) {
		s.logger.Error("Failed to check for existing campaign", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL", "Failed to generate assets")
	}

	c, err := campaign.NewCampaign(input.ShopID, input.Brief, fingerprint)
	if err != nil {
		return nil, err
	}

	links, err := s.buildTrackerLinks(c)
	if err != nil {
		return nil, err
	}

	if err := s.campaignRepo.CreateWithLinks(ctx, c, links); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			// Lost the insert race; the winner's campaign carries the assets
			winner, findErr := s.campaignRepo.FindByFingerprint(ctx, input.ShopID, fingerprint)
			if findErr != nil {
				s.logger.Error("Failed to load winning campaign after duplicate insert", zap.Error(findErr))
				return nil, shared.NewDomainError("INTERNAL", "Failed to generate assets")
			}
			return s.rebuildAssets(ctx, winner)
		}
		s.logger.Error("Failed to commit campaign", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL", "Failed to generate assets")
	}

	s.logger.Info("Campaign committed",
		zap.String("shop_id", input.ShopID.String()),
		zap.String("campaign_id", c.ID.String()),
		zap.String("theme", c.Theme))

	return &GenerateAssetsResult{
		CampaignID:   c.ID,
		CampaignName: c.Name,
		Assets:       campaign.BuildAssetBundle(c, links, s.trackingBaseURL),
	}, nil
}

// rebuildAssets reconstructs the deliverable bundle for an already committed
// campaign from its stored tracker links
func (s *CampaignService) rebuildAssets(ctx context.Context, c *campaign.Campaign) (*GenerateAssetsResult, error) {
	links, err := s.trackerLinkRepo.FindByCampaign(ctx, c.ID)
	if err != nil {
		s.logger.Error("Failed to load tracker links", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL", "Failed to generate assets")
	}

	return &GenerateAssetsResult{
		CampaignID:   c.ID,
		CampaignName: c.Name,
		Assets:       campaign.BuildAssetBundle(c, links, s.trackingBaseURL),
	}, nil
}

func (s *CampaignService) buildTrackerLinks(c *campaign.Campaign) ([]*campaign.TrackerLink, error) {
	channels := []campaign.TrackerChannel{
		campaign.TrackerChannelMain,
		campaign.TrackerChannelWhatsApp,
	}

	links := make([]*campaign.TrackerLink, 0, len(channels))
	for _, channel := range channels {
		link, err := campaign.NewTrackerLink(c.ID, channel)
		if err != nil {
			return nil, shared.NewDomainError("INTERNAL", "Failed to generate tracker links")
		}
		links = append(links, link)
	}
	return links, nil
}
