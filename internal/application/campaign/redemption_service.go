package campaign

import (
	"context"
	"errors"
	"time"

	"github.com/promokit/backend/internal/domain/campaign"
	"github.com/promokit/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// RedemptionService consumes single-use codes at the counter
type RedemptionService struct {
	campaignRepo campaign.CampaignRepository
	codeRepo     campaign.RedemptionCodeRepository
	logger       *zap.Logger
}

// NewRedemptionService creates a new redemption service
func NewRedemptionService(
	campaignRepo campaign.CampaignRepository,
	codeRepo campaign.RedemptionCodeRepository,
	logger *zap.Logger,
) *RedemptionService {
	return &RedemptionService{
		campaignRepo: campaignRepo,
		codeRepo:     codeRepo,
		logger:       logger,
	}
}

// Redeem consumes a code presented by a customer. Only the shop that owns
// the code's campaign may redeem it, and each code redeems exactly once even
// under concurrent submissions.
func (s *RedemptionService) Redeem(ctx context.Context, input RedeemInput) (*RedeemResult, error) {
	if input.Code == "" {
		return nil, campaign.ErrCodeAlreadyRedeemed
	}

	code, err := s.codeRepo.FindByCode(ctx, input.Code)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, campaign.ErrCodeAlreadyRedeemed
		}
		s.logger.Error("Failed to look up redemption code", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL", "Failed to redeem code")
	}

	c, err := s.campaignRepo.FindByIDForShop(ctx, input.ShopID, code.CampaignID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			// Another shop's code looks the same as a bad code
			return nil, campaign.ErrCodeAlreadyRedeemed
		}
		s.logger.Error("Failed to load campaign for redemption", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL", "Failed to redeem code")
	}

	redeemed, err := s.codeRepo.Redeem(ctx, input.Code, time.Now())
	if err != nil {
		if errors.Is(err, campaign.ErrCodeAlreadyRedeemed) {
			return nil, campaign.ErrCodeAlreadyRedeemed
		}
		s.logger.Error("Failed to redeem code", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL", "Failed to redeem code")
	}

	if err := s.campaignRepo.IncrementRedemptions(ctx, c.ID); err != nil {
		// The code is already consumed; the counter is best effort
		s.logger.Error("Failed to count redemption", zap.Error(err))
	}

	s.logger.Info("Code redeemed",
		zap.String("shop_id", input.ShopID.String()),
		zap.String("campaign_id", c.ID.String()),
		zap.String("code", redeemed.Code))

	return &RedeemResult{
		Message: "Code redeemed successfully!",
		CustomerDetails: CustomerDetails{
			ScannedAt: redeemed.CreatedAt,
			Campaign:  c.Name,
		},
	}, nil
}
