package campaign

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/promokit/backend/internal/domain/campaign"
	"github.com/promokit/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRedemptionService_Redeem(t *testing.T) {
	shopID := uuid.New()

	issuedCode := func(t *testing.T, campaignID uuid.UUID) *campaign.RedemptionCode {
		t.Helper()
		code, err := campaign.NewRedemptionCode(campaignID, time.Date(2026, 11, 5, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		return code
	}

	t.Run("redeems a valid code once", func(t *testing.T) {
		c, err := campaign.NewCampaign(shopID, testBrief(), "fp")
		require.NoError(t, err)
		code := issuedCode(t, c.ID)

		redeemed := *code
		now := time.Now()
		redeemed.RedeemedAt = &now

		campaignRepo := new(MockCampaignRepository)
		codeRepo := new(MockRedemptionCodeRepository)
		campaignRepo.On("FindByIDForShop", mock.Anything, shopID, c.ID).Return(c, nil)
		codeRepo.On("FindByCode", mock.Anything, code.Code).Return(code, nil)
		codeRepo.On("Redeem", mock.Anything, code.Code, mock.AnythingOfType("time.Time")).Return(&redeemed, nil)
		campaignRepo.On("IncrementRedemptions", mock.Anything, c.ID).Return(nil)

		svc := NewRedemptionService(campaignRepo, codeRepo, zap.NewNop())
		result, err := svc.Redeem(context.Background(), RedeemInput{ShopID: shopID, Code: code.Code})

		require.NoError(t, err)
		assert.Equal(t, "Code redeemed successfully!", result.Message)
		assert.Equal(t, c.Name, result.CustomerDetails.Campaign)
		campaignRepo.AssertExpectations(t)
		codeRepo.AssertExpectations(t)
	})

	t.Run("unknown code maps to the used-code error", func(t *testing.T) {
		codeRepo := new(MockRedemptionCodeRepository)
		codeRepo.On("FindByCode", mock.Anything, "CODE-NOSUCH").Return(nil, shared.ErrNotFound)

		svc := NewRedemptionService(new(MockCampaignRepository), codeRepo, zap.NewNop())
		result, err := svc.Redeem(context.Background(), RedeemInput{ShopID: shopID, Code: "CODE-NOSUCH"})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, campaign.ErrCodeAlreadyRedeemed)
	})

	t.Run("another shop's code is indistinguishable from a bad code", func(t *testing.T) {
		otherCampaignID := uuid.New()
		code := issuedCode(t, otherCampaignID)

		campaignRepo := new(MockCampaignRepository)
		codeRepo := new(MockRedemptionCodeRepository)
		codeRepo.On("FindByCode", mock.Anything, code.Code).Return(code, nil)
		campaignRepo.On("FindByIDForShop", mock.Anything, shopID, otherCampaignID).Return(nil, shared.ErrNotFound)

		svc := NewRedemptionService(campaignRepo, codeRepo, zap.NewNop())
		result, err := svc.Redeem(context.Background(), RedeemInput{ShopID: shopID, Code: code.Code})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, campaign.ErrCodeAlreadyRedeemed)
		codeRepo.AssertNotCalled(t, "Redeem", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("second redemption loses the race", func(t *testing.T) {
		c, err := campaign.NewCampaign(shopID, testBrief(), "fp")
		require.NoError(t, err)
		code := issuedCode(t, c.ID)

		campaignRepo := new(MockCampaignRepository)
		codeRepo := new(MockRedemptionCodeRepository)
		codeRepo.On("FindByCode", mock.Anything, code.Code).Return(code, nil)
		campaignRepo.On("FindByIDForShop", mock.Anything, shopID, c.ID).Return(c, nil)
		codeRepo.On("Redeem", mock.Anything, code.Code, mock.AnythingOfType("time.Time")).Return(nil, campaign.ErrCodeAlreadyRedeemed)

		svc := NewRedemptionService(campaignRepo, codeRepo, zap.NewNop())
		result, err := svc.Redeem(context.Background(), RedeemInput{ShopID: shopID, Code: code.Code})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, campaign.ErrCodeAlreadyRedeemed)
		campaignRepo.AssertNotCalled(t, "IncrementRedemptions", mock.Anything, mock.Anything)
	})

	t.Run("empty code is rejected outright", func(t *testing.T) {
		svc := NewRedemptionService(new(MockCampaignRepository), new(MockRedemptionCodeRepository), zap.NewNop())

		result, err := svc.Redeem(context.Background(), RedeemInput{ShopID: shopID})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, campaign.ErrCodeAlreadyRedeemed)
	})
}
