package handler

import (
	"github.com/gin-gonic/gin"
	appcampaign "github.com/promokit/backend/internal/application/campaign"
	"github.com/promokit/backend/internal/domain/shared"
	"github.com/promokit/backend/internal/interfaces/http/middleware"
)

// RedemptionHandler handles code redemption at the counter
type RedemptionHandler struct {
	BaseHandler
	redemptionService *appcampaign.RedemptionService
}

// NewRedemptionHandler creates a new redemption handler
func NewRedemptionHandler(redemptionService *appcampaign.RedemptionService) *RedemptionHandler {
	return &RedemptionHandler{
		redemptionService: redemptionService,
	}
}

// Redeem handles POST /api/redeem
func (h *RedemptionHandler) Redeem(c *gin.Context) {
	shopID, err := middleware.GetJWTShopID(c)
	if err != nil {
		h.HandleError(c, shared.ErrUnauthorized)
		return
	}

	var req RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.ValidationMessage(err))
		return
	}

	result, err := h.redemptionService.Redeem(c.Request.Context(), appcampaign.RedeemInput{
		ShopID: shopID,
		Code:   req.Code,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, RedeemResponse{
		Message: result.Message,
		CustomerDetails: CustomerDetailsResponse{
			ScannedAt: result.CustomerDetails.ScannedAt,
			Campaign:  result.CustomerDetails.Campaign,
		},
	})
}
