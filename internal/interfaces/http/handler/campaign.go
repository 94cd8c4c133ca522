package handler

import (
	"github.com/gin-gonic/gin"
	appcampaign "github.com/promokit/backend/internal/application/campaign"
	"github.com/promokit/backend/internal/domain/shared"
	"github.com/promokit/backend/internal/interfaces/http/middleware"
)

// CampaignHandler handles campaign planning and asset generation
type CampaignHandler struct {
	BaseHandler
	campaignService *appcampaign.CampaignService
}

// NewCampaignHandler creates a new campaign handler
func NewCampaignHandler(campaignService *appcampaign.CampaignService) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
	}
}

// List handles GET /api/campaigns
func (h *CampaignHandler) List(c *gin.Context) {
	shopID, err := middleware.GetJWTShopID(c)
	if err != nil {
		h.HandleError(c, shared.ErrUnauthorized)
		return
	}

	result, err := h.campaignService.List(c.Request.Context(), appcampaign.ListInput{
		ShopID: shopID,
		Filter: shared.DefaultFilter(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	rows := make([]CampaignResponse, len(result.Campaigns))
	for i, camp := range result.Campaigns {
		rows[i] = NewCampaignResponse(camp)
	}
	h.Success(c, rows)
}

// Plan handles POST /api/campaigns/plan
func (h *CampaignHandler) Plan(c *gin.Context) {
	shopID, err := middleware.GetJWTShopID(c)
	if err != nil {
		h.HandleError(c, shared.ErrUnauthorized)
		return
	}

	var req BriefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.ValidationMessage(err))
		return
	}

	brief, err := req.ToDomain()
	if err != nil {
		h.HandleError(c, err)
		return
	}

	result, err := h.campaignService.Plan(c.Request.Context(), appcampaign.PlanInput{
		ShopID: shopID,
		Brief:  brief,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, PlanResponse{Suggestions: result.Suggestions})
}

// AddChannel handles POST /api/campaigns/add-channel
func (h *CampaignHandler) AddChannel(c *gin.Context) {
	shopID, err := middleware.GetJWTShopID(c)
	if err != nil {
		h.HandleError(c, shared.ErrUnauthorized)
		return
	}

	var req AddChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.ValidationMessage(err))
		return
	}

	result, err := h.campaignService.AddChannel(c.Request.Context(), appcampaign.AddChannelInput{
		ShopID:       shopID,
		SuggestionID: req.SuggestionID,
		Channel:      req.Channel,
		Content:      req.Content,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, AddChannelResponse{
		Message:   result.Message,
		ChannelID: result.ChannelID,
	})
}

// GenerateAssets handles POST /api/campaigns/generate-assets
func (h *CampaignHandler) GenerateAssets(c *gin.Context) {
	shopID, err := middleware.GetJWTShopID(c)
	if err != nil {
		h.HandleError(c, shared.ErrUnauthorized)
		return
	}

	var req GenerateAssetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.ValidationMessage(err))
		return
	}

	brief, err := req.CampaignData.ToDomain()
	if err != nil {
		h.HandleError(c, err)
		return
	}

	result, err := h.campaignService.GenerateAssets(c.Request.Context(), appcampaign.GenerateAssetsInput{
		ShopID:           shopID,
		Brief:            brief,
		SelectedChannels: req.SelectedChannels,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, GenerateAssetsResponse{Assets: result.Assets})
}
