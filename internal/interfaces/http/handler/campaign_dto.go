package handler

import (
	"time"

	"github.com/promokit/backend/internal/domain/campaign"
	"github.com/promokit/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Campaign dates travel as plain calendar days
const dateLayout = "2006-01-02"

// BriefRequest is the campaign brief as submitted by the wizard
type BriefRequest struct {
	Theme          string          `json:"theme" binding:"required"`
	Offer          string          `json:"offer" binding:"required"`
	Budget         decimal.Decimal `json:"budget" binding:"required"`
	StartDate      string          `json:"startDate"`
	EndDate        string          `json:"endDate"`
	TargetAudience string          `json:"targetAudience"`
	CampaignType   string          `json:"campaignType"`
}

// ToDomain converts the request into a domain brief
func (r BriefRequest) ToDomain() (campaign.Brief, error) {
	startDate, err := parseDate(r.StartDate)
	if err != nil {
		return campaign.Brief{}, shared.NewDomainError("INVALID_BRIEF", "Invalid start date")
	}
	endDate, err := parseDate(r.EndDate)
	if err != nil {
		return campaign.Brief{}, shared.NewDomainError("INVALID_BRIEF", "Invalid end date")
	}

	return campaign.Brief{
		Theme:          r.Theme,
		Offer:          r.Offer,
		Budget:         r.Budget,
		StartDate:      startDate,
		EndDate:        endDate,
		TargetAudience: r.TargetAudience,
		CampaignType:   r.CampaignType,
	}, nil
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// PlanResponse is the response body for campaign planning
type PlanResponse struct {
	Suggestions []campaign.Suggestion `json:"suggestions"`
}

// AddChannelRequest is the request body for adding a channel
type AddChannelRequest struct {
	SuggestionID int    `json:"suggestionId"`
	Channel      string `json:"channel" binding:"required"`
	Content      string `json:"content"`
}

// AddChannelResponse is the response body for adding a channel
type AddChannelResponse struct {
	Message   string `json:"message"`
	ChannelID string `json:"channelId"`
}

// GenerateAssetsRequest is the request body for asset generation
type GenerateAssetsRequest struct {
	CampaignData     BriefRequest `json:"campaignData" binding:"required"`
	SelectedChannels []string     `json:"selectedChannels" binding:"min=1"`
}

// GenerateAssetsResponse is the response body for asset generation
type GenerateAssetsResponse struct {
	Assets campaign.AssetBundle `json:"assets"`
}

// CampaignResponse is one campaign row on the dashboard
type CampaignResponse struct {
	ID          string          `json:"id"`
	ShopID      string          `json:"shopId"`
	Name        string          `json:"name"`
	Theme       string          `json:"theme"`
	Offer       string          `json:"offer"`
	Budget      decimal.Decimal `json:"budget"`
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate"`
	Status      string          `json:"status"`
	Scans       int64           `json:"scans"`
	Redemptions int64           `json:"redemptions"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// NewCampaignResponse converts a domain campaign into its dashboard row
func NewCampaignResponse(c *campaign.Campaign) CampaignResponse {
	return CampaignResponse{
		ID:          c.ID.String(),
		ShopID:      c.ShopID.String(),
		Name:        c.Name,
		Theme:       c.Theme,
		Offer:       c.Offer,
		Budget:      c.Budget,
		StartDate:   c.StartDate.Format(dateLayout),
		EndDate:     c.EndDate.Format(dateLayout),
		Status:      string(c.Status),
		Scans:       c.Scans,
		Redemptions: c.Redemptions,
		CreatedAt:   c.CreatedAt,
	}
}

// RedeemRequest is the request body for code redemption
type RedeemRequest struct {
	Code string `json:"code" binding:"required"`
}

// RedeemResponse is the response body for successful redemption
type RedeemResponse struct {
	Message         string                  `json:"message"`
	CustomerDetails CustomerDetailsResponse `json:"customerDetails"`
}

// CustomerDetailsResponse carries the scan context for counter staff
type CustomerDetailsResponse struct {
	ScannedAt time.Time `json:"scannedAt"`
	Campaign  string    `json:"campaign"`
}
