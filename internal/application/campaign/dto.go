package campaign

import (
	"time"

	"github.com/google/uuid"
	"github.com/promokit/backend/internal/domain/campaign"
	"github.com/promokit/backend/internal/domain/shared"
)

// PlanInput contains the brief submitted to the planner
type PlanInput struct {
	ShopID uuid.UUID
	Brief  campaign.Brief
}

// PlanResult contains the generated channel suggestions
type PlanResult struct {
	Suggestions []campaign.Suggestion
}

// AddChannelInput acknowledges a channel picked from the suggestions
type AddChannelInput struct {
	ShopID       uuid.UUID
	SuggestionID int
	Channel      string
	Content      string
}

// AddChannelResult contains the acknowledgement for an added channel
type AddChannelResult struct {
	Message   string
	ChannelID string
}

// GenerateAssetsInput contains the committed brief and channel selection
type GenerateAssetsInput struct {
	ShopID           uuid.UUID
	Brief            campaign.Brief
	SelectedChannels []string
}

// GenerateAssetsResult contains the committed campaign and its deliverables
type GenerateAssetsResult struct {
	CampaignID   uuid.UUID
	CampaignName string
	Assets       campaign.AssetBundle
}

// ListInput contains pagination for a shop's campaign dashboard
type ListInput struct {
	ShopID uuid.UUID
	Filter shared.Filter
}

// ListResult contains a page of a shop's campaigns
type ListResult struct {
	Campaigns []*campaign.Campaign
	Total     int64
}

// ScanInput identifies a tracker link scan by token and visitor
type ScanInput struct {
	Token   string
	Visitor string // Opaque visitor fingerprint, typically the client IP
}

// ScanResult is the offer payload shown on the customer landing page
type ScanResult struct {
	ShopName     string `json:"shopName"`
	CampaignName string `json:"campaignName"`
	Offer        string `json:"offer"`
	UniqueCode   string `json:"uniqueCode"`
	ValidUntil   string `json:"validUntil"`
	ShopAddress  string `json:"shopAddress"`
	ShopPhone    string `json:"shopPhone"`
	Terms        string `json:"terms"`
}

// RedeemInput contains a code presented at the counter
type RedeemInput struct {
	ShopID uuid.UUID
	Code   string
}

// RedeemResult acknowledges a successful redemption
type RedeemResult struct {
	Message         string
	CustomerDetails CustomerDetails
}

// CustomerDetails carries the scan context shown to the counter staff
type CustomerDetails struct {
	ScannedAt time.Time `json:"scannedAt"`
	Campaign  string    `json:"campaign"`
}
