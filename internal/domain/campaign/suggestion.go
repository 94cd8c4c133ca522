package campaign

import (
	"github.com/shopspring/decimal"
)

// Marketing channels offered by the planner
const (
	ChannelWhatsApp = "WhatsApp Marketing"
	ChannelFacebook = "Facebook Posts"
	ChannelPrint    = "Print Flyers"
)

// Suggestion media types
const (
	SuggestionTypeDigital = "Digital"
	SuggestionTypeOffline = "Offline"
)

// Suggestion is a proposed marketing channel with draft copy and a cost
// estimate. Suggestions are generated per request and never persisted.
type Suggestion struct {
	ID             int             `json:"id"`
	Channel        string          `json:"channel"`
	Description    string          `json:"description"`
	Content        string          `json:"content"`
	Type           string          `json:"type"`
	EstimatedReach string          `json:"estimatedReach"`
	EstimatedCost  decimal.Decimal `json:"estimatedCost"`
}
