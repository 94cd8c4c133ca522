package campaign

import (
	"fmt"

	"github.com/promokit/backend/internal/domain/campaign"
	"github.com/shopspring/decimal"
)

// SuggestionPlanner produces channel suggestions for a campaign brief
type SuggestionPlanner interface {
	Suggest(brief campaign.Brief) []campaign.Suggestion
}

// TemplatePlanner generates suggestions from fixed channel templates. The
// budget is split across channels and each cost is floored to whole currency
// units.
type TemplatePlanner struct{}

// NewTemplatePlanner creates a new TemplatePlanner
func NewTemplatePlanner() *TemplatePlanner {
	return &TemplatePlanner{}
}

// Suggest returns one suggestion per supported channel, ordered WhatsApp,
// Facebook, Print
func (p *TemplatePlanner) Suggest(brief campaign.Brief) []campaign.Suggestion {
	hashtag := brief.Hashtag()

	return []campaign.Suggestion{
		{
			ID:          1,
			Channel:     campaign.ChannelWhatsApp,
			Description: "Share offers directly with customers",
			Content: fmt.Sprintf("🎉 %s is here! %s\n\nDon't miss out! Visit our store or scan QR code!\n\n%s #Offers",
				brief.Theme, brief.Offer, hashtag),
			Type:           campaign.SuggestionTypeDigital,
			EstimatedReach: "500-1000 customers",
			EstimatedCost:  shareOfBudget(brief.Budget, "0.2"),
		},
		{
			ID:          2,
			Channel:     campaign.ChannelFacebook,
			Description: "Social media marketing on Facebook",
			Content: fmt.Sprintf("Celebrate with %s! %s\n\nLimited time offer - don't miss out!",
				brief.Theme, brief.Offer),
			Type:           campaign.SuggestionTypeDigital,
			EstimatedReach: "200-800 customers",
			EstimatedCost:  shareOfBudget(brief.Budget, "0.3"),
		},
		{
			ID:             3,
			Channel:        campaign.ChannelPrint,
			Description:    "Physical flyers for local distribution",
			Content:        fmt.Sprintf("%s - %s", brief.Theme, brief.Offer),
			Type:           campaign.SuggestionTypeOffline,
			EstimatedReach: "1000-2000 customers",
			EstimatedCost:  shareOfBudget(brief.Budget, "0.4"),
		},
	}
}

func shareOfBudget(budget decimal.Decimal, fraction string) decimal.Decimal {
	return budget.Mul(decimal.RequireFromString(fraction)).Floor()
}

// Ensure TemplatePlanner implements SuggestionPlanner
var _ SuggestionPlanner = (*TemplatePlanner)(nil)
