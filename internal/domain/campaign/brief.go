package campaign

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/promokit/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Brief captures the campaign parameters entered in the planning wizard.
// It is transient input and is only persisted once assets are generated.
type Brief struct {
	Theme          string
	Offer          string
	Budget         decimal.Decimal
	StartDate      time.Time
	EndDate        time.Time
	TargetAudience string
	CampaignType   string
}

// Validate checks that the brief carries the fields planning depends on
func (b Brief) Validate() error {
	if strings.TrimSpace(b.Theme) == "" {
		return shared.NewDomainError("INVALID_BRIEF", "Theme cannot be empty")
	}
	if strings.TrimSpace(b.Offer) == "" {
		return shared.NewDomainError("INVALID_BRIEF", "Offer cannot be empty")
	}
	if !b.Budget.IsPositive() {
		return shared.NewDomainError("INVALID_BRIEF", "Budget must be greater than zero")
	}
	if !b.StartDate.IsZero() && !b.EndDate.IsZero() && b.EndDate.Before(b.StartDate) {
		return shared.NewDomainError("INVALID_BRIEF", "End date cannot be before start date")
	}
	return nil
}

// Hashtag derives a social hashtag by stripping whitespace from the theme
func (b Brief) Hashtag() string {
	return "#" + strings.Join(strings.Fields(b.Theme), "")
}

// Fingerprint computes a stable natural key for the brief as submitted by a
// shop with a given channel selection. Identical submissions map to the same
// fingerprint, which backs the unique constraint that keeps asset generation
// from creating duplicate campaigns.
func (b Brief) Fingerprint(shopID uuid.UUID, selectedChannels []string) string {
	channels := make([]string, len(selectedChannels))
	copy(channels, selectedChannels)
	sort.Strings(channels)

	parts := []string{
		shopID.String(),
		strings.TrimSpace(b.Theme),
		strings.TrimSpace(b.Offer),
		b.Budget.String(),
		b.StartDate.UTC().Format(time.RFC3339),
		b.EndDate.UTC().Format(time.RFC3339),
		strings.Join(channels, ","),
	}

	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}
