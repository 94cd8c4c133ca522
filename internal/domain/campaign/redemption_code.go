package campaign

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/promokit/backend/internal/domain/shared"
)

const (
	redemptionCodePrefix   = "CODE-"
	redemptionCodeLength   = 6
	redemptionCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// ErrCodeAlreadyRedeemed is returned when a code has already been consumed
var ErrCodeAlreadyRedeemed = shared.NewDomainError("INVALID_OR_USED_CODE", "Code does not exist or was already redeemed")

// RedemptionCode is a single-use code handed to an end customer on a QR
// scan. A code belongs to exactly one campaign and can be consumed at most
// once.
type RedemptionCode struct {
	shared.BaseEntity
	CampaignID uuid.UUID
	Code       string
	ValidUntil time.Time
	RedeemedAt *time.Time
}

// NewRedemptionCode issues a fresh code for a campaign. Code uniqueness is
// enforced by the store; callers retry on collision.
func NewRedemptionCode(campaignID uuid.UUID, validUntil time.Time) (*RedemptionCode, error) {
	if campaignID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CAMPAIGN_ID", "Campaign ID cannot be empty")
	}

	code, err := GenerateCode()
	if err != nil {
		return nil, shared.NewDomainError("CODE_GENERATION_ERROR", "Failed to generate redemption code")
	}

	return &RedemptionCode{
		BaseEntity: shared.NewBaseEntity(),
		CampaignID: campaignID,
		Code:       code,
		ValidUntil: validUntil,
	}, nil
}

// GenerateCode produces a short human-readable code like CODE-7XK2QD
func GenerateCode() (string, error) {
	buf := make([]byte, redemptionCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(redemptionCodePrefix)
	for _, b := range buf {
		sb.WriteByte(redemptionCodeAlphabet[int(b)%len(redemptionCodeAlphabet)])
	}
	return sb.String(), nil
}

// Redeem marks the code as consumed
func (r *RedemptionCode) Redeem(at time.Time) error {
	if r.RedeemedAt != nil {
		return ErrCodeAlreadyRedeemed
	}
	r.RedeemedAt = &at
	r.Touch()
	return nil
}

// IsRedeemed reports whether the code has been consumed
func (r *RedemptionCode) IsRedeemed() bool {
	return r.RedeemedAt != nil
}
