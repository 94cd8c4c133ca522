package campaign

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
	"github.com/promokit/backend/internal/domain/shared"
)

// TrackerChannel identifies which deliverable a tracker link was embedded in
type TrackerChannel string

const (
	TrackerChannelMain     TrackerChannel = "campaign"
	TrackerChannelWhatsApp TrackerChannel = "whatsapp"
)

// TrackerLink maps an opaque token embedded in a QR code to exactly one
// campaign. Scans are attributed per link so a shop can tell which
// deliverable brought a customer in.
type TrackerLink struct {
	shared.BaseEntity
	CampaignID uuid.UUID
	Channel    TrackerChannel
	Token      string
	Scans      int64
}

// NewTrackerLink creates a tracker link with a fresh opaque token
func NewTrackerLink(campaignID uuid.UUID, channel TrackerChannel) (*TrackerLink, error) {
	if campaignID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CAMPAIGN_ID", "Campaign ID cannot be empty")
	}

	token, err := newTrackerToken(channel)
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_GENERATION_ERROR", "Failed to generate tracker token")
	}

	return &TrackerLink{
		BaseEntity: shared.NewBaseEntity(),
		CampaignID: campaignID,
		Channel:    channel,
		Token:      token,
		Scans:      0,
	}, nil
}

// RecordScan increments the per-link scan counter
func (l *TrackerLink) RecordScan() {
	l.Scans++
	l.Touch()
}

func newTrackerToken(channel TrackerChannel) (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return string(channel) + "_" + hex.EncodeToString(buf), nil
}
