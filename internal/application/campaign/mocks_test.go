package campaign

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/promokit/backend/internal/domain/campaign"
	"github.com/promokit/backend/internal/domain/identity"
	"github.com/promokit/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockCampaignRepository is a mock implementation of campaign.CampaignRepository
type MockCampaignRepository struct {
	mock.Mock
}

func (m *MockCampaignRepository) CreateWithLinks(ctx context.Context, c *campaign.Campaign, links []*campaign.TrackerLink) error {
	args := m.Called(ctx, c, links)
	return args.Error(0)
}

func (m *MockCampaignRepository) Save(ctx context.Context, c *campaign.Campaign) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCampaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*campaign.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*campaign.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) FindByIDForShop(ctx context.Context, shopID, id uuid.UUID) (*campaign.Campaign, error) {
	args := m.Called(ctx, shopID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*campaign.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) FindByFingerprint(ctx context.Context, shopID uuid.UUID, fingerprint string) (*campaign.Campaign, error) {
	args := m.Called(ctx, shopID, fingerprint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*campaign.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]*campaign.Campaign, int64, error) {
	args := m.Called(ctx, shopID, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*campaign.Campaign), args.Get(1).(int64), args.Error(2)
}

func (m *MockCampaignRepository) IncrementScans(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCampaignRepository) IncrementRedemptions(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTrackerLinkRepository is a mock implementation of campaign.TrackerLinkRepository
type MockTrackerLinkRepository struct {
	mock.Mock
}

func (m *MockTrackerLinkRepository) FindByToken(ctx context.Context, token string) (*campaign.TrackerLink, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*campaign.TrackerLink), args.Error(1)
}

func (m *MockTrackerLinkRepository) FindByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*campaign.TrackerLink, error) {
	args := m.Called(ctx, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*campaign.TrackerLink), args.Error(1)
}

func (m *MockTrackerLinkRepository) IncrementScans(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// MockRedemptionCodeRepository is a mock implementation of campaign.RedemptionCodeRepository
type MockRedemptionCodeRepository struct {
	mock.Mock
}

func (m *MockRedemptionCodeRepository) Create(ctx context.Context, code *campaign.RedemptionCode) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockRedemptionCodeRepository) FindByCode(ctx context.Context, code string) (*campaign.RedemptionCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*campaign.RedemptionCode), args.Error(1)
}

func (m *MockRedemptionCodeRepository) Redeem(ctx context.Context, code string, at time.Time) (*campaign.RedemptionCode, error) {
	args := m.Called(ctx, code, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*campaign.RedemptionCode), args.Error(1)
}

// MockShopRepository is a mock implementation of identity.ShopRepository
type MockShopRepository struct {
	mock.Mock
}

func (m *MockShopRepository) Create(ctx context.Context, shop *identity.Shop) error {
	args := m.Called(ctx, shop)
	return args.Error(0)
}

func (m *MockShopRepository) Update(ctx context.Context, shop *identity.Shop) error {
	args := m.Called(ctx, shop)
	return args.Error(0)
}

func (m *MockShopRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Shop), args.Error(1)
}

func (m *MockShopRepository) FindByEmail(ctx context.Context, email string) (*identity.Shop, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Shop), args.Error(1)
}

func (m *MockShopRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
