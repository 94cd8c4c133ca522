package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appcampaign "github.com/promokit/backend/internal/application/campaign"
	appidentity "github.com/promokit/backend/internal/application/identity"
	"github.com/promokit/backend/internal/domain/campaign"
	"github.com/promokit/backend/internal/domain/identity"
	"github.com/promokit/backend/internal/domain/shared"
	"github.com/promokit/backend/internal/infrastructure/auth"
	"github.com/promokit/backend/internal/infrastructure/cache"
	"github.com/promokit/backend/internal/infrastructure/config"
	"github.com/promokit/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testJWTConfig returns a default JWT config for tests
func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:          "test-secret-key-for-unit-tests-only",
		TokenExpiration: 24 * time.Hour,
		Issuer:          "promokit-test",
	}
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

// testServer bundles the engine, repositories, and token minting for handler
// tests. Requests go through the same middleware chain and routes as the
// real server.
type testServer struct {
	engine     *gin.Engine
	jwtService *auth.JWTService

	shopRepo     *MockShopRepository
	campaignRepo *MockCampaignRepository
	linkRepo     *MockTrackerLinkRepository
	codeRepo     *MockRedemptionCodeRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	s := &testServer{
		jwtService:   auth.NewJWTService(testJWTConfig()),
		shopRepo:     new(MockShopRepository),
		campaignRepo: new(MockCampaignRepository),
		linkRepo:     new(MockTrackerLinkRepository),
		codeRepo:     new(MockRedemptionCodeRepository),
	}

	logger := zap.NewNop()
	store := cache.NewInMemoryIdempotencyStore()
	t.Cleanup(func() { _ = store.Close() })

	authService := appidentity.NewAuthService(s.shopRepo, s.jwtService, logger)
	campaignService := appcampaign.NewCampaignService(
		s.campaignRepo, s.linkRepo, appcampaign.NewTemplatePlanner(), "http://localhost:5173", logger)
	trackingService := appcampaign.NewTrackingService(
		s.campaignRepo, s.linkRepo, s.codeRepo, s.shopRepo, store,
		shared.IdempotencyConfig{TTL: time.Hour, Enabled: true}, logger)
	redemptionService := appcampaign.NewRedemptionService(s.campaignRepo, s.codeRepo, logger)

	systemHandler := NewSystemHandler()
	authHandler := NewAuthHandler(authService)
	campaignHandler := NewCampaignHandler(campaignService)
	trackingHandler := NewTrackingHandler(trackingService)
	redemptionHandler := NewRedemptionHandler(redemptionService)

	engine := gin.New()
	engine.Use(middleware.JWTAuthMiddleware(s.jwtService))

	engine.GET("/health", systemHandler.Health)
	engine.GET("/track/:trackerId", trackingHandler.Track)
	engine.POST("/api/auth/register", authHandler.Register)
	engine.POST("/api/auth/login", authHandler.Login)
	engine.GET("/api/campaigns", campaignHandler.List)
	engine.POST("/api/campaigns/plan", campaignHandler.Plan)
	engine.POST("/api/campaigns/add-channel", campaignHandler.AddChannel)
	engine.POST("/api/campaigns/generate-assets", campaignHandler.GenerateAssets)
	engine.POST("/api/redeem", redemptionHandler.Redeem)

	s.engine = engine
	return s
}

// mintToken issues a valid bearer token for the given shop
func (s *testServer) mintToken(t *testing.T, shop *identity.Shop) string {
	t.Helper()
	token, err := s.jwtService.GenerateToken(auth.GenerateTokenInput{
		ShopID:   shop.ID,
		ShopName: shop.ShopName,
		Email:    shop.Email,
	})
	require.NoError(t, err)
	return token.Value
}

// doJSON performs a request with an optional JSON body and bearer token
func (s *testServer) doJSON(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a recorded JSON response body
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// errorCode extracts the error code from an error envelope
func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	decodeBody(t, w, &envelope)
	return envelope.Error.Code
}

// testShop creates a registered shop for handler tests
func testShop(t *testing.T) *identity.Shop {
	t.Helper()
	shop, err := identity.NewShop("Sharma Sweets", "12 MG Road, Pune", "+91 98765 43210", "owner@sharma.in", "secret123")
	require.NoError(t, err)
	return shop
}
