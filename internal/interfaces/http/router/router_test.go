package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/promokit/backend/internal/interfaces/http/handler"
	"github.com/promokit/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestHandlers() Handlers {
	return Handlers{
		System:     handler.NewSystemHandler(),
		Auth:       handler.NewAuthHandler(nil),
		Campaign:   handler.NewCampaignHandler(nil),
		Tracking:   handler.NewTrackingHandler(nil),
		Redemption: handler.NewRedemptionHandler(nil),
	}
}

func TestSetup_RegistersRoutes(t *testing.T) {
	engine := gin.New()
	Setup(engine, newTestHandlers(), Config{})

	expected := map[string]string{
		"/health":                        http.MethodGet,
		"/track/:trackerId":              http.MethodGet,
		"/api/auth/register":             http.MethodPost,
		"/api/auth/login":                http.MethodPost,
		"/api/campaigns":                 http.MethodGet,
		"/api/campaigns/plan":            http.MethodPost,
		"/api/campaigns/add-channel":     http.MethodPost,
		"/api/campaigns/generate-assets": http.MethodPost,
		"/api/redeem":                    http.MethodPost,
	}

	registered := make(map[string]string)
	for _, route := range engine.Routes() {
		registered[route.Path] = route.Method
	}

	for path, method := range expected {
		assert.Equal(t, method, registered[path], "route %s", path)
	}
	assert.Len(t, registered, len(expected))
}

func TestSetup_HealthIsServed(t *testing.T) {
	engine := gin.New()
	Setup(engine, newTestHandlers(), Config{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Campaign backend is running")
}

func TestSetup_TrackRouteIsRateLimited(t *testing.T) {
	engine := gin.New()
	limiter := middleware.NewRateLimiter(1, time.Minute)
	Setup(engine, newTestHandlers(), Config{TrackLimiter: limiter})

	// Exhaust the client's budget out of band so the middleware rejects the
	// request before it reaches the handler.
	key := "192.0.2.1"
	for limiter.Allow(key) {
	}

	req := httptest.NewRequest(http.MethodGet, "/track/some-token", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "RATE_LIMITED")
}
