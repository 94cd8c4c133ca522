package router

import (
	"github.com/gin-gonic/gin"
	"github.com/promokit/backend/internal/interfaces/http/handler"
	"github.com/promokit/backend/internal/interfaces/http/middleware"
)

// Handlers bundles the handlers the router wires up
type Handlers struct {
	System     *handler.SystemHandler
	Auth       *handler.AuthHandler
	Campaign   *handler.CampaignHandler
	Tracking   *handler.TrackingHandler
	Redemption *handler.RedemptionHandler
}

// Config holds route-level middleware configuration
type Config struct {
	// TrackLimiter throttles the public tracking route; nil disables it
	TrackLimiter *middleware.RateLimiter
}

// Setup registers all routes on the engine. Authentication is enforced by
// the JWT middleware installed on the engine; the router only decides the
// URL layout.
func Setup(engine *gin.Engine, h Handlers, cfg Config) {
	engine.GET("/health", h.System.Health)

	track := engine.Group("/track")
	if cfg.TrackLimiter != nil {
		track.Use(middleware.RateLimit(cfg.TrackLimiter))
	}
	track.GET("/:trackerId", h.Tracking.Track)

	api := engine.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", h.Auth.Register)
			authRoutes.POST("/login", h.Auth.Login)
		}

		campaigns := api.Group("/campaigns")
		{
			campaigns.GET("", h.Campaign.List)
			campaigns.POST("/plan", h.Campaign.Plan)
			campaigns.POST("/add-channel", h.Campaign.AddChannel)
			campaigns.POST("/generate-assets", h.Campaign.GenerateAssets)
		}

		api.POST("/redeem", h.Redemption.Redeem)
	}
}
