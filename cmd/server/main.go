package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	campaignapp "github.com/promokit/backend/internal/application/campaign"
	identityapp "github.com/promokit/backend/internal/application/identity"
	"github.com/promokit/backend/internal/domain/shared"
	"github.com/promokit/backend/internal/infrastructure/auth"
	"github.com/promokit/backend/internal/infrastructure/cache"
	"github.com/promokit/backend/internal/infrastructure/config"
	"github.com/promokit/backend/internal/infrastructure/logger"
	"github.com/promokit/backend/internal/infrastructure/persistence"
	"github.com/promokit/backend/internal/interfaces/http/handler"
	"github.com/promokit/backend/internal/interfaces/http/middleware"
	"github.com/promokit/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting PromoKit Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with a GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	shopRepo := persistence.NewGormShopRepository(db.DB)
	campaignRepo := persistence.NewGormCampaignRepository(db.DB)
	trackerLinkRepo := persistence.NewGormTrackerLinkRepository(db.DB)
	codeRepo := persistence.NewGormRedemptionCodeRepository(db.DB)

	// Idempotency store for scan deduplication
	dedupStore, err := cache.NewIdempotencyStore(cfg.Cache, cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to initialize idempotency store", zap.Error(err))
	}
	defer func() {
		if err := dedupStore.Close(); err != nil {
			log.Error("Error closing idempotency store", zap.Error(err))
		}
	}()

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(shopRepo, jwtService, log)
	campaignService := campaignapp.NewCampaignService(
		campaignRepo, trackerLinkRepo, campaignapp.NewTemplatePlanner(), cfg.Tracking.BaseURL, log)
	dedupCfg := shared.IdempotencyConfig{
		TTL:     cfg.Tracking.ScanDedupTTL,
		Enabled: cfg.Tracking.ScanDedupEnabled,
	}
	trackingService := campaignapp.NewTrackingService(
		campaignRepo, trackerLinkRepo, codeRepo, shopRepo, dedupStore, dedupCfg, log)
	redemptionService := campaignapp.NewRedemptionService(campaignRepo, codeRepo, log)

	// HTTP handlers
	handlers := router.Handlers{
		System:     handler.NewSystemHandler(),
		Auth:       handler.NewAuthHandler(authService),
		Campaign:   handler.NewCampaignHandler(campaignService),
		Tracking:   handler.NewTrackingHandler(trackingService),
		Redemption: handler.NewRedemptionHandler(redemptionService),
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack, in order
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.Logger = log
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// The tracking route is public; give it its own, stricter limiter
	routerConfig := router.Config{}
	if cfg.HTTP.TrackRateLimitEnabled {
		routerConfig.TrackLimiter = middleware.NewRateLimiter(
			cfg.HTTP.TrackRateLimitRequests, cfg.HTTP.TrackRateLimitWindow)
		log.Info("Tracking rate limiting enabled",
			zap.Int("requests", cfg.HTTP.TrackRateLimitRequests),
			zap.Duration("window", cfg.HTTP.TrackRateLimitWindow),
		)
	}

	router.Setup(engine, handlers, routerConfig)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
