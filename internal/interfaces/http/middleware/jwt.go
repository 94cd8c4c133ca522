package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/promokit/backend/internal/infrastructure/auth"
	"github.com/promokit/backend/internal/infrastructure/logger"
	"github.com/promokit/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// JWT context keys
const (
	JWTClaimsKey   = "jwt_claims"
	JWTShopIDKey   = "jwt_shop_id"
	JWTShopNameKey = "jwt_shop_name"
	AuthHeaderKey  = "Authorization"
	BearerPrefix   = "Bearer "
)

// JWTMiddlewareConfig holds configuration for JWT middleware
type JWTMiddlewareConfig struct {
	// JWTService is required for token validation
	JWTService *auth.JWTService
	// SkipPaths are paths that don't require authentication
	SkipPaths []string
	// SkipPathPrefixes are path prefixes that don't require authentication
	SkipPathPrefixes []string
	// Logger for middleware logging
	Logger *zap.Logger
}

// DefaultJWTConfig returns default JWT middleware configuration
func DefaultJWTConfig(jwtService *auth.JWTService) JWTMiddlewareConfig {
	return JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/health",
			"/api/auth/register",
			"/api/auth/login",
		},
		SkipPathPrefixes: []string{
			"/track/",
		},
	}
}

// JWTAuthMiddleware creates JWT authentication middleware
func JWTAuthMiddleware(jwtService *auth.JWTService) gin.HandlerFunc {
	return JWTAuthMiddlewareWithConfig(DefaultJWTConfig(jwtService))
}

// JWTAuthMiddlewareWithConfig creates JWT authentication middleware with custom config
func JWTAuthMiddlewareWithConfig(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		for _, skipPath := range cfg.SkipPaths {
			if path == skipPath {
				c.Next()
				return
			}
		}
		for _, prefix := range cfg.SkipPathPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			abortUnauthorized(c, cfg, dto.ErrCodeMissingToken, "Access token required")
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortUnauthorized(c, cfg, dto.ErrCodeInvalidToken, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		if tokenString == "" {
			abortUnauthorized(c, cfg, dto.ErrCodeMissingToken, "Access token required")
			return
		}

		claims, err := cfg.JWTService.ValidateToken(tokenString)
		if err != nil {
			code := dto.ErrCodeInvalidToken
			message := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				code = dto.ErrCodeTokenExpired
				message = "Token has expired"
			}
			abortUnauthorized(c, cfg, code, message)
			return
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(JWTShopIDKey, claims.ShopID)
		c.Set(JWTShopNameKey, claims.ShopName)

		// Propagate the shop to the request-scoped logger
		ctx := c.Request.Context()
		ctx, _ = logger.WithShopID(ctx, logger.FromContext(ctx), claims.ShopID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, cfg JWTMiddlewareConfig, code, message string) {
	if cfg.Logger != nil {
		cfg.Logger.Warn("Authentication rejected",
			zap.String("code", code),
			zap.String("path", c.Request.URL.Path))
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(code, message))
}

// GetJWTClaims retrieves JWT claims from gin.Context
func GetJWTClaims(c *gin.Context) *auth.Claims {
	if claims, exists := c.Get(JWTClaimsKey); exists {
		if jwtClaims, ok := claims.(*auth.Claims); ok {
			return jwtClaims
		}
	}
	return nil
}

// GetJWTShopID retrieves the authenticated shop's ID from context
func GetJWTShopID(c *gin.Context) (uuid.UUID, error) {
	claims := GetJWTClaims(c)
	if claims == nil {
		return uuid.Nil, errors.New("jwt claims not found in context")
	}
	return claims.GetShopUUID()
}

// GetJWTShopName retrieves the authenticated shop's name from context
func GetJWTShopName(c *gin.Context) string {
	if name, exists := c.Get(JWTShopNameKey); exists {
		if s, ok := name.(string); ok {
			return s
		}
	}
	return ""
}
