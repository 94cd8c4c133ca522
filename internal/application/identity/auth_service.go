package identity

import (
	"context"
	"errors"
	"time"

	"github.com/promokit/backend/internal/domain/identity"
	"github.com/promokit/backend/internal/domain/shared"
	"github.com/promokit/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthService handles shop registration and authentication
type AuthService struct {
	shopRepo   identity.ShopRepository
	jwtService *auth.JWTService
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(shopRepo identity.ShopRepository, jwtService *auth.JWTService, logger *zap.Logger) *AuthService {
	return &AuthService{
		shopRepo:   shopRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new shop account. The email is the login identity and
// must be unique across all shops.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	shop, err := identity.NewShop(input.ShopName, input.Address, input.PhoneNumber, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	exists, err := s.shopRepo.ExistsByEmail(ctx, shop.Email)
	if err != nil {
		s.logger.Error("Failed to check email uniqueness", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL", "Failed to register shop")
	}
	if exists {
		return nil, shared.NewDomainError("DUPLICATE_EMAIL", "Email already registered")
	}

	// The unique index is the real guard; the pre-check above only gives a
	// friendlier common path.
	if err := s.shopRepo.Create(ctx, shop); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("DUPLICATE_EMAIL", "Email already registered")
		}
		s.logger.Error("Failed to create shop", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL", "Failed to register shop")
	}

	s.logger.Info("Shop registered",
		zap.String("shop_id", shop.ID.String()),
		zap.String("email", shop.Email))

	return &RegisterResult{
		ShopID:  shop.ID,
		Message: "Registration successful",
	}, nil
}

// Login authenticates a shop and returns a signed token. Unknown emails and
// wrong passwords produce the same error so callers cannot probe for accounts.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	shop, err := s.shopRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			s.logger.Error("Failed to look up shop during login", zap.Error(err))
		}
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	if !shop.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("email", shop.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	token, err := s.jwtService.GenerateToken(auth.GenerateTokenInput{
		ShopID:   shop.ID,
		ShopName: shop.ShopName,
		Email:    shop.Email,
	})
	if err != nil {
		s.logger.Error("Failed to generate token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL", "Failed to generate authentication token")
	}

	shop.RecordLogin(time.Now())
	if err := s.shopRepo.Update(ctx, shop); err != nil {
		// Login still succeeds; the timestamp is best effort
		s.logger.Error("Failed to record login time", zap.Error(err))
	}

	s.logger.Info("Shop logged in",
		zap.String("shop_id", shop.ID.String()),
		zap.String("email", shop.Email))

	return &LoginResult{
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt,
		Shop: ShopInfo{
			ID:          shop.ID,
			ShopName:    shop.ShopName,
			Address:     shop.Address,
			PhoneNumber: shop.PhoneNumber,
			Email:       shop.Email,
		},
	}, nil
}

// Authenticate validates a bearer token and returns its claims
func (s *AuthService) Authenticate(tokenString string) (*auth.Claims, error) {
	claims, err := s.jwtService.ValidateToken(tokenString)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, shared.NewDomainError("TOKEN_EXPIRED", "Token has expired")
		}
		return nil, shared.NewDomainError("INVALID_TOKEN", "Invalid authentication token")
	}
	return claims, nil
}
