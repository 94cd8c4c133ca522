package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/promokit/backend/internal/application/identity"
	"github.com/promokit/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles shop registration and login
type AuthHandler struct {
	BaseHandler
	authService *identity.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *identity.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.ValidationMessage(err))
		return
	}

	result, err := h.authService.Register(c.Request.Context(), identity.RegisterInput{
		ShopName:    req.ShopName,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Password:    req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, RegisterResponse{
		Message: result.Message,
		ShopID:  result.ShopID.String(),
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.ValidationMessage(err))
		return
	}

	result, err := h.authService.Login(c.Request.Context(), identity.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		IP:       c.ClientIP(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, LoginResponse{
		Token:    result.Token,
		ShopName: result.Shop.ShopName,
		ShopID:   result.Shop.ID.String(),
	})
}
