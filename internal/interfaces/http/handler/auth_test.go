package handler

import (
	"net/http"
	"testing"

	"github.com/promokit/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthHandler_Register(t *testing.T) {
	t.Run("registers a new shop", func(t *testing.T) {
		s := newTestServer(t)
		s.shopRepo.On("ExistsByEmail", mock.Anything, "owner@sharma.in").Return(false, nil)
		s.shopRepo.On("Create", mock.Anything, mock.AnythingOfType("*identity.Shop")).Return(nil)

		w := s.doJSON(t, http.MethodPost, "/api/auth/register", map[string]any{
			"shopName":    "Sharma Sweets",
			"address":     "12 MG Road, Pune",
			"phoneNumber": "+91 98765 43210",
			"email":       "owner@sharma.in",
			"password":    "secret123",
		}, "")

		assert.Equal(t, http.StatusCreated, w.Code)

		var body RegisterResponse
		decodeBody(t, w, &body)
		assert.Equal(t, "Registration successful", body.Message)
		assert.NotEmpty(t, body.ShopID)
		s.shopRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		s := newTestServer(t)
		s.shopRepo.On("ExistsByEmail", mock.Anything, "owner@sharma.in").Return(true, nil)

		w := s.doJSON(t, http.MethodPost, "/api/auth/register", map[string]any{
			"shopName": "Sharma Sweets",
			"email":    "owner@sharma.in",
			"password": "secret123",
		}, "")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "DUPLICATE_EMAIL", errorCode(t, w))
		s.shopRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		s := newTestServer(t)

		w := s.doJSON(t, http.MethodPost, "/api/auth/register", map[string]any{
			"shopName": "Sharma Sweets",
			"email":    "not-an-email",
			"password": "secret123",
		}, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "BAD_REQUEST", errorCode(t, w))
		s.shopRepo.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
	})

	t.Run("rejects a blank shop name", func(t *testing.T) {
		s := newTestServer(t)

		w := s.doJSON(t, http.MethodPost, "/api/auth/register", map[string]any{
			"shopName": "   ",
			"email":    "owner@sharma.in",
			"password": "secret123",
		}, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_SHOP_NAME", errorCode(t, w))
		s.shopRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects short password", func(t *testing.T) {
		s := newTestServer(t)

		w := s.doJSON(t, http.MethodPost, "/api/auth/register", map[string]any{
			"shopName": "Sharma Sweets",
			"email":    "owner@sharma.in",
			"password": "abc",
		}, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns a token for valid credentials", func(t *testing.T) {
		s := newTestServer(t)
		shop := testShop(t)
		s.shopRepo.On("FindByEmail", mock.Anything, "owner@sharma.in").Return(shop, nil)
		s.shopRepo.On("Update", mock.Anything, mock.AnythingOfType("*identity.Shop")).Return(nil)

		w := s.doJSON(t, http.MethodPost, "/api/auth/login", map[string]any{
			"email":    "owner@sharma.in",
			"password": "secret123",
		}, "")

		assert.Equal(t, http.StatusOK, w.Code)

		var body LoginResponse
		decodeBody(t, w, &body)
		assert.NotEmpty(t, body.Token)
		assert.Equal(t, "Sharma Sweets", body.ShopName)
		assert.Equal(t, shop.ID.String(), body.ShopID)

		claims, err := s.jwtService.ValidateToken(body.Token)
		assert.NoError(t, err)
		assert.Equal(t, shop.ID.String(), claims.ShopID)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		s := newTestServer(t)
		shop := testShop(t)
		s.shopRepo.On("FindByEmail", mock.Anything, "owner@sharma.in").Return(shop, nil)

		w := s.doJSON(t, http.MethodPost, "/api/auth/login", map[string]any{
			"email":    "owner@sharma.in",
			"password": "wrong-password",
		}, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, w))
	})

	t.Run("rejects unknown email", func(t *testing.T) {
		s := newTestServer(t)
		s.shopRepo.On("FindByEmail", mock.Anything, "nobody@sharma.in").Return(nil, shared.ErrNotFound)

		w := s.doJSON(t, http.MethodPost, "/api/auth/login", map[string]any{
			"email":    "nobody@sharma.in",
			"password": "secret123",
		}, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, w))
	})
}
