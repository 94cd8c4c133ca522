package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/promokit/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:          "test-secret-key-for-unit-tests-only",
		TokenExpiration: 24 * time.Hour,
		Issuer:          "promokit-test",
	}
}

func testInput() GenerateTokenInput {
	return GenerateTokenInput{
		ShopID:   uuid.New(),
		ShopName: "Sharma Sweets",
		Email:    "owner@sharma.in",
	}
}

func TestGenerateToken(t *testing.T) {
	svc := NewJWTService(testJWTConfig())
	input := testInput()

	token, err := svc.GenerateToken(input)
	require.NoError(t, err)
	assert.NotEmpty(t, token.Value)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), token.ExpiresAt, time.Minute)
}

func TestValidateToken(t *testing.T) {
	svc := NewJWTService(testJWTConfig())
	input := testInput()

	token, err := svc.GenerateToken(input)
	require.NoError(t, err)

	t.Run("accepts a freshly issued token", func(t *testing.T) {
		claims, err := svc.ValidateToken(token.Value)

		require.NoError(t, err)
		assert.Equal(t, input.ShopID.String(), claims.ShopID)
		assert.Equal(t, input.ShopName, claims.ShopName)
		assert.Equal(t, input.Email, claims.Email)

		shopID, err := claims.GetShopUUID()
		require.NoError(t, err)
		assert.Equal(t, input.ShopID, shopID)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects a tampered signature", func(t *testing.T) {
		tampered := token.Value[:len(token.Value)-2] + "xx"
		_, err := svc.ValidateToken(tampered)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects a token signed with a different secret", func(t *testing.T) {
		otherCfg := testJWTConfig()
		otherCfg.Secret = "a-completely-different-secret-value"
		otherSvc := NewJWTService(otherCfg)

		foreign, err := otherSvc.GenerateToken(input)
		require.NoError(t, err)

		_, err = svc.ValidateToken(foreign.Value)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expiredCfg := testJWTConfig()
		expiredCfg.TokenExpiration = -time.Hour
		expiredSvc := NewJWTService(expiredCfg)

		expired, err := expiredSvc.GenerateToken(input)
		require.NoError(t, err)

		_, err = svc.ValidateToken(expired.Value)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}
