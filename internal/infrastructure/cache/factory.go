package cache

import (
	"fmt"

	"github.com/promokit/backend/internal/domain/shared"
	"github.com/promokit/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewIdempotencyStore creates the idempotency store selected by configuration.
// The redis backend falls back to the in-memory store when Redis is
// unreachable, so a missing Redis never takes the service down.
func NewIdempotencyStore(cacheCfg config.CacheConfig, redisCfg config.RedisConfig, logger *zap.Logger) (shared.IdempotencyStore, error) {
	switch cacheCfg.Backend {
	case "memory":
		return NewInMemoryIdempotencyStore(), nil
	case "redis":
		store, err := NewRedisIdempotencyStore(redisCfg)
		if err != nil {
			logger.Warn("Redis unavailable, falling back to in-memory idempotency store",
				zap.String("addr", redisCfg.RedisAddr()),
				zap.Error(err),
			)
			return NewInMemoryIdempotencyStore(), nil
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %q", cacheCfg.Backend)
	}
}
