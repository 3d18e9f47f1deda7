package cache

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jwalitptl/directory-web/internal/config"
)

// Store caches JSON-encoded values by key. Get reports false on a miss.
type Store interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// New returns a Redis store when a URL is configured, otherwise an
// in-process store.
func New(cfg config.CacheConfig, logger *zerolog.Logger) (Store, error) {
	if cfg.RedisURL == "" {
		logger.Info().Dur("ttl", cfg.TTL).Msg("Using in-memory cache")
		return NewMemoryStore(cfg.TTL, cfg.CleanupInterval), nil
	}
	store, err := NewRedisStore(RedisConfig{URL: cfg.RedisURL, PoolSize: 10})
	if err != nil {
		return nil, err
	}
	logger.Info().Dur("ttl", cfg.TTL).Msg("Using redis cache")
	return store, nil
}
