// Package cache provides a small key/value cache with per-entry expiry,
// backed either by process memory or by Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
)

// ErrMiss is returned by Get when a key is absent or expired.
var ErrMiss = errors.New("cache miss")

// System stores opaque values under string keys.
type System interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// New creates the backend selected by cfg. The clock drives expiry for the memory backend.
func New(cfg *Config, clock clockwork.Clock, logger *slog.Logger) (System, error) {
	logger = logger.With("system", "cache", "backend", cfg.Backend)

	switch cfg.Backend {
	case BackendRedis:
		return NewRedis(cfg.URL, cfg.Prefix, logger)
	case BackendMemory, "":
		return NewMemory(clock), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", cfg.Backend)
	}
}

// GetJSON reads key and decodes it into T.
func GetJSON[T any](ctx context.Context, c System, key string) (T, error) {
	var v T
	data, err := c.Get(ctx, key)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return v, nil
}

// SetJSON encodes v and stores it under key.
func SetJSON[T any](ctx context.Context, c System, key string, v T, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return c.Set(ctx, key, data, ttl)
}
