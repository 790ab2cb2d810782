package core

import (
	"context"
	"time"
)

// Cache is a key-value cache with per-entry TTL.
type Cache[T any] interface {
	// Get returns ErrCacheMiss (from the cache package) when the key is absent or expired.
	Get(ctx context.Context, key string) (T, error)
	Set(ctx context.Context, key string, value T, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	// GetWithFetch loads the value through fetch on a miss and stores the result.
	GetWithFetch(
		ctx context.Context,
		key string,
		ttl time.Duration,
		fetch func(ctx context.Context, key string) (T, error),
	) (T, error)

	Health(ctx context.Context) error
	Close() error
}
