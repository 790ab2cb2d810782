package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-authgate/authsync/internal/core"

	"github.com/redis/rueidis/rueidisaside"
)

var _ core.Cache[int64] = (*RueidisAsideCache[int64])(nil)

// RueidisAsideCache layers RESP3 client-side caching over Redis. Redis
// invalidates the local copies when a key changes, and concurrent misses
// for one key share a single fetch.
type RueidisAsideCache[T any] struct {
	client    rueidisaside.CacheAsideClient
	prefix    string
	clientTTL time.Duration
}

// NewRueidisAsideCache connects with client-side caching enabled. clientTTL
// bounds how long a local copy is served; sizePerConnMB caps the local cache
// of each connection.
func NewRueidisAsideCache[T any](
	opts RedisOptions,
	clientTTL time.Duration,
	sizePerConnMB int,
) (*RueidisAsideCache[T], error) {
	clientOpt := opts.clientOption()
	clientOpt.CacheSizeEachConn = sizePerConnMB * 1024 * 1024

	client, err := rueidisaside.NewClient(rueidisaside.ClientOption{ClientOption: clientOpt})
	if err != nil {
		return nil, fmt.Errorf("failed to create rueidisaside client: %w", err)
	}

	return &RueidisAsideCache[T]{
		client:    client,
		prefix:    opts.KeyPrefix,
		clientTTL: clientTTL,
	}, nil
}

// Get serves from the local cache when possible. A key absent from Redis is
// reported as ErrCacheMiss without populating it.
func (r *RueidisAsideCache[T]) Get(ctx context.Context, key string) (T, error) {
	var zero T

	str, err := r.client.Get(ctx, r.clientTTL, r.prefix+key,
		func(context.Context, string) (string, error) {
			return "", ErrCacheMiss
		},
	)
	switch {
	case errors.Is(err, ErrCacheMiss):
		return zero, ErrCacheMiss
	case err != nil:
		return zero, fmt.Errorf("%w: %v", ErrCacheUnavailable, err)
	}
	return decode[T](str)
}

func (r *RueidisAsideCache[T]) Set(ctx context.Context, key string, value T, ttl time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}

	client := r.client.Client()
	cmd := client.B().Set().Key(r.prefix + key).Value(string(encoded)).Ex(ttl).Build()
	if err := client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("%w: %v", ErrCacheUnavailable, err)
	}
	return nil
}

func (r *RueidisAsideCache[T]) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.prefix+key)
}

// GetWithFetch lets rueidisaside run fetch at most once per key across
// concurrent callers and stores the result for ttl.
func (r *RueidisAsideCache[T]) GetWithFetch(
	ctx context.Context,
	key string,
	ttl time.Duration,
	fetch func(ctx context.Context, key string) (T, error),
) (T, error) {
	str, err := r.client.Get(ctx, ttl, r.prefix+key,
		func(ctx context.Context, _ string) (string, error) {
			value, err := fetch(ctx, key)
			if err != nil {
				return "", err
			}
			encoded, err := json.Marshal(value)
			if err != nil {
				return "", fmt.Errorf("%w: %v", ErrInvalidValue, err)
			}
			return string(encoded), nil
		},
	)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](str)
}

func (r *RueidisAsideCache[T]) Health(ctx context.Context) error {
	return ping(ctx, r.client.Client())
}

func (r *RueidisAsideCache[T]) Close() error {
	r.client.Close()
	return nil
}
