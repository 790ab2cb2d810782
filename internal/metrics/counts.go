package metrics

import (
	"context"
	"time"

	"github.com/go-authgate/authsync/internal/core"
)

// IdentityCounter reports how many users, roles, and grants are stored.
type IdentityCounter interface {
	CountUsers(ctx context.Context) (int64, error)
	CountRoles(ctx context.Context) (int64, error)
	CountGrants(ctx context.Context) (int64, error)
}

// CachedIdentityCounter serves identity counts through a shared cache so
// that several instances refreshing their gauges hit the database once per
// TTL instead of once each.
type CachedIdentityCounter struct {
	source IdentityCounter
	cache  core.Cache[int64]
	ttl    time.Duration
}

func NewCachedIdentityCounter(
	source IdentityCounter,
	cache core.Cache[int64],
	ttl time.Duration,
) *CachedIdentityCounter {
	return &CachedIdentityCounter{source: source, cache: cache, ttl: ttl}
}

func (c *CachedIdentityCounter) CountUsers(ctx context.Context) (int64, error) {
	return c.count(ctx, "identity_count:user", c.source.CountUsers)
}

func (c *CachedIdentityCounter) CountRoles(ctx context.Context) (int64, error) {
	return c.count(ctx, "identity_count:role", c.source.CountRoles)
}

func (c *CachedIdentityCounter) CountGrants(ctx context.Context) (int64, error) {
	return c.count(ctx, "identity_count:grant", c.source.CountGrants)
}

func (c *CachedIdentityCounter) count(
	ctx context.Context,
	key string,
	load func(context.Context) (int64, error),
) (int64, error) {
	return c.cache.GetWithFetch(ctx, key, c.ttl, func(ctx context.Context, _ string) (int64, error) {
		return load(ctx)
	})
}
