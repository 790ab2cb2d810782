package lock

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-authgate/authsync/internal/core"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Ensure RedisLocker implements core.KeyLocker at compile time
var _ core.KeyLocker = (*RedisLocker)(nil)

const (
	defaultKeyPrefix    = "authsync:lock:"
	defaultPollInterval = 50 * time.Millisecond
)

// unlockScript deletes the key only if it still holds our token.
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker serializes work per key across processes sharing a Redis
// instance. A held lock expires after ttl so a crashed holder cannot
// block a login name forever.
type RedisLocker struct {
	client       *redis.Client
	ttl          time.Duration
	prefix       string
	pollInterval time.Duration
}

func NewRedisLocker(client *redis.Client, ttl time.Duration) *RedisLocker {
	return &RedisLocker{
		client:       client,
		ttl:          ttl,
		prefix:       defaultKeyPrefix,
		pollInterval: defaultPollInterval,
	}
}

// Lock polls SET NX until it owns key or ctx is done.
func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	redisKey := l.prefix + key
	token := uuid.New().String()

	ticker := time.NewTicker(l.pollInterval)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("failed to acquire lock %q: %w", key, err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// The caller's context may already be done
			releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			err := unlockScript.Run(releaseCtx, l.client, []string{redisKey}, token).Err()
			if err != nil && !errors.Is(err, redis.Nil) {
				log.Printf("[Lock] Failed to release %q, it expires in %s: %v", key, l.ttl, err)
			}
		})
	}, nil
}
