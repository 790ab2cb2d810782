package bootstrap

import (
	"log"

	"github.com/go-authgate/authsync/internal/auth"
	"github.com/go-authgate/authsync/internal/config"
	"github.com/go-authgate/authsync/internal/core"
	"github.com/go-authgate/authsync/internal/lock"
	"github.com/go-authgate/authsync/internal/roles"
	"github.com/go-authgate/authsync/internal/services"
	"github.com/go-authgate/authsync/internal/store"

	"github.com/redis/go-redis/v9"
)

// initializeSyncLocker selects the per-login lock used during synchronization
func initializeSyncLocker(cfg *config.Config, redisClient *redis.Client) core.KeyLocker {
	if cfg.SyncLockStore == config.StoreRedis && redisClient != nil {
		log.Printf("Sync locks: redis (ttl=%s)", cfg.SyncLockTTL)
		return lock.NewRedisLocker(redisClient, cfg.SyncLockTTL)
	}
	log.Printf("Sync locks: memory (single instance only)")
	return lock.NewMemoryLocker()
}

// initializeServices creates the identity synchronizer and authenticator
func initializeServices(
	cfg *config.Config,
	db *store.Store,
	backends *auth.Registry,
	extractors *roles.Registry,
	locker core.KeyLocker,
	prometheusMetrics core.Recorder,
) (*services.IdentitySynchronizer, *services.Authenticator) {
	synchronizer := services.NewIdentitySynchronizer(db, locker, prometheusMetrics)
	authenticator := services.NewAuthenticator(
		backends,
		extractors,
		synchronizer,
		cfg.AuthSettings(),
		prometheusMetrics,
	)
	return synchronizer, authenticator
}
