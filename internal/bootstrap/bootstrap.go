package bootstrap

import (
	"context"
	"log"
	"net/http"

	"github.com/go-authgate/authsync/internal/auth"
	"github.com/go-authgate/authsync/internal/config"
	"github.com/go-authgate/authsync/internal/core"
	"github.com/go-authgate/authsync/internal/metrics"
	"github.com/go-authgate/authsync/internal/roles"
	"github.com/go-authgate/authsync/internal/services"
	"github.com/go-authgate/authsync/internal/store"

	"github.com/appleboy/graceful"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Application holds all initialized components
type Application struct {
	Config *config.Config

	// Core infrastructure
	DB              *store.Store
	MetricsRecorder core.Recorder
	MetricsCache    core.Cache[int64]
	RedisClient     *redis.Client

	// Authentication
	Backends   *auth.Registry
	Extractors *roles.Registry
	SyncLocker core.KeyLocker

	// Services
	Synchronizer  *services.IdentitySynchronizer
	Authenticator *services.Authenticator

	// HTTP
	HandlerSet handlerSet
	Router     *gin.Engine
	Server     *http.Server
}

// Run initializes and starts the application
func Run(ctx context.Context, cfg *config.Config) error {
	app := &Application{Config: cfg}

	// Phase 1: Validate configuration
	if err := validateAllConfiguration(cfg); err != nil {
		return err
	}

	// Phase 2: Initialize infrastructure
	if err := app.initializeInfrastructure(ctx); err != nil {
		return err
	}

	// Phase 3: Initialize authentication and business layer
	if err := app.initializeBusinessLayer(); err != nil {
		return err
	}

	// Phase 4: Initialize HTTP layer
	if err := app.initializeHTTPLayer(); err != nil {
		return err
	}

	// Phase 5: Start server with graceful shutdown
	app.startWithGracefulShutdown()

	return nil
}

// initializeInfrastructure sets up database, metrics, the metrics cache, and Redis
func (app *Application) initializeInfrastructure(ctx context.Context) error {
	var err error

	// Database
	app.DB, err = initializeDatabase(ctx, app.Config)
	if err != nil {
		return err
	}

	// Metrics
	app.MetricsRecorder = initializeMetrics(app.Config)
	app.MetricsCache, err = initializeMetricsCache(ctx, app.Config)
	if err != nil {
		return err
	}

	// Redis (for sync locks and rate limiting)
	app.RedisClient, err = initializeRedisClient(ctx, app.Config)
	if err != nil {
		return err
	}

	return nil
}

// initializeBusinessLayer sets up backends, role extraction, and services
func (app *Application) initializeBusinessLayer() error {
	var err error

	app.Backends, err = initializeBackendRegistry(app.Config)
	if err != nil {
		return err
	}

	app.Extractors, err = initializeRoleExtractors(app.Config)
	if err != nil {
		return err
	}

	app.SyncLocker = initializeSyncLocker(app.Config, app.RedisClient)

	app.Synchronizer, app.Authenticator = initializeServices(
		app.Config,
		app.DB,
		app.Backends,
		app.Extractors,
		app.SyncLocker,
		app.MetricsRecorder,
	)
	return nil
}

// initializeHTTPLayer sets up handlers, router, and server
func (app *Application) initializeHTTPLayer() error {
	app.HandlerSet = initializeHandlers(app.Authenticator, app.DB)

	rateLimiters, err := setupRateLimiting(app.Config, app.RedisClient)
	if err != nil {
		return err
	}

	app.Router = setupRouter(
		app.Config,
		app.DB,
		app.HandlerSet,
		app.MetricsRecorder,
		rateLimiters,
	)

	app.Server = createHTTPServer(app.Config, app.Router)
	return nil
}

// startWithGracefulShutdown starts the server and handles graceful shutdown
func (app *Application) startWithGracefulShutdown() {
	m := graceful.NewManager()

	// Add jobs
	addServerRunningJob(m, app.Server)
	addServerShutdownJob(m, app.Server)
	addRedisClientShutdownJob(m, app.RedisClient)
	addDatabaseShutdownJob(m, app.DB)
	addMetricsGaugeUpdateJob(m, app.Config, app.DB, app.MetricsCache, app.MetricsRecorder)
	addCacheCleanupJob(m, app.MetricsCache)

	// Wait for graceful shutdown
	<-m.Done()
}

// initializeMetrics initializes the metrics recorder based on configuration
func initializeMetrics(cfg *config.Config) core.Recorder {
	prometheusMetrics := metrics.Init(cfg.MetricsEnabled)
	if cfg.MetricsEnabled {
		log.Println("Prometheus metrics initialized")
	} else {
		log.Println("Metrics disabled (using noop implementation)")
	}
	return prometheusMetrics
}
