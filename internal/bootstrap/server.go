package bootstrap

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-authgate/authsync/internal/config"
	"github.com/go-authgate/authsync/internal/core"
	"github.com/go-authgate/authsync/internal/metrics"
	"github.com/go-authgate/authsync/internal/services"
	"github.com/go-authgate/authsync/internal/store"

	"github.com/appleboy/graceful"
	"github.com/redis/go-redis/v9"
)

// createHTTPServer creates the HTTP server instance
func createHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// addServerRunningJob adds the HTTP server running job
func addServerRunningJob(m *graceful.Manager, srv *http.Server) {
	m.AddRunningJob(func(ctx context.Context) error {
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("Failed to start server: %v", err)
			}
		}()
		<-ctx.Done()
		return nil
	})
}

// addServerShutdownJob adds HTTP server shutdown handler
func addServerShutdownJob(m *graceful.Manager, srv *http.Server) {
	m.AddShutdownJob(func() error {
		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server forced to shutdown: %v", err)
			return err
		}

		log.Println("Server exited")
		return nil
	})
}

// addRedisClientShutdownJob adds Redis client shutdown handler
func addRedisClientShutdownJob(m *graceful.Manager, redisClient *redis.Client) {
	if redisClient == nil {
		return
	}

	m.AddShutdownJob(func() error {
		log.Println("Closing Redis connection...")
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis client: %v", err)
			return err
		}
		log.Println("Redis connection closed")
		return nil
	})
}

// addDatabaseShutdownJob closes the database pool once the server is down
func addDatabaseShutdownJob(m *graceful.Manager, db *store.Store) {
	m.AddShutdownJob(func() error {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
			return err
		}
		log.Println("Database connection closed")
		return nil
	})
}

// addMetricsGaugeUpdateJob adds periodic metrics gauge update job
func addMetricsGaugeUpdateJob(
	m *graceful.Manager,
	cfg *config.Config,
	db metrics.IdentityCounter,
	metricsCache core.Cache[int64],
	prometheusMetrics core.Recorder,
) {
	if !cfg.MetricsEnabled || !cfg.MetricsGaugeUpdateEnabled {
		return
	}

	m.AddRunningJob(func(ctx context.Context) error {
		ticker := time.NewTicker(cfg.MetricsGaugeUpdateInterval)
		defer ticker.Stop()

		// The cache TTL matches the update interval
		counter := metrics.NewCachedIdentityCounter(db, metricsCache, cfg.MetricsGaugeUpdateInterval)

		// Update immediately on startup
		updateIdentityGauges(ctx, counter, prometheusMetrics)

		for {
			select {
			case <-ticker.C:
				updateIdentityGauges(ctx, counter, prometheusMetrics)
			case <-ctx.Done():
				return nil
			}
		}
	})
}

// addCacheCleanupJob closes the metrics cache on shutdown
func addCacheCleanupJob(m *graceful.Manager, metricsCache core.Cache[int64]) {
	if metricsCache == nil {
		return
	}

	m.AddShutdownJob(func() error {
		if err := metricsCache.Close(); err != nil {
			log.Printf("Error closing metrics cache: %v", err)
		} else {
			log.Println("Metrics cache closed")
		}
		return nil
	})
}

// errorLogger handles rate-limited error logging
type errorLogger struct {
	lastErrorTimes  map[string]time.Time
	rateLimitWindow time.Duration
}

// newErrorLogger creates a new error logger with rate limiting
func newErrorLogger() *errorLogger {
	return &errorLogger{
		lastErrorTimes:  make(map[string]time.Time),
		rateLimitWindow: 5 * time.Minute, // Log at most once per 5 minutes per operation
	}
}

// logIfNeeded logs an error only if rate limit allows. Returns true when logged.
func (e *errorLogger) logIfNeeded(operation string, err error) bool {
	now := time.Now()
	lastTime, exists := e.lastErrorTimes[operation]

	if exists && now.Sub(lastTime) < e.rateLimitWindow {
		return false
	}
	log.Printf("Database query failed for %s: %v (further errors will be suppressed for %v)",
		operation, err, e.rateLimitWindow)
	e.lastErrorTimes[operation] = now
	return true
}

var gaugeErrorLogger = newErrorLogger()

// updateIdentityGauges publishes the stored user, role, and grant counts.
// A failed count keeps the previous gauge value.
func updateIdentityGauges(ctx context.Context, db metrics.IdentityCounter, m core.Recorder) {
	counts := []struct {
		kind      string
		operation string
		count     func(context.Context) (int64, error)
	}{
		{services.KindUser, "count_users", db.CountUsers},
		{services.KindRole, "count_roles", db.CountRoles},
		{services.KindGrant, "count_grants", db.CountGrants},
	}

	for _, c := range counts {
		n, err := c.count(ctx)
		if err != nil {
			m.RecordDatabaseQueryError(c.operation)
			gaugeErrorLogger.logIfNeeded(c.operation, err)
			continue
		}
		m.SetIdentityCount(c.kind, n)
	}
}
