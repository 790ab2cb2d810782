package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-authgate/authsync/internal/core"

	"github.com/joho/godotenv"
)

// Authentication backend constants
const (
	AuthBackendFile    = "file"
	AuthBackendHTTPAPI = "http_api"
)

// Role extraction strategy constants
const (
	RoleStrategyMarkerGroup = "marker_group"
	RoleStrategyAllGroups   = "all_groups"
)

// Store type constants for sync locks and rate limiting
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Metrics cache type constants
const (
	MetricsCacheTypeMemory     = "memory"
	MetricsCacheTypeRedis      = "redis"
	MetricsCacheTypeRedisAside = "redis-aside"
)

type Config struct {
	// Server settings
	ServerAddr   string
	IsProduction bool

	// Database
	DatabaseDriver string // "sqlite" or "postgres"
	DatabaseDSN    string // Database connection string (DSN or path)
	DBInitTimeout  time.Duration

	// Authentication
	AuthBackend     string // "file" or "http_api"
	AuthDomain      string // domain name the backend is registered under
	RoleMarkerGroup string // group whose members are role names
	RoleStrategy    string // "marker_group" or "all_groups"

	// File backend
	AuthFilePath string

	// HTTP API backend
	HTTPAPIURL                string
	HTTPAPITimeout            time.Duration
	HTTPAPIInsecureSkipVerify bool
	HTTPAPIAuthMode           string // Authentication mode: "none", "simple", or "hmac"
	HTTPAPIAuthSecret         string // Shared secret for authentication
	HTTPAPIAuthHeader         string // Custom header name for simple mode (default: "X-API-Secret")
	HTTPAPIMaxRetries         int    // Maximum retry attempts (default: 0, a backend failure is terminal)
	HTTPAPIRetryDelay         time.Duration
	HTTPAPIMaxRetryDelay      time.Duration

	// Identity sync locking
	SyncLockStore string // "memory" or "redis"
	SyncLockTTL   time.Duration

	// Redis
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	RedisConnTimeout time.Duration

	// Rate limiting
	EnableRateLimit bool
	RateLimitStore  string // "memory" or "redis"
	LoginRateLimit  int    // requests per minute per IP

	// Account lookup API; empty leaves GET /api/v1/users open
	AdminToken string

	// Metrics
	MetricsEnabled             bool
	MetricsToken               string        // Bearer token for /metrics; empty means no auth
	MetricsGaugeUpdateEnabled  bool          // periodically publish stored record counts
	MetricsGaugeUpdateInterval time.Duration // how often to refresh the counts
	MetricsCacheType           string        // "memory", "redis", or "redis-aside"
	MetricsCacheClientTTL      time.Duration // local copy lifetime for redis-aside
	MetricsCacheSizePerConn    int           // client-side cache size per connection in MB
}

func Load() *Config {
	// Load .env file if exists (ignore error if not found)
	_ = godotenv.Load()

	driver := getEnv("DATABASE_DRIVER", "sqlite")
	var dsn string
	if driver == "sqlite" {
		dsn = getEnv("DATABASE_DSN", getEnv("DATABASE_PATH", "authsync.db"))
	} else {
		dsn = getEnv("DATABASE_DSN", "")
	}

	return &Config{
		ServerAddr:   getEnv("SERVER_ADDR", ":8080"),
		IsProduction: getEnv("ENVIRONMENT", "development") == "production",

		DatabaseDriver: driver,
		DatabaseDSN:    dsn,
		DBInitTimeout:  getEnvDuration("DB_INIT_TIMEOUT", 30*time.Second),

		// Authentication
		AuthBackend:     getEnv("AUTH_BACKEND", AuthBackendFile),
		AuthDomain:      getEnv("AUTH_DOMAIN", "default"),
		RoleMarkerGroup: getEnv("ROLE_MARKER_GROUP", "Roles"),
		RoleStrategy:    getEnv("ROLE_STRATEGY", RoleStrategyMarkerGroup),

		AuthFilePath: getEnv("AUTH_FILE_PATH", "users.yaml"),

		// HTTP API backend
		HTTPAPIURL:                getEnv("HTTP_API_URL", ""),
		HTTPAPITimeout:            getEnvDuration("HTTP_API_TIMEOUT", 10*time.Second),
		HTTPAPIInsecureSkipVerify: getEnvBool("HTTP_API_INSECURE_SKIP_VERIFY", false),
		HTTPAPIAuthMode:           getEnv("HTTP_API_AUTH_MODE", "none"),
		HTTPAPIAuthSecret:         getEnv("HTTP_API_AUTH_SECRET", ""),
		HTTPAPIAuthHeader:         getEnv("HTTP_API_AUTH_HEADER", "X-API-Secret"),
		HTTPAPIMaxRetries:         getEnvInt("HTTP_API_MAX_RETRIES", 0),
		HTTPAPIRetryDelay:         getEnvDuration("HTTP_API_RETRY_DELAY", 1*time.Second),
		HTTPAPIMaxRetryDelay:      getEnvDuration("HTTP_API_MAX_RETRY_DELAY", 10*time.Second),

		// Identity sync locking
		SyncLockStore: getEnv("SYNC_LOCK_STORE", StoreMemory),
		SyncLockTTL:   getEnvDuration("SYNC_LOCK_TTL", 30*time.Second),

		// Redis
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		RedisConnTimeout: getEnvDuration("REDIS_CONN_TIMEOUT", 5*time.Second),

		// Rate limiting
		EnableRateLimit: getEnvBool("ENABLE_RATE_LIMIT", true),
		RateLimitStore:  getEnv("RATE_LIMIT_STORE", StoreMemory),
		LoginRateLimit:  getEnvInt("LOGIN_RATE_LIMIT", 10),

		AdminToken: getEnv("ADMIN_TOKEN", ""),

		MetricsEnabled:             getEnvBool("METRICS_ENABLED", false),
		MetricsToken:               getEnv("METRICS_TOKEN", ""),
		MetricsGaugeUpdateEnabled:  getEnvBool("METRICS_GAUGE_UPDATE_ENABLED", true),
		MetricsGaugeUpdateInterval: getEnvDuration("METRICS_GAUGE_UPDATE_INTERVAL", 5*time.Minute),
		MetricsCacheType:           getEnv("METRICS_CACHE_TYPE", MetricsCacheTypeMemory),
		MetricsCacheClientTTL:      getEnvDuration("METRICS_CACHE_CLIENT_TTL", 30*time.Second),
		MetricsCacheSizePerConn:    getEnvInt("METRICS_CACHE_SIZE_PER_CONN", 32),
	}
}

// AuthSettings returns the immutable per-attempt authentication settings.
func (c *Config) AuthSettings() core.AuthSettings {
	return core.AuthSettings{
		BackendDomain:   c.AuthDomain,
		RoleMarkerGroup: c.RoleMarkerGroup,
	}
}

// UsesRedis reports whether any component needs a Redis connection.
func (c *Config) UsesRedis() bool {
	return c.SyncLockStore == StoreRedis ||
		(c.EnableRateLimit && c.RateLimitStore == StoreRedis)
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.DatabaseDriver != "sqlite" && c.DatabaseDriver != "postgres" {
		return fmt.Errorf("invalid DATABASE_DRIVER: %s (must be: sqlite, postgres)", c.DatabaseDriver)
	}
	if c.DatabaseDSN == "" {
		return errors.New("DATABASE_DSN is required")
	}

	switch c.AuthBackend {
	case AuthBackendFile:
		if c.AuthFilePath == "" {
			return errors.New("AUTH_FILE_PATH is required when AUTH_BACKEND=file")
		}
	case AuthBackendHTTPAPI:
		if c.HTTPAPIURL == "" {
			return errors.New("HTTP_API_URL is required when AUTH_BACKEND=http_api")
		}
	default:
		return fmt.Errorf("invalid AUTH_BACKEND: %s (must be: file, http_api)", c.AuthBackend)
	}

	if strings.TrimSpace(c.AuthDomain) == "" {
		return errors.New("AUTH_DOMAIN must not be empty")
	}
	if strings.TrimSpace(c.RoleMarkerGroup) == "" && c.RoleStrategy == RoleStrategyMarkerGroup {
		return errors.New("ROLE_MARKER_GROUP must not be empty")
	}

	switch c.RoleStrategy {
	case RoleStrategyMarkerGroup, RoleStrategyAllGroups:
	default:
		return fmt.Errorf(
			"invalid ROLE_STRATEGY: %s (must be: marker_group, all_groups)",
			c.RoleStrategy,
		)
	}

	if c.SyncLockStore != StoreMemory && c.SyncLockStore != StoreRedis {
		return fmt.Errorf("invalid SYNC_LOCK_STORE: %s (must be: memory, redis)", c.SyncLockStore)
	}
	if c.SyncLockStore == StoreRedis && c.SyncLockTTL <= 0 {
		return errors.New("SYNC_LOCK_TTL must be positive when SYNC_LOCK_STORE=redis")
	}

	if c.EnableRateLimit {
		if c.RateLimitStore != StoreMemory && c.RateLimitStore != StoreRedis {
			return fmt.Errorf("invalid RATE_LIMIT_STORE: %s (must be: memory, redis)", c.RateLimitStore)
		}
		if c.LoginRateLimit <= 0 {
			return errors.New("LOGIN_RATE_LIMIT must be positive when rate limiting is enabled")
		}
	}

	if c.MetricsEnabled && c.MetricsGaugeUpdateEnabled {
		if c.MetricsGaugeUpdateInterval <= 0 {
			return errors.New("METRICS_GAUGE_UPDATE_INTERVAL must be positive")
		}
		switch c.MetricsCacheType {
		case MetricsCacheTypeMemory, MetricsCacheTypeRedis:
		case MetricsCacheTypeRedisAside:
			if c.MetricsCacheSizePerConn <= 0 {
				return errors.New("METRICS_CACHE_SIZE_PER_CONN must be positive for redis-aside")
			}
		default:
			return fmt.Errorf(
				"invalid METRICS_CACHE_TYPE: %s (must be: memory, redis, redis-aside)",
				c.MetricsCacheType,
			)
		}
	}

	if c.HTTPAPIMaxRetries < 0 {
		return errors.New("HTTP_API_MAX_RETRIES must not be negative")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1"
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var i int
		if _, err := fmt.Sscanf(value, "%d", &i); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
