package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func newLimitedRouter(t *testing.T, limiter gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(limiter)
	router.POST("/api/v1/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "SUCCESS"})
	})
	return router
}

func doRequest(router *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/login", nil)
	req.Header.Set("X-Forwarded-For", ip)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestNewMemoryRateLimiter(t *testing.T) {
	// Create memory-based rate limiter (5 requests per minute)
	limiter, err := NewMemoryRateLimiter(5)
	require.NoError(t, err)
	require.NotNil(t, limiter)

	router := newLimitedRouter(t, limiter)

	// First requests should succeed
	for i := range 5 {
		w := doRequest(router, "192.168.1.100")
		assert.Equal(t, http.StatusOK, w.Code, "Request %d should succeed", i+1)
	}

	// Next request should be rate limited
	w := doRequest(router, "192.168.1.100")
	assert.Equal(t, http.StatusTooManyRequests, w.Code, "Request should be rate limited")
	assert.Contains(t, w.Body.String(), "rate_limit_exceeded")
	assert.Contains(t, w.Body.String(), "Too many requests")
}

func TestRateLimiter_DifferentIPs(t *testing.T) {
	limiter, err := NewRateLimiter(RateLimitConfig{
		RequestsPerMinute: 2,
		StoreType:         RateLimitStoreMemory,
		CleanupInterval:   1 * time.Minute,
	})
	require.NoError(t, err)

	router := newLimitedRouter(t, limiter)

	for range 2 {
		assert.Equal(t, http.StatusOK, doRequest(router, "10.0.0.1").Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, doRequest(router, "10.0.0.1").Code)

	// A different client has its own budget
	assert.Equal(t, http.StatusOK, doRequest(router, "10.0.0.2").Code)
}

func TestNewRateLimiter_InvalidConfig(t *testing.T) {
	_, err := NewRateLimiter(RateLimitConfig{RequestsPerMinute: 0})
	assert.Error(t, err)

	_, err = NewRateLimiter(RateLimitConfig{
		RequestsPerMinute: 5,
		StoreType:         RateLimitStoreRedis,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a redis client")
}

// TestRedisRateLimiter_MultiInstance simulates multiple pods sharing Redis
func TestRedisRateLimiter_MultiInstance(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	// Recover from panic if Docker is not available
	defer func() {
		if r := recover(); r != nil {
			t.Skipf("Skipping Redis test: Docker not available (panic: %v)", r)
		}
	}()

	ctx := context.Background()
	container, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		t.Skipf("Redis not available: %v", err)
		return
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)
	sharedClient := redis.NewClient(opts)
	defer sharedClient.Close()

	newLimiter := func() gin.HandlerFunc {
		l, err := NewRateLimiter(RateLimitConfig{
			RequestsPerMinute: 5,
			StoreType:         RateLimitStoreRedis,
			RedisClient:       sharedClient,
			CleanupInterval:   1 * time.Minute,
		})
		require.NoError(t, err)
		return l
	}
	router1 := newLimitedRouter(t, newLimiter())
	router2 := newLimitedRouter(t, newLimiter())

	testIP := fmt.Sprintf("192.168.88.%d", time.Now().Second())

	// Make 3 requests to pod1
	for i := range 3 {
		assert.Equal(t, http.StatusOK, doRequest(router1, testIP).Code, "Pod1 request %d should succeed", i+1)
	}

	// Make 2 requests to pod2 (should succeed, total = 5)
	for i := range 2 {
		assert.Equal(t, http.StatusOK, doRequest(router2, testIP).Code, "Pod2 request %d should succeed", i+1)
	}

	// Next request to either pod should be rate limited (total would be 6)
	assert.Equal(
		t,
		http.StatusTooManyRequests,
		doRequest(router1, testIP).Code,
		"Shared rate limit should be enforced across pods",
	)
}
