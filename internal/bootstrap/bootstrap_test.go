package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-authgate/authsync/internal/auth"
	"github.com/go-authgate/authsync/internal/config"
	"github.com/go-authgate/authsync/internal/lock"
	"github.com/go-authgate/authsync/internal/metrics"
	"github.com/go-authgate/authsync/internal/mocks"
	"github.com/go-authgate/authsync/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		ServerAddr:      ":0",
		DatabaseDriver:  "sqlite",
		DatabaseDSN:     ":memory:",
		DBInitTimeout:   5 * time.Second,
		AuthBackend:     config.AuthBackendFile,
		AuthDomain:      "corp",
		RoleMarkerGroup: "Roles",
		RoleStrategy:    config.RoleStrategyMarkerGroup,
		AuthFilePath:    writeUserFile(t),
		SyncLockStore:   config.StoreMemory,
		EnableRateLimit: false,
		RateLimitStore:  config.StoreMemory,
		LoginRateLimit:  10,
	}
}

func writeUserFile(t *testing.T) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	content := `users:
  - username: alice
    password_hash: "` + string(hash) + `"
    groups:
      - name: Roles
        members: [user, admin]
      - name: staff
        members: [alice]
`
	path := filepath.Join(t.TempDir(), "users.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestValidateAllConfiguration(t *testing.T) {
	cfg := testConfig(t)
	assert.NoError(t, validateAllConfiguration(cfg))

	cfg.AuthBackend = config.AuthBackendHTTPAPI
	err := validateAllConfiguration(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_API_URL is required")

	cfg = testConfig(t)
	cfg.DatabaseDriver = "oracle"
	err = validateAllConfiguration(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid DATABASE_DRIVER")
}

func TestInitializeMetrics(t *testing.T) {
	for _, enabled := range []bool{true, false} {
		cfg := &config.Config{MetricsEnabled: enabled}
		m := initializeMetrics(cfg)
		require.NotNil(t, m)
	}
}

func TestInitializeRedisClient_NotNeeded(t *testing.T) {
	cfg := testConfig(t)
	client, err := initializeRedisClient(context.Background(), cfg)
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestInitializeLoginBackend(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		backend, err := initializeLoginBackend(testConfig(t))
		require.NoError(t, err)
		assert.Equal(t, auth.BackendFile, backend.Name())
	})

	t.Run("file missing", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.AuthFilePath = filepath.Join(t.TempDir(), "missing.yaml")
		_, err := initializeLoginBackend(cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, auth.ErrUserDatabase)
	})

	t.Run("http_api", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.AuthBackend = config.AuthBackendHTTPAPI
		cfg.HTTPAPIURL = "http://auth.example.com/verify"
		cfg.HTTPAPIAuthMode = "none"
		cfg.HTTPAPITimeout = time.Second
		backend, err := initializeLoginBackend(cfg)
		require.NoError(t, err)
		assert.Equal(t, auth.BackendHTTPAPI, backend.Name())
	})

	t.Run("unknown", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.AuthBackend = "ldap"
		_, err := initializeLoginBackend(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid AUTH_BACKEND")
	})
}

func TestInitializeBackendRegistry(t *testing.T) {
	registry, err := initializeBackendRegistry(testConfig(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"corp"}, registry.Domains())
	backend, err := registry.Lookup("corp")
	require.NoError(t, err)
	assert.Equal(t, auth.BackendFile, backend.Name())

	_, err = registry.Lookup("other")
	assert.Error(t, err)
}

func TestInitializeRoleExtractors(t *testing.T) {
	cfg := testConfig(t)
	registry, err := initializeRoleExtractors(cfg)
	require.NoError(t, err)
	assert.NotNil(t, registry.For(auth.BackendFile))
	assert.NotNil(t, registry.For(auth.BackendHTTPAPI))

	cfg.RoleStrategy = "bogus"
	_, err = initializeRoleExtractors(cfg)
	assert.Error(t, err)
}

func TestInitializeSyncLocker(t *testing.T) {
	cfg := testConfig(t)
	locker := initializeSyncLocker(cfg, nil)
	assert.IsType(t, &lock.MemoryLocker{}, locker)

	// Redis requested but no client available falls back to memory
	cfg.SyncLockStore = config.StoreRedis
	locker = initializeSyncLocker(cfg, nil)
	assert.IsType(t, &lock.MemoryLocker{}, locker)
}

func TestSetupRateLimiting(t *testing.T) {
	cfg := testConfig(t)
	limiters, err := setupRateLimiting(cfg, nil)
	require.NoError(t, err)
	assert.NotNil(t, limiters.login)

	cfg.EnableRateLimit = true
	limiters, err = setupRateLimiting(cfg, nil)
	require.NoError(t, err)
	assert.NotNil(t, limiters.login)

	cfg.RateLimitStore = config.StoreRedis
	_, err = setupRateLimiting(cfg, nil)
	assert.Error(t, err)
}

// newTestApplication wires every layer except the listening server.
func newTestApplication(t *testing.T, cfg *config.Config) *Application {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := &Application{Config: cfg}
	require.NoError(t, validateAllConfiguration(cfg))
	require.NoError(t, app.initializeInfrastructure(context.Background()))
	t.Cleanup(func() { _ = app.DB.Close() })
	require.NoError(t, app.initializeBusinessLayer())
	require.NoError(t, app.initializeHTTPLayer())
	return app
}

func TestApplication_LoginAndLookup(t *testing.T) {
	cfg := testConfig(t)
	cfg.AdminToken = "admin-token"
	app := newTestApplication(t, cfg)

	body := `{"username":"alice","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"status":"SUCCESS"`)
	assert.Contains(t, w.Body.String(), `"roles":["user","admin"]`)

	// Wrong password leaves a failure and no error
	body = `{"username":"alice","password":"nope"}`
	req = httptest.NewRequest(http.MethodPost, "/api/v1/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Account lookup requires the admin token
	req = httptest.NewRequest(http.MethodGet, "/api/v1/users/alice", nil)
	w = httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/users/alice", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	w = httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"login_name":"alice"`)
	assert.Contains(t, w.Body.String(), `"auth_source":"file"`)

	users, err := app.DB.CountUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), users)
}

func TestApplication_Health(t *testing.T) {
	app := newTestApplication(t, testConfig(t))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"connected"`)
}

type fakeHealth struct{ err error }

func (f fakeHealth) Health(context.Context) error { return f.err }

func TestCreateHealthCheckHandler_Unhealthy(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", createHealthCheckHandler(fakeHealth{err: errors.New("down")}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"unhealthy"`)
}

func TestSetupMetricsEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("disabled", func(t *testing.T) {
		r := gin.New()
		setupMetricsEndpoint(r, &config.Config{MetricsEnabled: false})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("token protected", func(t *testing.T) {
		metrics.Init(true)
		r := gin.New()
		setupMetricsEndpoint(r, &config.Config{MetricsEnabled: true, MetricsToken: "tok"})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		req.Header.Set("Authorization", "Bearer tok")
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "go_goroutines")
	})
}

type fakeCounter struct {
	users, roles, grants int64
	rolesErr             error
}

func (f fakeCounter) CountUsers(context.Context) (int64, error)  { return f.users, nil }
func (f fakeCounter) CountRoles(context.Context) (int64, error)  { return f.roles, f.rolesErr }
func (f fakeCounter) CountGrants(context.Context) (int64, error) { return f.grants, nil }

func TestUpdateIdentityGauges(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockRecorder(ctrl)

	m.EXPECT().SetIdentityCount(services.KindUser, int64(3))
	m.EXPECT().SetIdentityCount(services.KindGrant, int64(5))
	m.EXPECT().RecordDatabaseQueryError("count_roles")

	updateIdentityGauges(
		context.Background(),
		fakeCounter{users: 3, grants: 5, rolesErr: errors.New("boom")},
		m,
	)
}

func TestErrorLogger_RateLimited(t *testing.T) {
	l := newErrorLogger()
	err := errors.New("boom")

	assert.True(t, l.logIfNeeded("count_users", err))
	assert.False(t, l.logIfNeeded("count_users", err))
	assert.True(t, l.logIfNeeded("count_roles", err))

	l.lastErrorTimes["count_users"] = time.Now().Add(-10 * time.Minute)
	assert.True(t, l.logIfNeeded("count_users", err))
}

func TestInitializeMetricsCache(t *testing.T) {
	ctx := context.Background()

	// Gauge job off, no cache
	c, err := initializeMetricsCache(ctx, &config.Config{MetricsEnabled: false})
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = initializeMetricsCache(ctx, &config.Config{
		MetricsEnabled:            true,
		MetricsGaugeUpdateEnabled: true,
		MetricsCacheType:          config.MetricsCacheTypeMemory,
	})
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.NoError(t, c.Close())
}
