package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-authgate/authsync/internal/client"
	"github.com/go-authgate/authsync/internal/config"
	"github.com/go-authgate/authsync/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig creates a config for testing with retries disabled
func testConfig(url string) *config.Config {
	return &config.Config{
		HTTPAPIURL:        url,
		HTTPAPITimeout:    10 * time.Second,
		HTTPAPIAuthMode:   "none",
		HTTPAPIAuthHeader: "X-API-Secret",
		HTTPAPIMaxRetries: 0, // Disable retries for predictable test behavior
	}
}

// createTestBackend is a helper function for tests to create a backend
func createTestBackend(t *testing.T, cfg *config.Config) *HTTPAPIBackend {
	t.Helper()
	retryClient, err := client.NewAuthAPIClient(cfg)
	require.NoError(t, err)
	return NewHTTPAPIBackend(cfg, retryClient)
}

func aliceHandler() core.CallbackHandler {
	return NewCredentialHandler(core.Credential{LoginID: "alice", Secret: "pw"})
}

func TestHTTPAPIBackend_Login_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req APIAuthRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)
		assert.Equal(t, "pw", req.Password)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(APIAuthResponse{
			Success: true,
			UserID:  "ext-user-123",
			Groups: map[string][]string{
				"Roles": {"admin", "user"},
				"Other": {"x"},
			},
		})
	}))
	defer server.Close()

	backend := createTestBackend(t, testConfig(server.URL))
	subject, err := backend.Login(context.Background(), aliceHandler())
	require.NoError(t, err)

	require.Len(t, subject.Principals, 3)
	assert.Equal(t, "alice", subject.Principals[0].Name())
	// Groups are ordered by name
	assert.Equal(t, "Other", subject.Principals[1].Name())
	assert.Equal(t, "Roles", subject.Principals[2].Name())

	group, ok := subject.Principals[2].(core.Group)
	require.True(t, ok)
	members, err := group.Members()
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "admin", members[0].Name())
	assert.Equal(t, "user", members[1].Name())
}

func TestHTTPAPIBackend_Login_MissingUserID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(APIAuthResponse{Success: true})
	}))
	defer server.Close()

	backend := createTestBackend(t, testConfig(server.URL))
	subject, err := backend.Login(context.Background(), aliceHandler())

	assert.Nil(t, subject)
	assert.ErrorIs(t, err, ErrHTTPAPIInvalidResp)
	assert.ErrorIs(t, err, core.ErrLoginFailed)
}

func TestHTTPAPIBackend_Login_AuthFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(APIAuthResponse{
			Success: false,
			Message: "Invalid credentials",
		})
	}))
	defer server.Close()

	backend := createTestBackend(t, testConfig(server.URL))
	subject, err := backend.Login(context.Background(), aliceHandler())

	assert.Nil(t, subject)
	assert.ErrorIs(t, err, ErrHTTPAPIAuthFailed)
}

func TestHTTPAPIBackend_Login_Non2xxStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(APIAuthResponse{
			Success: false,
			Message: "Unauthorized access",
		})
	}))
	defer server.Close()

	backend := createTestBackend(t, testConfig(server.URL))
	_, err := backend.Login(context.Background(), aliceHandler())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHTTPAPIAuthFailed)
	assert.Contains(t, err.Error(), "Unauthorized access")
}

func TestHTTPAPIBackend_Login_Non2xxWithoutJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer server.Close()

	backend := createTestBackend(t, testConfig(server.URL))
	_, err := backend.Login(context.Background(), aliceHandler())

	assert.ErrorIs(t, err, ErrHTTPAPIInvalidResp)
	assert.Contains(t, err.Error(), "HTTP 502")
}

func TestHTTPAPIBackend_Login_Non2xxReleasesConnection(t *testing.T) {
	var newConns atomic.Int32
	server := httptest.NewUnstartedServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	server.Config.ConnState = func(_ net.Conn, state http.ConnState) {
		if state == http.StateNew {
			newConns.Add(1)
		}
	}
	server.Start()
	defer server.Close()

	backend := createTestBackend(t, testConfig(server.URL))
	for range 10 {
		_, err := backend.Login(context.Background(), aliceHandler())
		require.ErrorIs(t, err, ErrHTTPAPIInvalidResp)
		assert.Contains(t, err.Error(), "HTTP 502 - upstream down")
	}

	// Each response body is drained and closed, so the keep-alive connection is reused.
	assert.Equal(t, int32(1), newConns.Load())
}

func TestHTTPAPIBackend_Login_RetriesExhaustedOnStatus(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(APIAuthResponse{Success: false, Message: "maintenance"})
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.HTTPAPIMaxRetries = 2
	cfg.HTTPAPIRetryDelay = time.Millisecond
	cfg.HTTPAPIMaxRetryDelay = 5 * time.Millisecond
	backend := createTestBackend(t, cfg)

	_, err := backend.Login(context.Background(), aliceHandler())
	require.ErrorIs(t, err, ErrHTTPAPIAuthFailed)
	assert.NotErrorIs(t, err, ErrHTTPAPIConnection)
	assert.Contains(t, err.Error(), "HTTP 503 - maintenance")
	assert.Equal(t, int32(3), calls.Load())
}

func TestHTTPAPIBackend_Login_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("invalid json"))
	}))
	defer server.Close()

	backend := createTestBackend(t, testConfig(server.URL))
	_, err := backend.Login(context.Background(), aliceHandler())

	assert.ErrorIs(t, err, ErrHTTPAPIInvalidResp)
}

func TestHTTPAPIBackend_Login_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	backend := createTestBackend(t, testConfig(url))
	_, err := backend.Login(context.Background(), aliceHandler())

	assert.ErrorIs(t, err, ErrHTTPAPIConnection)
	assert.ErrorIs(t, err, core.ErrLoginFailed)
}

func TestHTTPAPIBackend_Login_SecretNotNegotiated(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	backend := createTestBackend(t, testConfig(server.URL))
	_, err := backend.Login(context.Background(), silentHandler{})

	assert.ErrorIs(t, err, ErrMissingCallbackValue)
	assert.False(t, called, "the API must not be called without credentials")
}

// TestHTTPAPIBackend_SimpleAuth_CustomHeader tests Simple auth mode with custom header
func TestHTTPAPIBackend_SimpleAuth_CustomHeader(t *testing.T) {
	const testSecret = "auth-secret-key-456" //nolint:gosec // Test secret, not production
	const customHeader = "X-Internal-Auth"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(customHeader) != testSecret {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(APIAuthResponse{
				Success: false,
				Message: "Invalid auth token",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(APIAuthResponse{
			Success: true,
			UserID:  "ext-user-456",
		})
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.HTTPAPIAuthMode = "simple"
	cfg.HTTPAPIAuthSecret = testSecret
	cfg.HTTPAPIAuthHeader = customHeader

	backend := createTestBackend(t, cfg)
	subject, err := backend.Login(context.Background(), aliceHandler())
	require.NoError(t, err)
	require.Len(t, subject.Principals, 1)
	assert.Equal(t, "alice", subject.Principals[0].Name())
}

func TestHTTPAPIBackend_Name(t *testing.T) {
	backend := createTestBackend(t, testConfig("http://localhost"))
	assert.Equal(t, "http_api", backend.Name())
}
