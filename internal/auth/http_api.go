package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	retry "github.com/appleboy/go-httpretry"

	"github.com/go-authgate/authsync/internal/config"
	"github.com/go-authgate/authsync/internal/core"
)

const BackendHTTPAPI = "http_api"

// HTTPAPIBackend handles HTTP API-based authentication
type HTTPAPIBackend struct {
	config      *config.Config
	retryClient *retry.Client
}

// NewHTTPAPIBackend creates a new HTTP API authentication backend
func NewHTTPAPIBackend(cfg *config.Config, retryClient *retry.Client) *HTTPAPIBackend {
	return &HTTPAPIBackend{
		config:      cfg,
		retryClient: retryClient,
	}
}

// APIAuthRequest is the request payload sent to external API
type APIAuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// APIAuthResponse is the expected response from external API.
// Groups maps a group name to its member names; member order is kept.
type APIAuthResponse struct {
	Success bool                `json:"success"`
	UserID  string              `json:"user_id,omitempty"`
	Groups  map[string][]string `json:"groups,omitempty"`
	Message string              `json:"message,omitempty"`
}

// Login collects the credentials through the handler and verifies them
// against the external HTTP API. The password is requested through a
// generic text input, so only handlers that can set arbitrary values
// will answer it.
func (b *HTTPAPIBackend) Login(ctx context.Context, handler core.CallbackHandler) (*core.Subject, error) {
	nameCB := NewNameCallback("username")
	secretCB := NewTextInputCallback("password")

	if err := handler.Handle(ctx, []core.Callback{nameCB, secretCB}); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrLoginFailed, err)
	}

	username, ok := nameCB.Name()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingCallbackValue, nameCB.Prompt())
	}
	if secretCB.Value() == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingCallbackValue, secretCB.Prompt())
	}

	authResp, err := b.authenticate(ctx, username, secretCB.Value())
	if err != nil {
		return nil, err
	}

	subject := &core.Subject{Principals: []core.Principal{UserPrincipal(username)}}
	for _, name := range sortedKeys(authResp.Groups) {
		subject.Principals = append(subject.Principals, NewGroupPrincipal(name, authResp.Groups[name]...))
	}
	return subject, nil
}

func (b *HTTPAPIBackend) authenticate(
	ctx context.Context,
	username, password string,
) (*APIAuthResponse, error) {
	jsonData, err := json.Marshal(APIAuthRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	// Authentication headers are automatically added by the HTTP client
	resp, err := b.retryClient.Post(
		ctx,
		b.config.HTTPAPIURL,
		retry.WithBody("application/json", bytes.NewBuffer(jsonData)),
	)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		// Retries exhausted on an HTTP status still carry the last response.
		var retryErr *retry.RetryError
		if !errors.As(err, &retryErr) || retryErr.LastStatus == 0 || resp == nil {
			return nil, fmt.Errorf("%w: %v", ErrHTTPAPIConnection, err)
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response", ErrHTTPAPIInvalidResp)
	}

	// Check HTTP status code before attempting to parse JSON
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var authResp APIAuthResponse
		if err := json.Unmarshal(body, &authResp); err == nil && authResp.Message != "" {
			return nil, fmt.Errorf(
				"%w: HTTP %d - %s",
				ErrHTTPAPIAuthFailed,
				resp.StatusCode,
				authResp.Message,
			)
		}
		// Limit body preview to 200 characters to avoid overwhelming logs
		bodyPreview := string(body)
		if len(bodyPreview) > 200 {
			bodyPreview = bodyPreview[:200] + "..."
		}
		return nil, fmt.Errorf(
			"%w: HTTP %d - %s",
			ErrHTTPAPIInvalidResp,
			resp.StatusCode,
			bodyPreview,
		)
	}

	var authResp APIAuthResponse
	if err := json.Unmarshal(body, &authResp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTTPAPIInvalidResp, err)
	}

	if !authResp.Success {
		return nil, ErrHTTPAPIAuthFailed
	}

	if authResp.UserID == "" {
		return nil, fmt.Errorf(
			"%w: external API returned success=true but missing user_id",
			ErrHTTPAPIInvalidResp,
		)
	}

	return &authResp, nil
}

// Name returns backend name for logging
func (b *HTTPAPIBackend) Name() string {
	return BackendHTTPAPI
}
