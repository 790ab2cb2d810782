package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-authgate/authsync/internal/auth"
	"github.com/go-authgate/authsync/internal/core"
	"github.com/go-authgate/authsync/internal/models"
	"github.com/go-authgate/authsync/internal/roles"
)

// Status is the result of an authentication attempt.
type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusFailure Status = "FAILURE"
)

// Outcome is returned for every attempt that did not hit an internal error.
// Account is set only on success.
type Outcome struct {
	Status  Status
	Account *models.User
	Roles   []string // role names observed during this attempt
}

// Succeeded reports whether the attempt authenticated.
func (o *Outcome) Succeeded() bool {
	return o != nil && o.Status == StatusSuccess
}

// Authenticator verifies credentials against the configured backend and
// synchronizes the authenticated identity into the store.
type Authenticator struct {
	backends     *auth.Registry
	extractors   *roles.Registry
	synchronizer *IdentitySynchronizer
	settings     core.AuthSettings
	metrics      core.Recorder
}

func NewAuthenticator(
	backends *auth.Registry,
	extractors *roles.Registry,
	synchronizer *IdentitySynchronizer,
	settings core.AuthSettings,
	m core.Recorder,
) *Authenticator {
	return &Authenticator{
		backends:     backends,
		extractors:   extractors,
		synchronizer: synchronizer,
		settings:     settings,
		metrics:      m,
	}
}

// Settings returns the settings every attempt runs with.
func (a *Authenticator) Settings() core.AuthSettings {
	return a.settings
}

// Authenticate runs one attempt. A rejected login of any kind yields a
// FAILURE outcome with a nil error and leaves the store untouched. Errors
// are returned only for role extraction and store failures.
func (a *Authenticator) Authenticate(ctx context.Context, cred core.Credential) (*Outcome, error) {
	start := time.Now()
	domain := a.settings.BackendDomain

	backend, err := a.backends.Lookup(domain)
	if err != nil {
		log.Printf("[Auth] Failed for user=%s domain=%s: %v", cred.LoginID, domain, err)
		a.metrics.RecordAuthAttempt(domain, false, time.Since(start))
		return &Outcome{Status: StatusFailure}, nil
	}

	loginStart := time.Now()
	subject, err := backend.Login(ctx, auth.NewCredentialHandler(cred))
	a.metrics.RecordExternalAPICall(backend.Name(), time.Since(loginStart))
	if err != nil {
		log.Printf("[Auth] Failed for user=%s backend=%s: %v", cred.LoginID, backend.Name(), err)
		a.metrics.RecordAuthAttempt(backend.Name(), false, time.Since(start))
		return &Outcome{Status: StatusFailure}, nil
	}

	roleNames, err := a.extractors.For(backend.Name()).Extract(subject, a.settings.RoleMarkerGroup)
	if err != nil {
		return nil, fmt.Errorf("user %q: %w", cred.LoginID, err)
	}

	user, err := a.synchronizer.Sync(ctx, cred.LoginID, roleNames, WithAuthSource(backend.Name()))
	if err != nil {
		return nil, fmt.Errorf("failed to synchronize user %q: %w", cred.LoginID, err)
	}

	a.metrics.RecordAuthAttempt(backend.Name(), true, time.Since(start))
	log.Printf(
		"[Auth] Authenticated user=%s backend=%s roles=%v",
		cred.LoginID,
		backend.Name(),
		roleNames,
	)
	return &Outcome{Status: StatusSuccess, Account: user, Roles: roleNames}, nil
}
