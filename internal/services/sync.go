package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-authgate/authsync/internal/core"
	"github.com/go-authgate/authsync/internal/models"
	"github.com/go-authgate/authsync/internal/store"
)

// Identity kinds used for metrics labels
const (
	KindUser  = "user"
	KindRole  = "role"
	KindGrant = "grant"
)

// IdentitySynchronizer makes the store reflect an authenticated login:
// the user exists, every observed role exists, and the user holds each one.
// Grants are only ever added.
type IdentitySynchronizer struct {
	store   core.IdentityStore
	locker  core.KeyLocker
	metrics core.Recorder
}

func NewIdentitySynchronizer(
	s core.IdentityStore,
	locker core.KeyLocker,
	m core.Recorder,
) *IdentitySynchronizer {
	return &IdentitySynchronizer{
		store:   s,
		locker:  locker,
		metrics: m,
	}
}

type syncOptions struct {
	authSource string
}

// SyncOption customizes a single Sync call.
type SyncOption func(*syncOptions)

// WithAuthSource records the backend that created the user. An existing
// user keeps its original source.
func WithAuthSource(source string) SyncOption {
	return func(o *syncOptions) {
		o.authSource = source
	}
}

// Sync ensures loginName and its roles are persisted and returns the stored
// user. Calls for the same login name are serialized through the locker;
// conflicting creates from other processes are resolved by re-querying.
func (s *IdentitySynchronizer) Sync(
	ctx context.Context,
	loginName string,
	roleNames []string,
	opts ...SyncOption,
) (*models.User, error) {
	var o syncOptions
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	defer func() {
		s.metrics.RecordSyncDuration(time.Since(start))
	}()

	unlock, err := s.locker.Lock(ctx, loginName)
	if err != nil {
		return nil, fmt.Errorf("failed to lock user %q: %w", loginName, err)
	}
	defer unlock()

	user, err := s.ensureUser(ctx, loginName, o.authSource)
	if err != nil {
		return nil, err
	}

	for _, name := range roleNames {
		role, err := s.ensureRole(ctx, name)
		if err != nil {
			return nil, err
		}
		if err := s.ensureGrant(ctx, user, role); err != nil {
			return nil, err
		}
	}

	return user, nil
}

func (s *IdentitySynchronizer) ensureUser(
	ctx context.Context,
	loginName, authSource string,
) (*models.User, error) {
	user, err := s.store.GetUserByLoginName(ctx, loginName)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user %q: %w", loginName, err)
	}

	err = s.store.CreateUser(ctx, &models.User{LoginName: loginName, AuthSource: authSource})
	switch {
	case err == nil:
		s.metrics.RecordIdentityCreated(KindUser)
		log.Printf("[Sync] Created user=%s source=%s", loginName, authSource)
	case errors.Is(err, store.ErrDuplicateUser):
		s.metrics.RecordSyncConflict(KindUser)
		log.Printf("[Sync] User=%s created concurrently, re-reading", loginName)
	default:
		return nil, fmt.Errorf("failed to create user %q: %w", loginName, err)
	}

	// Re-query so callers get the canonical record
	user, err = s.store.GetUserByLoginName(ctx, loginName)
	if err != nil {
		return nil, fmt.Errorf("failed to reload user %q: %w", loginName, err)
	}
	return user, nil
}

func (s *IdentitySynchronizer) ensureRole(ctx context.Context, name string) (*models.Role, error) {
	role, err := s.store.GetRoleByName(ctx, name)
	if err == nil {
		return role, nil
	}
	if !errors.Is(err, store.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up role %q: %w", name, err)
	}

	err = s.store.CreateRole(ctx, &models.Role{Name: name})
	switch {
	case err == nil:
		s.metrics.RecordIdentityCreated(KindRole)
		log.Printf("[Sync] Created role=%s", name)
	case errors.Is(err, store.ErrDuplicateRole):
		s.metrics.RecordSyncConflict(KindRole)
	default:
		return nil, fmt.Errorf("failed to create role %q: %w", name, err)
	}

	role, err = s.store.GetRoleByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to reload role %q: %w", name, err)
	}
	return role, nil
}

func (s *IdentitySynchronizer) ensureGrant(
	ctx context.Context,
	user *models.User,
	role *models.Role,
) error {
	has, err := s.store.HasGrant(ctx, user.ID, role.ID)
	if err != nil {
		return fmt.Errorf("failed to check grant %s->%s: %w", user.LoginName, role.Name, err)
	}
	if has {
		return nil
	}

	err = s.store.CreateGrant(ctx, &models.Grant{UserID: user.ID, RoleID: role.ID})
	switch {
	case err == nil:
		s.metrics.RecordIdentityCreated(KindGrant)
		log.Printf("[Sync] Granted role=%s to user=%s", role.Name, user.LoginName)
	case errors.Is(err, store.ErrDuplicateGrant):
		s.metrics.RecordSyncConflict(KindGrant)
	default:
		return fmt.Errorf("failed to grant %s->%s: %w", user.LoginName, role.Name, err)
	}
	return nil
}
