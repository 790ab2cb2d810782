package core

import (
	"context"

	"github.com/go-authgate/authsync/internal/models"
)

// IdentityStore defines the primitives the identity synchronizer needs.
// Lookups return store.ErrRecordNotFound when nothing matches.
type IdentityStore interface {
	GetUserByLoginName(ctx context.Context, loginName string) (*models.User, error)
	GetRoleByName(ctx context.Context, name string) (*models.Role, error)
	CreateUser(ctx context.Context, user *models.User) error
	CreateRole(ctx context.Context, role *models.Role) error
	CreateGrant(ctx context.Context, grant *models.Grant) error
	HasGrant(ctx context.Context, userID, roleID string) (bool, error)
}

// KeyLocker provides mutual exclusion keyed by an arbitrary string.
// The returned unlock function must be called exactly once.
type KeyLocker interface {
	Lock(ctx context.Context, key string) (func(), error)
}
