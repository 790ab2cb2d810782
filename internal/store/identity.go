package store

import (
	"context"
	"time"

	"github.com/go-authgate/authsync/internal/core"
	"github.com/go-authgate/authsync/internal/models"

	"github.com/google/uuid"
)

// Ensure Store implements core.IdentityStore at compile time
var _ core.IdentityStore = (*Store)(nil)

// User operations

// GetUserByLoginName returns the user with an exact login name match.
func (s *Store) GetUserByLoginName(ctx context.Context, loginName string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).
		Where("login_name = ?", loginName).
		First(&user).Error; err != nil {
		return nil, convertNotFoundError(err)
	}
	return &user, nil
}

// GetUserWithRoles returns the user together with every role granted to it,
// ordered by grant time.
func (s *Store) GetUserWithRoles(ctx context.Context, loginName string) (*models.User, error) {
	user, err := s.GetUserByLoginName(ctx, loginName)
	if err != nil {
		return nil, err
	}
	roles, err := s.ListUserRoles(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.Roles = roles
	return user, nil
}

// CreateUser inserts a new user. An empty ID is replaced with a fresh UUID.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return ErrDuplicateUser
		}
		return err
	}
	return nil
}

// CountUsers returns the number of stored users.
func (s *Store) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error
	return count, err
}

// Role operations

// GetRoleByName returns the role with an exact name match.
func (s *Store) GetRoleByName(ctx context.Context, name string) (*models.Role, error) {
	var role models.Role
	if err := s.db.WithContext(ctx).
		Where("name = ?", name).
		First(&role).Error; err != nil {
		return nil, convertNotFoundError(err)
	}
	return &role, nil
}

// CreateRole inserts a new role. An empty ID is replaced with a fresh UUID.
func (s *Store) CreateRole(ctx context.Context, role *models.Role) error {
	if role.ID == "" {
		role.ID = uuid.New().String()
	}
	if err := s.db.WithContext(ctx).Create(role).Error; err != nil {
		if isUniqueConstraintError(err) {
			return ErrDuplicateRole
		}
		return err
	}
	return nil
}

// CountRoles returns the number of stored roles.
func (s *Store) CountRoles(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Role{}).Count(&count).Error
	return count, err
}

// Grant operations

// HasGrant reports whether the user already holds the role.
func (s *Store) HasGrant(ctx context.Context, userID, roleID string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.Grant{}).
		Where("user_id = ? AND role_id = ?", userID, roleID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateGrant links a user to a role.
func (s *Store) CreateGrant(ctx context.Context, grant *models.Grant) error {
	if grant.CreatedAt.IsZero() {
		grant.CreatedAt = time.Now()
	}
	if err := s.db.WithContext(ctx).Create(grant).Error; err != nil {
		if isUniqueConstraintError(err) {
			return ErrDuplicateGrant
		}
		return err
	}
	return nil
}

// ListUserRoles returns the roles granted to a user, oldest grant first.
func (s *Store) ListUserRoles(ctx context.Context, userID string) ([]models.Role, error) {
	roles := []models.Role{}
	if err := s.db.WithContext(ctx).
		Joins("JOIN grants ON grants.role_id = roles.id").
		Where("grants.user_id = ?", userID).
		Order("grants.created_at, roles.name").
		Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

// CountGrants returns the number of stored grants.
func (s *Store) CountGrants(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Grant{}).Count(&count).Error
	return count, err
}
