package models

import (
	"time"
)

// User is a persisted identity, keyed by the login name the backend accepted.
type User struct {
	ID         string `gorm:"primaryKey;size:36"            json:"id"`
	LoginName  string `gorm:"uniqueIndex;not null;size:255" json:"login_name"`
	AuthSource string `gorm:"size:50"                       json:"auth_source,omitempty"` // backend that first created the record

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Roles is filled by Store.GetUserWithRoles; it is not a column.
	Roles []Role `gorm:"-" json:"roles,omitempty"`
}

// TableName returns the table name for User.
func (User) TableName() string {
	return "users"
}

// RoleNames returns the names of the loaded roles.
// Roles must have been loaded with Store.GetUserWithRoles.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}

// HasRole reports whether one of the loaded roles has the given name.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}
