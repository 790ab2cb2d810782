package models

import "time"

// Grant asserts that a user holds a role. The pair (UserID, RoleID) is unique.
type Grant struct {
	UserID    string    `gorm:"primaryKey;size:36" json:"user_id"`
	RoleID    string    `gorm:"primaryKey;size:36" json:"role_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for Grant.
func (Grant) TableName() string {
	return "grants"
}
