package models

import "time"

// Role is a named role observed in a backend principal graph.
type Role struct {
	ID        string    `gorm:"primaryKey;size:36"            json:"id"`
	Name      string    `gorm:"uniqueIndex;not null;size:255" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for Role.
func (Role) TableName() string {
	return "roles"
}
