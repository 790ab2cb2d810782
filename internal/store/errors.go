package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrRecordNotFound wraps GORM's not found error for consistency
	ErrRecordNotFound = errors.New("record not found")

	// ErrDuplicateUser is returned when a user with the same login name exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrDuplicateRole is returned when a role with the same name exists
	ErrDuplicateRole = errors.New("role already exists")

	// ErrDuplicateGrant is returned when the user already holds the role
	ErrDuplicateGrant = errors.New("grant already exists")
)

// convertNotFoundError maps gorm.ErrRecordNotFound to ErrRecordNotFound.
func convertNotFoundError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	return err
}

// isUniqueConstraintError reports whether err is a unique key violation.
// TranslateError covers the bundled drivers; the string checks catch
// registered drivers without a translator.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "duplicate key value violates unique constraint")
}
