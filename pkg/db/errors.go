package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// IsUniqueViolation reports whether the provided error references a sqlite
// unique constraint. When columnHint is provided, the helper looks for the
// column text in the error message.
func IsUniqueViolation(err error, columnHint string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if !strings.Contains(msg, "UNIQUE constraint failed") {
		return false
	}
	if columnHint == "" {
		return true
	}
	return strings.Contains(msg, columnHint)
}

// IsNotFound reports whether the error means the queried row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
