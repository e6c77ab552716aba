package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isForeignKeyConstraintViolation(err error) bool {
	// Check for GORM's foreign key violation error (requires TranslateError)
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	// SQLite reports the violation without a translatable code
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key constraint failed") ||
		strings.Contains(errMsg, "23503") // PostgreSQL foreign_key_violation error code
}

func isNotNullConstraintViolation(err error) bool {
	// Check error message for PostgreSQL-specific not null constraint violation patterns
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}
