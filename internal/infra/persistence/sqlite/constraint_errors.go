package sqlite

import (
	"strings"

	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/errors"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

func isUniqueConstraintViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
			sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}

	return false
}

// conflictingAccountField names the unique column from the driver message,
// e.g. "UNIQUE constraint failed: accounts.email".
func conflictingAccountField(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "accounts.username"):
		return repository.FieldUsername
	case strings.Contains(msg, "accounts.email"):
		return repository.FieldEmail
	default:
		return ""
	}
}
