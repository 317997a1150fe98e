package postgres

import (
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE unique_violation
const uniqueViolationCode = "23505"

const (
	usernameConstraint = "accounts_username_key"
	emailConstraint    = "accounts_email_key"
)

func isUniqueConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}

	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// conflictingAccountField maps the violated constraint to the account field.
func conflictingAccountField(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ""
	}

	switch pgErr.ConstraintName {
	case usernameConstraint:
		return repository.FieldUsername
	case emailConstraint:
		return repository.FieldEmail
	default:
		return ""
	}
}
