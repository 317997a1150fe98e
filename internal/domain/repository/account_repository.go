// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/errors"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned by lookups that match no account.
var ErrAccountNotFound = errors.New("account not found")

// Unique fields reported in duplicate-account error details.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
)

// AccountRepository is the credential store.
type AccountRepository interface {
	// Create inserts account. Uniqueness of username and email is checked by the
	// storage engine in the same statement; a conflict yields
	// domainerrors.ErrAccountAlreadyExists with the offending field as details.
	Create(ctx context.Context, account *entity.Account) error

	// FindByUsername returns ErrAccountNotFound when no account matches.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// FindByID returns ErrAccountNotFound when no account matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)
}
