// Package entity contains the core business objects of the credential service.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered identity. Username and Email are each globally unique.
type Account struct {
	ID           uuid.UUID // Server-assigned identifier (UUIDv7).
	Username     string    // Normalized login name.
	Email        string    // Normalized contact address.
	PasswordHash string    // bcrypt output with embedded salt and cost. Never leaves the service.
	CreatedAt    time.Time // Registration time.
}

// Redacted returns a copy of the account without its password hash.
func (a *Account) Redacted() *Account {
	if a == nil {
		return nil
	}

	clone := *a
	clone.PasswordHash = ""

	return &clone
}
