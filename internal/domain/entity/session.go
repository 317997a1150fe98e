package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionState is the lifecycle position of a session at a given instant.
type SessionState string

const (
	SessionActive  SessionState = "active"
	SessionExpired SessionState = "expired"
	SessionRevoked SessionState = "revoked"
)

// Session binds an opaque token to one account until expiry or revocation.
// Only the SHA-256 digest of the token is kept; the raw token is held by the client.
type Session struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	TokenHash  string
	IssuedAt   time.Time
	ExpiresAt  time.Time
	RevokedAt  *time.Time
	LastSeenAt time.Time
	UserAgent  string
	IPAddress  string
}

// State derives the session state at now. Revocation wins over expiry.
func (s *Session) State(now time.Time) SessionState {
	switch {
	case s.RevokedAt != nil:
		return SessionRevoked
	case !now.Before(s.ExpiresAt):
		return SessionExpired
	default:
		return SessionActive
	}
}

// IsActive reports whether the session is usable at now.
func (s *Session) IsActive(now time.Time) bool {
	return s.State(now) == SessionActive
}

// SessionMetadata is client information captured when a session is issued.
type SessionMetadata struct {
	UserAgent string
	IPAddress string
}
