package repository

import (
	"context"
	"time"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/errors"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when no session matches, or when a conditional
// write finds the session no longer active.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository persists sessions keyed by token hash. Implementations
// must make Revoke atomic: of two concurrent calls for the same hash, at most
// one returns nil.
type SessionRepository interface {
	// Create stores a new session.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash returns the session regardless of its state.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// Touch moves the expiry of an active session and records last use.
	Touch(ctx context.Context, tokenHash string, lastSeen, expiresAt time.Time) error

	// Revoke marks an active session (not revoked, expires_at > at) as revoked.
	// ErrSessionNotFound when nothing was active under tokenHash.
	Revoke(ctx context.Context, tokenHash string, at time.Time) error

	// RevokeAllByAccountID revokes every active session of the account and
	// returns how many changed.
	RevokeAllByAccountID(ctx context.Context, accountID uuid.UUID, at time.Time) (int, error)

	// ListActiveByAccountID returns sessions active at now, newest first.
	ListActiveByAccountID(ctx context.Context, accountID uuid.UUID, now time.Time) ([]*entity.Session, error)

	// DeleteInactiveBefore removes sessions that expired or were revoked before
	// cutoff and returns the number removed.
	DeleteInactiveBefore(ctx context.Context, cutoff time.Time) (int, error)
}
