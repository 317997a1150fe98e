// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"gatekeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionManager issues, validates and revokes opaque session tokens.
// Raw tokens only ever leave through Create; everything stored is a digest.
type SessionManager interface {
	// Create issues a session for accountID and returns the raw token.
	Create(ctx context.Context, accountID uuid.UUID, meta entity.SessionMetadata) (string, *entity.Session, error)
	// Validate resolves a token to its account. Unknown, expired and revoked
	// tokens all yield domainerrors.ErrSessionInvalid.
	Validate(ctx context.Context, token string) (uuid.UUID, error)
	// Revoke ends an active session. Only the first of concurrent calls succeeds;
	// the others, and calls for inactive tokens, get ErrSessionInvalid.
	Revoke(ctx context.Context, token string) error
	RevokeAll(ctx context.Context, accountID uuid.UUID) (int, error)
	ListActive(ctx context.Context, accountID uuid.UUID) ([]*entity.Session, error)
	// PurgeExpired deletes sessions inactive for longer than the retention window.
	PurgeExpired(ctx context.Context) (int, error)
}
