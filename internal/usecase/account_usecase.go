package usecase

import (
	"context"
	"time"

	"gatekeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username string
	Password string
	Meta     entity.SessionMetadata
}

// --- Output DTOs ---

// LoginOutput carries the new session token. Account has no password hash.
type LoginOutput struct {
	Account   *entity.Account
	Token     string
	ExpiresAt time.Time
}

// SessionView describes one active session to its owner.
type SessionView struct {
	ID         uuid.UUID
	IssuedAt   time.Time
	ExpiresAt  time.Time
	LastSeenAt time.Time
	UserAgent  string
	IPAddress  string
	Current    bool
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer depends on.
type AccountUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.Account, error)
	Authenticate(ctx context.Context, input LoginInput) (*LoginOutput, error)
	GetProfile(ctx context.Context, token string) (*entity.Account, error)
	// Logout reports success even for unknown, expired or revoked tokens.
	Logout(ctx context.Context, token string) error
	LogoutAll(ctx context.Context, token string) (int, error)
	ListSessions(ctx context.Context, token string) ([]*SessionView, error)
}
