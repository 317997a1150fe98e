// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"gatekeeper/config"
	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// sessionManager implements the SessionManager interface.
type sessionManager struct {
	repo            repository.SessionRepository
	tokens          service.TokenGenerator
	clock           service.Clock
	ttl             time.Duration
	sliding         bool
	slidingInterval time.Duration
	retention       time.Duration
	logger          *slog.Logger
}

// SessionManagerParams holds dependencies for SessionManager, injected by Fx.
type SessionManagerParams struct {
	fx.In

	Repo   repository.SessionRepository
	Tokens service.TokenGenerator
	Clock  service.Clock
	Config *config.Config
	Logger *slog.Logger
}

// NewSessionManager is the constructor for sessionManager. Config is expected
// to have passed config.Validate, which fills every session default.
func NewSessionManager(params SessionManagerParams) usecase.SessionManager {
	cfg := params.Config.Session

	return &sessionManager{
		repo:            params.Repo,
		tokens:          params.Tokens,
		clock:           params.Clock,
		ttl:             cfg.TTL,
		sliding:         cfg.Sliding,
		slidingInterval: cfg.SlidingInterval,
		retention:       cfg.Retention,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (mgr *sessionManager) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, mgr.logger)
}

func (mgr *sessionManager) Create(ctx context.Context, accountID uuid.UUID, meta entity.SessionMetadata) (string, *entity.Session, error) {
	token, err := mgr.tokens.Generate()
	if err != nil {
		mgr.log(ctx).Error("Failed to generate session token", slog.Any("error", err))

		return "", nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", nil, errors.Wrap(domainerrors.ErrTokenGenerationFailed, err.Error())
	}

	now := mgr.clock.Now()
	session := &entity.Session{
		ID:         id,
		AccountID:  accountID,
		TokenHash:  mgr.tokens.Digest(token),
		IssuedAt:   now,
		ExpiresAt:  now.Add(mgr.ttl),
		LastSeenAt: now,
		UserAgent:  meta.UserAgent,
		IPAddress:  meta.IPAddress,
	}

	if err := mgr.repo.Create(ctx, session); err != nil {
		mgr.log(ctx).Error("Failed to store session", slog.Any("account_id", accountID), slog.Any("error", err))

		return "", nil, errors.Wrap(err, "failed to store session")
	}

	mgr.log(ctx).Debug("Session created",
		slog.Any("account_id", accountID),
		slog.Any("session_id", session.ID),
		slog.Time("expires_at", session.ExpiresAt),
	)

	return token, session, nil
}

func (mgr *sessionManager) Validate(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, errors.WithStack(domainerrors.ErrSessionInvalid)
	}

	hash := mgr.tokens.Digest(token)
	session, err := mgr.repo.FindByTokenHash(ctx, hash)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return uuid.Nil, errors.WithStack(domainerrors.ErrSessionInvalid)
		}

		return uuid.Nil, errors.Wrap(err, "failed to load session")
	}

	now := mgr.clock.Now()
	if state := session.State(now); state != entity.SessionActive {
		mgr.log(ctx).Debug("Rejected inactive session", slog.Any("session_id", session.ID), slog.String("state", string(state)))

		return uuid.Nil, errors.WithStack(domainerrors.ErrSessionInvalid)
	}

	if mgr.sliding && now.Sub(session.LastSeenAt) >= mgr.slidingInterval {
		mgr.extend(ctx, session, now)
	}

	return session.AccountID, nil
}

// extend pushes expiry to now+TTL. Touch only matches active sessions, so a
// concurrent revoke is never undone.
func (mgr *sessionManager) extend(ctx context.Context, session *entity.Session, now time.Time) {
	err := mgr.repo.Touch(ctx, session.TokenHash, now, now.Add(mgr.ttl))
	switch {
	case err == nil:
		mgr.log(ctx).Debug("Session extended", slog.Any("session_id", session.ID))
	case errors.Is(err, repository.ErrSessionNotFound):
	default:
		mgr.log(ctx).Warn("Failed to extend session", slog.Any("session_id", session.ID), slog.Any("error", err))
	}
}

func (mgr *sessionManager) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return errors.WithStack(domainerrors.ErrSessionInvalid)
	}

	if err := mgr.repo.Revoke(ctx, mgr.tokens.Digest(token), mgr.clock.Now()); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return errors.WithStack(domainerrors.ErrSessionInvalid)
		}

		return errors.Wrap(err, "failed to revoke session")
	}

	return nil
}

func (mgr *sessionManager) RevokeAll(ctx context.Context, accountID uuid.UUID) (int, error) {
	count, err := mgr.repo.RevokeAllByAccountID(ctx, accountID, mgr.clock.Now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to revoke account sessions")
	}

	mgr.log(ctx).Info("Revoked all sessions", slog.Any("account_id", accountID), slog.Int("count", count))

	return count, nil
}

func (mgr *sessionManager) ListActive(ctx context.Context, accountID uuid.UUID) ([]*entity.Session, error) {
	sessions, err := mgr.repo.ListActiveByAccountID(ctx, accountID, mgr.clock.Now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}

	return sessions, nil
}

func (mgr *sessionManager) PurgeExpired(ctx context.Context) (int, error) {
	cutoff := mgr.clock.Now().Add(-mgr.retention)

	removed, err := mgr.repo.DeleteInactiveBefore(ctx, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge sessions")
	}

	return removed, nil
}
