// Package memory keeps sessions in process memory. Sessions do not survive a
// restart and are not shared between instances.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/errors"

	"github.com/google/uuid"
)

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*entity.Session
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository() repository.SessionRepository {
	return &sessionRepository{sessions: make(map[string]*entity.Session)}
}

func (repo *sessionRepository) Create(_ context.Context, session *entity.Session) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.sessions[session.TokenHash]; ok {
		return errors.Wrap(domainerrors.ErrSessionStoreFailed, "token hash already stored")
	}
	repo.sessions[session.TokenHash] = clone(session)

	return nil
}

func (repo *sessionRepository) FindByTokenHash(_ context.Context, tokenHash string) (*entity.Session, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	session, ok := repo.sessions[tokenHash]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}

	return clone(session), nil
}

func (repo *sessionRepository) Touch(_ context.Context, tokenHash string, lastSeen, expiresAt time.Time) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	session, ok := repo.sessions[tokenHash]
	if !ok || !session.IsActive(lastSeen) {
		return repository.ErrSessionNotFound
	}
	session.LastSeenAt = lastSeen
	session.ExpiresAt = expiresAt

	return nil
}

func (repo *sessionRepository) Revoke(_ context.Context, tokenHash string, at time.Time) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	session, ok := repo.sessions[tokenHash]
	if !ok || !session.IsActive(at) {
		return repository.ErrSessionNotFound
	}
	revokedAt := at
	session.RevokedAt = &revokedAt

	return nil
}

func (repo *sessionRepository) RevokeAllByAccountID(_ context.Context, accountID uuid.UUID, at time.Time) (int, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	count := 0
	for _, session := range repo.sessions {
		if session.AccountID != accountID || !session.IsActive(at) {
			continue
		}
		revokedAt := at
		session.RevokedAt = &revokedAt
		count++
	}

	return count, nil
}

func (repo *sessionRepository) ListActiveByAccountID(_ context.Context, accountID uuid.UUID, now time.Time) ([]*entity.Session, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var active []*entity.Session
	for _, session := range repo.sessions {
		if session.AccountID == accountID && session.IsActive(now) {
			active = append(active, clone(session))
		}
	}

	slices.SortFunc(active, func(a, b *entity.Session) int {
		return b.IssuedAt.Compare(a.IssuedAt)
	})

	return active, nil
}

func (repo *sessionRepository) DeleteInactiveBefore(_ context.Context, cutoff time.Time) (int, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	removed := 0
	for hash, session := range repo.sessions {
		expired := session.ExpiresAt.Before(cutoff)
		revoked := session.RevokedAt != nil && session.RevokedAt.Before(cutoff)
		if expired || revoked {
			delete(repo.sessions, hash)
			removed++
		}
	}

	return removed, nil
}

func clone(session *entity.Session) *entity.Session {
	copied := *session
	if session.RevokedAt != nil {
		revokedAt := *session.RevokedAt
		copied.RevokedAt = &revokedAt
	}

	return &copied
}
