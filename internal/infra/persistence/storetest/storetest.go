// Package storetest holds behavioural checks shared by every AccountRepository
// and SessionRepository implementation.
package storetest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Now is a reference instant truncated to the coarsest precision any backend keeps.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// NewAccount builds an account with unique username and email derived from tag.
func NewAccount(tag string) *entity.Account {
	suffix := uuid.NewString()[:8]

	return &entity.Account{
		ID:           uuid.Must(uuid.NewV7()),
		Username:     fmt.Sprintf("%s_%s", tag, suffix),
		Email:        fmt.Sprintf("%s_%s@example.com", tag, suffix),
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderplacehold",
		CreatedAt:    Now(),
	}
}

// NewSession builds a session for accountID issued at issued with the given lifetime.
func NewSession(accountID uuid.UUID, issued time.Time, ttl time.Duration) *entity.Session {
	return &entity.Session{
		ID:         uuid.Must(uuid.NewV7()),
		AccountID:  accountID,
		TokenHash:  digest(uuid.NewString()),
		IssuedAt:   issued,
		ExpiresAt:  issued.Add(ttl),
		LastSeenAt: issued,
		UserAgent:  "storetest",
		IPAddress:  "127.0.0.1",
	}
}

func digest(s string) string {
	sum := sha256.Sum256([]byte(s))

	return hex.EncodeToString(sum[:])
}

// AccountRepository runs the credential store contract.
func AccountRepository(t *testing.T, repo repository.AccountRepository) {
	t.Helper()
	ctx := context.Background()

	t.Run("create and find", func(t *testing.T) {
		account := NewAccount("find")
		require.NoError(t, repo.Create(ctx, account))

		byName, err := repo.FindByUsername(ctx, account.Username)
		require.NoError(t, err)
		assert.Equal(t, account.ID, byName.ID)
		assert.Equal(t, account.Email, byName.Email)
		assert.Equal(t, account.PasswordHash, byName.PasswordHash)
		assert.True(t, account.CreatedAt.Equal(byName.CreatedAt))

		byID, err := repo.FindByID(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, account.Username, byID.Username)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.FindByUsername(ctx, "nobody_"+uuid.NewString()[:8])
		assert.ErrorIs(t, err, repository.ErrAccountNotFound)

		_, err = repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, repository.ErrAccountNotFound)
	})

	t.Run("duplicate username", func(t *testing.T) {
		first := NewAccount("dupname")
		require.NoError(t, repo.Create(ctx, first))

		second := NewAccount("other")
		second.Username = first.Username
		assertDuplicate(t, repo.Create(ctx, second), repository.FieldUsername)
	})

	t.Run("duplicate email", func(t *testing.T) {
		first := NewAccount("dupmail")
		require.NoError(t, repo.Create(ctx, first))

		second := NewAccount("other")
		second.Email = first.Email
		assertDuplicate(t, repo.Create(ctx, second), repository.FieldEmail)
	})

	t.Run("concurrent create with same username", func(t *testing.T) {
		const workers = 8
		username := NewAccount("race").Username

		var (
			wg        sync.WaitGroup
			successes atomic.Int32
			conflicts atomic.Int32
		)
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				account := NewAccount("race")
				account.Username = username
				err := repo.Create(ctx, account)
				switch {
				case err == nil:
					successes.Add(1)
				case errors.Is(err, domainerrors.ErrAccountAlreadyExists):
					conflicts.Add(1)
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}()
		}
		wg.Wait()

		assert.EqualValues(t, 1, successes.Load())
		assert.EqualValues(t, workers-1, conflicts.Load())

		_, err := repo.FindByUsername(ctx, username)
		require.NoError(t, err)
	})
}

func assertDuplicate(t *testing.T, err error, field string) {
	t.Helper()

	require.Error(t, err)
	require.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists), "got %v", err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, field, appErr.Details())
}

// SessionRepository runs the session store contract. seedAccount must return
// the id of an account that sessions may reference.
func SessionRepository(t *testing.T, repo repository.SessionRepository, seedAccount func(t *testing.T) uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	t.Run("create and find", func(t *testing.T) {
		now := Now()
		session := NewSession(seedAccount(t), now, time.Hour)
		require.NoError(t, repo.Create(ctx, session))

		found, err := repo.FindByTokenHash(ctx, session.TokenHash)
		require.NoError(t, err)
		assert.Equal(t, session.ID, found.ID)
		assert.Equal(t, session.AccountID, found.AccountID)
		assert.True(t, session.IssuedAt.Equal(found.IssuedAt))
		assert.True(t, session.ExpiresAt.Equal(found.ExpiresAt))
		assert.Nil(t, found.RevokedAt)
		assert.Equal(t, "storetest", found.UserAgent)
		assert.Equal(t, "127.0.0.1", found.IPAddress)
		assert.Equal(t, entity.SessionActive, found.State(now))
	})

	t.Run("unknown hash", func(t *testing.T) {
		_, err := repo.FindByTokenHash(ctx, "missing")
		assert.ErrorIs(t, err, repository.ErrSessionNotFound)
		assert.ErrorIs(t, repo.Revoke(ctx, "missing", Now()), repository.ErrSessionNotFound)
	})

	t.Run("revoke is single-shot", func(t *testing.T) {
		now := Now()
		session := NewSession(seedAccount(t), now, time.Hour)
		require.NoError(t, repo.Create(ctx, session))

		require.NoError(t, repo.Revoke(ctx, session.TokenHash, now))
		assert.ErrorIs(t, repo.Revoke(ctx, session.TokenHash, now), repository.ErrSessionNotFound)

		found, err := repo.FindByTokenHash(ctx, session.TokenHash)
		require.NoError(t, err)
		require.NotNil(t, found.RevokedAt)
		assert.Equal(t, entity.SessionRevoked, found.State(now))
	})

	t.Run("concurrent revoke", func(t *testing.T) {
		now := Now()
		session := NewSession(seedAccount(t), now, time.Hour)
		require.NoError(t, repo.Create(ctx, session))

		var (
			wg      sync.WaitGroup
			revoked atomic.Int32
		)
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := repo.Revoke(ctx, session.TokenHash, now); err == nil {
					revoked.Add(1)
				} else if !errors.Is(err, repository.ErrSessionNotFound) {
					t.Errorf("unexpected error: %v", err)
				}
			}()
		}
		wg.Wait()

		assert.EqualValues(t, 1, revoked.Load())
	})

	t.Run("expired session cannot be revoked or touched", func(t *testing.T) {
		now := Now()
		session := NewSession(seedAccount(t), now.Add(-2*time.Hour), time.Hour)
		require.NoError(t, repo.Create(ctx, session))

		assert.ErrorIs(t, repo.Revoke(ctx, session.TokenHash, now), repository.ErrSessionNotFound)
		assert.ErrorIs(t, repo.Touch(ctx, session.TokenHash, now, now.Add(time.Hour)), repository.ErrSessionNotFound)
	})

	t.Run("touch extends active session", func(t *testing.T) {
		now := Now()
		session := NewSession(seedAccount(t), now, time.Hour)
		require.NoError(t, repo.Create(ctx, session))

		later := now.Add(30 * time.Minute)
		newExpiry := later.Add(time.Hour)
		require.NoError(t, repo.Touch(ctx, session.TokenHash, later, newExpiry))

		found, err := repo.FindByTokenHash(ctx, session.TokenHash)
		require.NoError(t, err)
		assert.True(t, newExpiry.Equal(found.ExpiresAt))
		assert.True(t, later.Equal(found.LastSeenAt))
	})

	t.Run("list and revoke all", func(t *testing.T) {
		now := Now()
		accountID := seedAccount(t)

		older := NewSession(accountID, now.Add(-time.Minute), time.Hour)
		newer := NewSession(accountID, now, time.Hour)
		expired := NewSession(accountID, now.Add(-3*time.Hour), time.Hour)
		revoked := NewSession(accountID, now, time.Hour)
		for _, s := range []*entity.Session{older, newer, expired, revoked} {
			require.NoError(t, repo.Create(ctx, s))
		}
		require.NoError(t, repo.Revoke(ctx, revoked.TokenHash, now))

		other := NewSession(seedAccount(t), now, time.Hour)
		require.NoError(t, repo.Create(ctx, other))

		active, err := repo.ListActiveByAccountID(ctx, accountID, now)
		require.NoError(t, err)
		require.Len(t, active, 2)
		assert.Equal(t, newer.ID, active[0].ID)
		assert.Equal(t, older.ID, active[1].ID)

		count, err := repo.RevokeAllByAccountID(ctx, accountID, now)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		active, err = repo.ListActiveByAccountID(ctx, accountID, now)
		require.NoError(t, err)
		assert.Empty(t, active)

		_, err = repo.FindByTokenHash(ctx, other.TokenHash)
		require.NoError(t, err)
		require.NoError(t, repo.Revoke(ctx, other.TokenHash, now), "other accounts are untouched")
	})
}
