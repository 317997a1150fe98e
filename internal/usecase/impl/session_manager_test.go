package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/infra/auth"
	"gatekeeper/internal/infra/session/memory"
	mockRepo "gatekeeper/internal/mocks/repository"
	mockService "gatekeeper/internal/mocks/service"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	manager usecase.SessionManager
	repo    repository.SessionRepository
	clock   *fakeClock
	tokens  service.TokenGenerator
}

func newSessionFixture(t *testing.T, mutate func(cfg *config.Config)) *sessionFixture {
	t.Helper()

	f := &sessionFixture{
		repo:   memory.NewSessionRepository(),
		clock:  newFakeClock(),
		tokens: auth.NewOpaqueTokenGenerator(),
	}
	f.manager = NewSessionManager(SessionManagerParams{
		Repo:   f.repo,
		Tokens: f.tokens,
		Clock:  f.clock,
		Config: newTestConfig(mutate),
		Logger: newDiscardLogger(),
	})

	return f
}

func TestSessionManager_CreateAndValidate(t *testing.T) {
	f := newSessionFixture(t, nil)
	ctx := context.Background()
	accountID := uuid.New()

	token, session, err := f.manager.Create(ctx, accountID, entity.SessionMetadata{UserAgent: "curl/8", IPAddress: "10.0.0.1"})
	require.NoError(t, err)

	assert.Len(t, token, 43)
	assert.Equal(t, f.tokens.Digest(token), session.TokenHash)
	assert.NotContains(t, session.TokenHash, token)
	assert.Equal(t, f.clock.Now().Add(time.Hour), session.ExpiresAt)

	stored, err := f.repo.FindByTokenHash(ctx, session.TokenHash)
	require.NoError(t, err)
	assert.Equal(t, "curl/8", stored.UserAgent)
	assert.Equal(t, "10.0.0.1", stored.IPAddress)

	got, err := f.manager.Validate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, accountID, got)
}

func TestSessionManager_ValidateRejects(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		token func(t *testing.T, f *sessionFixture) string
	}{
		{
			name:  "empty token",
			token: func(*testing.T, *sessionFixture) string { return "" },
		},
		{
			name:  "unknown token",
			token: func(*testing.T, *sessionFixture) string { return "never-issued" },
		},
		{
			name: "expired at exactly TTL",
			token: func(t *testing.T, f *sessionFixture) string {
				token, _, err := f.manager.Create(ctx, uuid.New(), entity.SessionMetadata{})
				require.NoError(t, err)
				f.clock.Advance(time.Hour)

				return token
			},
		},
		{
			name: "revoked",
			token: func(t *testing.T, f *sessionFixture) string {
				token, _, err := f.manager.Create(ctx, uuid.New(), entity.SessionMetadata{})
				require.NoError(t, err)
				require.NoError(t, f.manager.Revoke(ctx, token))

				return token
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSessionFixture(t, nil)

			_, err := f.manager.Validate(ctx, tt.token(t, f))
			assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
		})
	}
}

func TestSessionManager_ValidJustBeforeExpiry(t *testing.T) {
	f := newSessionFixture(t, nil)
	ctx := context.Background()

	token, _, err := f.manager.Create(ctx, uuid.New(), entity.SessionMetadata{})
	require.NoError(t, err)

	f.clock.Advance(time.Hour - time.Millisecond)
	_, err = f.manager.Validate(ctx, token)
	assert.NoError(t, err)
}

func TestSessionManager_RevokeTwice(t *testing.T) {
	f := newSessionFixture(t, nil)
	ctx := context.Background()

	token, _, err := f.manager.Create(ctx, uuid.New(), entity.SessionMetadata{})
	require.NoError(t, err)

	require.NoError(t, f.manager.Revoke(ctx, token))
	assert.ErrorIs(t, f.manager.Revoke(ctx, token), domainerrors.ErrSessionInvalid)
	assert.ErrorIs(t, f.manager.Revoke(ctx, "unknown"), domainerrors.ErrSessionInvalid)
}

func TestSessionManager_RevokeExpired(t *testing.T) {
	f := newSessionFixture(t, nil)
	ctx := context.Background()

	token, _, err := f.manager.Create(ctx, uuid.New(), entity.SessionMetadata{})
	require.NoError(t, err)

	f.clock.Advance(2 * time.Hour)
	assert.ErrorIs(t, f.manager.Revoke(ctx, token), domainerrors.ErrSessionInvalid)
}

func TestSessionManager_ConcurrentRevoke(t *testing.T) {
	f := newSessionFixture(t, nil)
	ctx := context.Background()

	token, _, err := f.manager.Create(ctx, uuid.New(), entity.SessionMetadata{})
	require.NoError(t, err)

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
	)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if f.manager.Revoke(ctx, token) == nil {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, succeeded.Load())
}

func TestSessionManager_Sliding(t *testing.T) {
	f := newSessionFixture(t, func(cfg *config.Config) {
		cfg.Session.Sliding = true
		cfg.Session.SlidingInterval = 10 * time.Minute
	})
	ctx := context.Background()

	token, session, err := f.manager.Create(ctx, uuid.New(), entity.SessionMetadata{})
	require.NoError(t, err)

	// Within the interval nothing is written.
	f.clock.Advance(5 * time.Minute)
	_, err = f.manager.Validate(ctx, token)
	require.NoError(t, err)
	stored, err := f.repo.FindByTokenHash(ctx, session.TokenHash)
	require.NoError(t, err)
	assert.Equal(t, session.ExpiresAt, stored.ExpiresAt)

	// Past the interval expiry moves to now + TTL.
	f.clock.Advance(50 * time.Minute)
	_, err = f.manager.Validate(ctx, token)
	require.NoError(t, err)
	stored, err = f.repo.FindByTokenHash(ctx, session.TokenHash)
	require.NoError(t, err)
	assert.Equal(t, f.clock.Now().Add(time.Hour), stored.ExpiresAt)

	// Beyond the original expiry the session is still valid.
	f.clock.Advance(30 * time.Minute)
	_, err = f.manager.Validate(ctx, token)
	assert.NoError(t, err)
}

func TestSessionManager_NoSlidingByDefault(t *testing.T) {
	f := newSessionFixture(t, nil)
	ctx := context.Background()

	token, session, err := f.manager.Create(ctx, uuid.New(), entity.SessionMetadata{})
	require.NoError(t, err)

	f.clock.Advance(50 * time.Minute)
	_, err = f.manager.Validate(ctx, token)
	require.NoError(t, err)

	stored, err := f.repo.FindByTokenHash(ctx, session.TokenHash)
	require.NoError(t, err)
	assert.Equal(t, session.ExpiresAt, stored.ExpiresAt)
}

func TestSessionManager_RevokeAllAndList(t *testing.T) {
	f := newSessionFixture(t, nil)
	ctx := context.Background()
	accountID := uuid.New()

	first, _, err := f.manager.Create(ctx, accountID, entity.SessionMetadata{})
	require.NoError(t, err)
	f.clock.Advance(time.Second)
	_, second, err := f.manager.Create(ctx, accountID, entity.SessionMetadata{})
	require.NoError(t, err)
	other, _, err := f.manager.Create(ctx, uuid.New(), entity.SessionMetadata{})
	require.NoError(t, err)

	active, err := f.manager.ListActive(ctx, accountID)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, second.ID, active[0].ID)

	count, err := f.manager.RevokeAll(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, err = f.manager.Validate(ctx, first)
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
	_, err = f.manager.Validate(ctx, other)
	assert.NoError(t, err)
}

func TestSessionManager_PurgeExpired(t *testing.T) {
	f := newSessionFixture(t, func(cfg *config.Config) {
		cfg.Session.Retention = 24 * time.Hour
	})
	ctx := context.Background()

	_, old, err := f.manager.Create(ctx, uuid.New(), entity.SessionMetadata{})
	require.NoError(t, err)

	f.clock.Advance(26 * time.Hour)
	_, fresh, err := f.manager.Create(ctx, uuid.New(), entity.SessionMetadata{})
	require.NoError(t, err)

	removed, err := f.manager.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = f.repo.FindByTokenHash(ctx, old.TokenHash)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
	_, err = f.repo.FindByTokenHash(ctx, fresh.TokenHash)
	assert.NoError(t, err)
}

func TestSessionManager_StoreFailures(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("connection reset")

	repo := mockRepo.NewMockSessionRepository(t)
	tokens := mockService.NewMockTokenGenerator(t)
	clock := mockService.NewMockClock(t)
	clock.EXPECT().Now().Return(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).Maybe()

	manager := NewSessionManager(SessionManagerParams{
		Repo:   repo,
		Tokens: tokens,
		Clock:  clock,
		Config: newTestConfig(nil),
		Logger: newDiscardLogger(),
	})

	t.Run("token generation", func(t *testing.T) {
		tokens.EXPECT().Generate().Return("", domainerrors.ErrTokenGenerationFailed).Once()

		_, _, err := manager.Create(ctx, uuid.New(), entity.SessionMetadata{})
		assert.ErrorIs(t, err, domainerrors.ErrTokenGenerationFailed)
	})

	t.Run("create", func(t *testing.T) {
		tokens.EXPECT().Generate().Return("tok", nil).Once()
		tokens.EXPECT().Digest("tok").Return("digest").Once()
		repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Session")).Return(storeErr).Once()

		_, _, err := manager.Create(ctx, uuid.New(), entity.SessionMetadata{})
		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("validate is not an auth failure", func(t *testing.T) {
		tokens.EXPECT().Digest("tok").Return("digest").Once()
		repo.EXPECT().FindByTokenHash(ctx, "digest").Return(nil, storeErr).Once()

		_, err := manager.Validate(ctx, "tok")
		assert.ErrorIs(t, err, storeErr)
		assert.NotErrorIs(t, err, domainerrors.ErrSessionInvalid)
	})

	t.Run("revoke", func(t *testing.T) {
		tokens.EXPECT().Digest("tok").Return("digest").Once()
		repo.EXPECT().Revoke(ctx, "digest", mock.Anything).Return(storeErr).Once()

		err := manager.Revoke(ctx, "tok")
		assert.ErrorIs(t, err, storeErr)
		assert.NotErrorIs(t, err, domainerrors.ErrSessionInvalid)
	})
}
