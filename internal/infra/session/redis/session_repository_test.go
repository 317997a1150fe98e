package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/infra/persistence/storetest"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRepository connects to REDIS_URL under a key prefix unique to the test.
func newTestRepository(t *testing.T) (repository.SessionRepository, *redis.Client, string) {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	opts, err := redis.ParseURL(url)
	require.NoError(t, err)

	rdb := redis.NewClient(opts)
	require.NoError(t, rdb.Ping(context.Background()).Err())

	prefix := "gatekeeper-test:" + uuid.NewString()[:8] + ":"
	t.Cleanup(func() {
		ctx := context.Background()
		iter := rdb.Scan(ctx, 0, prefix+"*", 100).Iterator()
		for iter.Next(ctx) {
			rdb.Del(ctx, iter.Val())
		}
		_ = rdb.Close()
	})

	return NewSessionRepository(rdb, prefix), rdb, prefix
}

func TestSessionRepositoryContract(t *testing.T) {
	repo, _, _ := newTestRepository(t)

	storetest.SessionRepository(t, repo, func(*testing.T) uuid.UUID {
		return uuid.New()
	})
}

func TestRecordExpiresWithSession(t *testing.T) {
	repo, rdb, prefix := newTestRepository(t)
	ctx := context.Background()

	session := storetest.NewSession(uuid.New(), storetest.Now(), time.Hour)
	require.NoError(t, repo.Create(ctx, session))

	ttl, err := rdb.PTTL(ctx, prefix+session.TokenHash).Result()
	require.NoError(t, err)
	assert.InDelta(t, time.Hour.Seconds(), ttl.Seconds(), 5)

	require.NoError(t, repo.Revoke(ctx, session.TokenHash, storetest.Now()))

	ttl, err = rdb.PTTL(ctx, prefix+session.TokenHash).Result()
	require.NoError(t, err)
	assert.Positive(t, ttl, "revocation keeps the record until expiry")
}

func TestDeleteInactiveBeforePrunesIndex(t *testing.T) {
	repo, rdb, prefix := newTestRepository(t)
	ctx := context.Background()
	now := storetest.Now()
	accountID := uuid.New()

	revoked := storetest.NewSession(accountID, now.Add(-48*time.Hour), 100*time.Hour)
	active := storetest.NewSession(accountID, now, time.Hour)
	require.NoError(t, repo.Create(ctx, revoked))
	require.NoError(t, repo.Create(ctx, active))
	require.NoError(t, repo.Revoke(ctx, revoked.TokenHash, now.Add(-47*time.Hour)))

	// An index entry whose record is gone.
	require.NoError(t, rdb.SAdd(ctx, prefix+"account:"+accountID.String(), "dangling").Err())

	removed, err := repo.DeleteInactiveBefore(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	members, err := rdb.SMembers(ctx, prefix+"account:"+accountID.String()).Result()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{active.TokenHash}, members)
}

func TestCreateSetsExpiryWithRecord(t *testing.T) {
	repo, rdb, prefix := newTestRepository(t)
	ctx := context.Background()

	session := storetest.NewSession(uuid.New(), storetest.Now(), time.Hour)

	// A wrong-typed index key makes the index step fail after the record is written.
	require.NoError(t, rdb.Set(ctx, prefix+"account:"+session.AccountID.String(), "not-a-set", time.Minute).Err())
	require.Error(t, repo.Create(ctx, session))

	ttl, err := rdb.PTTL(ctx, prefix+session.TokenHash).Result()
	require.NoError(t, err)
	assert.Positive(t, ttl, "record carries its expiry even when indexing fails")

	assert.Error(t, repo.Create(ctx, session), "token hash already stored")
	ttl, err = rdb.PTTL(ctx, prefix+session.TokenHash).Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)
}

func TestKeyExpiryRoundsUp(t *testing.T) {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{name: "whole second", in: base, want: base},
		{name: "fraction", in: base.Add(time.Millisecond), want: base.Add(time.Second)},
		{name: "just below next second", in: base.Add(999 * time.Millisecond), want: base.Add(time.Second)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keyExpiry(tt.in))
		})
	}
}
