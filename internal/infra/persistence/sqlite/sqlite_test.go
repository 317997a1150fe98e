package sqlite

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/infra/persistence/storetest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SQLiteSuite struct {
	suite.Suite

	db       *sql.DB
	accounts repository.AccountRepository
	sessions repository.SessionRepository
}

func (s *SQLiteSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	path := filepath.Join(s.T().TempDir(), "gatekeeper.db")

	db, err := Open(context.Background(), path, logger)
	s.Require().NoError(err)

	s.db = db
	s.accounts = NewAccountRepository(db)
	s.sessions = NewSessionRepository(db)
}

func (s *SQLiteSuite) TearDownTest() {
	s.Require().NoError(s.db.Close())
}

func (s *SQLiteSuite) seedAccount(t *testing.T) uuid.UUID {
	account := storetest.NewAccount("owner")
	require.NoError(t, s.accounts.Create(context.Background(), account))

	return account.ID
}

func (s *SQLiteSuite) TestAccountContract() {
	storetest.AccountRepository(s.T(), s.accounts)
}

func (s *SQLiteSuite) TestSessionContract() {
	storetest.SessionRepository(s.T(), s.sessions, s.seedAccount)
}

func (s *SQLiteSuite) TestDeleteInactiveBefore() {
	ctx := context.Background()
	now := storetest.Now()
	accountID := s.seedAccount(s.T())

	active := storetest.NewSession(accountID, now, time.Hour)
	longExpired := storetest.NewSession(accountID, now.Add(-72*time.Hour), time.Hour)
	recentlyExpired := storetest.NewSession(accountID, now.Add(-90*time.Minute), time.Hour)
	oldRevoked := storetest.NewSession(accountID, now.Add(-48*time.Hour), 100*time.Hour)
	for _, session := range []*entity.Session{active, longExpired, recentlyExpired, oldRevoked} {
		s.Require().NoError(s.sessions.Create(ctx, session))
	}
	s.Require().NoError(s.sessions.Revoke(ctx, oldRevoked.TokenHash, now.Add(-47*time.Hour)))

	removed, err := s.sessions.DeleteInactiveBefore(ctx, now.Add(-24*time.Hour))
	s.Require().NoError(err)
	s.Equal(2, removed)

	_, err = s.sessions.FindByTokenHash(ctx, longExpired.TokenHash)
	s.ErrorIs(err, repository.ErrSessionNotFound)
	_, err = s.sessions.FindByTokenHash(ctx, oldRevoked.TokenHash)
	s.ErrorIs(err, repository.ErrSessionNotFound)

	_, err = s.sessions.FindByTokenHash(ctx, recentlyExpired.TokenHash)
	s.NoError(err, "expired within retention is kept")
	_, err = s.sessions.FindByTokenHash(ctx, active.TokenHash)
	s.NoError(err)
}

func (s *SQLiteSuite) TestSessionRequiresExistingAccount() {
	session := storetest.NewSession(uuid.New(), storetest.Now(), time.Hour)
	s.Error(s.sessions.Create(context.Background(), session))
}

func (s *SQLiteSuite) TestMigrationsAreIdempotent() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	path := filepath.Join(s.T().TempDir(), "twice.db")

	first, err := Open(context.Background(), path, logger)
	s.Require().NoError(err)
	s.Require().NoError(first.Close())

	second, err := Open(context.Background(), path, logger)
	s.Require().NoError(err)
	s.Require().NoError(second.Close())
}

func TestSQLiteSuite(t *testing.T) {
	suite.Run(t, new(SQLiteSuite))
}

func TestDSN(t *testing.T) {
	require.Equal(t,
		":memory:?_pragma=foreign_keys%281%29&_pragma=busy_timeout%285000%29",
		dsn(":memory:"))
	require.Contains(t, dsn("data.db"), "journal_mode%28WAL%29")
	require.Contains(t, dsn("file:data.db?cache=shared"), "cache=shared&_pragma=")
}
