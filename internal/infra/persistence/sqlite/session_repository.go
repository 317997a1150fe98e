package sqlite

import (
	"context"
	"database/sql"
	"time"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/errors"

	"github.com/google/uuid"
)

const sessionColumns = `id, account_id, token_hash, issued_at, expires_at, revoked_at, last_seen_at, user_agent, ip_address`

type sessionRepository struct {
	db *sql.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *sql.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	var revokedAt sql.NullInt64
	if session.RevokedAt != nil {
		revokedAt = sql.NullInt64{Int64: toMillis(*session.RevokedAt), Valid: true}
	}

	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO sessions (`+sessionColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		session.ID.String(),
		session.AccountID.String(),
		session.TokenHash,
		toMillis(session.IssuedAt),
		toMillis(session.ExpiresAt),
		revokedAt,
		toMillis(session.LastSeenAt),
		session.UserAgent,
		session.IPAddress,
	)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	return nil
}

func (repo *sessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	row := repo.db.QueryRowContext(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE token_hash = ?`, tokenHash)

	session, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load session")
	}

	return session, nil
}

func (repo *sessionRepository) Touch(ctx context.Context, tokenHash string, lastSeen, expiresAt time.Time) error {
	result, err := repo.db.ExecContext(ctx,
		`UPDATE sessions SET last_seen_at = ?, expires_at = ?
		 WHERE token_hash = ? AND revoked_at IS NULL AND expires_at > ?`,
		toMillis(lastSeen), toMillis(expiresAt), tokenHash, toMillis(lastSeen),
	)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to touch session")
	}

	return requireAffected(result)
}

func (repo *sessionRepository) Revoke(ctx context.Context, tokenHash string, at time.Time) error {
	result, err := repo.db.ExecContext(ctx,
		`UPDATE sessions SET revoked_at = ?
		 WHERE token_hash = ? AND revoked_at IS NULL AND expires_at > ?`,
		toMillis(at), tokenHash, toMillis(at),
	)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to revoke session")
	}

	return requireAffected(result)
}

func (repo *sessionRepository) RevokeAllByAccountID(ctx context.Context, accountID uuid.UUID, at time.Time) (int, error) {
	result, err := repo.db.ExecContext(ctx,
		`UPDATE sessions SET revoked_at = ?
		 WHERE account_id = ? AND revoked_at IS NULL AND expires_at > ?`,
		toMillis(at), accountID.String(), toMillis(at),
	)
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to revoke account sessions")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return int(affected), nil
}

func (repo *sessionRepository) ListActiveByAccountID(ctx context.Context, accountID uuid.UUID, now time.Time) ([]*entity.Session, error) {
	rows, err := repo.db.QueryContext(ctx,
		`SELECT `+sessionColumns+` FROM sessions
		 WHERE account_id = ? AND revoked_at IS NULL AND expires_at > ?
		 ORDER BY issued_at DESC`,
		accountID.String(), toMillis(now),
	)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list sessions")
	}
	defer rows.Close()

	var sessions []*entity.Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to scan session")
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to iterate sessions")
	}

	return sessions, nil
}

func (repo *sessionRepository) DeleteInactiveBefore(ctx context.Context, cutoff time.Time) (int, error) {
	result, err := repo.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE expires_at < ? OR revoked_at < ?`,
		toMillis(cutoff), toMillis(cutoff),
	)
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to purge sessions")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return int(affected), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*entity.Session, error) {
	var (
		id, accountID                   string
		issuedAt, expiresAt, lastSeenAt int64
		revokedAt                       sql.NullInt64
		session                         entity.Session
	)

	if err := row.Scan(
		&id, &accountID, &session.TokenHash,
		&issuedAt, &expiresAt, &revokedAt, &lastSeenAt,
		&session.UserAgent, &session.IPAddress,
	); err != nil {
		return nil, err
	}

	var err error
	if session.ID, err = uuid.Parse(id); err != nil {
		return nil, errors.Wrapf(err, "corrupt session id %q", id)
	}
	if session.AccountID, err = uuid.Parse(accountID); err != nil {
		return nil, errors.Wrapf(err, "corrupt account id %q", accountID)
	}

	session.IssuedAt = fromMillis(issuedAt)
	session.ExpiresAt = fromMillis(expiresAt)
	session.LastSeenAt = fromMillis(lastSeenAt)
	if revokedAt.Valid {
		t := fromMillis(revokedAt.Int64)
		session.RevokedAt = &t
	}

	return &session, nil
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.WithStack(err)
	}
	if affected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}
