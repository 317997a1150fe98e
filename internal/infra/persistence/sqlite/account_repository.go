package sqlite

import (
	"context"
	"database/sql"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/errors"

	"github.com/google/uuid"
)

type accountRepository struct {
	db *sql.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *sql.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO accounts (id, username, email, password_hash, created_at) VALUES (?, ?, ?, ?, ?)`,
		account.ID.String(), account.Username, account.Email, account.PasswordHash, toMillis(account.CreatedAt),
	)
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.WithStack(domainerrors.ErrAccountAlreadyExists.WithDetails(conflictingAccountField(err)))
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	return nil
}

func (repo *accountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	row := repo.db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, created_at FROM accounts WHERE username = ?`, username)

	return scanAccount(row)
}

func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	row := repo.db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, created_at FROM accounts WHERE id = ?`, id.String())

	return scanAccount(row)
}

func scanAccount(row *sql.Row) (*entity.Account, error) {
	var (
		id        string
		createdAt int64
		account   entity.Account
	)

	if err := row.Scan(&id, &account.Username, &account.Email, &account.PasswordHash, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load account")
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.Wrapf(err, "corrupt account id %q", id)
	}
	account.ID = parsed
	account.CreatedAt = fromMillis(createdAt)

	return &account, nil
}
