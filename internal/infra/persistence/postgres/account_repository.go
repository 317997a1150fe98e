package postgres

import (
	"context"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// accountRepository implements repository.AccountRepository using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// Create inserts the account. Uniqueness is enforced by the table constraints,
// so concurrent registrations of the same name resolve to exactly one row.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if err := repo.db.WithContext(ctx).Create(model.FromAccountDomain(account)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.WithStack(domainerrors.ErrAccountAlreadyExists.WithDetails(conflictingAccountField(err)))
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	return nil
}

// FindByUsername reads from the primary so a login right after registration
// never misses on a lagging replica.
func (repo *accountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("username = ?", username).
		First(&accountM).Error

	return toAccount(&accountM, err)
}

func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error

	return toAccount(&accountM, err)
}

func toAccount(accountM *model.AccountModel, err error) (*entity.Account, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load account")
	}

	return accountM.ToDomain(), nil
}
