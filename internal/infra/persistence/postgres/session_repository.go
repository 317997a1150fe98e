package postgres

import (
	"context"
	"time"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const activeSession = "revoked_at IS NULL AND expires_at > ?"

// sessionRepository implements repository.SessionRepository using GORM.
// Every read goes to the primary: a revocation must be visible immediately.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (repo *sessionRepository) primary(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Write)
}

func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	if err := repo.db.WithContext(ctx).Create(model.FromSessionDomain(session)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	return nil
}

func (repo *sessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	var sessionM model.SessionModel
	if err := repo.primary(ctx).Where("token_hash = ?", tokenHash).First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load session")
	}

	return sessionM.ToDomain(), nil
}

func (repo *sessionRepository) Touch(ctx context.Context, tokenHash string, lastSeen, expiresAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("token_hash = ? AND "+activeSession, tokenHash, lastSeen).
		Updates(map[string]any{
			"last_seen_at": lastSeen,
			"expires_at":   expiresAt,
		})

	return requireAffected(result, "failed to touch session")
}

// Revoke is a conditional update: of several concurrent callers exactly one
// matches the row.
func (repo *sessionRepository) Revoke(ctx context.Context, tokenHash string, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("token_hash = ? AND "+activeSession, tokenHash, at).
		Update("revoked_at", at)

	return requireAffected(result, "failed to revoke session")
}

func (repo *sessionRepository) RevokeAllByAccountID(ctx context.Context, accountID uuid.UUID, at time.Time) (int, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("account_id = ? AND "+activeSession, accountID, at).
		Update("revoked_at", at)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to revoke account sessions")
	}

	return int(result.RowsAffected), nil
}

func (repo *sessionRepository) ListActiveByAccountID(ctx context.Context, accountID uuid.UUID, now time.Time) ([]*entity.Session, error) {
	var sessionModels []*model.SessionModel
	err := repo.primary(ctx).
		Where("account_id = ? AND "+activeSession, accountID, now).
		Order("issued_at DESC").
		Find(&sessionModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list sessions")
	}

	sessions := make([]*entity.Session, 0, len(sessionModels))
	for _, sessionM := range sessionModels {
		sessions = append(sessions, sessionM.ToDomain())
	}

	return sessions, nil
}

func (repo *sessionRepository) DeleteInactiveBefore(ctx context.Context, cutoff time.Time) (int, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ? OR revoked_at < ?", cutoff, cutoff).
		Delete(&model.SessionModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to purge sessions")
	}

	return int(result.RowsAffected), nil
}

func requireAffected(result *gorm.DB, details string) error {
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, details)
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}
