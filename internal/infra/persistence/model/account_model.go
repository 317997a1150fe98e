// Package model holds the GORM persistence models and their domain mappers.
package model

import (
	"time"

	"gatekeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"type:varchar(32);not null;uniqueIndex:accounts_username_key"`
	Email        string    `gorm:"type:varchar(320);not null;uniqueIndex:accounts_email_key"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// FromAccountDomain maps an account entity to its persistence model.
func FromAccountDomain(account *entity.Account) *AccountModel {
	return &AccountModel{
		ID:           account.ID,
		Username:     account.Username,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		CreatedAt:    account.CreatedAt,
	}
}

// ToDomain maps the model back to an account entity.
func (m *AccountModel) ToDomain() *entity.Account {
	return &entity.Account{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt.UTC(),
	}
}
