package model

import (
	"time"

	"gatekeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'sessions' table. TokenHash is the hex SHA-256
// digest of the bearer token.
type SessionModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AccountID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	TokenHash  string     `gorm:"type:char(64);not null;uniqueIndex:sessions_token_hash_key"`
	IssuedAt   time.Time  `gorm:"not null"`
	ExpiresAt  time.Time  `gorm:"not null;index"`
	RevokedAt  *time.Time
	LastSeenAt time.Time `gorm:"not null"`
	UserAgent  string    `gorm:"type:text;not null;default:''"`
	IPAddress  string    `gorm:"type:varchar(45);not null;default:''"`
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}

// FromSessionDomain maps a session entity to its persistence model.
func FromSessionDomain(session *entity.Session) *SessionModel {
	return &SessionModel{
		ID:         session.ID,
		AccountID:  session.AccountID,
		TokenHash:  session.TokenHash,
		IssuedAt:   session.IssuedAt,
		ExpiresAt:  session.ExpiresAt,
		RevokedAt:  session.RevokedAt,
		LastSeenAt: session.LastSeenAt,
		UserAgent:  session.UserAgent,
		IPAddress:  session.IPAddress,
	}
}

// ToDomain maps the model back to a session entity. Times are normalized to UTC.
func (m *SessionModel) ToDomain() *entity.Session {
	session := &entity.Session{
		ID:         m.ID,
		AccountID:  m.AccountID,
		TokenHash:  m.TokenHash,
		IssuedAt:   m.IssuedAt.UTC(),
		ExpiresAt:  m.ExpiresAt.UTC(),
		LastSeenAt: m.LastSeenAt.UTC(),
		UserAgent:  m.UserAgent,
		IPAddress:  m.IPAddress,
	}
	if m.RevokedAt != nil {
		revokedAt := m.RevokedAt.UTC()
		session.RevokedAt = &revokedAt
	}

	return session
}
