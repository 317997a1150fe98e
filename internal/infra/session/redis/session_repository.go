package redis

import (
	"context"
	"encoding/json"
	"slices"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// maxTxRetries bounds optimistic-lock retries when a watched key changes under us.
const maxTxRetries = 16

// Each session lives at <prefix><tokenHash> as a JSON record whose key
// expires with the session. <prefix>account:<id> is a set of the account's
// token hashes; members outliving their record are pruned by the purge.
type sessionRepository struct {
	rdb    *redis.Client
	prefix string
}

type record struct {
	ID         uuid.UUID  `json:"id"`
	AccountID  uuid.UUID  `json:"accountId"`
	IssuedAt   time.Time  `json:"issuedAt"`
	ExpiresAt  time.Time  `json:"expiresAt"`
	RevokedAt  *time.Time `json:"revokedAt,omitempty"`
	LastSeenAt time.Time  `json:"lastSeenAt"`
	UserAgent  string     `json:"userAgent"`
	IPAddress  string     `json:"ipAddress"`
}

// New builds the repository from configuration.
func New(rdb *redis.Client, cfg *config.Config) repository.SessionRepository {
	return NewSessionRepository(rdb, cfg.Redis.KeyPrefix)
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(rdb *redis.Client, prefix string) repository.SessionRepository {
	return &sessionRepository{rdb: rdb, prefix: prefix}
}

func (repo *sessionRepository) sessionKey(tokenHash string) string {
	return repo.prefix + tokenHash
}

func (repo *sessionRepository) accountKey(accountID uuid.UUID) string {
	return repo.prefix + "account:" + accountID.String()
}

func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	payload, err := json.Marshal(toRecord(session))
	if err != nil {
		return storeError(err, "encode session")
	}

	// The record and its expiry are written by one SET, so a record without a
	// TTL never exists.
	err = repo.rdb.SetArgs(ctx, repo.sessionKey(session.TokenHash), payload, redis.SetArgs{
		Mode:     "NX",
		ExpireAt: keyExpiry(session.ExpiresAt),
	}).Err()
	switch {
	case errors.Is(err, redis.Nil):
		return errors.Wrap(domainerrors.ErrSessionStoreFailed, "token hash already stored")
	case err != nil:
		return storeError(err, "create session")
	}

	if err := repo.rdb.SAdd(ctx, repo.accountKey(session.AccountID), session.TokenHash).Err(); err != nil {
		return storeError(err, "index session")
	}

	return nil
}

// keyExpiry rounds up to whole seconds for EXAT. Reads check ExpiresAt
// itself, so the key may outlive the session by under a second.
func keyExpiry(expiresAt time.Time) time.Time {
	rounded := expiresAt.Truncate(time.Second)
	if rounded.Before(expiresAt) {
		rounded = rounded.Add(time.Second)
	}

	return rounded
}

func (repo *sessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	payload, err := repo.rdb.Get(ctx, repo.sessionKey(tokenHash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, storeError(err, "load session")
	}

	return decode(tokenHash, payload)
}

func (repo *sessionRepository) Touch(ctx context.Context, tokenHash string, lastSeen, expiresAt time.Time) error {
	return repo.update(ctx, tokenHash, lastSeen, func(session *entity.Session) {
		session.LastSeenAt = lastSeen
		session.ExpiresAt = expiresAt
	})
}

func (repo *sessionRepository) Revoke(ctx context.Context, tokenHash string, at time.Time) error {
	return repo.update(ctx, tokenHash, at, func(session *entity.Session) {
		revokedAt := at
		session.RevokedAt = &revokedAt
	})
}

// update applies mutate to an active session under WATCH so that concurrent
// writers to the same key serialize; the loser of a race sees the new state.
func (repo *sessionRepository) update(ctx context.Context, tokenHash string, now time.Time, mutate func(*entity.Session)) error {
	key := repo.sessionKey(tokenHash)

	txf := func(tx *redis.Tx) error {
		payload, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return repository.ErrSessionNotFound
			}

			return err
		}

		session, err := decode(tokenHash, payload)
		if err != nil {
			return err
		}
		if !session.IsActive(now) {
			return repository.ErrSessionNotFound
		}

		mutate(session)
		updated, err := json.Marshal(toRecord(session))
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, 0)
			pipe.PExpireAt(ctx, key, session.ExpiresAt)

			return nil
		})

		return err
	}

	for range maxTxRetries {
		err := repo.rdb.Watch(ctx, txf, key)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, redis.TxFailedErr):
			continue
		case errors.Is(err, repository.ErrSessionNotFound):
			return repository.ErrSessionNotFound
		default:
			return storeError(err, "update session")
		}
	}

	return errors.Wrap(domainerrors.ErrSessionStoreFailed, "session update contended")
}

func (repo *sessionRepository) RevokeAllByAccountID(ctx context.Context, accountID uuid.UUID, at time.Time) (int, error) {
	hashes, err := repo.rdb.SMembers(ctx, repo.accountKey(accountID)).Result()
	if err != nil {
		return 0, storeError(err, "list account sessions")
	}

	count := 0
	for _, hash := range hashes {
		err := repo.Revoke(ctx, hash, at)
		switch {
		case err == nil:
			count++
		case errors.Is(err, repository.ErrSessionNotFound):
		default:
			return count, err
		}
	}

	return count, nil
}

func (repo *sessionRepository) ListActiveByAccountID(ctx context.Context, accountID uuid.UUID, now time.Time) ([]*entity.Session, error) {
	hashes, err := repo.rdb.SMembers(ctx, repo.accountKey(accountID)).Result()
	if err != nil {
		return nil, storeError(err, "list account sessions")
	}
	if len(hashes) == 0 {
		return nil, nil
	}

	keys := make([]string, len(hashes))
	for i, hash := range hashes {
		keys[i] = repo.sessionKey(hash)
	}

	values, err := repo.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, storeError(err, "load account sessions")
	}

	var active []*entity.Session
	for i, value := range values {
		payload, ok := value.(string)
		if !ok {
			continue
		}
		session, err := decode(hashes[i], []byte(payload))
		if err != nil {
			return nil, err
		}
		if session.IsActive(now) {
			active = append(active, session)
		}
	}

	slices.SortFunc(active, func(a, b *entity.Session) int {
		return b.IssuedAt.Compare(a.IssuedAt)
	})

	return active, nil
}

// DeleteInactiveBefore removes sessions revoked before cutoff. Expired
// records are evicted by Redis itself; their index entries are pruned here.
func (repo *sessionRepository) DeleteInactiveBefore(ctx context.Context, cutoff time.Time) (int, error) {
	removed := 0

	iter := repo.rdb.Scan(ctx, 0, repo.prefix+"account:*", 100).Iterator()
	for iter.Next(ctx) {
		indexKey := iter.Val()

		hashes, err := repo.rdb.SMembers(ctx, indexKey).Result()
		if err != nil {
			return removed, storeError(err, "scan account sessions")
		}

		for _, hash := range hashes {
			session, err := repo.FindByTokenHash(ctx, hash)
			switch {
			case errors.Is(err, repository.ErrSessionNotFound):
				if err := repo.rdb.SRem(ctx, indexKey, hash).Err(); err != nil {
					return removed, storeError(err, "prune session index")
				}
				continue
			case err != nil:
				return removed, err
			}

			if session.RevokedAt == nil || !session.RevokedAt.Before(cutoff) {
				continue
			}

			_, err = repo.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Del(ctx, repo.sessionKey(hash))
				pipe.SRem(ctx, indexKey, hash)

				return nil
			})
			if err != nil {
				return removed, storeError(err, "purge session")
			}
			removed++
		}
	}

	if err := iter.Err(); err != nil {
		return removed, storeError(err, "scan account sessions")
	}

	return removed, nil
}

func toRecord(session *entity.Session) record {
	return record{
		ID:         session.ID,
		AccountID:  session.AccountID,
		IssuedAt:   session.IssuedAt,
		ExpiresAt:  session.ExpiresAt,
		RevokedAt:  session.RevokedAt,
		LastSeenAt: session.LastSeenAt,
		UserAgent:  session.UserAgent,
		IPAddress:  session.IPAddress,
	}
}

func decode(tokenHash string, payload []byte) (*entity.Session, error) {
	var r record
	if err := json.Unmarshal(payload, &r); err != nil {
		return nil, storeError(err, "decode session")
	}

	return &entity.Session{
		ID:         r.ID,
		AccountID:  r.AccountID,
		TokenHash:  tokenHash,
		IssuedAt:   r.IssuedAt,
		ExpiresAt:  r.ExpiresAt,
		RevokedAt:  r.RevokedAt,
		LastSeenAt: r.LastSeenAt,
		UserAgent:  r.UserAgent,
		IPAddress:  r.IPAddress,
	}, nil
}

func storeError(err error, action string) error {
	return errors.Wrapf(domainerrors.ErrSessionStoreFailed, "%s: %v", action, err)
}
