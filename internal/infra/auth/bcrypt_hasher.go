// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"

	"gatekeeper/config"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"

	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher implements service.PasswordHasher. bcrypt embeds a fresh
// 128-bit salt and the cost in every digest it produces.
type bcryptHasher struct {
	cost      int
	dummyHash string
}

// HasherParams holds dependencies for the hasher, injected by Fx.
type HasherParams struct {
	fx.In

	Config *config.Config
}

// NewBcryptHasher builds a hasher using the configured cost.
func NewBcryptHasher(params HasherParams) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if params.Config != nil && params.Config.Auth != nil {
		cost = params.Config.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost)
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost. Out-of-range
// costs fall back to bcrypt.DefaultCost. The dummy hash is computed here, so
// no login pays for it.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost, dummyHash: newDummyHash(cost)}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return string(digest), nil
}

// Verify uses bcrypt's constant-time comparison. Malformed digests never match.
func (h *bcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (h *bcryptHasher) DummyHash() string {
	return h.dummyHash
}

// newDummyHash hashes a random secret nobody knows. If the random source is
// unavailable, a hash of a fixed string at the same cost keeps timing equal.
func newDummyHash(cost int) string {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		secret = []byte("gatekeeper-dummy-password-secret")
	}

	digest, err := bcrypt.GenerateFromPassword(secret, cost)
	if err != nil {
		return ""
	}

	return string(digest)
}
