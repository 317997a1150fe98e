package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"io"

	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"
)

// TokenBytes is the entropy of a session token: 256 bits.
const TokenBytes = 32

// opaqueTokenGenerator produces random base64url tokens and stores them as
// hex SHA-256 digests, so a leaked session table cannot be replayed.
type opaqueTokenGenerator struct {
	random io.Reader
}

// NewOpaqueTokenGenerator uses crypto/rand.
func NewOpaqueTokenGenerator() service.TokenGenerator {
	return NewOpaqueTokenGeneratorWithReader(rand.Reader)
}

// NewOpaqueTokenGeneratorWithReader draws entropy from random.
func NewOpaqueTokenGeneratorWithReader(random io.Reader) service.TokenGenerator {
	return &opaqueTokenGenerator{random: random}
}

func (g *opaqueTokenGenerator) Generate() (string, error) {
	buf := make([]byte, TokenBytes)
	if _, err := io.ReadFull(g.random, buf); err != nil {
		return "", errors.Wrap(domainerrors.ErrTokenGenerationFailed, err.Error())
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func (g *opaqueTokenGenerator) Digest(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
