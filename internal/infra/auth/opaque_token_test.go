package auth

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	domainerrors "gatekeeper/internal/domain/errors"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy source unavailable")
}

func TestOpaqueTokenGenerator_Generate(t *testing.T) {
	gen := NewOpaqueTokenGenerator()

	seen := make(map[string]struct{}, 100)
	for range 100 {
		token, err := gen.Generate()
		require.NoError(t, err)

		raw, err := base64.RawURLEncoding.DecodeString(token)
		require.NoError(t, err)
		assert.Len(t, raw, TokenBytes)

		_, dup := seen[token]
		assert.False(t, dup, "duplicate token %s", token)
		seen[token] = struct{}{}
	}
}

func TestOpaqueTokenGenerator_DeterministicReader(t *testing.T) {
	source := bytes.Repeat([]byte{0xAB}, TokenBytes)
	gen := NewOpaqueTokenGeneratorWithReader(bytes.NewReader(source))

	token, err := gen.Generate()
	require.NoError(t, err)
	assert.Equal(t, base64.RawURLEncoding.EncodeToString(source), token)

	_, err = gen.Generate()
	require.Error(t, err, "exhausted reader must not yield a short token")
}

func TestOpaqueTokenGenerator_RandomFailure(t *testing.T) {
	gen := NewOpaqueTokenGeneratorWithReader(failingReader{})

	token, err := gen.Generate()
	require.Error(t, err)
	assert.Empty(t, token)
	assert.True(t, pkgerrors.Is(err, domainerrors.ErrTokenGenerationFailed))
}

func TestOpaqueTokenGenerator_Digest(t *testing.T) {
	gen := NewOpaqueTokenGenerator()

	digest := gen.Digest("token-a")
	assert.Len(t, digest, 64)
	assert.Equal(t, digest, gen.Digest("token-a"))
	assert.NotEqual(t, digest, gen.Digest("token-b"))
	assert.NotContains(t, digest, "token-a")
}
