package service

import "time"

// TokenGenerator issues opaque session tokens and derives their storage key.
type TokenGenerator interface {
	// Generate returns a new unpredictable token.
	Generate() (string, error)

	// Digest returns the value stored in place of token.
	Digest(token string) string
}

// Clock is the time source for expiry decisions.
type Clock interface {
	Now() time.Time
}
