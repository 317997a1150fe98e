// Package service defines interfaces for stateless domain capabilities that
// infrastructure provides: hashing, token generation, and time.
package service

// PasswordHasher abstracts a salted, deliberately expensive, one-way password hash.
type PasswordHasher interface {
	// Hash returns a self-describing digest (salt and cost embedded) using a fresh salt.
	Hash(password string) (string, error)

	// Verify compares password against hash in constant time.
	Verify(password, hash string) bool

	// DummyHash returns a valid digest of an unknown secret with the same cost
	// as Hash, used to spend equal time when there is nothing to verify.
	DummyHash() string
}
