// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "openspace/internal/errors"

// ErrEmptyPassword is returned when a hash is requested for an empty password.
var ErrEmptyPassword = errors.New("password must not be empty")

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., argon2id), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	// Returns ErrEmptyPassword if the password is empty.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool

	// NeedsRehash reports whether the stored hash uses an outdated
	// algorithm or outdated parameters and should be replaced on the next
	// successful login.
	NeedsRehash(hash string) bool
}
