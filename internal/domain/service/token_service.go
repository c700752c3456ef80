package service

import (
	"time"

	"openspace/internal/errors"
)

// Typed verification failures. The delivery layer maps each one to its
// own response message.
var (
	// ErrTokenExpired is returned when the token's expiry time has passed.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenSignature is returned when the token's signature does not verify.
	ErrTokenSignature = errors.New("token signature invalid")

	// ErrTokenMalformed is returned when the token cannot be parsed at all.
	ErrTokenMalformed = errors.New("token malformed")

	// ErrTokenMissingSubject is returned when a structurally valid token
	// carries no subject claim.
	ErrTokenMissingSubject = errors.New("token missing subject")
)

// TokenService defines the interface for issuing and verifying session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed session token whose subject is the account's email.
	Issue(email string) (string, error)

	// Verify checks a token string and returns the subject email.
	// Failures are reported through the typed errors above.
	Verify(tokenString string) (string, error)

	// SessionDuration returns the configured lifetime of a session token.
	SessionDuration() time.Duration
}
