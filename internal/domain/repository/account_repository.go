package repository

import (
	"context"

	"openspace/internal/domain/entity"
	"openspace/internal/errors"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when no account matches the lookup key.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines persistence operations for accounts and the
// applicant profiles attached to them.
type AccountRepository interface {
	// Create persists a new account. The profile, when present, is stored
	// in the same operation.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by its primary key, profile included.
	// Returns ErrAccountNotFound if no account exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves an account by its unique email.
	// Returns ErrAccountNotFound if no account exists.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// List returns all accounts.
	List(ctx context.Context) ([]*entity.Account, error)

	// SearchByEmail returns accounts whose email contains the given
	// fragment, case-insensitively.
	SearchByEmail(ctx context.Context, fragment string) ([]*entity.Account, error)

	// UpdateProfile replaces the applicant profile of an account.
	UpdateProfile(ctx context.Context, profile *entity.ApplicantProfile) error

	// UpdatePasswordHash swaps the stored password hash of an account.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error

	// Delete removes an account and its dependent rows.
	Delete(ctx context.Context, id uuid.UUID) error
}
