// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"openspace/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterApplicantInput defines the data required to register a new applicant account.
type RegisterApplicantInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	BirthDate *time.Time
}

// RegisterCompanyInput defines the data required to register a company together
// with its owning admin account.
type RegisterCompanyInput struct {
	Email       string
	Password    string
	CompanyName string
	EIN         string
	Address     map[string]string
	Description string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account, and the company when the
// registration created one.
type RegisterOutput struct {
	Account *entity.Account `json:"account"`
	Company *entity.Company `json:"company,omitempty"`
}

// LoginOutput returns the session token after a successful login.
type LoginOutput struct {
	AccessToken string          `json:"access_token"`
	Account     *entity.Account `json:"account"`
}

// AuthUsecase defines the interface for authentication-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// RegisterApplicant creates an applicant account with its profile in one
	// atomic step. A duplicate email leaves no partial rows behind.
	RegisterApplicant(ctx context.Context, input *RegisterApplicantInput) (*RegisterOutput, error)

	// RegisterCompany creates an admin account and its company in one atomic
	// step. A duplicate email or tax id leaves no partial rows behind.
	RegisterCompany(ctx context.Context, input *RegisterCompanyInput) (*RegisterOutput, error)

	// Login checks the credentials and issues a session token. All failures
	// surface as the same generic invalid-credentials error.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Authenticate verifies a session token and resolves the account it
	// belongs to. This is the gate every protected operation passes through.
	Authenticate(ctx context.Context, token string) (*entity.Account, error)
}
