package repository

import (
	"context"

	"openspace/internal/domain/entity"
	"openspace/internal/errors"

	"github.com/google/uuid"
)

// ErrCompanyNotFound is returned when no company matches the lookup key.
var ErrCompanyNotFound = errors.New("company not found")

// ErrRecruiterLinkNotFound is returned when an account is not assigned to a company.
var ErrRecruiterLinkNotFound = errors.New("recruiter link not found")

// CompanyRepository defines persistence operations for companies and
// the recruiter assignments that connect accounts to them.
type CompanyRepository interface {
	// Create persists a new company.
	Create(ctx context.Context, company *entity.Company) error

	// FindByID retrieves a company by its primary key.
	// Returns ErrCompanyNotFound if no company exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)

	// List returns all companies.
	List(ctx context.Context) ([]*entity.Company, error)

	// SearchByName returns companies whose name contains the given
	// fragment, case-insensitively.
	SearchByName(ctx context.Context, fragment string) ([]*entity.Company, error)

	// Update persists changes to an existing company.
	Update(ctx context.Context, company *entity.Company) error

	// Delete removes a company and its dependent rows.
	Delete(ctx context.Context, id uuid.UUID) error

	// CreateRecruiterLink assigns an account to a company as recruiter.
	CreateRecruiterLink(ctx context.Context, link *entity.RecruiterLink) error

	// FindRecruiterLink retrieves the assignment of an account to a company.
	// Returns ErrRecruiterLinkNotFound if the account is not assigned.
	FindRecruiterLink(ctx context.Context, accountID, companyID uuid.UUID) (*entity.RecruiterLink, error)

	// ListRecruitersByCompany returns all recruiter assignments of a company.
	ListRecruitersByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.RecruiterLink, error)

	// ListCompaniesByRecruiter returns all companies an account recruits for.
	ListCompaniesByRecruiter(ctx context.Context, accountID uuid.UUID) ([]*entity.Company, error)

	// DeleteRecruiterLink removes an assignment.
	// Returns ErrRecruiterLinkNotFound if the account is not assigned.
	DeleteRecruiterLink(ctx context.Context, accountID, companyID uuid.UUID) error
}
