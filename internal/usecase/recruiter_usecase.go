package usecase

import (
	"context"

	"openspace/internal/domain/entity"

	"github.com/google/uuid"
)

// AssignRecruiterInput identifies the account and company to link.
type AssignRecruiterInput struct {
	AccountID uuid.UUID
	CompanyID uuid.UUID
}

// RecruiterUsecase manages the recruiter links that grant company-scoped
// access. All operations require the acting admin to both carry the platform
// admin tag and own the target company.
type RecruiterUsecase interface {
	// Assign links an applicant account to the company as recruiter.
	// Assigning an already-linked account fails with Conflict; a
	// non-applicant target fails with a validation error.
	Assign(ctx context.Context, actor *entity.Account, input *AssignRecruiterInput) (*entity.RecruiterLink, error)

	// Remove deletes the link. A missing link fails with NotFound.
	Remove(ctx context.Context, actor *entity.Account, input *AssignRecruiterInput) error

	// ListByCompany returns the company's recruiter links.
	ListByCompany(ctx context.Context, actor *entity.Account, companyID uuid.UUID) ([]*entity.RecruiterLink, error)

	// ListOwnCompanies returns the companies the actor recruits for.
	ListOwnCompanies(ctx context.Context, actor *entity.Account) ([]*entity.Company, error)
}
