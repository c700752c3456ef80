package usecase

import (
	"context"

	"openspace/internal/domain/entity"

	"github.com/google/uuid"
)

// AccessUsecase is the authorization policy. Every predicate is evaluated
// against freshly-read relations so membership changes take effect
// immediately; nothing is cached between requests.
type AccessUsecase interface {
	// IsSelf reports whether the actor is the target account.
	IsSelf(actor *entity.Account, targetAccountID uuid.UUID) bool

	// IsPlatformAdmin reports whether the actor carries the platform admin tag.
	IsPlatformAdmin(actor *entity.Account) bool

	// IsCompanyAdmin reports whether the actor owns the company.
	IsCompanyAdmin(ctx context.Context, actor *entity.Account, companyID uuid.UUID) (bool, error)

	// IsCompanyRecruiter reports whether a recruiter link exists for
	// (actor, company).
	IsCompanyRecruiter(ctx context.Context, actor *entity.Account, companyID uuid.UUID) (bool, error)

	// HasCompanyAccess reports whether the actor is the company's admin or
	// one of its recruiters.
	HasCompanyAccess(ctx context.Context, actor *entity.Account, companyID uuid.UUID) (bool, error)

	// AssertSelfOrPlatformAdmin fails with Forbidden unless the actor is the
	// target account or a platform admin.
	AssertSelfOrPlatformAdmin(actor *entity.Account, targetAccountID uuid.UUID) error

	// AssertPlatformAdmin fails with Forbidden unless the actor carries the
	// platform admin tag.
	AssertPlatformAdmin(actor *entity.Account) error

	// AssertCompanyAccess fails with NotFound when the company does not
	// exist, and with Forbidden when the actor is neither its admin nor one
	// of its recruiters. The missing-company check runs first.
	AssertCompanyAccess(ctx context.Context, actor *entity.Account, companyID uuid.UUID) error

	// AssertCompanyAdmin fails with NotFound when the company does not
	// exist, and with a company-mismatch Forbidden when the actor does not
	// own it.
	AssertCompanyAdmin(ctx context.Context, actor *entity.Account, companyID uuid.UUID) error

	// AssertJobAccess resolves the job's owning company and applies
	// AssertCompanyAccess against it.
	AssertJobAccess(ctx context.Context, actor *entity.Account, jobID uuid.UUID) error
}
