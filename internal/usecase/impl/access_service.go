package impl

import (
	"context"
	"log/slog"

	deliverycontext "openspace/internal/delivery/context"
	"openspace/internal/domain/entity"
	domainerrors "openspace/internal/domain/errors"
	"openspace/internal/domain/repository"
	"openspace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accessService implements the AccessUsecase interface. Relations are read
// fresh on every call so that revoked links and changed ownership take
// effect immediately.
type accessService struct {
	companyRepo repository.CompanyRepository
	jobRepo     repository.JobRepository
	logger      *slog.Logger
}

// AccessServiceParams holds dependencies for accessService, injected by Fx.
type AccessServiceParams struct {
	fx.In

	CompanyRepo repository.CompanyRepository
	JobRepo     repository.JobRepository
	Logger      *slog.Logger
}

// NewAccessService is the constructor for accessService.
func NewAccessService(params AccessServiceParams) usecase.AccessUsecase {
	return &accessService{
		companyRepo: params.CompanyRepo,
		jobRepo:     params.JobRepo,
		logger:      params.Logger,
	}
}

func (srv *accessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IsSelf reports whether the actor is the target account.
func (srv *accessService) IsSelf(actor *entity.Account, targetAccountID uuid.UUID) bool {
	return actor != nil && actor.ID == targetAccountID
}

// IsPlatformAdmin reports whether the actor carries the platform admin tag.
func (srv *accessService) IsPlatformAdmin(actor *entity.Account) bool {
	return actor != nil && actor.IsPlatformAdmin()
}

// IsCompanyAdmin reports whether the actor owns the company.
func (srv *accessService) IsCompanyAdmin(ctx context.Context, actor *entity.Account, companyID uuid.UUID) (bool, error) {
	if actor == nil {
		return false, nil
	}

	company, err := srv.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return false, err
	}

	return company.IsAdministeredBy(actor.ID), nil
}

// IsCompanyRecruiter reports whether a recruiter link exists for (actor, company).
func (srv *accessService) IsCompanyRecruiter(ctx context.Context, actor *entity.Account, companyID uuid.UUID) (bool, error) {
	if actor == nil {
		return false, nil
	}

	_, err := srv.companyRepo.FindRecruiterLink(ctx, actor.ID, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrRecruiterLinkNotFound) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// HasCompanyAccess reports whether the actor is the company's admin or one
// of its recruiters.
func (srv *accessService) HasCompanyAccess(ctx context.Context, actor *entity.Account, companyID uuid.UUID) (bool, error) {
	isAdmin, err := srv.IsCompanyAdmin(ctx, actor, companyID)
	if err != nil {
		return false, err
	}
	if isAdmin {
		return true, nil
	}

	return srv.IsCompanyRecruiter(ctx, actor, companyID)
}

// AssertPlatformAdmin fails with Forbidden unless the actor carries the
// platform admin tag.
func (srv *accessService) AssertPlatformAdmin(actor *entity.Account) error {
	if srv.IsPlatformAdmin(actor) {
		return nil
	}

	return errors.Wrap(domainerrors.ErrForbidden, "platform admin required")
}

// AssertSelfOrPlatformAdmin fails with Forbidden unless the actor is the
// target account or a platform admin.
func (srv *accessService) AssertSelfOrPlatformAdmin(actor *entity.Account, targetAccountID uuid.UUID) error {
	if srv.IsSelf(actor, targetAccountID) || srv.IsPlatformAdmin(actor) {
		return nil
	}

	return errors.Wrap(domainerrors.ErrForbidden, "operation restricted to the account owner")
}

// AssertCompanyAccess fails with NotFound when the company is missing and
// with Forbidden when the actor holds no admin or recruiter relation to it.
// The existence check runs first so a caller cannot distinguish hidden
// companies from missing ones by the error shape alone. Admin accounts get
// no blanket pass: an admin who does not own the company is rejected with a
// company mismatch before any recruiter lookup.
func (srv *accessService) AssertCompanyAccess(ctx context.Context, actor *entity.Account, companyID uuid.UUID) error {
	company, err := srv.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return errors.Wrap(domainerrors.ErrCompanyNotFound, "company does not exist")
		}

		return err
	}

	if srv.IsPlatformAdmin(actor) {
		if company.IsAdministeredBy(actorID(actor)) {
			return nil
		}

		srv.log(ctx).Warn("Company access mismatch", slog.Any("companyID", companyID), slog.Any("accountID", actorID(actor)))

		return errors.Wrap(domainerrors.ErrCompanyMismatch, "acting admin does not own the company")
	}

	if company.IsAdministeredBy(actorID(actor)) {
		return nil
	}

	isRecruiter, err := srv.IsCompanyRecruiter(ctx, actor, companyID)
	if err != nil {
		return err
	}
	if isRecruiter {
		return nil
	}

	srv.log(ctx).Warn("Company access denied", slog.Any("companyID", companyID), slog.Any("accountID", actorID(actor)))

	return errors.Wrap(domainerrors.ErrForbidden, "no admin or recruiter relation to company")
}

// AssertCompanyAdmin fails with NotFound when the company is missing, and
// with a company-mismatch Forbidden when the actor does not own it.
func (srv *accessService) AssertCompanyAdmin(ctx context.Context, actor *entity.Account, companyID uuid.UUID) error {
	company, err := srv.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return errors.Wrap(domainerrors.ErrCompanyNotFound, "company does not exist")
		}

		return err
	}

	if srv.IsPlatformAdmin(actor) && company.IsAdministeredBy(actorID(actor)) {
		return nil
	}

	if !srv.IsPlatformAdmin(actor) {
		return errors.Wrap(domainerrors.ErrForbidden, "platform admin required")
	}

	srv.log(ctx).Warn("Company admin mismatch", slog.Any("companyID", companyID), slog.Any("accountID", actorID(actor)))

	return errors.Wrap(domainerrors.ErrCompanyMismatch, "acting admin does not own the company")
}

// AssertJobAccess resolves the job's owning company and applies
// AssertCompanyAccess against it.
func (srv *accessService) AssertJobAccess(ctx context.Context, actor *entity.Account, jobID uuid.UUID) error {
	job, err := srv.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "job does not exist")
		}

		return err
	}

	return srv.AssertCompanyAccess(ctx, actor, job.CompanyID)
}

func actorID(actor *entity.Account) uuid.UUID {
	if actor == nil {
		return uuid.Nil
	}

	return actor.ID
}
