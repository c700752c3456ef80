package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "openspace/internal/delivery/context"
	"openspace/internal/domain/entity"
	domainerrors "openspace/internal/domain/errors"
	"openspace/internal/domain/repository"
	"openspace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recruiterService implements the RecruiterUsecase interface.
type recruiterService struct {
	txManager   repository.TransactionManager
	companyRepo repository.CompanyRepository
	access      usecase.AccessUsecase
	logger      *slog.Logger
}

// RecruiterServiceParams holds dependencies for recruiterService, injected by Fx.
type RecruiterServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CompanyRepo repository.CompanyRepository
	Access      usecase.AccessUsecase
	Logger      *slog.Logger
}

// NewRecruiterService is the constructor for recruiterService.
func NewRecruiterService(params RecruiterServiceParams) usecase.RecruiterUsecase {
	return &recruiterService{
		txManager:   params.TxManager,
		companyRepo: params.CompanyRepo,
		access:      params.Access,
		logger:      params.Logger,
	}
}

func (srv *recruiterService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Assign links an applicant account to the company as recruiter. Only the
// platform admin who owns the company may grant access. Assigning an account
// that already holds the link is a no-op returning the existing link.
func (srv *recruiterService) Assign(ctx context.Context, actor *entity.Account, input *usecase.AssignRecruiterInput) (*entity.RecruiterLink, error) {
	if err := srv.access.AssertCompanyAdmin(ctx, actor, input.CompanyID); err != nil {
		return nil, err
	}

	link := &entity.RecruiterLink{
		AccountID: input.AccountID,
		CompanyID: input.CompanyID,
		JoinDate:  time.Now(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()
		companyRepo := repoFactory.NewCompanyRepository()

		target, err := accountRepo.FindByID(ctx, input.AccountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "account does not exist")
			}

			return errors.Wrap(err, "failed to load target account")
		}

		// Only applicant or dedicated recruiter accounts can be linked;
		// admins own companies instead of recruiting for them.
		if target.Role != entity.RoleApplicant && target.Role != entity.RoleRecruiter {
			return errors.Wrap(domainerrors.ErrAccountNotApplicant, "target account cannot recruit")
		}

		if existing, err := companyRepo.FindRecruiterLink(ctx, input.AccountID, input.CompanyID); err == nil {
			// Already assigned; keep the original link untouched.
			link = existing

			return nil
		} else if !errors.Is(err, repository.ErrRecruiterLinkNotFound) {
			return errors.Wrap(err, "failed to check existing recruiter link")
		}

		return companyRepo.CreateRecruiterLink(ctx, link)
	})
	if err != nil {
		srv.log(ctx).Warn("Recruiter assignment failed",
			slog.Any("companyID", input.CompanyID), slog.Any("accountID", input.AccountID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Recruiter assigned", slog.Any("companyID", input.CompanyID), slog.Any("accountID", input.AccountID))

	return link, nil
}

// Remove deletes a recruiter link. Revocation takes effect on the target's
// next request since access is re-read per request.
func (srv *recruiterService) Remove(ctx context.Context, actor *entity.Account, input *usecase.AssignRecruiterInput) error {
	if err := srv.access.AssertCompanyAdmin(ctx, actor, input.CompanyID); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewCompanyRepository().DeleteRecruiterLink(ctx, input.AccountID, input.CompanyID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrRecruiterLinkNotFound) {
			return errors.Wrap(domainerrors.ErrAssignmentNotFound, "recruiter link does not exist")
		}
		srv.log(ctx).Error("Recruiter removal failed",
			slog.Any("companyID", input.CompanyID), slog.Any("accountID", input.AccountID), slog.Any("error", err))

		return errors.Wrap(err, "failed to remove recruiter link")
	}

	srv.log(ctx).Info("Recruiter removed", slog.Any("companyID", input.CompanyID), slog.Any("accountID", input.AccountID))

	return nil
}

// ListByCompany returns the company's recruiter links.
func (srv *recruiterService) ListByCompany(ctx context.Context, actor *entity.Account, companyID uuid.UUID) ([]*entity.RecruiterLink, error) {
	if err := srv.access.AssertCompanyAdmin(ctx, actor, companyID); err != nil {
		return nil, err
	}

	links, err := srv.companyRepo.ListRecruitersByCompany(ctx, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recruiters")
	}

	return links, nil
}

// ListOwnCompanies returns the companies the actor recruits for.
func (srv *recruiterService) ListOwnCompanies(ctx context.Context, actor *entity.Account) ([]*entity.Company, error) {
	if actor == nil {
		return nil, errors.Wrap(domainerrors.ErrNotAuthenticated, "authentication required")
	}

	companies, err := srv.companyRepo.ListCompaniesByRecruiter(ctx, actor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recruiter companies")
	}

	return companies, nil
}
