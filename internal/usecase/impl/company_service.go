package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "openspace/internal/delivery/context"
	"openspace/internal/domain/entity"
	domainerrors "openspace/internal/domain/errors"
	"openspace/internal/domain/repository"
	"openspace/internal/domain/service"
	"openspace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// companyService implements the CompanyUsecase interface.
type companyService struct {
	txManager    repository.TransactionManager
	companyRepo  repository.CompanyRepository
	access       usecase.AccessUsecase
	imageStorage service.ImageStorage
	logger       *slog.Logger
}

// CompanyServiceParams holds dependencies for companyService, injected by Fx.
type CompanyServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CompanyRepo  repository.CompanyRepository
	Access       usecase.AccessUsecase
	ImageStorage service.ImageStorage
	Logger       *slog.Logger
}

// NewCompanyService is the constructor for companyService.
func NewCompanyService(params CompanyServiceParams) usecase.CompanyUsecase {
	return &companyService{
		txManager:    params.TxManager,
		companyRepo:  params.CompanyRepo,
		access:       params.Access,
		imageStorage: params.ImageStorage,
		logger:       params.Logger,
	}
}

func (srv *companyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get returns a company by id.
func (srv *companyService) Get(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	company, err := srv.companyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCompanyNotFound, "company does not exist")
		}

		return nil, errors.Wrap(err, "failed to load company")
	}

	return company, nil
}

// List returns all companies.
func (srv *companyService) List(ctx context.Context) ([]*entity.Company, error) {
	companies, err := srv.companyRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list companies")
	}

	return companies, nil
}

// SearchByName returns companies matching a name fragment.
func (srv *companyService) SearchByName(ctx context.Context, fragment string) ([]*entity.Company, error) {
	companies, err := srv.companyRepo.SearchByName(ctx, fragment)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search companies")
	}

	return companies, nil
}

// Update edits a company. Only the owning admin may change the record;
// recruiters hold job-level access, not company-level.
func (srv *companyService) Update(ctx context.Context, actor *entity.Account, input *usecase.UpdateCompanyInput) (*entity.Company, error) {
	if err := srv.access.AssertCompanyAdmin(ctx, actor, input.CompanyID); err != nil {
		return nil, err
	}

	var company *entity.Company
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		companyRepo := repoFactory.NewCompanyRepository()

		var findErr error
		company, findErr = companyRepo.FindByID(ctx, input.CompanyID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrCompanyNotFound) {
				return errors.Wrap(domainerrors.ErrCompanyNotFound, "company does not exist")
			}

			return errors.Wrap(findErr, "failed to load company")
		}

		company.Name = input.Name
		company.Address = input.Address
		company.Description = input.Description

		return companyRepo.Update(ctx, company)
	})
	if err != nil {
		srv.log(ctx).Warn("Company update failed", slog.Any("companyID", input.CompanyID), slog.Any("error", err))

		return nil, err
	}

	return company, nil
}

// UploadImage stores a company image and records its key and URL. Restricted
// to the owning admin, like every other company mutation.
func (srv *companyService) UploadImage(ctx context.Context, actor *entity.Account, companyID uuid.UUID, input *usecase.UploadImageInput) (*entity.Company, error) {
	if err := srv.access.AssertCompanyAdmin(ctx, actor, companyID); err != nil {
		return nil, err
	}

	company, err := srv.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCompanyNotFound, "company does not exist")
		}

		return nil, errors.Wrap(err, "failed to load company")
	}

	key := fmt.Sprintf("companies/%s/%s", companyID, uuid.New())
	url, err := srv.imageStorage.Put(ctx, key, input.ContentType, input.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store company image")
	}

	oldKey := company.ProfileImageID
	company.ProfileImageID = key
	company.ProfileImageURL = url

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewCompanyRepository().Update(ctx, company)
	})
	if err != nil {
		_ = srv.imageStorage.Delete(ctx, key)

		return nil, errors.Wrap(err, "failed to persist company image")
	}

	if oldKey != "" {
		if err := srv.imageStorage.Delete(ctx, oldKey); err != nil {
			srv.log(ctx).Warn("Failed to delete replaced company image", slog.String("key", oldKey), slog.Any("error", err))
		}
	}

	return company, nil
}

// Delete removes a company with its jobs and links.
func (srv *companyService) Delete(ctx context.Context, actor *entity.Account, id uuid.UUID) error {
	if err := srv.access.AssertCompanyAdmin(ctx, actor, id); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewCompanyRepository().Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return errors.Wrap(domainerrors.ErrCompanyNotFound, "company does not exist")
		}
		srv.log(ctx).Error("Company deletion failed", slog.Any("companyID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete company")
	}

	srv.log(ctx).Info("Company deleted", slog.Any("companyID", id))

	return nil
}
