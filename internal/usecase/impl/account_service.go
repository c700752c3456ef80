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

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	access       usecase.AccessUsecase
	imageStorage service.ImageStorage
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Access       usecase.AccessUsecase
	ImageStorage service.ImageStorage
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		access:       params.Access,
		imageStorage: params.ImageStorage,
		logger:       params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get returns an account by id.
func (srv *accountService) Get(ctx context.Context, actor *entity.Account, id uuid.UUID) (*entity.Account, error) {
	if err := srv.access.AssertSelfOrPlatformAdmin(actor, id); err != nil {
		return nil, err
	}

	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "account does not exist")
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	return account, nil
}

// List returns all accounts.
func (srv *accountService) List(ctx context.Context, actor *entity.Account) ([]*entity.Account, error) {
	if err := srv.access.AssertPlatformAdmin(actor); err != nil {
		return nil, err
	}

	accounts, err := srv.accountRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

// SearchByEmail returns accounts matching an email fragment.
func (srv *accountService) SearchByEmail(ctx context.Context, actor *entity.Account, fragment string) ([]*entity.Account, error) {
	if err := srv.access.AssertPlatformAdmin(actor); err != nil {
		return nil, err
	}

	accounts, err := srv.accountRepo.SearchByEmail(ctx, fragment)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search accounts")
	}

	return accounts, nil
}

// UpdateProfile edits an applicant profile.
func (srv *accountService) UpdateProfile(ctx context.Context, actor *entity.Account, input *usecase.UpdateProfileInput) (*entity.ApplicantProfile, error) {
	if err := srv.access.AssertSelfOrPlatformAdmin(actor, input.AccountID); err != nil {
		return nil, err
	}

	var profile *entity.ApplicantProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		account, err := accountRepo.FindByID(ctx, input.AccountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "account does not exist")
			}

			return errors.Wrap(err, "failed to load account")
		}
		if account.Profile == nil {
			return errors.Wrap(domainerrors.ErrAccountNotApplicant, "account has no applicant profile")
		}

		profile = account.Profile
		profile.FirstName = input.FirstName
		profile.LastName = input.LastName
		profile.BirthDate = input.BirthDate
		profile.Description = input.Description

		return accountRepo.UpdateProfile(ctx, profile)
	})
	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Any("accountID", input.AccountID), slog.Any("error", err))

		return nil, err
	}

	return profile, nil
}

// UploadProfileImage stores a profile image and records its key and URL.
func (srv *accountService) UploadProfileImage(ctx context.Context, actor *entity.Account, accountID uuid.UUID, input *usecase.UploadImageInput) (*entity.ApplicantProfile, error) {
	if err := srv.access.AssertSelfOrPlatformAdmin(actor, accountID); err != nil {
		return nil, err
	}

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "account does not exist")
		}

		return nil, errors.Wrap(err, "failed to load account")
	}
	if account.Profile == nil {
		return nil, errors.Wrap(domainerrors.ErrAccountNotApplicant, "account has no applicant profile")
	}

	key := fmt.Sprintf("profiles/%s/%s", accountID, uuid.New())
	url, err := srv.imageStorage.Put(ctx, key, input.ContentType, input.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store profile image")
	}

	oldKey := account.Profile.ProfileImageID
	account.Profile.ProfileImageID = key
	account.Profile.ProfileImageURL = url

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewAccountRepository().UpdateProfile(ctx, account.Profile)
	})
	if err != nil {
		// Roll the blob back so orphaned uploads don't accumulate.
		_ = srv.imageStorage.Delete(ctx, key)

		return nil, errors.Wrap(err, "failed to persist profile image")
	}

	if oldKey != "" {
		if err := srv.imageStorage.Delete(ctx, oldKey); err != nil {
			srv.log(ctx).Warn("Failed to delete replaced profile image", slog.String("key", oldKey), slog.Any("error", err))
		}
	}

	return account.Profile, nil
}

// Delete removes an account and its dependent rows.
func (srv *accountService) Delete(ctx context.Context, actor *entity.Account, id uuid.UUID) error {
	if err := srv.access.AssertSelfOrPlatformAdmin(actor, id); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewAccountRepository().Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "account does not exist")
		}
		srv.log(ctx).Error("Account deletion failed", slog.Any("accountID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete account")
	}

	srv.log(ctx).Info("Account deleted", slog.Any("accountID", id))

	return nil
}
