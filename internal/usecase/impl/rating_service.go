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

// ratingService implements the RatingUsecase interface.
type ratingService struct {
	txManager  repository.TransactionManager
	ratingRepo repository.RatingRepository
	access     usecase.AccessUsecase
	logger     *slog.Logger
}

// RatingServiceParams holds dependencies for ratingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RatingRepo repository.RatingRepository
	Access     usecase.AccessUsecase
	Logger     *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		txManager:  params.TxManager,
		ratingRepo: params.RatingRepo,
		access:     params.Access,
		logger:     params.Logger,
	}
}

func (srv *ratingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Rate submits or replaces the actor's rating of a company.
func (srv *ratingService) Rate(ctx context.Context, actor *entity.Account, input *usecase.RateCompanyInput) (*entity.CompanyRating, error) {
	if actor == nil {
		return nil, errors.Wrap(domainerrors.ErrNotAuthenticated, "authentication required")
	}
	if input.Score < 1 || input.Score > 5 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "score must be between 1 and 5")
	}

	rating := &entity.CompanyRating{
		CompanyID: input.CompanyID,
		AccountID: actor.ID,
		Score:     input.Score,
		Comment:   input.Comment,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewCompanyRepository().FindByID(ctx, input.CompanyID); err != nil {
			if errors.Is(err, repository.ErrCompanyNotFound) {
				return errors.Wrap(domainerrors.ErrCompanyNotFound, "company does not exist")
			}

			return errors.Wrap(err, "failed to load company")
		}

		return repoFactory.NewRatingRepository().Upsert(ctx, rating)
	})
	if err != nil {
		srv.log(ctx).Warn("Rating submission failed",
			slog.Any("companyID", input.CompanyID), slog.Any("accountID", actor.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Rating submitted",
		slog.Any("companyID", input.CompanyID), slog.Any("accountID", actor.ID), slog.Int("score", input.Score))

	return rating, nil
}

// ListByCompany returns a company's ratings.
func (srv *ratingService) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.CompanyRating, error) {
	ratings, err := srv.ratingRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings")
	}

	return ratings, nil
}

// Summary returns a company's average score and rating count.
func (srv *ratingService) Summary(ctx context.Context, companyID uuid.UUID) (*usecase.CompanyRatingSummary, error) {
	ratings, err := srv.ratingRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings")
	}

	average, err := srv.ratingRepo.AverageByCompany(ctx, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to average ratings")
	}

	return &usecase.CompanyRatingSummary{
		CompanyID: companyID,
		Average:   average,
		Count:     len(ratings),
	}, nil
}

// Delete removes a rating. Accounts may retract their own rating; platform
// admins may remove anyone's.
func (srv *ratingService) Delete(ctx context.Context, actor *entity.Account, companyID, accountID uuid.UUID) error {
	if err := srv.access.AssertSelfOrPlatformAdmin(actor, accountID); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewRatingRepository().Delete(ctx, companyID, accountID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrRatingNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "rating does not exist")
		}

		return errors.Wrap(err, "failed to delete rating")
	}

	srv.log(ctx).Info("Rating deleted", slog.Any("companyID", companyID), slog.Any("accountID", accountID))

	return nil
}
