package postgres

import (
	"context"

	"openspace/internal/domain/entity"
	domainerrors "openspace/internal/domain/errors"
	"openspace/internal/domain/repository"
	"openspace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ratingRepository implements the domain.RatingRepository interface using GORM.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert creates the rating of an account for a company, or replaces the
// score and comment when one already exists.
func (repo *ratingRepository) Upsert(ctx context.Context, rating *entity.CompanyRating) error {
	ratingM := &model.CompanyRatingModel{
		CompanyID: rating.CompanyID,
		AccountID: rating.AccountID,
		Score:     rating.Score,
		Comment:   rating.Comment,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "company_id"}, {Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"score", "comment", "updated_at"}),
		}).
		Create(ratingM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCompanyNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("score must be between 1 and 5")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert rating")
	}

	rating.CreatedAt = ratingM.CreatedAt
	rating.UpdatedAt = ratingM.UpdatedAt

	return nil
}

// Find retrieves the rating an account gave a company.
func (repo *ratingRepository) Find(ctx context.Context, companyID, accountID uuid.UUID) (*entity.CompanyRating, error) {
	var ratingM model.CompanyRatingModel

	err := repo.db.WithContext(ctx).
		Where("company_id = ? AND account_id = ?", companyID, accountID).
		First(&ratingM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRatingNotFound
		}

		return nil, errors.Wrap(err, "failed to find rating")
	}

	return toRatingDomain(&ratingM), nil
}

// ListByCompany returns all ratings of a company.
func (repo *ratingRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.CompanyRating, error) {
	var ratingMs []model.CompanyRatingModel

	err := repo.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Find(&ratingMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings by company")
	}

	ratings := make([]*entity.CompanyRating, 0, len(ratingMs))
	for i := range ratingMs {
		ratings = append(ratings, toRatingDomain(&ratingMs[i]))
	}

	return ratings, nil
}

// AverageByCompany returns the mean score of a company, or zero when the
// company has no ratings.
func (repo *ratingRepository) AverageByCompany(ctx context.Context, companyID uuid.UUID) (float64, error) {
	var average float64

	err := repo.db.WithContext(ctx).
		Model(&model.CompanyRatingModel{}).
		Where("company_id = ?", companyID).
		Select("COALESCE(AVG(score), 0)").
		Scan(&average).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to average ratings by company")
	}

	return average, nil
}

// Delete removes the rating an account gave a company.
func (repo *ratingRepository) Delete(ctx context.Context, companyID, accountID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("company_id = ? AND account_id = ?", companyID, accountID).
		Delete(&model.CompanyRatingModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRatingNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRatingDomain converts a GORM CompanyRatingModel to a domain CompanyRating entity.
func toRatingDomain(data *model.CompanyRatingModel) *entity.CompanyRating {
	if data == nil {
		return nil
	}

	return &entity.CompanyRating{
		CompanyID: data.CompanyID,
		AccountID: data.AccountID,
		Score:     data.Score,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
