package repository

import (
	"context"

	"openspace/internal/domain/entity"
	"openspace/internal/errors"

	"github.com/google/uuid"
)

// ErrRatingNotFound is returned when an account has not rated a company.
var ErrRatingNotFound = errors.New("rating not found")

// RatingRepository defines persistence operations for company ratings.
type RatingRepository interface {
	// Upsert creates the rating of an account for a company, or replaces
	// the score and comment when one already exists.
	Upsert(ctx context.Context, rating *entity.CompanyRating) error

	// Find retrieves the rating an account gave a company.
	// Returns ErrRatingNotFound if the account has not rated the company.
	Find(ctx context.Context, companyID, accountID uuid.UUID) (*entity.CompanyRating, error)

	// ListByCompany returns all ratings of a company.
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.CompanyRating, error)

	// AverageByCompany returns the mean score of a company, or zero when
	// the company has no ratings.
	AverageByCompany(ctx context.Context, companyID uuid.UUID) (float64, error)

	// Delete removes the rating an account gave a company.
	// Returns ErrRatingNotFound if the account has not rated the company.
	Delete(ctx context.Context, companyID, accountID uuid.UUID) error
}
