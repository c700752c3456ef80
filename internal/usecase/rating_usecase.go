package usecase

import (
	"context"

	"openspace/internal/domain/entity"

	"github.com/google/uuid"
)

// RateCompanyInput defines the data of a rating submission. A repeated
// submission by the same account replaces the earlier score.
type RateCompanyInput struct {
	CompanyID uuid.UUID
	Score     int
	Comment   string
}

// CompanyRatingSummary aggregates a company's ratings.
type CompanyRatingSummary struct {
	CompanyID uuid.UUID `json:"company_id"`
	Average   float64   `json:"average"`
	Count     int       `json:"count"`
}

// RatingUsecase defines company rating operations.
type RatingUsecase interface {
	// Rate submits or replaces the actor's rating. Any authenticated account
	// may rate.
	Rate(ctx context.Context, actor *entity.Account, input *RateCompanyInput) (*entity.CompanyRating, error)

	// ListByCompany returns a company's ratings. Public.
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.CompanyRating, error)

	// Summary returns a company's average score and rating count. Public.
	Summary(ctx context.Context, companyID uuid.UUID) (*CompanyRatingSummary, error)

	// Delete removes a rating. Only the rating's author or a platform admin
	// may remove it.
	Delete(ctx context.Context, actor *entity.Account, companyID, accountID uuid.UUID) error
}
