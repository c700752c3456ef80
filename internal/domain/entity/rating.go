package entity

import (
	"time"

	"github.com/google/uuid"
)

// CompanyRating is a single user's score for a company. One rating per
// (company, account) pair; a repeated submission replaces the previous score.
type CompanyRating struct {
	CompanyID uuid.UUID `json:"company_id"` // Rated company.
	AccountID uuid.UUID `json:"account_id"` // Rating account.
	Score     int       `json:"score"`      // 1 through 5.
	Comment   string    `json:"comment"`    // Optional free-form comment.
	CreatedAt time.Time `json:"created_at"` // When the rating was first submitted.
	UpdatedAt time.Time `json:"updated_at"` // When the rating was last changed.
}
