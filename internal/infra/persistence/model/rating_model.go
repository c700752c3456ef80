package model

import (
	"time"

	"github.com/google/uuid"
)

// CompanyRatingModel mirrors the 'company_ratings' table. The composite
// primary key limits an account to one rating per company.
type CompanyRatingModel struct {
	CompanyID uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Score     int       `gorm:"not null;check:score >= 1 AND score <= 5"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CompanyRatingModel) TableName() string {
	return "company_ratings"
}
