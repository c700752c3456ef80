package model

import (
	"time"

	"github.com/google/uuid"
)

// JobModel mirrors the 'jobs' table. CompanyID references companies.id and
// never changes after creation.
type JobModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CompanyID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Title           string    `gorm:"type:varchar(255);not null"`
	Payoff          float64   `gorm:"type:numeric"`
	Description     string    `gorm:"type:text"`
	PostingDate     time.Time `gorm:"not null"`
	ExpiryDate      *time.Time
	PostingImageID  string `gorm:"type:varchar(255)"`
	PostingImageURL string `gorm:"type:varchar(512)"`
}

// TableName explicitly sets the table name for GORM.
func (JobModel) TableName() string {
	return "jobs"
}

// JobApplicationModel mirrors the 'job_applications' join table.
type JobApplicationModel struct {
	AccountID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ApplicationDate time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (JobApplicationModel) TableName() string {
	return "job_applications"
}
