package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via uuid_generate_v4().
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	IsVerified   bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	ExpiresAt    *time.Time

	Profile *ApplicantProfileModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// ApplicantProfileModel mirrors the 'applicant_profiles' table. AccountID references accounts.id (UUID).
type ApplicantProfileModel struct {
	AccountID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName       string    `gorm:"type:varchar(100)"`
	LastName        string    `gorm:"type:varchar(100)"`
	BirthDate       *time.Time
	Description     string `gorm:"type:text"`
	ProfileImageID  string `gorm:"type:varchar(255)"`
	ProfileImageURL string `gorm:"type:varchar(512)"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ApplicantProfileModel) TableName() string {
	return "applicant_profiles"
}
