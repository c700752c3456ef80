package model

import (
	"time"

	"github.com/google/uuid"
)

// CompanyModel mirrors the 'companies' table. The address is stored as a
// JSONB document; AdminAccountID is unique so a company has at most one admin.
type CompanyModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name            string         `gorm:"type:varchar(255);not null"`
	EIN             string         `gorm:"column:ein;type:varchar(10);unique;not null"`
	Address         []byte         `gorm:"type:jsonb"`
	Description     string         `gorm:"type:text"`
	AdminAccountID  *uuid.UUID     `gorm:"type:uuid;uniqueIndex"`
	ProfileImageID  string         `gorm:"type:varchar(255)"`
	ProfileImageURL string         `gorm:"type:varchar(512)"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (CompanyModel) TableName() string {
	return "companies"
}

// RecruiterLinkModel mirrors the 'company_recruiters' join table. The
// composite primary key makes an assignment idempotent at the schema level.
type RecruiterLinkModel struct {
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;primaryKey"`
	JoinDate  time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (RecruiterLinkModel) TableName() string {
	return "company_recruiters"
}
