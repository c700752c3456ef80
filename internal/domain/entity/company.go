package entity

import (
	"time"

	"github.com/google/uuid"
)

// Company is owned by at most one admin account and grants company-scoped
// access to zero or more recruiter-linked accounts.
type Company struct {
	ID              uuid.UUID         `json:"id"`                         // The unique identifier for the company.
	Name            string            `json:"name"`                       // Display name.
	EIN             string            `json:"ein"`                        // Tax identification number, globally unique, exactly 10 digits.
	Address         map[string]string `json:"address,omitempty"`          // Structured address, stored as JSON.
	Description     string            `json:"description"`                // Free-form company text.
	AdminAccountID  *uuid.UUID        `json:"admin_account_id,omitempty"` // The single owning admin account. Nil for an unclaimed company record.
	ProfileImageID  string            `json:"profile_image_id"`           // Blob store key of the company image, empty when unset.
	ProfileImageURL string            `json:"profile_image_url"`          // Public link of the company image, empty when unset.
}

// IsAdministeredBy reports whether accountID owns this company.
func (c *Company) IsAdministeredBy(accountID uuid.UUID) bool {
	return c.AdminAccountID != nil && *c.AdminAccountID == accountID
}

// RecruiterLink is an explicit grant of company-scoped access to an account
// that is not the company's admin. Identity is the (account, company) pair.
type RecruiterLink struct {
	AccountID uuid.UUID `json:"account_id"` // Linked account.
	CompanyID uuid.UUID `json:"company_id"` // Company the access is scoped to.
	JoinDate  time.Time `json:"join_date"`  // When the link was created.
}
