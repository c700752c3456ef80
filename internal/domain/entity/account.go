// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the root identity in the system. Every authorization decision
// starts from a resolved Account.
type Account struct {
	ID           uuid.UUID         `json:"id"`                   // The unique identifier for the account.
	Email        string            `json:"email"`                // Globally unique login identifier.
	PasswordHash string            `json:"-"`                    // Peppered argon2id (or legacy bcrypt) hash. Never serialized.
	Role         Role              `json:"role"`                 // Closed role tag, see Role.
	IsVerified   bool              `json:"is_verified"`          // Whether the email address has been verified.
	Profile      *ApplicantProfile `json:"profile,omitempty"`    // Applicant profile. Nil for accounts without the applicant role.
	CreatedAt    time.Time         `json:"created_at"`           // Timestamp of account creation.
	ExpiresAt    *time.Time        `json:"expires_at,omitempty"` // Optional account expiry. Nil means the account does not expire.
}

// IsPlatformAdmin reports whether the account carries the platform admin tag.
func (a *Account) IsPlatformAdmin() bool {
	return a.Role == RolePlatformAdmin
}

// ApplicantProfile holds the job-seeker data attached 1:1 to an applicant account.
type ApplicantProfile struct {
	AccountID       uuid.UUID  `json:"account_id"`           // Foreign key linking this profile to its Account.
	FirstName       string     `json:"first_name"`           // Given name, required.
	LastName        string     `json:"last_name"`            // Family name, required.
	BirthDate       *time.Time `json:"birth_date,omitempty"` // Optional date of birth.
	Description     string     `json:"description"`          // Free-form profile text.
	ProfileImageID  string     `json:"profile_image_id"`     // Blob store key of the profile image, empty when unset.
	ProfileImageURL string     `json:"profile_image_url"`    // Public link of the profile image, empty when unset.
	UpdatedAt       time.Time  `json:"updated_at"`           // Timestamp of last profile modification.
}
