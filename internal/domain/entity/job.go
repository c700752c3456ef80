package entity

import (
	"time"

	"github.com/google/uuid"
)

// Job is a posting owned by exactly one company. Mutation rights are derived
// transitively from the owning company's admin/recruiter relations; nothing
// is stored on the job itself.
type Job struct {
	ID              uuid.UUID  `json:"id"`                    // The unique identifier for the job posting.
	CompanyID       uuid.UUID  `json:"company_id"`            // Owning company. Immutable after creation.
	Title           string     `json:"title"`                 // Posting title.
	Payoff          float64    `json:"payoff"`                // Offered compensation.
	Description     string     `json:"description"`           // Posting body.
	PostingDate     time.Time  `json:"posting_date"`          // When the job was posted.
	ExpiryDate      *time.Time `json:"expiry_date,omitempty"` // Optional expiry of the posting.
	PostingImageID  string     `json:"posting_image_id"`      // Blob store key of the posting image, empty when unset.
	PostingImageURL string     `json:"posting_image_url"`     // Public link of the posting image, empty when unset.
}

// JobApplication records that a user applied to a job. Identity is the
// (account, job) pair.
type JobApplication struct {
	AccountID       uuid.UUID `json:"account_id"`       // Applying account.
	JobID           uuid.UUID `json:"job_id"`           // Job applied to.
	ApplicationDate time.Time `json:"application_date"` // When the application was submitted.
}
