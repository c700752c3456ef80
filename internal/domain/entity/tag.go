package entity

import (
	"time"

	"github.com/google/uuid"
)

// TagEntityType enumerates the kinds of records a tag can be attached to.
type TagEntityType string

const (
	// TagEntityJob marks a tag assignment on a job posting.
	TagEntityJob TagEntityType = "job"
	// TagEntityCompany marks a tag assignment on a company.
	TagEntityCompany TagEntityType = "company"
	// TagEntityUser marks a tag assignment on an applicant profile.
	TagEntityUser TagEntityType = "user"
)

// IsValid checks if the TagEntityType is a valid value.
func (t TagEntityType) IsValid() bool {
	switch t {
	case TagEntityJob, TagEntityCompany, TagEntityUser:
		return true
	default:
		return false
	}
}

// Tag is a named label shared across jobs, companies and users.
type Tag struct {
	ID          uuid.UUID `json:"id"`          // The unique identifier for the tag.
	Name        string    `json:"name"`        // Unique tag name.
	Description string    `json:"description"` // Optional description.
	CreatedAt   time.Time `json:"created_at"`  // When the tag was created.
}

// EntityTag connects a tag to a job, company or user record.
type EntityTag struct {
	ID         uuid.UUID     `json:"id"`          // The unique identifier for this assignment.
	EntityID   uuid.UUID     `json:"entity_id"`   // The tagged record.
	EntityType TagEntityType `json:"entity_type"` // What kind of record EntityID refers to.
	TagID      uuid.UUID     `json:"tag_id"`      // The assigned tag.
}
