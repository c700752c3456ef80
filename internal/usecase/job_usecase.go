package usecase

import (
	"context"
	"time"

	"openspace/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateJobInput defines the data required to post a job.
type CreateJobInput struct {
	CompanyID   uuid.UUID
	Title       string
	Payoff      float64
	Description string
	ExpiryDate  *time.Time
}

// UpdateJobInput defines the editable fields of a job. The owning company
// cannot be changed.
type UpdateJobInput struct {
	JobID       uuid.UUID
	Title       string
	Payoff      float64
	Description string
	ExpiryDate  *time.Time
}

// JobUsecase defines job posting and application operations. Reads are
// public; writes are guarded by access to the owning company.
type JobUsecase interface {
	// Create posts a new job. The actor needs an admin or recruiter relation
	// to the target company.
	Create(ctx context.Context, actor *entity.Account, input *CreateJobInput) (*entity.Job, error)

	// Get returns a job by id. Public.
	Get(ctx context.Context, id uuid.UUID) (*entity.Job, error)

	// List returns all jobs. Public.
	List(ctx context.Context) ([]*entity.Job, error)

	// ListByCompany returns a company's jobs. Public.
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Job, error)

	// SearchByTitle returns jobs matching a title fragment. Public.
	SearchByTitle(ctx context.Context, fragment string) ([]*entity.Job, error)

	// Update edits a job. Requires an admin or recruiter relation to the
	// owning company.
	Update(ctx context.Context, actor *entity.Account, input *UpdateJobInput) (*entity.Job, error)

	// UploadImage stores a posting image and records its key and URL.
	// Requires an admin or recruiter relation to the owning company.
	UploadImage(ctx context.Context, actor *entity.Account, jobID uuid.UUID, input *UploadImageInput) (*entity.Job, error)

	// Delete removes a job. Requires an admin or recruiter relation to the
	// owning company.
	Delete(ctx context.Context, actor *entity.Account, id uuid.UUID) error

	// Apply records the actor's application to a job. Any authenticated
	// account may apply.
	Apply(ctx context.Context, actor *entity.Account, jobID uuid.UUID) (*entity.JobApplication, error)

	// ListApplications returns a job's applications. Requires an admin or
	// recruiter relation to the owning company.
	ListApplications(ctx context.Context, actor *entity.Account, jobID uuid.UUID) ([]*entity.JobApplication, error)

	// ListOwnApplications returns the actor's own applications.
	ListOwnApplications(ctx context.Context, actor *entity.Account) ([]*entity.JobApplication, error)
}
