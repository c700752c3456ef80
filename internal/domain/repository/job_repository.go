package repository

import (
	"context"

	"openspace/internal/domain/entity"
	"openspace/internal/errors"

	"github.com/google/uuid"
)

// ErrJobNotFound is returned when no job matches the lookup key.
var ErrJobNotFound = errors.New("job not found")

// JobRepository defines persistence operations for job postings and applications.
type JobRepository interface {
	// Create persists a new job posting.
	Create(ctx context.Context, job *entity.Job) error

	// FindByID retrieves a job by its primary key.
	// Returns ErrJobNotFound if no job exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)

	// List returns all job postings.
	List(ctx context.Context) ([]*entity.Job, error)

	// ListByCompany returns all job postings of a company.
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Job, error)

	// SearchByTitle returns jobs whose title contains the given fragment,
	// case-insensitively.
	SearchByTitle(ctx context.Context, fragment string) ([]*entity.Job, error)

	// Update persists changes to an existing job. The owning company of a
	// job never changes.
	Update(ctx context.Context, job *entity.Job) error

	// Delete removes a job and its dependent rows.
	Delete(ctx context.Context, id uuid.UUID) error

	// CreateApplication records that an account applied to a job.
	CreateApplication(ctx context.Context, application *entity.JobApplication) error

	// ListApplicationsByJob returns all applications submitted to a job.
	ListApplicationsByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.JobApplication, error)

	// ListApplicationsByAccount returns all applications an account submitted.
	ListApplicationsByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.JobApplication, error)
}
