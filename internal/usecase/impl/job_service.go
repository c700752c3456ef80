package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "openspace/internal/delivery/context"
	"openspace/internal/domain/entity"
	domainerrors "openspace/internal/domain/errors"
	"openspace/internal/domain/repository"
	"openspace/internal/domain/service"
	"openspace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// jobService implements the JobUsecase interface.
type jobService struct {
	txManager    repository.TransactionManager
	jobRepo      repository.JobRepository
	access       usecase.AccessUsecase
	imageStorage service.ImageStorage
	logger       *slog.Logger
}

// JobServiceParams holds dependencies for jobService, injected by Fx.
type JobServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	JobRepo      repository.JobRepository
	Access       usecase.AccessUsecase
	ImageStorage service.ImageStorage
	Logger       *slog.Logger
}

// NewJobService is the constructor for jobService.
func NewJobService(params JobServiceParams) usecase.JobUsecase {
	return &jobService{
		txManager:    params.TxManager,
		jobRepo:      params.JobRepo,
		access:       params.Access,
		imageStorage: params.ImageStorage,
		logger:       params.Logger,
	}
}

func (srv *jobService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create posts a new job for a company the actor has access to.
func (srv *jobService) Create(ctx context.Context, actor *entity.Account, input *usecase.CreateJobInput) (*entity.Job, error) {
	if err := srv.access.AssertCompanyAccess(ctx, actor, input.CompanyID); err != nil {
		return nil, err
	}

	newJob := &entity.Job{
		CompanyID:   input.CompanyID,
		Title:       input.Title,
		Payoff:      input.Payoff,
		Description: input.Description,
		PostingDate: time.Now(),
		ExpiryDate:  input.ExpiryDate,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewJobRepository().Create(ctx, newJob)
	})
	if err != nil {
		srv.log(ctx).Warn("Job creation failed", slog.Any("companyID", input.CompanyID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create job")
	}

	srv.log(ctx).Debug("Job created", slog.Any("jobID", newJob.ID), slog.Any("companyID", newJob.CompanyID))

	return newJob, nil
}

// Get returns a job by id.
func (srv *jobService) Get(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	job, err := srv.jobRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "job does not exist")
		}

		return nil, errors.Wrap(err, "failed to load job")
	}

	return job, nil
}

// List returns all jobs.
func (srv *jobService) List(ctx context.Context) ([]*entity.Job, error) {
	jobs, err := srv.jobRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list jobs")
	}

	return jobs, nil
}

// ListByCompany returns a company's jobs.
func (srv *jobService) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Job, error) {
	jobs, err := srv.jobRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list jobs by company")
	}

	return jobs, nil
}

// SearchByTitle returns jobs matching a title fragment.
func (srv *jobService) SearchByTitle(ctx context.Context, fragment string) ([]*entity.Job, error) {
	jobs, err := srv.jobRepo.SearchByTitle(ctx, fragment)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search jobs")
	}

	return jobs, nil
}

// Update edits a job. The owning company never changes.
func (srv *jobService) Update(ctx context.Context, actor *entity.Account, input *usecase.UpdateJobInput) (*entity.Job, error) {
	if err := srv.access.AssertJobAccess(ctx, actor, input.JobID); err != nil {
		return nil, err
	}

	var job *entity.Job
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		jobRepo := repoFactory.NewJobRepository()

		var findErr error
		job, findErr = jobRepo.FindByID(ctx, input.JobID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrJobNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "job does not exist")
			}

			return errors.Wrap(findErr, "failed to load job")
		}

		job.Title = input.Title
		job.Payoff = input.Payoff
		job.Description = input.Description
		job.ExpiryDate = input.ExpiryDate

		return jobRepo.Update(ctx, job)
	})
	if err != nil {
		srv.log(ctx).Warn("Job update failed", slog.Any("jobID", input.JobID), slog.Any("error", err))

		return nil, err
	}

	return job, nil
}

// UploadImage stores a posting image and records its key and URL.
func (srv *jobService) UploadImage(ctx context.Context, actor *entity.Account, jobID uuid.UUID, input *usecase.UploadImageInput) (*entity.Job, error) {
	if err := srv.access.AssertJobAccess(ctx, actor, jobID); err != nil {
		return nil, err
	}

	job, err := srv.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "job does not exist")
		}

		return nil, errors.Wrap(err, "failed to load job")
	}

	key := fmt.Sprintf("jobs/%s/%s", jobID, uuid.New())
	url, err := srv.imageStorage.Put(ctx, key, input.ContentType, input.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store posting image")
	}

	oldKey := job.PostingImageID
	job.PostingImageID = key
	job.PostingImageURL = url

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewJobRepository().Update(ctx, job)
	})
	if err != nil {
		_ = srv.imageStorage.Delete(ctx, key)

		return nil, errors.Wrap(err, "failed to persist posting image")
	}

	if oldKey != "" {
		if err := srv.imageStorage.Delete(ctx, oldKey); err != nil {
			srv.log(ctx).Warn("Failed to delete replaced posting image", slog.String("key", oldKey), slog.Any("error", err))
		}
	}

	return job, nil
}

// Delete removes a job.
func (srv *jobService) Delete(ctx context.Context, actor *entity.Account, id uuid.UUID) error {
	if err := srv.access.AssertJobAccess(ctx, actor, id); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewJobRepository().Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "job does not exist")
		}
		srv.log(ctx).Error("Job deletion failed", slog.Any("jobID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete job")
	}

	srv.log(ctx).Info("Job deleted", slog.Any("jobID", id))

	return nil
}

// Apply records the actor's application to a job.
func (srv *jobService) Apply(ctx context.Context, actor *entity.Account, jobID uuid.UUID) (*entity.JobApplication, error) {
	if actor == nil {
		return nil, errors.Wrap(domainerrors.ErrNotAuthenticated, "authentication required")
	}

	application := &entity.JobApplication{
		AccountID:       actor.ID,
		JobID:           jobID,
		ApplicationDate: time.Now(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		jobRepo := repoFactory.NewJobRepository()

		if _, err := jobRepo.FindByID(ctx, jobID); err != nil {
			if errors.Is(err, repository.ErrJobNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "job does not exist")
			}

			return errors.Wrap(err, "failed to load job")
		}

		return jobRepo.CreateApplication(ctx, application)
	})
	if err != nil {
		srv.log(ctx).Warn("Job application failed", slog.Any("jobID", jobID), slog.Any("accountID", actor.ID), slog.Any("error", err))

		return nil, err
	}

	return application, nil
}

// ListApplications returns a job's applications.
func (srv *jobService) ListApplications(ctx context.Context, actor *entity.Account, jobID uuid.UUID) ([]*entity.JobApplication, error) {
	if err := srv.access.AssertJobAccess(ctx, actor, jobID); err != nil {
		return nil, err
	}

	applications, err := srv.jobRepo.ListApplicationsByJob(ctx, jobID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list applications")
	}

	return applications, nil
}

// ListOwnApplications returns the actor's applications.
func (srv *jobService) ListOwnApplications(ctx context.Context, actor *entity.Account) ([]*entity.JobApplication, error) {
	if actor == nil {
		return nil, errors.Wrap(domainerrors.ErrNotAuthenticated, "authentication required")
	}

	applications, err := srv.jobRepo.ListApplicationsByAccount(ctx, actor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own applications")
	}

	return applications, nil
}
