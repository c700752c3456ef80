package postgres

import (
	"context"

	"openspace/internal/domain/entity"
	domainerrors "openspace/internal/domain/errors"
	"openspace/internal/domain/repository"
	"openspace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// jobRepository implements the domain.JobRepository interface using GORM.
type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository is the constructor for jobRepository.
func NewJobRepository(db *gorm.DB) repository.JobRepository {
	return &jobRepository{db: db}
}

// Create persists a new job posting.
func (repo *jobRepository) Create(ctx context.Context, job *entity.Job) error {
	jobM := fromJobDomain(job)

	if err := repo.db.WithContext(ctx).Create(jobM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCompanyNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required job information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create job")
	}

	job.ID = jobM.ID

	return nil
}

// FindByID retrieves a single job by its unique ID.
func (repo *jobRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	var jobM model.JobModel

	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&jobM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrJobNotFound
		}

		return nil, errors.Wrap(err, "failed to find job by id")
	}

	return toJobDomain(&jobM), nil
}

// List returns all job postings.
func (repo *jobRepository) List(ctx context.Context) ([]*entity.Job, error) {
	var jobMs []model.JobModel

	if err := repo.db.WithContext(ctx).Find(&jobMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list jobs")
	}

	return toJobDomainSlice(jobMs), nil
}

// ListByCompany returns all job postings of a company.
func (repo *jobRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Job, error) {
	var jobMs []model.JobModel

	err := repo.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Find(&jobMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list jobs by company")
	}

	return toJobDomainSlice(jobMs), nil
}

// SearchByTitle returns jobs whose title contains the fragment, case-insensitively.
func (repo *jobRepository) SearchByTitle(ctx context.Context, fragment string) ([]*entity.Job, error) {
	var jobMs []model.JobModel

	err := repo.db.WithContext(ctx).
		Where("title ILIKE ?", "%"+fragment+"%").
		Find(&jobMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search jobs by title")
	}

	return toJobDomainSlice(jobMs), nil
}

// Update persists changes to an existing job. company_id is deliberately
// excluded from the update set.
func (repo *jobRepository) Update(ctx context.Context, job *entity.Job) error {
	jobM := fromJobDomain(job)

	result := repo.db.WithContext(ctx).
		Model(&model.JobModel{}).
		Where("id = ?", job.ID).
		Updates(map[string]any{
			"title":             jobM.Title,
			"payoff":            jobM.Payoff,
			"description":       jobM.Description,
			"expiry_date":       jobM.ExpiryDate,
			"posting_image_id":  jobM.PostingImageID,
			"posting_image_url": jobM.PostingImageURL,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update job")
	}
	if result.RowsAffected == 0 {
		return repository.ErrJobNotFound
	}

	return nil
}

// Delete removes a job. Applications cascade at the schema level.
func (repo *jobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.JobModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete job")
	}
	if result.RowsAffected == 0 {
		return repository.ErrJobNotFound
	}

	return nil
}

// CreateApplication records that an account applied to a job.
func (repo *jobRepository) CreateApplication(ctx context.Context, application *entity.JobApplication) error {
	applicationM := &model.JobApplicationModel{
		AccountID:       application.AccountID,
		JobID:           application.JobID,
		ApplicationDate: application.ApplicationDate,
	}

	if err := repo.db.WithContext(ctx).Create(applicationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("already applied to this job")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrJobNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create job application")
	}

	return nil
}

// ListApplicationsByJob returns all applications submitted to a job.
func (repo *jobRepository) ListApplicationsByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.JobApplication, error) {
	var applicationMs []model.JobApplicationModel

	err := repo.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Find(&applicationMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list applications by job")
	}

	return toJobApplicationDomainSlice(applicationMs), nil
}

// ListApplicationsByAccount returns all applications an account submitted.
func (repo *jobRepository) ListApplicationsByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.JobApplication, error) {
	var applicationMs []model.JobApplicationModel

	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Find(&applicationMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list applications by account")
	}

	return toJobApplicationDomainSlice(applicationMs), nil
}

// --- Mapper Functions ---

// toJobDomain converts a GORM JobModel to a domain Job entity.
func toJobDomain(data *model.JobModel) *entity.Job {
	if data == nil {
		return nil
	}

	return &entity.Job{
		ID:              data.ID,
		CompanyID:       data.CompanyID,
		Title:           data.Title,
		Payoff:          data.Payoff,
		Description:     data.Description,
		PostingDate:     data.PostingDate,
		ExpiryDate:      data.ExpiryDate,
		PostingImageID:  data.PostingImageID,
		PostingImageURL: data.PostingImageURL,
	}
}

// toJobDomainSlice converts a slice of job models to domain entities.
func toJobDomainSlice(data []model.JobModel) []*entity.Job {
	jobs := make([]*entity.Job, 0, len(data))
	for i := range data {
		jobs = append(jobs, toJobDomain(&data[i]))
	}

	return jobs
}

// fromJobDomain converts a domain Job entity to a GORM JobModel for persistence.
func fromJobDomain(data *entity.Job) *model.JobModel {
	if data == nil {
		return nil
	}

	return &model.JobModel{
		ID:              data.ID,
		CompanyID:       data.CompanyID,
		Title:           data.Title,
		Payoff:          data.Payoff,
		Description:     data.Description,
		PostingDate:     data.PostingDate,
		ExpiryDate:      data.ExpiryDate,
		PostingImageID:  data.PostingImageID,
		PostingImageURL: data.PostingImageURL,
	}
}

// toJobApplicationDomainSlice converts a slice of application models to domain entities.
func toJobApplicationDomainSlice(data []model.JobApplicationModel) []*entity.JobApplication {
	applications := make([]*entity.JobApplication, 0, len(data))
	for i := range data {
		applications = append(applications, &entity.JobApplication{
			AccountID:       data[i].AccountID,
			JobID:           data[i].JobID,
			ApplicationDate: data[i].ApplicationDate,
		})
	}

	return applications
}
