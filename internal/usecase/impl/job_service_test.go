package impl

import (
	"context"
	"testing"

	"openspace/internal/domain/entity"
	domainerrors "openspace/internal/domain/errors"
	"openspace/internal/domain/repository"
	mockRepo "openspace/internal/mocks/repository"
	mockService "openspace/internal/mocks/service"
	"openspace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// jobServiceFixtures holds all test dependencies for job service tests.
type jobServiceFixtures struct {
	service      usecase.JobUsecase
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	jobRepo      *mockRepo.MockJobRepository
	companyRepo  *mockRepo.MockCompanyRepository
	imageStorage *mockService.MockImageStorage
}

func createTestJobService(t *testing.T) jobServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	jobRepo := mockRepo.NewMockJobRepository(t)
	companyRepo := mockRepo.NewMockCompanyRepository(t)
	imageStorage := mockService.NewMockImageStorage(t)

	access := NewAccessService(AccessServiceParams{
		CompanyRepo: companyRepo,
		JobRepo:     jobRepo,
		Logger:      newDiscardLogger(),
	})
	service := NewJobService(JobServiceParams{
		TxManager:    txManager,
		JobRepo:      jobRepo,
		Access:       access,
		ImageStorage: imageStorage,
		Logger:       newDiscardLogger(),
	})

	return jobServiceFixtures{
		service:      service,
		txManager:    txManager,
		factory:      factory,
		jobRepo:      jobRepo,
		companyRepo:  companyRepo,
		imageStorage: imageStorage,
	}
}

func TestJobService_Create_ByRecruiter(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()

	company := &entity.Company{ID: uuid.New()}
	adminOf(company)
	recruiter := &entity.Account{ID: uuid.New(), Role: entity.RoleApplicant}

	fx.companyRepo.EXPECT().FindByID(ctx, company.ID).Return(company, nil)
	fx.companyRepo.EXPECT().
		FindRecruiterLink(ctx, recruiter.ID, company.ID).
		Return(&entity.RecruiterLink{AccountID: recruiter.ID, CompanyID: company.ID}, nil)

	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewJobRepository().Return(fx.jobRepo)
	fx.jobRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Job")).
		Return(nil)

	job, err := fx.service.Create(ctx, recruiter, &usecase.CreateJobInput{
		CompanyID:   company.ID,
		Title:       "Backend Engineer",
		Payoff:      85000,
		Description: "Go services",
	})
	require.NoError(t, err)
	assert.Equal(t, company.ID, job.CompanyID)
	assert.False(t, job.PostingDate.IsZero())
}

func TestJobService_Create_MissingCompany(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()
	companyID := uuid.New()

	fx.companyRepo.EXPECT().
		FindByID(ctx, companyID).
		Return(nil, repository.ErrCompanyNotFound)

	job, err := fx.service.Create(ctx, &entity.Account{ID: uuid.New(), Role: entity.RolePlatformAdmin}, &usecase.CreateJobInput{
		CompanyID: companyID,
		Title:     "Backend Engineer",
	})
	require.Error(t, err)
	assert.Nil(t, job)
	assert.ErrorIs(t, err, domainerrors.ErrCompanyNotFound)
}

func TestJobService_Update_KeepsOwningCompany(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()

	company := &entity.Company{ID: uuid.New()}
	owner := adminOf(company)
	job := &entity.Job{ID: uuid.New(), CompanyID: company.ID, Title: "Old title"}

	fx.jobRepo.EXPECT().FindByID(ctx, job.ID).Return(job, nil).Times(2)
	fx.companyRepo.EXPECT().FindByID(ctx, company.ID).Return(company, nil)

	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewJobRepository().Return(fx.jobRepo)
	fx.jobRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Job")).
		Return(nil)

	updated, err := fx.service.Update(ctx, owner, &usecase.UpdateJobInput{
		JobID:       job.ID,
		Title:       "New title",
		Payoff:      90000,
		Description: "Updated",
	})
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, company.ID, updated.CompanyID)
}

func TestJobService_Apply(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()

	applicant := &entity.Account{ID: uuid.New(), Role: entity.RoleApplicant}
	job := &entity.Job{ID: uuid.New(), CompanyID: uuid.New()}

	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewJobRepository().Return(fx.jobRepo)
	fx.jobRepo.EXPECT().FindByID(ctx, job.ID).Return(job, nil)
	fx.jobRepo.EXPECT().
		CreateApplication(ctx, mock.AnythingOfType("*entity.JobApplication")).
		Return(nil)

	application, err := fx.service.Apply(ctx, applicant, job.ID)
	require.NoError(t, err)
	assert.Equal(t, applicant.ID, application.AccountID)
	assert.Equal(t, job.ID, application.JobID)
	assert.False(t, application.ApplicationDate.IsZero())
}

func TestJobService_Apply_Unauthenticated(t *testing.T) {
	fx := createTestJobService(t)

	application, err := fx.service.Apply(context.Background(), nil, uuid.New())
	require.Error(t, err)
	assert.Nil(t, application)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestJobService_ListApplications_RequiresCompanyRelation(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()

	company := &entity.Company{ID: uuid.New()}
	adminOf(company)
	job := &entity.Job{ID: uuid.New(), CompanyID: company.ID}
	stranger := &entity.Account{ID: uuid.New(), Role: entity.RoleApplicant}

	fx.jobRepo.EXPECT().FindByID(ctx, job.ID).Return(job, nil)
	fx.companyRepo.EXPECT().FindByID(ctx, company.ID).Return(company, nil)
	fx.companyRepo.EXPECT().
		FindRecruiterLink(ctx, stranger.ID, company.ID).
		Return(nil, repository.ErrRecruiterLinkNotFound)

	applications, err := fx.service.ListApplications(ctx, stranger, job.ID)
	require.Error(t, err)
	assert.Nil(t, applications)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestJobService_Get_Public(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()

	job := &entity.Job{ID: uuid.New(), CompanyID: uuid.New(), Title: "Backend Engineer"}
	fx.jobRepo.EXPECT().FindByID(ctx, job.ID).Return(job, nil)

	got, err := fx.service.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job, got)
}

func TestJobService_Get_Missing(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()
	jobID := uuid.New()

	fx.jobRepo.EXPECT().FindByID(ctx, jobID).Return(nil, repository.ErrJobNotFound)

	got, err := fx.service.Get(ctx, jobID)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
