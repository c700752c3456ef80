package impl

import (
	"context"
	"testing"

	"openspace/internal/domain/entity"
	domainerrors "openspace/internal/domain/errors"
	mockRepo "openspace/internal/mocks/repository"
	mockService "openspace/internal/mocks/service"
	"openspace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// companyServiceFixtures holds all test dependencies for company service tests.
type companyServiceFixtures struct {
	service      usecase.CompanyUsecase
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	companyRepo  *mockRepo.MockCompanyRepository
	jobRepo      *mockRepo.MockJobRepository
	imageStorage *mockService.MockImageStorage
}

func createTestCompanyService(t *testing.T) companyServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	companyRepo := mockRepo.NewMockCompanyRepository(t)
	jobRepo := mockRepo.NewMockJobRepository(t)
	imageStorage := mockService.NewMockImageStorage(t)

	access := NewAccessService(AccessServiceParams{
		CompanyRepo: companyRepo,
		JobRepo:     jobRepo,
		Logger:      newDiscardLogger(),
	})
	service := NewCompanyService(CompanyServiceParams{
		TxManager:    txManager,
		CompanyRepo:  companyRepo,
		Access:       access,
		ImageStorage: imageStorage,
		Logger:       newDiscardLogger(),
	})

	return companyServiceFixtures{
		service:      service,
		txManager:    txManager,
		factory:      factory,
		companyRepo:  companyRepo,
		jobRepo:      jobRepo,
		imageStorage: imageStorage,
	}
}

func TestCompanyService_Update_ByOwningAdmin(t *testing.T) {
	fx := createTestCompanyService(t)
	ctx := context.Background()

	company := &entity.Company{ID: uuid.New(), Name: "Old name"}
	owner := adminOf(company)

	fx.companyRepo.EXPECT().FindByID(ctx, company.ID).Return(company, nil).Times(2)
	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewCompanyRepository().Return(fx.companyRepo)
	fx.companyRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Company")).
		Return(nil)

	updated, err := fx.service.Update(ctx, owner, &usecase.UpdateCompanyInput{
		CompanyID:   company.ID,
		Name:        "New name",
		Description: "Updated description",
	})
	require.NoError(t, err)
	assert.Equal(t, "New name", updated.Name)
	assert.Equal(t, "Updated description", updated.Description)
}

func TestCompanyService_Update_RecruiterForbidden(t *testing.T) {
	fx := createTestCompanyService(t)
	ctx := context.Background()

	company := &entity.Company{ID: uuid.New()}
	adminOf(company)
	recruiter := &entity.Account{ID: uuid.New(), Role: entity.RoleApplicant}

	// No FindRecruiterLink expectation: company mutations never consult the
	// recruiter links, a recruiter is rejected outright.
	fx.companyRepo.EXPECT().FindByID(ctx, company.ID).Return(company, nil)

	updated, err := fx.service.Update(ctx, recruiter, &usecase.UpdateCompanyInput{
		CompanyID: company.ID,
		Name:      "Hijacked",
	})
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCompanyService_Update_ForeignAdminRejected(t *testing.T) {
	fx := createTestCompanyService(t)
	ctx := context.Background()

	company := &entity.Company{ID: uuid.New()}
	adminOf(company)
	foreignAdmin := &entity.Account{ID: uuid.New(), Role: entity.RolePlatformAdmin}

	fx.companyRepo.EXPECT().FindByID(ctx, company.ID).Return(company, nil)

	updated, err := fx.service.Update(ctx, foreignAdmin, &usecase.UpdateCompanyInput{
		CompanyID: company.ID,
		Name:      "Hijacked",
	})
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrCompanyMismatch)
}

func TestCompanyService_UploadImage_RecruiterForbidden(t *testing.T) {
	fx := createTestCompanyService(t)
	ctx := context.Background()

	company := &entity.Company{ID: uuid.New()}
	adminOf(company)
	recruiter := &entity.Account{ID: uuid.New(), Role: entity.RoleApplicant}

	// No storage expectation either: the guard fires before any upload work.
	fx.companyRepo.EXPECT().FindByID(ctx, company.ID).Return(company, nil)

	updated, err := fx.service.UploadImage(ctx, recruiter, company.ID, &usecase.UploadImageInput{
		ContentType: "image/png",
	})
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
