package impl

import (
	"context"
	"testing"
	"time"

	"openspace/internal/domain/entity"
	domainerrors "openspace/internal/domain/errors"
	"openspace/internal/domain/repository"
	mockRepo "openspace/internal/mocks/repository"
	"openspace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recruiterServiceFixtures holds all test dependencies for recruiter service tests.
type recruiterServiceFixtures struct {
	service     usecase.RecruiterUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	accountRepo *mockRepo.MockAccountRepository
	companyRepo *mockRepo.MockCompanyRepository
	jobRepo     *mockRepo.MockJobRepository
}

func createTestRecruiterService(t *testing.T) recruiterServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	companyRepo := mockRepo.NewMockCompanyRepository(t)
	jobRepo := mockRepo.NewMockJobRepository(t)

	access := NewAccessService(AccessServiceParams{
		CompanyRepo: companyRepo,
		JobRepo:     jobRepo,
		Logger:      newDiscardLogger(),
	})
	service := NewRecruiterService(RecruiterServiceParams{
		TxManager:   txManager,
		CompanyRepo: companyRepo,
		Access:      access,
		Logger:      newDiscardLogger(),
	})

	return recruiterServiceFixtures{
		service:     service,
		txManager:   txManager,
		factory:     factory,
		accountRepo: accountRepo,
		companyRepo: companyRepo,
		jobRepo:     jobRepo,
	}
}

func TestRecruiterService_Assign(t *testing.T) {
	fx := createTestRecruiterService(t)
	ctx := context.Background()

	company := &entity.Company{ID: uuid.New()}
	owner := adminOf(company)
	target := &entity.Account{ID: uuid.New(), Role: entity.RoleApplicant}

	fx.companyRepo.EXPECT().FindByID(ctx, company.ID).Return(company, nil)

	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewAccountRepository().Return(fx.accountRepo)
	fx.factory.EXPECT().NewCompanyRepository().Return(fx.companyRepo)

	fx.accountRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
	fx.companyRepo.EXPECT().
		FindRecruiterLink(ctx, target.ID, company.ID).
		Return(nil, repository.ErrRecruiterLinkNotFound)
	fx.companyRepo.EXPECT().
		CreateRecruiterLink(ctx, mock.AnythingOfType("*entity.RecruiterLink")).
		Return(nil)

	link, err := fx.service.Assign(ctx, owner, &usecase.AssignRecruiterInput{
		AccountID: target.ID,
		CompanyID: company.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, target.ID, link.AccountID)
	assert.Equal(t, company.ID, link.CompanyID)
	assert.False(t, link.JoinDate.IsZero())
}

func TestRecruiterService_Assign_AlreadyLinkedIsIdempotent(t *testing.T) {
	fx := createTestRecruiterService(t)
	ctx := context.Background()

	company := &entity.Company{ID: uuid.New()}
	owner := adminOf(company)
	target := &entity.Account{ID: uuid.New(), Role: entity.RoleApplicant}
	existing := &entity.RecruiterLink{
		AccountID: target.ID,
		CompanyID: company.ID,
		JoinDate:  time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	fx.companyRepo.EXPECT().FindByID(ctx, company.ID).Return(company, nil)

	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewAccountRepository().Return(fx.accountRepo)
	fx.factory.EXPECT().NewCompanyRepository().Return(fx.companyRepo)

	fx.accountRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
	fx.companyRepo.EXPECT().
		FindRecruiterLink(ctx, target.ID, company.ID).
		Return(existing, nil)

	// Re-assigning succeeds without creating anything and reports the
	// original link, join date included.
	link, err := fx.service.Assign(ctx, owner, &usecase.AssignRecruiterInput{
		AccountID: target.ID,
		CompanyID: company.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, existing, link)
	assert.Equal(t, existing.JoinDate, link.JoinDate)
}

func TestRecruiterService_Assign_TargetNotApplicant(t *testing.T) {
	fx := createTestRecruiterService(t)
	ctx := context.Background()

	company := &entity.Company{ID: uuid.New()}
	owner := adminOf(company)
	target := &entity.Account{ID: uuid.New(), Role: entity.RolePlatformAdmin}

	fx.companyRepo.EXPECT().FindByID(ctx, company.ID).Return(company, nil)

	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewAccountRepository().Return(fx.accountRepo)
	fx.factory.EXPECT().NewCompanyRepository().Return(fx.companyRepo)

	fx.accountRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)

	link, err := fx.service.Assign(ctx, owner, &usecase.AssignRecruiterInput{
		AccountID: target.ID,
		CompanyID: company.ID,
	})
	require.Error(t, err)
	assert.Nil(t, link)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotApplicant)
}

func TestRecruiterService_Assign_RequiresOwningAdmin(t *testing.T) {
	fx := createTestRecruiterService(t)
	ctx := context.Background()

	company := &entity.Company{ID: uuid.New()}
	adminOf(company)
	// Platform admin who owns a different company.
	otherAdmin := &entity.Account{ID: uuid.New(), Role: entity.RolePlatformAdmin}

	fx.companyRepo.EXPECT().FindByID(ctx, company.ID).Return(company, nil)

	link, err := fx.service.Assign(ctx, otherAdmin, &usecase.AssignRecruiterInput{
		AccountID: uuid.New(),
		CompanyID: company.ID,
	})
	require.Error(t, err)
	assert.Nil(t, link)
	assert.ErrorIs(t, err, domainerrors.ErrCompanyMismatch)
}

func TestRecruiterService_Remove(t *testing.T) {
	fx := createTestRecruiterService(t)
	ctx := context.Background()

	company := &entity.Company{ID: uuid.New()}
	owner := adminOf(company)
	recruiterID := uuid.New()

	fx.companyRepo.EXPECT().FindByID(ctx, company.ID).Return(company, nil)

	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewCompanyRepository().Return(fx.companyRepo)
	fx.companyRepo.EXPECT().
		DeleteRecruiterLink(ctx, recruiterID, company.ID).
		Return(nil)

	err := fx.service.Remove(ctx, owner, &usecase.AssignRecruiterInput{
		AccountID: recruiterID,
		CompanyID: company.ID,
	})
	assert.NoError(t, err)
}

func TestRecruiterService_Remove_MissingLink(t *testing.T) {
	fx := createTestRecruiterService(t)
	ctx := context.Background()

	company := &entity.Company{ID: uuid.New()}
	owner := adminOf(company)
	recruiterID := uuid.New()

	fx.companyRepo.EXPECT().FindByID(ctx, company.ID).Return(company, nil)

	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewCompanyRepository().Return(fx.companyRepo)
	fx.companyRepo.EXPECT().
		DeleteRecruiterLink(ctx, recruiterID, company.ID).
		Return(repository.ErrRecruiterLinkNotFound)

	err := fx.service.Remove(ctx, owner, &usecase.AssignRecruiterInput{
		AccountID: recruiterID,
		CompanyID: company.ID,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAssignmentNotFound)
}

func TestRecruiterService_ListOwnCompanies(t *testing.T) {
	fx := createTestRecruiterService(t)
	ctx := context.Background()

	recruiter := &entity.Account{ID: uuid.New(), Role: entity.RoleApplicant}
	companies := []*entity.Company{{ID: uuid.New(), Name: "Acme"}}

	fx.companyRepo.EXPECT().
		ListCompaniesByRecruiter(ctx, recruiter.ID).
		Return(companies, nil)

	got, err := fx.service.ListOwnCompanies(ctx, recruiter)
	require.NoError(t, err)
	assert.Equal(t, companies, got)
}

func TestRecruiterService_ListOwnCompanies_Unauthenticated(t *testing.T) {
	fx := createTestRecruiterService(t)

	got, err := fx.service.ListOwnCompanies(context.Background(), nil)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}
