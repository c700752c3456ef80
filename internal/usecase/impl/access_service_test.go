package impl

import (
	"context"
	"testing"

	"openspace/internal/domain/entity"
	domainerrors "openspace/internal/domain/errors"
	"openspace/internal/domain/repository"
	mockRepo "openspace/internal/mocks/repository"
	"openspace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// accessServiceFixtures holds all test dependencies for access service tests.
type accessServiceFixtures struct {
	service     usecase.AccessUsecase
	companyRepo *mockRepo.MockCompanyRepository
	jobRepo     *mockRepo.MockJobRepository
}

func createTestAccessService(t *testing.T) accessServiceFixtures {
	companyRepo := mockRepo.NewMockCompanyRepository(t)
	jobRepo := mockRepo.NewMockJobRepository(t)

	service := NewAccessService(AccessServiceParams{
		CompanyRepo: companyRepo,
		JobRepo:     jobRepo,
		Logger:      newDiscardLogger(),
	})

	return accessServiceFixtures{
		service:     service,
		companyRepo: companyRepo,
		jobRepo:     jobRepo,
	}
}

func adminOf(company *entity.Company) *entity.Account {
	id := uuid.New()
	company.AdminAccountID = &id

	return &entity.Account{ID: id, Role: entity.RolePlatformAdmin}
}

func TestAccessService_Predicates(t *testing.T) {
	fx := createTestAccessService(t)

	self := &entity.Account{ID: uuid.New(), Role: entity.RoleApplicant}
	admin := &entity.Account{ID: uuid.New(), Role: entity.RolePlatformAdmin}

	assert.True(t, fx.service.IsSelf(self, self.ID))
	assert.False(t, fx.service.IsSelf(self, uuid.New()))
	assert.False(t, fx.service.IsSelf(nil, self.ID))

	assert.True(t, fx.service.IsPlatformAdmin(admin))
	assert.False(t, fx.service.IsPlatformAdmin(self))
	assert.False(t, fx.service.IsPlatformAdmin(nil))
}

func TestAccessService_AssertCompanyAccess_MissingCompanyCheckedFirst(t *testing.T) {
	fx := createTestAccessService(t)
	ctx := context.Background()
	companyID := uuid.New()

	fx.companyRepo.EXPECT().
		FindByID(ctx, companyID).
		Return(nil, repository.ErrCompanyNotFound)

	// A stranger probing a missing company sees NotFound, not Forbidden.
	err := fx.service.AssertCompanyAccess(ctx, &entity.Account{ID: uuid.New(), Role: entity.RoleApplicant}, companyID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCompanyNotFound)
}

func TestAccessService_AssertCompanyAccess_Admin(t *testing.T) {
	fx := createTestAccessService(t)
	ctx := context.Background()

	company := &entity.Company{ID: uuid.New()}
	admin := adminOf(company)

	fx.companyRepo.EXPECT().FindByID(ctx, company.ID).Return(company, nil)

	assert.NoError(t, fx.service.AssertCompanyAccess(ctx, admin, company.ID))
}

func TestAccessService_AssertCompanyAccess_Recruiter(t *testing.T) {
	fx := createTestAccessService(t)
	ctx := context.Background()

	company := &entity.Company{ID: uuid.New()}
	adminOf(company)
	recruiter := &entity.Account{ID: uuid.New(), Role: entity.RoleApplicant}

	fx.companyRepo.EXPECT().FindByID(ctx, company.ID).Return(company, nil)
	fx.companyRepo.EXPECT().
		FindRecruiterLink(ctx, recruiter.ID, company.ID).
		Return(&entity.RecruiterLink{AccountID: recruiter.ID, CompanyID: company.ID}, nil)

	assert.NoError(t, fx.service.AssertCompanyAccess(ctx, recruiter, company.ID))
}

func TestAccessService_AssertCompanyAccess_Stranger(t *testing.T) {
	fx := createTestAccessService(t)
	ctx := context.Background()

	company := &entity.Company{ID: uuid.New()}
	adminOf(company)
	stranger := &entity.Account{ID: uuid.New(), Role: entity.RoleApplicant}

	fx.companyRepo.EXPECT().FindByID(ctx, company.ID).Return(company, nil)
	fx.companyRepo.EXPECT().
		FindRecruiterLink(ctx, stranger.ID, company.ID).
		Return(nil, repository.ErrRecruiterLinkNotFound)

	err := fx.service.AssertCompanyAccess(ctx, stranger, company.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

// A recruiter's grant is scoped to the linked company: access to one company
// says nothing about any other.
func TestAccessService_RecruiterScopeDoesNotLeakAcrossCompanies(t *testing.T) {
	fx := createTestAccessService(t)
	ctx := context.Background()

	linked := &entity.Company{ID: uuid.New()}
	adminOf(linked)
	other := &entity.Company{ID: uuid.New()}
	adminOf(other)
	recruiter := &entity.Account{ID: uuid.New(), Role: entity.RoleApplicant}

	linkedJob := &entity.Job{ID: uuid.New(), CompanyID: linked.ID}
	otherJob := &entity.Job{ID: uuid.New(), CompanyID: other.ID}

	fx.jobRepo.EXPECT().FindByID(ctx, linkedJob.ID).Return(linkedJob, nil)
	fx.companyRepo.EXPECT().FindByID(ctx, linked.ID).Return(linked, nil)
	fx.companyRepo.EXPECT().
		FindRecruiterLink(ctx, recruiter.ID, linked.ID).
		Return(&entity.RecruiterLink{AccountID: recruiter.ID, CompanyID: linked.ID}, nil)

	assert.NoError(t, fx.service.AssertJobAccess(ctx, recruiter, linkedJob.ID))

	fx.jobRepo.EXPECT().FindByID(ctx, otherJob.ID).Return(otherJob, nil)
	fx.companyRepo.EXPECT().FindByID(ctx, other.ID).Return(other, nil)
	fx.companyRepo.EXPECT().
		FindRecruiterLink(ctx, recruiter.ID, other.ID).
		Return(nil, repository.ErrRecruiterLinkNotFound)

	err := fx.service.AssertJobAccess(ctx, recruiter, otherJob.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

// Access is re-read per request, so removing the link locks the recruiter out
// immediately.
func TestAccessService_RevokedRecruiterLosesAccess(t *testing.T) {
	fx := createTestAccessService(t)
	ctx := context.Background()

	company := &entity.Company{ID: uuid.New()}
	adminOf(company)
	recruiter := &entity.Account{ID: uuid.New(), Role: entity.RoleApplicant}

	fx.companyRepo.EXPECT().FindByID(ctx, company.ID).Return(company, nil).Times(2)
	fx.companyRepo.EXPECT().
		FindRecruiterLink(ctx, recruiter.ID, company.ID).
		Return(&entity.RecruiterLink{AccountID: recruiter.ID, CompanyID: company.ID}, nil).
		Once()

	assert.NoError(t, fx.service.AssertCompanyAccess(ctx, recruiter, company.ID))

	fx.companyRepo.EXPECT().
		FindRecruiterLink(ctx, recruiter.ID, company.ID).
		Return(nil, repository.ErrRecruiterLinkNotFound).
		Once()

	err := fx.service.AssertCompanyAccess(ctx, recruiter, company.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAccessService_AssertCompanyAdmin(t *testing.T) {
	fx := createTestAccessService(t)
	ctx := context.Background()

	company := &entity.Company{ID: uuid.New()}
	owner := adminOf(company)

	fx.companyRepo.EXPECT().FindByID(ctx, company.ID).Return(company, nil)

	assert.NoError(t, fx.service.AssertCompanyAdmin(ctx, owner, company.ID))
}

func TestAccessService_AssertCompanyAdmin_NotPlatformAdmin(t *testing.T) {
	fx := createTestAccessService(t)
	ctx := context.Background()

	company := &entity.Company{ID: uuid.New()}
	adminOf(company)
	recruiter := &entity.Account{ID: uuid.New(), Role: entity.RoleApplicant}

	fx.companyRepo.EXPECT().FindByID(ctx, company.ID).Return(company, nil)

	err := fx.service.AssertCompanyAdmin(ctx, recruiter, company.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAccessService_AssertCompanyAdmin_OtherAdminsCompany(t *testing.T) {
	fx := createTestAccessService(t)
	ctx := context.Background()

	company := &entity.Company{ID: uuid.New()}
	adminOf(company)
	// Platform admin, but owns a different company.
	otherAdmin := &entity.Account{ID: uuid.New(), Role: entity.RolePlatformAdmin}

	fx.companyRepo.EXPECT().FindByID(ctx, company.ID).Return(company, nil)

	err := fx.service.AssertCompanyAdmin(ctx, otherAdmin, company.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCompanyMismatch)
}

func TestAccessService_AssertJobAccess_MissingJob(t *testing.T) {
	fx := createTestAccessService(t)
	ctx := context.Background()
	jobID := uuid.New()

	fx.jobRepo.EXPECT().FindByID(ctx, jobID).Return(nil, repository.ErrJobNotFound)

	err := fx.service.AssertJobAccess(ctx, &entity.Account{ID: uuid.New(), Role: entity.RolePlatformAdmin}, jobID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAccessService_AssertCompanyAccess_ForeignAdminRejected(t *testing.T) {
	fx := createTestAccessService(t)
	ctx := context.Background()

	company := &entity.Company{ID: uuid.New()}
	adminOf(company)
	foreignAdmin := &entity.Account{ID: uuid.New(), Role: entity.RolePlatformAdmin}

	// No FindRecruiterLink expectation: an admin who does not own the
	// company must be rejected before any recruiter lookup runs.
	fx.companyRepo.EXPECT().FindByID(ctx, company.ID).Return(company, nil)

	err := fx.service.AssertCompanyAccess(ctx, foreignAdmin, company.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCompanyMismatch)
}

func TestAccessService_AssertJobAccess_ForeignAdminRejected(t *testing.T) {
	fx := createTestAccessService(t)
	ctx := context.Background()

	company := &entity.Company{ID: uuid.New()}
	adminOf(company)
	foreignAdmin := &entity.Account{ID: uuid.New(), Role: entity.RolePlatformAdmin}
	job := &entity.Job{ID: uuid.New(), CompanyID: company.ID}

	fx.jobRepo.EXPECT().FindByID(ctx, job.ID).Return(job, nil)
	fx.companyRepo.EXPECT().FindByID(ctx, company.ID).Return(company, nil)

	err := fx.service.AssertJobAccess(ctx, foreignAdmin, job.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCompanyMismatch)
}
