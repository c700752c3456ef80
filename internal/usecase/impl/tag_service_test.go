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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// tagServiceFixtures holds all test dependencies for tag service tests.
type tagServiceFixtures struct {
	service     usecase.TagUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	tagRepo     *mockRepo.MockTagRepository
	companyRepo *mockRepo.MockCompanyRepository
	jobRepo     *mockRepo.MockJobRepository
}

func createTestTagService(t *testing.T) tagServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	tagRepo := mockRepo.NewMockTagRepository(t)
	companyRepo := mockRepo.NewMockCompanyRepository(t)
	jobRepo := mockRepo.NewMockJobRepository(t)

	access := NewAccessService(AccessServiceParams{
		CompanyRepo: companyRepo,
		JobRepo:     jobRepo,
		Logger:      newDiscardLogger(),
	})
	service := NewTagService(TagServiceParams{
		TxManager: txManager,
		TagRepo:   tagRepo,
		Access:    access,
		Logger:    newDiscardLogger(),
	})

	return tagServiceFixtures{
		service:     service,
		txManager:   txManager,
		factory:     factory,
		tagRepo:     tagRepo,
		companyRepo: companyRepo,
		jobRepo:     jobRepo,
	}
}

func TestTagService_Create(t *testing.T) {
	fx := createTestTagService(t)
	ctx := context.Background()
	admin := &entity.Account{ID: uuid.New(), Role: entity.RolePlatformAdmin}

	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewTagRepository().Return(fx.tagRepo)
	fx.tagRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Tag")).
		Return(nil)

	tag, err := fx.service.Create(ctx, admin, &usecase.CreateTagInput{Name: "golang", Description: "Go positions"})
	require.NoError(t, err)
	assert.Equal(t, "golang", tag.Name)
}

func TestTagService_Create_RequiresPlatformAdmin(t *testing.T) {
	fx := createTestTagService(t)
	ctx := context.Background()
	applicant := &entity.Account{ID: uuid.New(), Role: entity.RoleApplicant}

	tag, err := fx.service.Create(ctx, applicant, &usecase.CreateTagInput{Name: "golang"})
	require.Error(t, err)
	assert.Nil(t, tag)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestTagService_Attach_JobScope(t *testing.T) {
	fx := createTestTagService(t)
	ctx := context.Background()

	company := &entity.Company{ID: uuid.New()}
	owner := adminOf(company)
	job := &entity.Job{ID: uuid.New(), CompanyID: company.ID}
	tag := &entity.Tag{ID: uuid.New(), Name: "golang"}

	fx.jobRepo.EXPECT().FindByID(ctx, job.ID).Return(job, nil)
	fx.companyRepo.EXPECT().FindByID(ctx, company.ID).Return(company, nil)

	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewTagRepository().Return(fx.tagRepo)
	fx.tagRepo.EXPECT().FindByID(ctx, tag.ID).Return(tag, nil)
	fx.tagRepo.EXPECT().
		Attach(ctx, mock.AnythingOfType("*entity.EntityTag")).
		Return(nil)

	err := fx.service.Attach(ctx, owner, &usecase.AttachTagInput{
		TagID:      tag.ID,
		EntityID:   job.ID,
		EntityType: entity.TagEntityJob,
	})
	assert.NoError(t, err)
}

func TestTagService_Attach_StrangerForbidden(t *testing.T) {
	fx := createTestTagService(t)
	ctx := context.Background()

	company := &entity.Company{ID: uuid.New()}
	adminOf(company)
	stranger := &entity.Account{ID: uuid.New(), Role: entity.RoleApplicant}

	fx.companyRepo.EXPECT().FindByID(ctx, company.ID).Return(company, nil)
	fx.companyRepo.EXPECT().
		FindRecruiterLink(ctx, stranger.ID, company.ID).
		Return(nil, repository.ErrRecruiterLinkNotFound)

	err := fx.service.Attach(ctx, stranger, &usecase.AttachTagInput{
		TagID:      uuid.New(),
		EntityID:   company.ID,
		EntityType: entity.TagEntityCompany,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestTagService_Attach_MissingTag(t *testing.T) {
	fx := createTestTagService(t)
	ctx := context.Background()

	user := &entity.Account{ID: uuid.New(), Role: entity.RoleApplicant}
	tagID := uuid.New()

	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewTagRepository().Return(fx.tagRepo)
	fx.tagRepo.EXPECT().FindByID(ctx, tagID).Return(nil, repository.ErrTagNotFound)

	err := fx.service.Attach(ctx, user, &usecase.AttachTagInput{
		TagID:      tagID,
		EntityID:   user.ID,
		EntityType: entity.TagEntityUser,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestTagService_Attach_UnknownEntityType(t *testing.T) {
	fx := createTestTagService(t)
	ctx := context.Background()

	err := fx.service.Attach(ctx, &entity.Account{ID: uuid.New(), Role: entity.RolePlatformAdmin}, &usecase.AttachTagInput{
		TagID:      uuid.New(),
		EntityID:   uuid.New(),
		EntityType: entity.TagEntityType("spaceship"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTagService_Detach_NotAttached(t *testing.T) {
	fx := createTestTagService(t)
	ctx := context.Background()

	user := &entity.Account{ID: uuid.New(), Role: entity.RoleApplicant}
	tagID := uuid.New()

	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewTagRepository().Return(fx.tagRepo)
	fx.tagRepo.EXPECT().
		Detach(ctx, user.ID, entity.TagEntityUser, tagID).
		Return(repository.ErrEntityTagNotFound)

	err := fx.service.Detach(ctx, user, &usecase.AttachTagInput{
		TagID:      tagID,
		EntityID:   user.ID,
		EntityType: entity.TagEntityUser,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestTagService_ListByEntity(t *testing.T) {
	fx := createTestTagService(t)
	ctx := context.Background()
	entityID := uuid.New()
	tags := []*entity.Tag{{ID: uuid.New(), Name: "golang"}}

	fx.tagRepo.EXPECT().
		ListByEntity(ctx, entityID, entity.TagEntityJob).
		Return(tags, nil)

	got, err := fx.service.ListByEntity(ctx, entityID, entity.TagEntityJob)
	require.NoError(t, err)
	assert.Equal(t, tags, got)
}
