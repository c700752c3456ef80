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

// ratingServiceFixtures holds all test dependencies for rating service tests.
type ratingServiceFixtures struct {
	service     usecase.RatingUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	ratingRepo  *mockRepo.MockRatingRepository
	companyRepo *mockRepo.MockCompanyRepository
	jobRepo     *mockRepo.MockJobRepository
}

func createTestRatingService(t *testing.T) ratingServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	ratingRepo := mockRepo.NewMockRatingRepository(t)
	companyRepo := mockRepo.NewMockCompanyRepository(t)
	jobRepo := mockRepo.NewMockJobRepository(t)

	access := NewAccessService(AccessServiceParams{
		CompanyRepo: companyRepo,
		JobRepo:     jobRepo,
		Logger:      newDiscardLogger(),
	})
	service := NewRatingService(RatingServiceParams{
		TxManager:  txManager,
		RatingRepo: ratingRepo,
		Access:     access,
		Logger:     newDiscardLogger(),
	})

	return ratingServiceFixtures{
		service:     service,
		txManager:   txManager,
		factory:     factory,
		ratingRepo:  ratingRepo,
		companyRepo: companyRepo,
		jobRepo:     jobRepo,
	}
}

func TestRatingService_Rate(t *testing.T) {
	fx := createTestRatingService(t)
	ctx := context.Background()

	company := &entity.Company{ID: uuid.New()}
	actor := &entity.Account{ID: uuid.New(), Role: entity.RoleApplicant}

	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewCompanyRepository().Return(fx.companyRepo)
	fx.factory.EXPECT().NewRatingRepository().Return(fx.ratingRepo)
	fx.companyRepo.EXPECT().FindByID(ctx, company.ID).Return(company, nil)
	fx.ratingRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.CompanyRating")).
		Return(nil)

	rating, err := fx.service.Rate(ctx, actor, &usecase.RateCompanyInput{
		CompanyID: company.ID,
		Score:     4,
		Comment:   "good onboarding",
	})
	require.NoError(t, err)
	assert.Equal(t, actor.ID, rating.AccountID)
	assert.Equal(t, 4, rating.Score)
}

func TestRatingService_Rate_ScoreOutOfRange(t *testing.T) {
	fx := createTestRatingService(t)
	ctx := context.Background()
	actor := &entity.Account{ID: uuid.New(), Role: entity.RoleApplicant}

	for _, score := range []int{0, 6, -3} {
		rating, err := fx.service.Rate(ctx, actor, &usecase.RateCompanyInput{
			CompanyID: uuid.New(),
			Score:     score,
		})
		require.Error(t, err)
		assert.Nil(t, rating)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestRatingService_Rate_Unauthenticated(t *testing.T) {
	fx := createTestRatingService(t)

	rating, err := fx.service.Rate(context.Background(), nil, &usecase.RateCompanyInput{
		CompanyID: uuid.New(),
		Score:     3,
	})
	require.Error(t, err)
	assert.Nil(t, rating)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestRatingService_Rate_MissingCompany(t *testing.T) {
	fx := createTestRatingService(t)
	ctx := context.Background()
	actor := &entity.Account{ID: uuid.New(), Role: entity.RoleApplicant}
	companyID := uuid.New()

	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewCompanyRepository().Return(fx.companyRepo)
	fx.companyRepo.EXPECT().FindByID(ctx, companyID).Return(nil, repository.ErrCompanyNotFound)

	rating, err := fx.service.Rate(ctx, actor, &usecase.RateCompanyInput{CompanyID: companyID, Score: 5})
	require.Error(t, err)
	assert.Nil(t, rating)
	assert.ErrorIs(t, err, domainerrors.ErrCompanyNotFound)
}

func TestRatingService_Summary(t *testing.T) {
	fx := createTestRatingService(t)
	ctx := context.Background()
	companyID := uuid.New()

	ratings := []*entity.CompanyRating{
		{CompanyID: companyID, AccountID: uuid.New(), Score: 5},
		{CompanyID: companyID, AccountID: uuid.New(), Score: 2},
	}

	fx.ratingRepo.EXPECT().ListByCompany(ctx, companyID).Return(ratings, nil)
	fx.ratingRepo.EXPECT().AverageByCompany(ctx, companyID).Return(3.5, nil)

	summary, err := fx.service.Summary(ctx, companyID)
	require.NoError(t, err)
	assert.Equal(t, companyID, summary.CompanyID)
	assert.InDelta(t, 3.5, summary.Average, 0.001)
	assert.Equal(t, 2, summary.Count)
}

func TestRatingService_Delete_OwnRating(t *testing.T) {
	fx := createTestRatingService(t)
	ctx := context.Background()
	actor := &entity.Account{ID: uuid.New(), Role: entity.RoleApplicant}
	companyID := uuid.New()

	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewRatingRepository().Return(fx.ratingRepo)
	fx.ratingRepo.EXPECT().Delete(ctx, companyID, actor.ID).Return(nil)

	assert.NoError(t, fx.service.Delete(ctx, actor, companyID, actor.ID))
}

func TestRatingService_Delete_SomeoneElsesRating(t *testing.T) {
	fx := createTestRatingService(t)
	ctx := context.Background()
	actor := &entity.Account{ID: uuid.New(), Role: entity.RoleApplicant}

	err := fx.service.Delete(ctx, actor, uuid.New(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRatingService_Delete_MissingRating(t *testing.T) {
	fx := createTestRatingService(t)
	ctx := context.Background()
	admin := &entity.Account{ID: uuid.New(), Role: entity.RolePlatformAdmin}
	companyID := uuid.New()
	accountID := uuid.New()

	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewRatingRepository().Return(fx.ratingRepo)
	fx.ratingRepo.EXPECT().
		Delete(ctx, companyID, accountID).
		Return(repository.ErrRatingNotFound)

	err := fx.service.Delete(ctx, admin, companyID, accountID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
