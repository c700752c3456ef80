package impl

import (
	"context"
	"io"
	"strings"
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

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	accountRepo  *mockRepo.MockAccountRepository
	companyRepo  *mockRepo.MockCompanyRepository
	jobRepo      *mockRepo.MockJobRepository
	imageStorage *mockService.MockImageStorage
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	companyRepo := mockRepo.NewMockCompanyRepository(t)
	jobRepo := mockRepo.NewMockJobRepository(t)
	imageStorage := mockService.NewMockImageStorage(t)

	access := NewAccessService(AccessServiceParams{
		CompanyRepo: companyRepo,
		JobRepo:     jobRepo,
		Logger:      newDiscardLogger(),
	})
	service := NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		AccountRepo:  accountRepo,
		Access:       access,
		ImageStorage: imageStorage,
		Logger:       newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:      service,
		txManager:    txManager,
		factory:      factory,
		accountRepo:  accountRepo,
		companyRepo:  companyRepo,
		jobRepo:      jobRepo,
		imageStorage: imageStorage,
	}
}

func newApplicant() *entity.Account {
	id := uuid.New()

	return &entity.Account{
		ID:   id,
		Role: entity.RoleApplicant,
		Profile: &entity.ApplicantProfile{
			AccountID: id,
			FirstName: "Jane",
			LastName:  "Doe",
		},
	}
}

func TestAccountService_Get_Self(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	account := newApplicant()

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	got, err := fx.service.Get(ctx, account, account.ID)
	require.NoError(t, err)
	assert.Equal(t, account, got)
}

func TestAccountService_Get_OtherAccountForbidden(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	actor := newApplicant()

	got, err := fx.service.Get(ctx, actor, uuid.New())
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAccountService_List_RequiresPlatformAdmin(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	_, err := fx.service.List(ctx, newApplicant())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	admin := &entity.Account{ID: uuid.New(), Role: entity.RolePlatformAdmin}
	accounts := []*entity.Account{newApplicant()}
	fx.accountRepo.EXPECT().List(ctx).Return(accounts, nil)

	got, err := fx.service.List(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, accounts, got)
}

func TestAccountService_UpdateProfile(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	account := newApplicant()

	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewAccountRepository().Return(fx.accountRepo)
	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.accountRepo.EXPECT().
		UpdateProfile(ctx, mock.AnythingOfType("*entity.ApplicantProfile")).
		Return(nil)

	profile, err := fx.service.UpdateProfile(ctx, account, &usecase.UpdateProfileInput{
		AccountID:   account.ID,
		FirstName:   "Janet",
		LastName:    "Doe",
		Description: "Backend engineer",
	})
	require.NoError(t, err)
	assert.Equal(t, "Janet", profile.FirstName)
	assert.Equal(t, "Backend engineer", profile.Description)
}

func TestAccountService_UpdateProfile_NotApplicant(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	admin := &entity.Account{ID: uuid.New(), Role: entity.RolePlatformAdmin}

	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewAccountRepository().Return(fx.accountRepo)
	fx.accountRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)

	profile, err := fx.service.UpdateProfile(ctx, admin, &usecase.UpdateProfileInput{
		AccountID: admin.ID,
		FirstName: "Root",
	})
	require.Error(t, err)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotApplicant)
}

func TestAccountService_UploadProfileImage(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	account := newApplicant()

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.imageStorage.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), "image/png", mock.Anything).
		Return("/images/profiles/key.png", nil)

	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewAccountRepository().Return(fx.accountRepo)
	fx.accountRepo.EXPECT().
		UpdateProfile(ctx, mock.AnythingOfType("*entity.ApplicantProfile")).
		Return(nil)

	profile, err := fx.service.UploadProfileImage(ctx, account, account.ID, &usecase.UploadImageInput{
		ContentType: "image/png",
		Data:        strings.NewReader("png bytes"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, profile.ProfileImageID)
	assert.Equal(t, "/images/profiles/key.png", profile.ProfileImageURL)
}

func TestAccountService_UploadProfileImage_RollsBackBlobOnPersistFailure(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	account := newApplicant()

	var storedKey string
	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.imageStorage.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), "image/png", mock.Anything).
		RunAndReturn(func(_ context.Context, key, _ string, _ io.Reader) (string, error) {
			storedKey = key

			return "/images/" + key, nil
		})

	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewAccountRepository().Return(fx.accountRepo)
	fx.accountRepo.EXPECT().
		UpdateProfile(ctx, mock.AnythingOfType("*entity.ApplicantProfile")).
		Return(assert.AnError)
	fx.imageStorage.EXPECT().
		Delete(ctx, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, key string) error {
			assert.Equal(t, storedKey, key)

			return nil
		})

	profile, err := fx.service.UploadProfileImage(ctx, account, account.ID, &usecase.UploadImageInput{
		ContentType: "image/png",
		Data:        strings.NewReader("png bytes"),
	})
	require.Error(t, err)
	assert.Nil(t, profile)
}

func TestAccountService_Delete_MissingAccount(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	admin := &entity.Account{ID: uuid.New(), Role: entity.RolePlatformAdmin}
	accountID := uuid.New()

	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewAccountRepository().Return(fx.accountRepo)
	fx.accountRepo.EXPECT().Delete(ctx, accountID).Return(repository.ErrAccountNotFound)

	err := fx.service.Delete(ctx, admin, accountID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
