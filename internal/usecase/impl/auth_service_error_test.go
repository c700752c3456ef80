package impl

import (
	"context"
	"testing"

	"openspace/internal/domain/entity"
	domainerrors "openspace/internal/domain/errors"
	"openspace/internal/domain/repository"
	"openspace/internal/domain/service"
	"openspace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_RegisterApplicant_EmptyPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().
		Hash("").
		Return("", service.ErrEmptyPassword)

	out, err := fx.service.RegisterApplicant(ctx, &usecase.RegisterApplicantInput{
		Email:     "jane@example.com",
		Password:  "",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyPassword)
}

func TestAuthService_RegisterApplicant_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().
		Hash("secret").
		Return("$argon2id$hashed", nil)

	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewAccountRepository().Return(fx.accountRepo)
	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Return(domainerrors.ErrEmailConflict.WrapMessage("email already registered"))

	out, err := fx.service.RegisterApplicant(ctx, &usecase.RegisterApplicantInput{
		Email:     "jane@example.com",
		Password:  "secret",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrEmailConflict)
}

func TestAuthService_RegisterCompany_DuplicateRollsBack(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().
		Hash("secret").
		Return("$argon2id$hashed", nil)

	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewAccountRepository().Return(fx.accountRepo)
	fx.factory.EXPECT().NewCompanyRepository().Return(fx.companyRepo)

	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Return(nil)
	// Second insert fails; the surrounding transaction discards the account row too.
	fx.companyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Company")).
		Return(domainerrors.ErrEmailConflict.WrapMessage("tax id already registered"))

	out, err := fx.service.RegisterCompany(ctx, &usecase.RegisterCompanyInput{
		Email:       "admin@acme.test",
		Password:    "secret",
		CompanyName: "Acme",
		EIN:         "1234567890",
	})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrEmailConflict)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewAccountRepository().Return(fx.accountRepo)
	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrAccountNotFound)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "secret"})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "jane@example.com",
		PasswordHash: "$argon2id$current",
		Role:         entity.RoleApplicant,
	}

	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewAccountRepository().Return(fx.accountRepo)
	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "jane@example.com").
		Return(account, nil)
	fx.hasher.EXPECT().Check("wrong", "$argon2id$current").Return(false)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "jane@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.Nil(t, out)
	// Indistinguishable from the unknown-email failure.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Authenticate_InvalidToken(t *testing.T) {
	ctx := context.Background()

	for _, tokenErr := range []error{
		service.ErrTokenExpired,
		service.ErrTokenSignature,
		service.ErrTokenMalformed,
		service.ErrTokenMissingSubject,
	} {
		fx := createTestAuthService(t)
		fx.tokens.EXPECT().Verify("bad-token").Return("", tokenErr)

		account, err := fx.service.Authenticate(ctx, "bad-token")
		require.Error(t, err)
		assert.Nil(t, account)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	}
}

func TestAuthService_Authenticate_VerificationError(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokens.EXPECT().Verify("odd-token").Return("", errors.New("keyfunc blew up"))

	account, err := fx.service.Authenticate(ctx, "odd-token")
	require.Error(t, err)
	assert.Nil(t, account)
	assert.ErrorIs(t, err, domainerrors.ErrTokenVerification)
}

func TestAuthService_Authenticate_SubjectGone(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokens.EXPECT().Verify("signed-token").Return("gone@example.com", nil)
	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "gone@example.com").
		Return(nil, repository.ErrAccountNotFound)

	account, err := fx.service.Authenticate(ctx, "signed-token")
	require.Error(t, err)
	assert.Nil(t, account)
	assert.ErrorIs(t, err, domainerrors.ErrAccountGone)
}
