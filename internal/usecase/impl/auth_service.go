// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "openspace/internal/delivery/context"
	"openspace/internal/domain/entity"
	domainerrors "openspace/internal/domain/errors"
	"openspace/internal/domain/repository"
	"openspace/internal/domain/service"
	"openspace/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterApplicant orchestrates the applicant registration process. The
// account and its profile are created in one transaction, so a duplicate
// email leaves no partial rows behind.
func (srv *authService) RegisterApplicant(ctx context.Context, input *usecase.RegisterApplicantInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting applicant registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hashPassword(ctx, input.Password)
	if err != nil {
		return nil, err
	}

	newAccount := &entity.Account{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleApplicant,
		Profile: &entity.ApplicantProfile{
			FirstName: input.FirstName,
			LastName:  input.LastName,
			BirthDate: input.BirthDate,
		},
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewAccountRepository().Create(ctx, newAccount)
	})
	if err != nil {
		srv.log(ctx).Warn("Applicant registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute applicant registration transaction")
	}

	srv.log(ctx).Debug("Applicant registered", slog.Any("accountID", newAccount.ID))

	return &usecase.RegisterOutput{Account: newAccount}, nil
}

// RegisterCompany orchestrates the company registration process. The admin
// account and its company are created in one transaction; a duplicate email
// or tax id rolls back both rows.
func (srv *authService) RegisterCompany(ctx context.Context, input *usecase.RegisterCompanyInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting company registration", slog.String("email", input.Email), slog.String("company", input.CompanyName))

	hashedPassword, err := srv.hashPassword(ctx, input.Password)
	if err != nil {
		return nil, err
	}

	newAccount := &entity.Account{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         entity.RolePlatformAdmin,
	}
	newCompany := &entity.Company{
		Name:        input.CompanyName,
		EIN:         input.EIN,
		Address:     input.Address,
		Description: input.Description,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewAccountRepository().Create(ctx, newAccount); err != nil {
			return err
		}

		newCompany.AdminAccountID = &newAccount.ID

		return repoFactory.NewCompanyRepository().Create(ctx, newCompany)
	})
	if err != nil {
		srv.log(ctx).Warn("Company registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute company registration transaction")
	}

	srv.log(ctx).Debug("Company registered", slog.Any("accountID", newAccount.ID), slog.Any("companyID", newCompany.ID))

	return &usecase.RegisterOutput{Account: newAccount, Company: newCompany}, nil
}

// Login orchestrates the login process. A missing account and a wrong
// password surface as the same generic error so callers cannot tell which
// emails are registered.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	account, err := srv.loadLoginAccount(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// Check password outside the transaction (argon2 is CPU-bound).
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	// Lazy hash migration: a rehash failure is logged but never blocks a
	// successful login, and it runs in its own short transaction.
	if srv.hasher.NeedsRehash(account.PasswordHash) {
		srv.rehashPassword(ctx, account, input.Password)
	}

	accessToken, err := srv.tokenService.Issue(account.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("Logged in", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		Account:     account,
	}, nil
}

// Authenticate verifies a session token and resolves its account. Token
// failures and a deleted subject account surface as distinct 401 errors.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.Account, error) {
	email, err := srv.tokenService.Verify(token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTokenExpired),
			errors.Is(err, service.ErrTokenSignature),
			errors.Is(err, service.ErrTokenMalformed),
			errors.Is(err, service.ErrTokenMissingSubject):
			return nil, errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
		default:
			srv.log(ctx).Error("Token verification error", slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrTokenVerification, err.Error())
		}
	}

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		// Tokens are not invalidated on account deletion; the subject may be gone.
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountGone, "token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to resolve token subject")
	}

	return account, nil
}

// hashPassword hashes the plaintext and maps hasher failures onto the domain taxonomy.
func (srv *authService) hashPassword(ctx context.Context, password string) (string, error) {
	hashed, err := srv.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, service.ErrEmptyPassword) {
			return "", errors.Wrap(domainerrors.ErrEmptyPassword, "registration rejected")
		}
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return hashed, nil
}

// loadLoginAccount loads the account from the primary in a short transaction
// to avoid stale reads on replicas.
func (srv *authService) loadLoginAccount(ctx context.Context, email string) (*entity.Account, error) {
	var account *entity.Account

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		account, findErr = repoFactory.NewAccountRepository().FindByEmail(ctx, email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(findErr, "failed to find account by email")
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return account, nil
}

// rehashPassword replaces an outdated hash after a successful credential
// check, in its own transaction distinct from the authentication decision.
func (srv *authService) rehashPassword(ctx context.Context, account *entity.Account, password string) {
	newHash, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Warn("Failed to rehash password", slog.Any("accountID", account.ID), slog.Any("error", err))

		return
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewAccountRepository().UpdatePasswordHash(ctx, account.ID, newHash)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to persist rehashed password", slog.Any("accountID", account.ID), slog.Any("error", err))

		return
	}

	account.PasswordHash = newHash
	srv.log(ctx).Info("Upgraded password hash", slog.Any("accountID", account.ID))
}
