package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"openspace/config"
	"openspace/internal/domain/entity"
	domainerrors "openspace/internal/domain/errors"
	infraauth "openspace/internal/infra/auth"
	mockService "openspace/internal/mocks/service"
	"openspace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthUsecase struct {
	authenticateFn func(ctx context.Context, token string) (*entity.Account, error)
}

func (s *stubAuthUsecase) RegisterApplicant(context.Context, *usecase.RegisterApplicantInput) (*usecase.RegisterOutput, error) {
	panic("not expected")
}

func (s *stubAuthUsecase) RegisterCompany(context.Context, *usecase.RegisterCompanyInput) (*usecase.RegisterOutput, error) {
	panic("not expected")
}

func (s *stubAuthUsecase) Login(context.Context, *usecase.LoginInput) (*usecase.LoginOutput, error) {
	panic("not expected")
}

func (s *stubAuthUsecase) Authenticate(ctx context.Context, token string) (*entity.Account, error) {
	return s.authenticateFn(ctx, token)
}

func newTestMiddleware(t *testing.T, uc usecase.AuthUsecase) *AuthMiddleware {
	t.Helper()

	tokens := mockService.NewMockTokenService(t)
	tokens.EXPECT().SessionDuration().Return(30 * time.Minute)
	carrier := infraauth.NewSessionCarrier(&config.Config{}, tokens)

	return NewAuthMiddleware(uc, carrier)
}

func TestAuthMiddleware_BearerTokenResolvesAccount(t *testing.T) {
	account := &entity.Account{ID: uuid.New(), Email: "dev@example.com", Role: entity.RoleApplicant}
	uc := &stubAuthUsecase{
		authenticateFn: func(_ context.Context, token string) (*entity.Account, error) {
			assert.Equal(t, "valid-token", token)

			return account, nil
		},
	}
	m := newTestMiddleware(t, uc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/accounts/me", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	c := e.NewContext(req, httptest.NewRecorder())

	var resolved *entity.Account
	next := func(c echo.Context) error {
		resolved = CurrentAccount(c)

		return nil
	}

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, account, resolved)
}

func TestAuthMiddleware_CookieFallback(t *testing.T) {
	account := &entity.Account{ID: uuid.New(), Email: "dev@example.com", Role: entity.RoleApplicant}
	uc := &stubAuthUsecase{
		authenticateFn: func(_ context.Context, token string) (*entity.Account, error) {
			assert.Equal(t, "cookie-token", token)

			return account, nil
		},
	}
	m := newTestMiddleware(t, uc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/accounts/me", nil)
	req.AddCookie(&http.Cookie{Name: infraauth.SessionCookieName, Value: "cookie-token"})
	c := e.NewContext(req, httptest.NewRecorder())

	require.NoError(t, m.Authenticate(func(echo.Context) error { return nil })(c))
}

func TestAuthMiddleware_MissingTokenRejected(t *testing.T) {
	uc := &stubAuthUsecase{
		authenticateFn: func(context.Context, string) (*entity.Account, error) {
			t.Fatal("authenticate must not run without a token")

			return nil, nil
		},
	}
	m := newTestMiddleware(t, uc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/accounts/me", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := m.Authenticate(func(echo.Context) error { return nil })(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotAuthenticated))
}

func TestCurrentAccount_NilWithoutAuthentication(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/jobs", nil), httptest.NewRecorder())

	assert.Nil(t, CurrentAccount(c))
}
