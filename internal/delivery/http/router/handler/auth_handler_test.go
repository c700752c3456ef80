package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"openspace/config"
	"openspace/internal/delivery/http/validator"
	"openspace/internal/domain/entity"
	infraauth "openspace/internal/infra/auth"
	mockService "openspace/internal/mocks/service"
	"openspace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthUsecase lets each test pin down just the operation it exercises.
type stubAuthUsecase struct {
	registerApplicantFn func(ctx context.Context, input *usecase.RegisterApplicantInput) (*usecase.RegisterOutput, error)
	registerCompanyFn   func(ctx context.Context, input *usecase.RegisterCompanyInput) (*usecase.RegisterOutput, error)
	loginFn             func(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error)
	authenticateFn      func(ctx context.Context, token string) (*entity.Account, error)
}

func (s *stubAuthUsecase) RegisterApplicant(ctx context.Context, input *usecase.RegisterApplicantInput) (*usecase.RegisterOutput, error) {
	return s.registerApplicantFn(ctx, input)
}

func (s *stubAuthUsecase) RegisterCompany(ctx context.Context, input *usecase.RegisterCompanyInput) (*usecase.RegisterOutput, error) {
	return s.registerCompanyFn(ctx, input)
}

func (s *stubAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.loginFn(ctx, input)
}

func (s *stubAuthUsecase) Authenticate(ctx context.Context, token string) (*entity.Account, error) {
	return s.authenticateFn(ctx, token)
}

func newTestCarrier(t *testing.T) *infraauth.SessionCarrier {
	t.Helper()

	tokens := mockService.NewMockTokenService(t)
	tokens.EXPECT().SessionDuration().Return(30 * time.Minute)

	return infraauth.NewSessionCarrier(&config.Config{}, tokens)
}

func newAuthTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(http.MethodPost, "/auth/login", reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	account := &entity.Account{ID: uuid.New(), Email: "dev@example.com", Role: entity.RoleApplicant}
	uc := &stubAuthUsecase{
		loginFn: func(_ context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
			assert.Equal(t, "dev@example.com", input.Email)
			assert.Equal(t, "hunter2!", input.Password)

			return &usecase.LoginOutput{AccessToken: "issued-token", Account: account}, nil
		},
	}
	h := NewAuthHandler(AuthHandlerParams{AuthUC: uc, Carrier: newTestCarrier(t), Logger: slog.Default()})

	c, rec := newAuthTestContext(t, `{"email":"dev@example.com","password":"hunter2!"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"issued-token"`)
	assert.NotContains(t, rec.Body.String(), "password")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, infraauth.SessionCookieName, cookies[0].Name)
	assert.Equal(t, "issued-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
}

func TestAuthHandler_Login_RejectsMissingFields(t *testing.T) {
	h := NewAuthHandler(AuthHandlerParams{AuthUC: &stubAuthUsecase{}, Carrier: newTestCarrier(t), Logger: slog.Default()})

	c, rec := newAuthTestContext(t, `{"email":"dev@example.com"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestAuthHandler_RegisterApplicant(t *testing.T) {
	uc := &stubAuthUsecase{
		registerApplicantFn: func(_ context.Context, input *usecase.RegisterApplicantInput) (*usecase.RegisterOutput, error) {
			assert.Equal(t, "Ada", input.FirstName)

			return &usecase.RegisterOutput{
				Account: &entity.Account{ID: uuid.New(), Email: input.Email, Role: entity.RoleApplicant},
			}, nil
		},
	}
	h := NewAuthHandler(AuthHandlerParams{AuthUC: uc, Carrier: newTestCarrier(t), Logger: slog.Default()})

	c, rec := newAuthTestContext(t, `{"email":"ada@example.com","password":"hunter2!","first_name":"Ada","last_name":"Lovelace"}`)
	require.NoError(t, h.RegisterApplicant(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "ada@example.com")
}

func TestAuthHandler_RegisterApplicant_RejectsShortPassword(t *testing.T) {
	h := NewAuthHandler(AuthHandlerParams{AuthUC: &stubAuthUsecase{}, Carrier: newTestCarrier(t), Logger: slog.Default()})

	c, rec := newAuthTestContext(t, `{"email":"ada@example.com","password":"short7!","first_name":"Ada","last_name":"Lovelace"}`)
	require.NoError(t, h.RegisterApplicant(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestAuthHandler_RegisterCompany_RejectsMalformedEIN(t *testing.T) {
	h := NewAuthHandler(AuthHandlerParams{AuthUC: &stubAuthUsecase{}, Carrier: newTestCarrier(t), Logger: slog.Default()})

	// EINs are exactly ten digits; nine digits must not pass.
	c, rec := newAuthTestContext(t, `{"email":"hr@acme.example","password":"hunter2!","company_name":"Acme","ein":"123456789"}`)
	require.NoError(t, h.RegisterCompany(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestAuthHandler_Logout_ClearsSessionCookie(t *testing.T) {
	h := NewAuthHandler(AuthHandlerParams{AuthUC: &stubAuthUsecase{}, Carrier: newTestCarrier(t), Logger: slog.Default()})

	c, rec := newAuthTestContext(t, "")
	require.NoError(t, h.Logout(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, infraauth.SessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
