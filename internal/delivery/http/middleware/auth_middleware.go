package middleware

import (
	"openspace/internal/domain/entity"
	"openspace/internal/usecase"

	domainerrors "openspace/internal/domain/errors"
	infraauth "openspace/internal/infra/auth"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// accountContextKey is the echo context key the resolved account is stored under.
const accountContextKey = "openspace.account"

// AuthMiddleware resolves the session token on each request into the acting
// account. There is no session store; the token itself is the only state.
type AuthMiddleware struct {
	authUsecase usecase.AuthUsecase
	carrier     *infraauth.SessionCarrier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUsecase usecase.AuthUsecase, carrier *infraauth.SessionCarrier) *AuthMiddleware {
	return &AuthMiddleware{authUsecase: authUsecase, carrier: carrier}
}

// Authenticate requires a valid session token, looked up in the bearer header
// first and the session cookie second. The resolved account is stored on the
// echo context for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := m.carrier.Extract(c.Request())
		if !ok {
			return errors.Wrap(domainerrors.ErrNotAuthenticated, "no session token presented")
		}

		account, err := m.authUsecase.Authenticate(c.Request().Context(), token)
		if err != nil {
			return err
		}

		c.Set(accountContextKey, account)

		return next(c)
	}
}

// CurrentAccount returns the account resolved by Authenticate, or nil on
// routes that did not run it.
func CurrentAccount(c echo.Context) *entity.Account {
	account, _ := c.Get(accountContextKey).(*entity.Account)

	return account
}
