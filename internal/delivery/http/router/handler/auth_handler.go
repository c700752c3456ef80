package handler

import (
	"log/slog"
	"net/http"
	"time"

	"openspace/internal/delivery/http/response"
	infraauth "openspace/internal/infra/auth"
	"openspace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC  usecase.AuthUsecase
	Carrier *infraauth.SessionCarrier
	Logger  *slog.Logger
}

// AuthHandler holds dependencies for registration and session handlers.
type AuthHandler struct {
	authUC  usecase.AuthUsecase
	carrier *infraauth.SessionCarrier
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:  params.AuthUC,
		carrier: params.Carrier,
		logger:  params.Logger,
	}
}

// RegisterApplicantRequest represents the request body for applicant registration.
type RegisterApplicantRequest struct {
	Email     string     `json:"email" validate:"required,email"`
	Password  string     `json:"password" validate:"required,min=8,max=50"`
	FirstName string     `json:"first_name" validate:"required,min=2,max=30"`
	LastName  string     `json:"last_name" validate:"required,min=2,max=30"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
}

// RegisterCompanyRequest represents the request body for company registration.
type RegisterCompanyRequest struct {
	Email       string            `json:"email" validate:"required,email"`
	Password    string            `json:"password" validate:"required,min=8,max=50"`
	CompanyName string            `json:"company_name" validate:"required,min=2,max=50"`
	EIN         string            `json:"ein" validate:"required,len=10,numeric"`
	Address     map[string]string `json:"address,omitempty"`
	Description string            `json:"description,omitempty"`
}

// LoginRequest represents the request body for a login attempt.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterApplicant handles the applicant registration request.
func (h *AuthHandler) RegisterApplicant(c echo.Context) error {
	var req RegisterApplicantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.RegisterApplicantInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: req.BirthDate,
	}

	output, err := h.authUC.RegisterApplicant(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Account, "Applicant registered successfully")
}

// RegisterCompany handles the company registration request.
func (h *AuthHandler) RegisterCompany(c echo.Context) error {
	var req RegisterCompanyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.RegisterCompanyInput{
		Email:       req.Email,
		Password:    req.Password,
		CompanyName: req.CompanyName,
		EIN:         req.EIN,
		Address:     req.Address,
		Description: req.Description,
	}

	output, err := h.authUC.RegisterCompany(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Company registered successfully")
}

// Login handles the login request. The issued token travels back both in the
// response body and in the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}

	output, err := h.authUC.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.carrier.Cookie(output.AccessToken))

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Logout clears the session cookie. Tokens are stateless, so a token already
// copied elsewhere stays valid until it expires.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.carrier.Clear())

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}
