package handler

import (
	"log/slog"
	"net/http"
	"time"

	"openspace/internal/delivery/http/middleware"
	"openspace/internal/delivery/http/response"
	"openspace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// UpdateProfileRequest represents the request body for editing an applicant profile.
type UpdateProfileRequest struct {
	FirstName   string     `json:"first_name" validate:"required"`
	LastName    string     `json:"last_name" validate:"required"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	Description string     `json:"description,omitempty"`
}

// Me returns the account resolved from the session token.
func (h *AccountHandler) Me(c echo.Context) error {
	actor := middleware.CurrentAccount(c)

	return response.Success(c, http.StatusOK, actor, "Account retrieved successfully")
}

// Get handles retrieving a single account by id.
func (h *AccountHandler) Get(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account ID")
	}

	account, err := h.accountUC.Get(c.Request().Context(), middleware.CurrentAccount(c), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, account, "Account retrieved successfully")
}

// List handles retrieving all accounts, optionally filtered by an email
// fragment via the "email" query parameter.
func (h *AccountHandler) List(c echo.Context) error {
	actor := middleware.CurrentAccount(c)
	ctx := c.Request().Context()

	if fragment := c.QueryParam("email"); fragment != "" {
		accounts, err := h.accountUC.SearchByEmail(ctx, actor, fragment)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, accounts, "Accounts retrieved successfully")
	}

	accounts, err := h.accountUC.List(ctx, actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, accounts, "Accounts retrieved successfully")
}

// UpdateProfile handles editing an applicant profile.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account ID")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateProfileInput{
		AccountID:   accountID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		BirthDate:   req.BirthDate,
		Description: req.Description,
	}

	profile, err := h.accountUC.UpdateProfile(c.Request().Context(), middleware.CurrentAccount(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated successfully")
}

// UploadProfileImage handles replacing an applicant's profile image.
func (h *AccountHandler) UploadProfileImage(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account ID")
	}

	input, src, err := openImageUpload(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid image upload")
	}
	defer src.Close()

	profile, err := h.accountUC.UploadProfileImage(c.Request().Context(), middleware.CurrentAccount(c), accountID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile image uploaded successfully")
}

// Delete handles removing an account.
func (h *AccountHandler) Delete(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account ID")
	}

	if err := h.accountUC.Delete(c.Request().Context(), middleware.CurrentAccount(c), accountID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deleted successfully")
}
