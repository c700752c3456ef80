package handler

import (
	"log/slog"
	"net/http"

	"openspace/internal/delivery/http/middleware"
	"openspace/internal/delivery/http/response"
	"openspace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RecruiterHandlerParams holds dependencies for RecruiterHandler, injected by Fx.
type RecruiterHandlerParams struct {
	fx.In

	RecruiterUC usecase.RecruiterUsecase
	Logger      *slog.Logger
}

// RecruiterHandler holds dependencies for recruiter-link handlers.
type RecruiterHandler struct {
	recruiterUC usecase.RecruiterUsecase
	logger      *slog.Logger
}

// NewRecruiterHandler is the constructor for RecruiterHandler.
func NewRecruiterHandler(params RecruiterHandlerParams) *RecruiterHandler {
	return &RecruiterHandler{
		recruiterUC: params.RecruiterUC,
		logger:      params.Logger,
	}
}

// AssignRecruiterRequest represents the request body for linking an account
// to a company as recruiter.
type AssignRecruiterRequest struct {
	AccountID uuid.UUID `json:"account_id" validate:"required"`
}

// Assign handles linking an account to the company as recruiter.
func (h *RecruiterHandler) Assign(c echo.Context) error {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid company ID")
	}

	var req AssignRecruiterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recruiter input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.AssignRecruiterInput{
		AccountID: req.AccountID,
		CompanyID: companyID,
	}

	link, err := h.recruiterUC.Assign(c.Request().Context(), middleware.CurrentAccount(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, link, "Recruiter assigned successfully")
}

// Remove handles deleting a recruiter link.
func (h *RecruiterHandler) Remove(c echo.Context) error {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid company ID")
	}

	accountID, err := uuid.Parse(c.Param("accountID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account ID")
	}

	input := &usecase.AssignRecruiterInput{
		AccountID: accountID,
		CompanyID: companyID,
	}

	if err := h.recruiterUC.Remove(c.Request().Context(), middleware.CurrentAccount(c), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Recruiter removed successfully")
}

// ListByCompany handles retrieving a company's recruiter links.
func (h *RecruiterHandler) ListByCompany(c echo.Context) error {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid company ID")
	}

	links, err := h.recruiterUC.ListByCompany(c.Request().Context(), middleware.CurrentAccount(c), companyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, links, "Recruiters retrieved successfully")
}

// ListOwnCompanies handles retrieving the companies the acting account
// recruits for.
func (h *RecruiterHandler) ListOwnCompanies(c echo.Context) error {
	companies, err := h.recruiterUC.ListOwnCompanies(c.Request().Context(), middleware.CurrentAccount(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, companies, "Companies retrieved successfully")
}
