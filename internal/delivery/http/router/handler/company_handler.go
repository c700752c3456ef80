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

// CompanyHandlerParams holds dependencies for CompanyHandler, injected by Fx.
type CompanyHandlerParams struct {
	fx.In

	CompanyUC usecase.CompanyUsecase
	Logger    *slog.Logger
}

// CompanyHandler holds dependencies for company-related handlers.
type CompanyHandler struct {
	companyUC usecase.CompanyUsecase
	logger    *slog.Logger
}

// NewCompanyHandler is the constructor for CompanyHandler.
func NewCompanyHandler(params CompanyHandlerParams) *CompanyHandler {
	return &CompanyHandler{
		companyUC: params.CompanyUC,
		logger:    params.Logger,
	}
}

// UpdateCompanyRequest represents the request body for editing a company.
type UpdateCompanyRequest struct {
	Name        string            `json:"name" validate:"required"`
	Address     map[string]string `json:"address,omitempty"`
	Description string            `json:"description,omitempty"`
}

// Get handles retrieving a single company by id.
func (h *CompanyHandler) Get(c echo.Context) error {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid company ID")
	}

	company, err := h.companyUC.Get(c.Request().Context(), companyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, company, "Company retrieved successfully")
}

// List handles retrieving all companies, optionally filtered by a name
// fragment via the "name" query parameter.
func (h *CompanyHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if fragment := c.QueryParam("name"); fragment != "" {
		companies, err := h.companyUC.SearchByName(ctx, fragment)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, companies, "Companies retrieved successfully")
	}

	companies, err := h.companyUC.List(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, companies, "Companies retrieved successfully")
}

// Update handles editing a company.
func (h *CompanyHandler) Update(c echo.Context) error {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid company ID")
	}

	var req UpdateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid company input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateCompanyInput{
		CompanyID:   companyID,
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
	}

	company, err := h.companyUC.Update(c.Request().Context(), middleware.CurrentAccount(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, company, "Company updated successfully")
}

// UploadImage handles replacing a company's image.
func (h *CompanyHandler) UploadImage(c echo.Context) error {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid company ID")
	}

	input, src, err := openImageUpload(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid image upload")
	}
	defer src.Close()

	company, err := h.companyUC.UploadImage(c.Request().Context(), middleware.CurrentAccount(c), companyID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, company, "Company image uploaded successfully")
}

// Delete handles removing a company together with its jobs and links.
func (h *CompanyHandler) Delete(c echo.Context) error {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid company ID")
	}

	if err := h.companyUC.Delete(c.Request().Context(), middleware.CurrentAccount(c), companyID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Company deleted successfully")
}
