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

// RatingHandlerParams holds dependencies for RatingHandler, injected by Fx.
type RatingHandlerParams struct {
	fx.In

	RatingUC usecase.RatingUsecase
	Logger   *slog.Logger
}

// RatingHandler holds dependencies for company-rating handlers.
type RatingHandler struct {
	ratingUC usecase.RatingUsecase
	logger   *slog.Logger
}

// NewRatingHandler is the constructor for RatingHandler.
func NewRatingHandler(params RatingHandlerParams) *RatingHandler {
	return &RatingHandler{
		ratingUC: params.RatingUC,
		logger:   params.Logger,
	}
}

// RateCompanyRequest represents the request body for submitting a rating.
type RateCompanyRequest struct {
	Score   int    `json:"score" validate:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty"`
}

// Rate handles submitting or replacing the acting account's rating.
func (h *RatingHandler) Rate(c echo.Context) error {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid company ID")
	}

	var req RateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.RateCompanyInput{
		CompanyID: companyID,
		Score:     req.Score,
		Comment:   req.Comment,
	}

	rating, err := h.ratingUC.Rate(c.Request().Context(), middleware.CurrentAccount(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, rating, "Rating submitted successfully")
}

// ListByCompany handles retrieving a company's ratings.
func (h *RatingHandler) ListByCompany(c echo.Context) error {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid company ID")
	}

	ratings, err := h.ratingUC.ListByCompany(c.Request().Context(), companyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ratings, "Ratings retrieved successfully")
}

// Summary handles retrieving a company's average score and rating count.
func (h *RatingHandler) Summary(c echo.Context) error {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid company ID")
	}

	summary, err := h.ratingUC.Summary(c.Request().Context(), companyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Rating summary retrieved successfully")
}

// Delete handles removing a rating.
func (h *RatingHandler) Delete(c echo.Context) error {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid company ID")
	}

	accountID, err := uuid.Parse(c.Param("accountID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account ID")
	}

	if err := h.ratingUC.Delete(c.Request().Context(), middleware.CurrentAccount(c), companyID, accountID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Rating deleted successfully")
}
