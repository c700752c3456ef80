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

// JobHandlerParams holds dependencies for JobHandler, injected by Fx.
type JobHandlerParams struct {
	fx.In

	JobUC  usecase.JobUsecase
	Logger *slog.Logger
}

// JobHandler holds dependencies for job-related handlers.
type JobHandler struct {
	jobUC  usecase.JobUsecase
	logger *slog.Logger
}

// NewJobHandler is the constructor for JobHandler.
func NewJobHandler(params JobHandlerParams) *JobHandler {
	return &JobHandler{
		jobUC:  params.JobUC,
		logger: params.Logger,
	}
}

// CreateJobRequest represents the request body for posting a job.
type CreateJobRequest struct {
	CompanyID   uuid.UUID  `json:"company_id" validate:"required"`
	Title       string     `json:"title" validate:"required"`
	Payoff      float64    `json:"payoff" validate:"min=0"`
	Description string     `json:"description,omitempty"`
	ExpiryDate  *time.Time `json:"expiry_date,omitempty"`
}

// UpdateJobRequest represents the request body for editing a job. The owning
// company cannot be changed.
type UpdateJobRequest struct {
	Title       string     `json:"title" validate:"required"`
	Payoff      float64    `json:"payoff" validate:"min=0"`
	Description string     `json:"description,omitempty"`
	ExpiryDate  *time.Time `json:"expiry_date,omitempty"`
}

// Create handles posting a new job.
func (h *JobHandler) Create(c echo.Context) error {
	var req CreateJobRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid job input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateJobInput{
		CompanyID:   req.CompanyID,
		Title:       req.Title,
		Payoff:      req.Payoff,
		Description: req.Description,
		ExpiryDate:  req.ExpiryDate,
	}

	job, err := h.jobUC.Create(c.Request().Context(), middleware.CurrentAccount(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, job, "Job created successfully")
}

// Get handles retrieving a single job by id.
func (h *JobHandler) Get(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid job ID")
	}

	job, err := h.jobUC.Get(c.Request().Context(), jobID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, job, "Job retrieved successfully")
}

// List handles retrieving jobs. The "company_id" query parameter narrows the
// listing to one company, and "title" searches by title fragment.
func (h *JobHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if rawID := c.QueryParam("company_id"); rawID != "" {
		companyID, err := uuid.Parse(rawID)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid company ID")
		}

		jobs, err := h.jobUC.ListByCompany(ctx, companyID)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, jobs, "Jobs retrieved successfully")
	}

	if fragment := c.QueryParam("title"); fragment != "" {
		jobs, err := h.jobUC.SearchByTitle(ctx, fragment)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, jobs, "Jobs retrieved successfully")
	}

	jobs, err := h.jobUC.List(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, jobs, "Jobs retrieved successfully")
}

// Update handles editing a job.
func (h *JobHandler) Update(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid job ID")
	}

	var req UpdateJobRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid job input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateJobInput{
		JobID:       jobID,
		Title:       req.Title,
		Payoff:      req.Payoff,
		Description: req.Description,
		ExpiryDate:  req.ExpiryDate,
	}

	job, err := h.jobUC.Update(c.Request().Context(), middleware.CurrentAccount(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, job, "Job updated successfully")
}

// UploadImage handles replacing a job posting's image.
func (h *JobHandler) UploadImage(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid job ID")
	}

	input, src, err := openImageUpload(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid image upload")
	}
	defer src.Close()

	job, err := h.jobUC.UploadImage(c.Request().Context(), middleware.CurrentAccount(c), jobID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, job, "Job image uploaded successfully")
}

// Delete handles removing a job.
func (h *JobHandler) Delete(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid job ID")
	}

	if err := h.jobUC.Delete(c.Request().Context(), middleware.CurrentAccount(c), jobID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Job deleted successfully")
}

// Apply handles the acting account applying to a job.
func (h *JobHandler) Apply(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid job ID")
	}

	application, err := h.jobUC.Apply(c.Request().Context(), middleware.CurrentAccount(c), jobID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, application, "Application submitted successfully")
}

// ListApplications handles retrieving a job's applications for the owning
// company.
func (h *JobHandler) ListApplications(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid job ID")
	}

	applications, err := h.jobUC.ListApplications(c.Request().Context(), middleware.CurrentAccount(c), jobID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, applications, "Applications retrieved successfully")
}

// ListOwnApplications handles retrieving the acting account's applications.
func (h *JobHandler) ListOwnApplications(c echo.Context) error {
	applications, err := h.jobUC.ListOwnApplications(c.Request().Context(), middleware.CurrentAccount(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, applications, "Applications retrieved successfully")
}
