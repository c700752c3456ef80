package handler

import (
	"log/slog"
	"net/http"

	"openspace/internal/delivery/http/middleware"
	"openspace/internal/delivery/http/response"
	"openspace/internal/domain/entity"
	"openspace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TagHandlerParams holds dependencies for TagHandler, injected by Fx.
type TagHandlerParams struct {
	fx.In

	TagUC  usecase.TagUsecase
	Logger *slog.Logger
}

// TagHandler holds dependencies for tag-related handlers.
type TagHandler struct {
	tagUC  usecase.TagUsecase
	logger *slog.Logger
}

// NewTagHandler is the constructor for TagHandler.
func NewTagHandler(params TagHandlerParams) *TagHandler {
	return &TagHandler{
		tagUC:  params.TagUC,
		logger: params.Logger,
	}
}

// CreateTagRequest represents the request body for creating a tag.
type CreateTagRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

// AttachTagRequest represents the request body for attaching or detaching a tag.
type AttachTagRequest struct {
	EntityID   uuid.UUID `json:"entity_id" validate:"required"`
	EntityType string    `json:"entity_type" validate:"required"`
}

// Create handles creating a new tag.
func (h *TagHandler) Create(c echo.Context) error {
	var req CreateTagRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tag input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateTagInput{
		Name:        req.Name,
		Description: req.Description,
	}

	tag, err := h.tagUC.Create(c.Request().Context(), middleware.CurrentAccount(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, tag, "Tag created successfully")
}

// List handles retrieving all tags.
func (h *TagHandler) List(c echo.Context) error {
	tags, err := h.tagUC.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tags, "Tags retrieved successfully")
}

// Delete handles removing a tag and its assignments.
func (h *TagHandler) Delete(c echo.Context) error {
	tagID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid tag ID")
	}

	if err := h.tagUC.Delete(c.Request().Context(), middleware.CurrentAccount(c), tagID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Tag deleted successfully")
}

// Attach handles assigning a tag to a job, company or user.
func (h *TagHandler) Attach(c echo.Context) error {
	tagID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid tag ID")
	}

	var req AttachTagRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tag assignment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.AttachTagInput{
		TagID:      tagID,
		EntityID:   req.EntityID,
		EntityType: entity.TagEntityType(req.EntityType),
	}

	if err := h.tagUC.Attach(c.Request().Context(), middleware.CurrentAccount(c), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Tag attached successfully")
}

// Detach handles removing a tag assignment.
func (h *TagHandler) Detach(c echo.Context) error {
	tagID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid tag ID")
	}

	var req AttachTagRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tag assignment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.AttachTagInput{
		TagID:      tagID,
		EntityID:   req.EntityID,
		EntityType: entity.TagEntityType(req.EntityType),
	}

	if err := h.tagUC.Detach(c.Request().Context(), middleware.CurrentAccount(c), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Tag detached successfully")
}

// ListByEntity handles retrieving the tags attached to an entity.
func (h *TagHandler) ListByEntity(c echo.Context) error {
	entityID, err := uuid.Parse(c.Param("entityID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid entity ID")
	}

	tags, err := h.tagUC.ListByEntity(c.Request().Context(), entityID, entity.TagEntityType(c.Param("entityType")))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tags, "Tags retrieved successfully")
}

// ListEntityIDs handles retrieving the entities of one type carrying a tag.
func (h *TagHandler) ListEntityIDs(c echo.Context) error {
	tagID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid tag ID")
	}

	ids, err := h.tagUC.ListEntityIDs(c.Request().Context(), tagID, entity.TagEntityType(c.Param("entityType")))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ids, "Entities retrieved successfully")
}
