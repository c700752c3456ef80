package usecase

import (
	"context"

	"openspace/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTagInput defines the data required to create a tag.
type CreateTagInput struct {
	Name        string
	Description string
}

// AttachTagInput identifies a tag assignment.
type AttachTagInput struct {
	TagID      uuid.UUID
	EntityID   uuid.UUID
	EntityType entity.TagEntityType
}

// TagUsecase defines tag management and assignment operations.
type TagUsecase interface {
	// Create makes a new tag. Platform admins only.
	Create(ctx context.Context, actor *entity.Account, input *CreateTagInput) (*entity.Tag, error)

	// List returns all tags. Public.
	List(ctx context.Context) ([]*entity.Tag, error)

	// Delete removes a tag and its assignments. Platform admins only.
	Delete(ctx context.Context, actor *entity.Account, id uuid.UUID) error

	// Attach assigns a tag to a job, company or user. The actor needs write
	// access to the target: a company relation for jobs and companies,
	// ownership for user profiles.
	Attach(ctx context.Context, actor *entity.Account, input *AttachTagInput) error

	// Detach removes a tag assignment. Same access rule as Attach.
	Detach(ctx context.Context, actor *entity.Account, input *AttachTagInput) error

	// ListByEntity returns the tags attached to an entity. Public.
	ListByEntity(ctx context.Context, entityID uuid.UUID, entityType entity.TagEntityType) ([]*entity.Tag, error)

	// ListEntityIDs returns the entities of a type carrying a tag. Public.
	ListEntityIDs(ctx context.Context, tagID uuid.UUID, entityType entity.TagEntityType) ([]uuid.UUID, error)
}
