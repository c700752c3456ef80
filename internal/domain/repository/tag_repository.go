package repository

import (
	"context"

	"openspace/internal/domain/entity"
	"openspace/internal/errors"

	"github.com/google/uuid"
)

// ErrTagNotFound is returned when no tag matches the lookup key.
var ErrTagNotFound = errors.New("tag not found")

// ErrEntityTagNotFound is returned when a tag is not attached to an entity.
var ErrEntityTagNotFound = errors.New("entity tag not found")

// TagRepository defines persistence operations for tags and their
// attachments to jobs, companies and users.
type TagRepository interface {
	// Create persists a new tag.
	Create(ctx context.Context, tag *entity.Tag) error

	// FindByID retrieves a tag by its primary key.
	// Returns ErrTagNotFound if no tag exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tag, error)

	// FindByName retrieves a tag by its unique name.
	// Returns ErrTagNotFound if no tag exists.
	FindByName(ctx context.Context, name string) (*entity.Tag, error)

	// List returns all tags.
	List(ctx context.Context) ([]*entity.Tag, error)

	// Delete removes a tag and all of its attachments.
	Delete(ctx context.Context, id uuid.UUID) error

	// Attach records that a tag applies to an entity.
	Attach(ctx context.Context, entityTag *entity.EntityTag) error

	// Detach removes a tag from an entity.
	// Returns ErrEntityTagNotFound if the tag is not attached.
	Detach(ctx context.Context, entityID uuid.UUID, entityType entity.TagEntityType, tagID uuid.UUID) error

	// ListByEntity returns all tags attached to an entity.
	ListByEntity(ctx context.Context, entityID uuid.UUID, entityType entity.TagEntityType) ([]*entity.Tag, error)

	// ListEntityIDsByTag returns the IDs of entities of the given type
	// tagged with the given tag.
	ListEntityIDsByTag(ctx context.Context, tagID uuid.UUID, entityType entity.TagEntityType) ([]uuid.UUID, error)
}
