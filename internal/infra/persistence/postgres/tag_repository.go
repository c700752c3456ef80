package postgres

import (
	"context"

	"openspace/internal/domain/entity"
	domainerrors "openspace/internal/domain/errors"
	"openspace/internal/domain/repository"
	"openspace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tagRepository implements the domain.TagRepository interface using GORM.
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository is the constructor for tagRepository.
func NewTagRepository(db *gorm.DB) repository.TagRepository {
	return &tagRepository{db: db}
}

// Create persists a new tag.
func (repo *tagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	tagM := fromTagDomain(tag)

	if err := repo.db.WithContext(ctx).Create(tagM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("tag name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create tag")
	}

	tag.ID = tagM.ID
	tag.CreatedAt = tagM.CreatedAt

	return nil
}

// FindByID retrieves a single tag by its unique ID.
func (repo *tagRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tag, error) {
	var tagM model.TagModel

	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&tagM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTagNotFound
		}

		return nil, errors.Wrap(err, "failed to find tag by id")
	}

	return toTagDomain(&tagM), nil
}

// FindByName retrieves a single tag by its unique name.
func (repo *tagRepository) FindByName(ctx context.Context, name string) (*entity.Tag, error) {
	var tagM model.TagModel

	err := repo.db.WithContext(ctx).Where("name = ?", name).First(&tagM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTagNotFound
		}

		return nil, errors.Wrap(err, "failed to find tag by name")
	}

	return toTagDomain(&tagM), nil
}

// List returns all tags.
func (repo *tagRepository) List(ctx context.Context) ([]*entity.Tag, error) {
	var tagMs []model.TagModel

	if err := repo.db.WithContext(ctx).Find(&tagMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}

	return toTagDomainSlice(tagMs), nil
}

// Delete removes a tag and all of its attachments.
func (repo *tagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("tag_id = ?", id).
		Delete(&model.EntityTagModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete tag attachments")
	}

	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TagModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete tag")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTagNotFound
	}

	return nil
}

// Attach records that a tag applies to an entity.
func (repo *tagRepository) Attach(ctx context.Context, entityTag *entity.EntityTag) error {
	entityTagM := &model.EntityTagModel{
		ID:         entityTag.ID,
		EntityID:   entityTag.EntityID,
		EntityType: string(entityTag.EntityType),
		TagID:      entityTag.TagID,
	}

	if err := repo.db.WithContext(ctx).Create(entityTagM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("tag already attached to entity")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrTagNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to attach tag")
	}

	entityTag.ID = entityTagM.ID

	return nil
}

// Detach removes a tag from an entity.
func (repo *tagRepository) Detach(ctx context.Context, entityID uuid.UUID, entityType entity.TagEntityType, tagID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("entity_id = ? AND entity_type = ? AND tag_id = ?", entityID, string(entityType), tagID).
		Delete(&model.EntityTagModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to detach tag")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEntityTagNotFound
	}

	return nil
}

// ListByEntity returns all tags attached to an entity.
func (repo *tagRepository) ListByEntity(ctx context.Context, entityID uuid.UUID, entityType entity.TagEntityType) ([]*entity.Tag, error) {
	var tagMs []model.TagModel

	err := repo.db.WithContext(ctx).
		Joins("JOIN entity_tags ON entity_tags.tag_id = tags.id").
		Where("entity_tags.entity_id = ? AND entity_tags.entity_type = ?", entityID, string(entityType)).
		Find(&tagMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tags by entity")
	}

	return toTagDomainSlice(tagMs), nil
}

// ListEntityIDsByTag returns the IDs of entities of the given type tagged
// with the given tag.
func (repo *tagRepository) ListEntityIDsByTag(ctx context.Context, tagID uuid.UUID, entityType entity.TagEntityType) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	err := repo.db.WithContext(ctx).
		Model(&model.EntityTagModel{}).
		Where("tag_id = ? AND entity_type = ?", tagID, string(entityType)).
		Pluck("entity_id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list entity ids by tag")
	}

	return ids, nil
}

// --- Mapper Functions ---

// toTagDomain converts a GORM TagModel to a domain Tag entity.
func toTagDomain(data *model.TagModel) *entity.Tag {
	if data == nil {
		return nil
	}

	return &entity.Tag{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
}

// toTagDomainSlice converts a slice of tag models to domain entities.
func toTagDomainSlice(data []model.TagModel) []*entity.Tag {
	tags := make([]*entity.Tag, 0, len(data))
	for i := range data {
		tags = append(tags, toTagDomain(&data[i]))
	}

	return tags
}

// fromTagDomain converts a domain Tag entity to a GORM TagModel for persistence.
func fromTagDomain(data *entity.Tag) *model.TagModel {
	if data == nil {
		return nil
	}

	return &model.TagModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
	}
}
