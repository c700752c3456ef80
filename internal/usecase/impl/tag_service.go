package impl

import (
	"context"
	"log/slog"

	deliverycontext "openspace/internal/delivery/context"
	"openspace/internal/domain/entity"
	domainerrors "openspace/internal/domain/errors"
	"openspace/internal/domain/repository"
	"openspace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tagService implements the TagUsecase interface.
type tagService struct {
	txManager repository.TransactionManager
	tagRepo   repository.TagRepository
	access    usecase.AccessUsecase
	logger    *slog.Logger
}

// TagServiceParams holds dependencies for tagService, injected by Fx.
type TagServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TagRepo   repository.TagRepository
	Access    usecase.AccessUsecase
	Logger    *slog.Logger
}

// NewTagService is the constructor for tagService.
func NewTagService(params TagServiceParams) usecase.TagUsecase {
	return &tagService{
		txManager: params.TxManager,
		tagRepo:   params.TagRepo,
		access:    params.Access,
		logger:    params.Logger,
	}
}

func (srv *tagService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create makes a new tag.
func (srv *tagService) Create(ctx context.Context, actor *entity.Account, input *usecase.CreateTagInput) (*entity.Tag, error) {
	if err := srv.access.AssertPlatformAdmin(actor); err != nil {
		return nil, err
	}

	tag := &entity.Tag{
		Name:        input.Name,
		Description: input.Description,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewTagRepository().Create(ctx, tag)
	})
	if err != nil {
		srv.log(ctx).Warn("Tag creation failed", slog.String("name", input.Name), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Tag created", slog.Any("tagID", tag.ID), slog.String("name", tag.Name))

	return tag, nil
}

// List returns all tags.
func (srv *tagService) List(ctx context.Context) ([]*entity.Tag, error) {
	tags, err := srv.tagRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}

	return tags, nil
}

// Delete removes a tag together with all of its assignments.
func (srv *tagService) Delete(ctx context.Context, actor *entity.Account, id uuid.UUID) error {
	if err := srv.access.AssertPlatformAdmin(actor); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewTagRepository().Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrTagNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "tag does not exist")
		}

		return errors.Wrap(err, "failed to delete tag")
	}

	srv.log(ctx).Info("Tag deleted", slog.Any("tagID", id))

	return nil
}

// Attach assigns a tag to a job, company or user.
func (srv *tagService) Attach(ctx context.Context, actor *entity.Account, input *usecase.AttachTagInput) error {
	if err := srv.assertEntityWriteAccess(ctx, actor, input.EntityID, input.EntityType); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tagRepo := repoFactory.NewTagRepository()

		if _, err := tagRepo.FindByID(ctx, input.TagID); err != nil {
			if errors.Is(err, repository.ErrTagNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "tag does not exist")
			}

			return errors.Wrap(err, "failed to load tag")
		}

		return tagRepo.Attach(ctx, &entity.EntityTag{
			EntityID:   input.EntityID,
			EntityType: input.EntityType,
			TagID:      input.TagID,
		})
	})
	if err != nil {
		srv.log(ctx).Warn("Tag attach failed",
			slog.Any("tagID", input.TagID), slog.Any("entityID", input.EntityID), slog.Any("error", err))

		return err
	}

	return nil
}

// Detach removes a tag assignment.
func (srv *tagService) Detach(ctx context.Context, actor *entity.Account, input *usecase.AttachTagInput) error {
	if err := srv.assertEntityWriteAccess(ctx, actor, input.EntityID, input.EntityType); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewTagRepository().Detach(ctx, input.EntityID, input.EntityType, input.TagID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrEntityTagNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "tag is not attached to entity")
		}

		return errors.Wrap(err, "failed to detach tag")
	}

	return nil
}

// ListByEntity returns the tags attached to an entity.
func (srv *tagService) ListByEntity(ctx context.Context, entityID uuid.UUID, entityType entity.TagEntityType) ([]*entity.Tag, error) {
	if !entityType.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown entity type")
	}

	tags, err := srv.tagRepo.ListByEntity(ctx, entityID, entityType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list entity tags")
	}

	return tags, nil
}

// ListEntityIDs returns the entities of a type carrying a tag.
func (srv *tagService) ListEntityIDs(ctx context.Context, tagID uuid.UUID, entityType entity.TagEntityType) ([]uuid.UUID, error) {
	if !entityType.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown entity type")
	}

	ids, err := srv.tagRepo.ListEntityIDsByTag(ctx, tagID, entityType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tagged entities")
	}

	return ids, nil
}

// assertEntityWriteAccess applies the write guard of the tagged entity: company
// scope for jobs and companies, is_self for users. Platform admins pass every
// branch.
func (srv *tagService) assertEntityWriteAccess(ctx context.Context, actor *entity.Account, entityID uuid.UUID, entityType entity.TagEntityType) error {
	switch entityType {
	case entity.TagEntityJob:
		return srv.access.AssertJobAccess(ctx, actor, entityID)
	case entity.TagEntityCompany:
		return srv.access.AssertCompanyAccess(ctx, actor, entityID)
	case entity.TagEntityUser:
		return srv.access.AssertSelfOrPlatformAdmin(actor, entityID)
	default:
		return errors.Wrap(domainerrors.ErrValidationFailed, "unknown entity type")
	}
}
