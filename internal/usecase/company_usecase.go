package usecase

import (
	"context"

	"openspace/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateCompanyInput defines the editable fields of a company.
type UpdateCompanyInput struct {
	CompanyID   uuid.UUID
	Name        string
	Address     map[string]string
	Description string
}

// CompanyUsecase defines company operations. Reads are public; writes are
// guarded by company ownership.
type CompanyUsecase interface {
	// Get returns a company by id. Public.
	Get(ctx context.Context, id uuid.UUID) (*entity.Company, error)

	// List returns all companies. Public.
	List(ctx context.Context) ([]*entity.Company, error)

	// SearchByName returns companies matching a name fragment. Public.
	SearchByName(ctx context.Context, fragment string) ([]*entity.Company, error)

	// Update edits a company. Restricted to the company's owning admin.
	Update(ctx context.Context, actor *entity.Account, input *UpdateCompanyInput) (*entity.Company, error)

	// UploadImage stores a company image and records its key and URL.
	// Restricted to the company's owning admin.
	UploadImage(ctx context.Context, actor *entity.Account, companyID uuid.UUID, input *UploadImageInput) (*entity.Company, error)

	// Delete removes a company with its jobs and links. Restricted to the
	// company's owning admin.
	Delete(ctx context.Context, actor *entity.Account, id uuid.UUID) error
}
