package usecase

import (
	"context"
	"io"
	"time"

	"openspace/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput defines the editable fields of an applicant profile.
type UpdateProfileInput struct {
	AccountID   uuid.UUID
	FirstName   string
	LastName    string
	BirthDate   *time.Time
	Description string
}

// UploadImageInput carries an uploaded image stream.
type UploadImageInput struct {
	ContentType string
	Data        io.Reader
}

// AccountUsecase defines account and applicant-profile operations.
type AccountUsecase interface {
	// Get returns an account by id. Only the account owner or a platform
	// admin may read it.
	Get(ctx context.Context, actor *entity.Account, id uuid.UUID) (*entity.Account, error)

	// List returns all accounts. Platform admins only.
	List(ctx context.Context, actor *entity.Account) ([]*entity.Account, error)

	// SearchByEmail returns accounts matching an email fragment. Platform
	// admins only.
	SearchByEmail(ctx context.Context, actor *entity.Account, fragment string) ([]*entity.Account, error)

	// UpdateProfile edits an applicant profile. Only the profile owner or a
	// platform admin may edit it.
	UpdateProfile(ctx context.Context, actor *entity.Account, input *UpdateProfileInput) (*entity.ApplicantProfile, error)

	// UploadProfileImage stores a profile image and records its key and URL.
	// Only the profile owner or a platform admin may replace it.
	UploadProfileImage(ctx context.Context, actor *entity.Account, accountID uuid.UUID, input *UploadImageInput) (*entity.ApplicantProfile, error)

	// Delete removes an account. Only the account owner or a platform admin
	// may delete it.
	Delete(ctx context.Context, actor *entity.Account, id uuid.UUID) error
}
