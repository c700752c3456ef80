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

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// Create persists a new account entity, including its applicant profile when
// present, in a single GORM create with associations.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailConflict.WrapMessage("email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required account information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	// Update the account entity with the generated ID and timestamps
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	if account.Profile != nil && accountM.Profile != nil {
		account.Profile.AccountID = accountM.Profile.AccountID
		account.Profile.UpdatedAt = accountM.Profile.UpdatedAt
	}

	return nil
}

// FindByID retrieves a single account by its unique ID, preloading the applicant profile.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel

	err := repo.db.WithContext(ctx).
		Preload("Profile").
		Where("id = ?", id).
		First(&accountM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toAccountDomain(&accountM), nil
}

// FindByEmail retrieves a single account by its email address, preloading the applicant profile.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel

	err := repo.db.WithContext(ctx).
		Preload("Profile").
		Where("email = ?", email).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// List returns all accounts with their profiles.
func (repo *accountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	var accountMs []model.AccountModel

	if err := repo.db.WithContext(ctx).Preload("Profile").Find(&accountMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountMs))
	for i := range accountMs {
		accounts = append(accounts, toAccountDomain(&accountMs[i]))
	}

	return accounts, nil
}

// SearchByEmail returns accounts whose email contains the fragment, case-insensitively.
func (repo *accountRepository) SearchByEmail(ctx context.Context, fragment string) ([]*entity.Account, error) {
	var accountMs []model.AccountModel

	err := repo.db.WithContext(ctx).
		Preload("Profile").
		Where("email ILIKE ?", "%"+fragment+"%").
		Find(&accountMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search accounts by email")
	}

	accounts := make([]*entity.Account, 0, len(accountMs))
	for i := range accountMs {
		accounts = append(accounts, toAccountDomain(&accountMs[i]))
	}

	return accounts, nil
}

// UpdateProfile replaces the applicant profile row of an account.
func (repo *accountRepository) UpdateProfile(ctx context.Context, profile *entity.ApplicantProfile) error {
	profileM := fromApplicantProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Save(profileM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update applicant profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// UpdatePasswordHash swaps the stored password hash of an account.
func (repo *accountRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password hash")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// Delete removes an account. The profile row is removed explicitly; join
// rows (recruiter links, ratings, applications) cascade at the schema level.
func (repo *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", id).
		Delete(&model.ApplicantProfileModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete applicant profile")
	}

	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AccountModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		IsVerified:   data.IsVerified,
		Profile:      toApplicantProfileDomain(data.Profile),
		CreatedAt:    data.CreatedAt,
		ExpiresAt:    data.ExpiresAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         data.Role.String(),
		IsVerified:   data.IsVerified,
		ExpiresAt:    data.ExpiresAt,
		Profile:      fromApplicantProfileDomain(data.Profile),
	}
}

// toApplicantProfileDomain converts a GORM ApplicantProfileModel to a domain ApplicantProfile entity.
func toApplicantProfileDomain(data *model.ApplicantProfileModel) *entity.ApplicantProfile {
	if data == nil {
		return nil
	}

	return &entity.ApplicantProfile{
		AccountID:       data.AccountID,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		BirthDate:       data.BirthDate,
		Description:     data.Description,
		ProfileImageID:  data.ProfileImageID,
		ProfileImageURL: data.ProfileImageURL,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromApplicantProfileDomain converts a domain ApplicantProfile entity to a GORM ApplicantProfileModel.
func fromApplicantProfileDomain(data *entity.ApplicantProfile) *model.ApplicantProfileModel {
	if data == nil {
		return nil
	}

	return &model.ApplicantProfileModel{
		AccountID:       data.AccountID,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		BirthDate:       data.BirthDate,
		Description:     data.Description,
		ProfileImageID:  data.ProfileImageID,
		ProfileImageURL: data.ProfileImageURL,
		UpdatedAt:       data.UpdatedAt,
	}
}
