package postgres

import (
	"context"
	"encoding/json"

	"openspace/internal/domain/entity"
	domainerrors "openspace/internal/domain/errors"
	"openspace/internal/domain/repository"
	"openspace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// companyRepository implements the domain.CompanyRepository interface using GORM.
type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository is the constructor for companyRepository.
func NewCompanyRepository(db *gorm.DB) repository.CompanyRepository {
	return &companyRepository{db: db}
}

// Create persists a new company entity.
func (repo *companyRepository) Create(ctx context.Context, company *entity.Company) error {
	companyM, err := fromCompanyDomain(company)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(companyM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("company tax id already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required company information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create company")
	}

	company.ID = companyM.ID

	return nil
}

// FindByID retrieves a single company by its unique ID.
func (repo *companyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	var companyM model.CompanyModel

	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&companyM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCompanyNotFound
		}

		return nil, errors.Wrap(err, "failed to find company by id")
	}

	return toCompanyDomain(&companyM)
}

// List returns all companies.
func (repo *companyRepository) List(ctx context.Context) ([]*entity.Company, error) {
	var companyMs []model.CompanyModel

	if err := repo.db.WithContext(ctx).Find(&companyMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list companies")
	}

	return toCompanyDomainSlice(companyMs)
}

// SearchByName returns companies whose name contains the fragment, case-insensitively.
func (repo *companyRepository) SearchByName(ctx context.Context, fragment string) ([]*entity.Company, error) {
	var companyMs []model.CompanyModel

	err := repo.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+fragment+"%").
		Find(&companyMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search companies by name")
	}

	return toCompanyDomainSlice(companyMs)
}

// Update persists changes to an existing company.
func (repo *companyRepository) Update(ctx context.Context, company *entity.Company) error {
	companyM, err := fromCompanyDomain(company)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CompanyModel{}).
		Where("id = ?", company.ID).
		Updates(map[string]any{
			"name":              companyM.Name,
			"ein":               companyM.EIN,
			"address":           companyM.Address,
			"description":       companyM.Description,
			"admin_account_id":  companyM.AdminAccountID,
			"profile_image_id":  companyM.ProfileImageID,
			"profile_image_url": companyM.ProfileImageURL,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("company tax id already registered")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update company")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCompanyNotFound
	}

	return nil
}

// Delete removes a company. Jobs, recruiter links and ratings cascade at the
// schema level.
func (repo *companyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CompanyModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete company")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCompanyNotFound
	}

	return nil
}

// CreateRecruiterLink assigns an account to a company as recruiter.
func (repo *companyRepository) CreateRecruiterLink(ctx context.Context, link *entity.RecruiterLink) error {
	linkM := &model.RecruiterLinkModel{
		AccountID: link.AccountID,
		CompanyID: link.CompanyID,
		JoinDate:  link.JoinDate,
	}

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("account already assigned to company")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown account or company")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recruiter link")
	}

	return nil
}

// FindRecruiterLink retrieves the assignment of an account to a company.
func (repo *companyRepository) FindRecruiterLink(ctx context.Context, accountID, companyID uuid.UUID) (*entity.RecruiterLink, error) {
	var linkM model.RecruiterLinkModel

	err := repo.db.WithContext(ctx).
		Where("account_id = ? AND company_id = ?", accountID, companyID).
		First(&linkM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecruiterLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find recruiter link")
	}

	return &entity.RecruiterLink{
		AccountID: linkM.AccountID,
		CompanyID: linkM.CompanyID,
		JoinDate:  linkM.JoinDate,
	}, nil
}

// ListRecruitersByCompany returns all recruiter assignments of a company.
func (repo *companyRepository) ListRecruitersByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.RecruiterLink, error) {
	var linkMs []model.RecruiterLinkModel

	err := repo.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Find(&linkMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recruiters by company")
	}

	links := make([]*entity.RecruiterLink, 0, len(linkMs))
	for i := range linkMs {
		links = append(links, &entity.RecruiterLink{
			AccountID: linkMs[i].AccountID,
			CompanyID: linkMs[i].CompanyID,
			JoinDate:  linkMs[i].JoinDate,
		})
	}

	return links, nil
}

// ListCompaniesByRecruiter returns all companies an account recruits for.
func (repo *companyRepository) ListCompaniesByRecruiter(ctx context.Context, accountID uuid.UUID) ([]*entity.Company, error) {
	var companyMs []model.CompanyModel

	err := repo.db.WithContext(ctx).
		Joins("JOIN company_recruiters ON company_recruiters.company_id = companies.id").
		Where("company_recruiters.account_id = ?", accountID).
		Find(&companyMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list companies by recruiter")
	}

	return toCompanyDomainSlice(companyMs)
}

// DeleteRecruiterLink removes an assignment.
func (repo *companyRepository) DeleteRecruiterLink(ctx context.Context, accountID, companyID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("account_id = ? AND company_id = ?", accountID, companyID).
		Delete(&model.RecruiterLinkModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete recruiter link")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecruiterLinkNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCompanyDomain converts a GORM CompanyModel to a domain Company entity.
func toCompanyDomain(data *model.CompanyModel) (*entity.Company, error) {
	if data == nil {
		return nil, nil
	}

	var address map[string]string
	if len(data.Address) > 0 {
		if err := json.Unmarshal(data.Address, &address); err != nil {
			return nil, errors.Wrap(err, "failed to decode company address")
		}
	}

	return &entity.Company{
		ID:              data.ID,
		Name:            data.Name,
		EIN:             data.EIN,
		Address:         address,
		Description:     data.Description,
		AdminAccountID:  data.AdminAccountID,
		ProfileImageID:  data.ProfileImageID,
		ProfileImageURL: data.ProfileImageURL,
	}, nil
}

// toCompanyDomainSlice converts a slice of company models to domain entities.
func toCompanyDomainSlice(data []model.CompanyModel) ([]*entity.Company, error) {
	companies := make([]*entity.Company, 0, len(data))
	for i := range data {
		company, err := toCompanyDomain(&data[i])
		if err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}

	return companies, nil
}

// fromCompanyDomain converts a domain Company entity to a GORM CompanyModel for persistence.
func fromCompanyDomain(data *entity.Company) (*model.CompanyModel, error) {
	if data == nil {
		return nil, nil
	}

	var address []byte
	if data.Address != nil {
		encoded, err := json.Marshal(data.Address)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode company address")
		}
		address = encoded
	}

	return &model.CompanyModel{
		ID:              data.ID,
		Name:            data.Name,
		EIN:             data.EIN,
		Address:         address,
		Description:     data.Description,
		AdminAccountID:  data.AdminAccountID,
		ProfileImageID:  data.ProfileImageID,
		ProfileImageURL: data.ProfileImageURL,
	}, nil
}
