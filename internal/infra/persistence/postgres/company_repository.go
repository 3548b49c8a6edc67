package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"pymerp/internal/domain/entity"
	domainerrors "pymerp/internal/domain/errors"
	"pymerp/internal/domain/repository"
	"pymerp/internal/infra/persistence/model"
)

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository is the constructor for companyRepository.
func NewCompanyRepository(db *gorm.DB) repository.CompanyRepository {
	return &companyRepository{db: db}
}

// Create stores the company and its geohash, assigning an ID when empty.
func (repo *companyRepository) Create(ctx context.Context, company *entity.Company) error {
	if company.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.WithStack(err)
		}
		company.ID = id.String()
	}
	company.Geohash = company.ComputeGeohash()

	companyM := fromCompanyDomain(company)
	if err := repo.db.WithContext(ctx).Create(companyM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("company already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create company")
	}

	company.CreatedAt = companyM.CreatedAt
	company.UpdatedAt = companyM.UpdatedAt

	return nil
}

func (repo *companyRepository) FindByID(ctx context.Context, id string) (*entity.Company, error) {
	return repo.first(ctx, "id = ?", id)
}

// FindBySlug returns the oldest company using the slug.
func (repo *companyRepository) FindBySlug(ctx context.Context, slug string) (*entity.Company, error) {
	return repo.first(ctx, "slug = ?", slug)
}

func (repo *companyRepository) first(ctx context.Context, cond string, arg any) (*entity.Company, error) {
	var companyM model.CompanyModel
	err := repo.db.WithContext(ctx).Where(cond, arg).Order("created_at ASC").First(&companyM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCompanyNotFound
		}

		return nil, errors.Wrap(err, "failed to find company")
	}

	return toCompanyDomain(&companyM), nil
}

func (repo *companyRepository) UpdateSchedule(ctx context.Context, id string, schedule entity.Schedule, at time.Time) error {
	return repo.update(ctx, id, &model.CompanyModel{Schedule: schedule, UpdatedAt: at}, "schedule", "updated_at")
}

func (repo *companyRepository) UpdateGeohash(ctx context.Context, id, geohash string) error {
	return repo.update(ctx, id, &model.CompanyModel{Geohash: geohash}, "geohash")
}

// update writes the selected columns. Select keeps the JSON serializer in play for schedule.
func (repo *companyRepository) update(ctx context.Context, id string, values *model.CompanyModel, columns ...string) error {
	result := repo.db.WithContext(ctx).Model(&model.CompanyModel{ID: id}).
		Select(columns).
		Updates(values)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update company")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCompanyNotFound
	}

	return nil
}

func (repo *companyRepository) Delete(ctx context.Context, id string) error {
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CompanyModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete company")
	}

	return nil
}

func (repo *companyRepository) ListPublic(ctx context.Context) ([]*entity.Company, error) {
	var rows []model.CompanyModel
	if err := repo.db.WithContext(ctx).Where("is_public = ?", true).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list public companies")
	}

	companies := make([]*entity.Company, 0, len(rows))
	for i := range rows {
		companies = append(companies, toCompanyDomain(&rows[i]))
	}

	return companies, nil
}

func toCompanyDomain(data *model.CompanyModel) *entity.Company {
	company := &entity.Company{
		ID:               data.ID,
		OwnerUserID:      data.OwnerUserID,
		Name:             data.Name,
		RUT:              data.RUT,
		Industry:         data.Industry,
		WhatsApp:         data.WhatsApp,
		Address:          data.Address,
		Slug:             data.Slug,
		SetupCompleted:   data.SetupCompleted,
		SubscriptionPlan: entity.Plan(data.SubscriptionPlan),
		Schedule:         data.Schedule,
		IsPublic:         data.IsPublic,
		Region:           data.Region,
		Province:         data.Province,
		Commune:          data.Commune,
		Sector:           data.Sector,
		CategoryID:       data.CategoryID,
		ShortDescription: data.ShortDescription,
		Description:      data.Description,
		Geohash:          data.Geohash,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
	if data.Lat != nil && data.Lng != nil {
		company.Location = &entity.GeoPoint{Lat: *data.Lat, Lng: *data.Lng}
	}

	return company
}

func fromCompanyDomain(data *entity.Company) *model.CompanyModel {
	companyM := &model.CompanyModel{
		ID:               data.ID,
		OwnerUserID:      data.OwnerUserID,
		Name:             data.Name,
		RUT:              data.RUT,
		Industry:         data.Industry,
		WhatsApp:         data.WhatsApp,
		Address:          data.Address,
		Slug:             data.Slug,
		SetupCompleted:   data.SetupCompleted,
		SubscriptionPlan: string(data.SubscriptionPlan),
		Schedule:         data.Schedule,
		IsPublic:         data.IsPublic,
		Region:           data.Region,
		Province:         data.Province,
		Commune:          data.Commune,
		Sector:           data.Sector,
		CategoryID:       data.CategoryID,
		ShortDescription: data.ShortDescription,
		Description:      data.Description,
		Geohash:          data.Geohash,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
	if data.Location != nil {
		lat, lng := data.Location.Lat, data.Location.Lng
		companyM.Lat = &lat
		companyM.Lng = &lng
	}

	return companyM
}
