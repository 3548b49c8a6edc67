package postgres

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"pymerp/internal/domain/entity"
	domainerrors "pymerp/internal/domain/errors"
	"pymerp/internal/domain/repository"
	"pymerp/internal/infra/persistence/model"
)

type resourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository is the constructor for resourceRepository.
func NewResourceRepository(db *gorm.DB) repository.ResourceRepository {
	return &resourceRepository{db: db}
}

func (repo *resourceRepository) FindByID(ctx context.Context, kind entity.ResourceKind, id string) (*entity.Resource, error) {
	var resM model.ResourceModel
	err := repo.db.WithContext(ctx).Table(model.ResourceTable(kind)).Where("id = ?", id).First(&resM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResourceNotFound
		}

		return nil, errors.Wrapf(err, "failed to find %s", kind)
	}

	return &entity.Resource{
		ID:        resM.ID,
		Kind:      kind,
		CompanyID: resM.CompanyID,
		Name:      resM.Name,
		Schedule:  resM.Schedule,
		UpdatedAt: resM.UpdatedAt,
	}, nil
}

func (repo *resourceRepository) UpdateSchedule(ctx context.Context, kind entity.ResourceKind, id string, schedule entity.Schedule, at time.Time) error {
	result := repo.db.WithContext(ctx).Table(model.ResourceTable(kind)).
		Model(&model.ResourceModel{ID: id}).
		Select("schedule", "updated_at").
		Updates(&model.ResourceModel{Schedule: schedule, UpdatedAt: at})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update schedule")
	}
	if result.RowsAffected == 0 {
		return repository.ErrResourceNotFound
	}

	return nil
}
