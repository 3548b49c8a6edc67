package postgres

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"pymerp/internal/domain/entity"
	domainerrors "pymerp/internal/domain/errors"
	"pymerp/internal/domain/repository"
	"pymerp/internal/infra/persistence/model"
)

type accessRequestRepository struct {
	db *gorm.DB
}

// NewAccessRequestRepository is the constructor for accessRequestRepository.
func NewAccessRequestRepository(db *gorm.DB) repository.AccessRequestRepository {
	return &accessRequestRepository{db: db}
}

// Create stores the request, assigning a time-ordered UUID when the ID is empty.
func (repo *accessRequestRepository) Create(ctx context.Context, req *entity.AccessRequest) error {
	if req.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.WithStack(err)
		}
		req.ID = id.String()
	}

	if err := repo.db.WithContext(ctx).Create(fromAccessRequestDomain(req)).Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid access request")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create access request")
	}

	return nil
}

func (repo *accessRequestRepository) FindByID(ctx context.Context, id string) (*entity.AccessRequest, error) {
	var reqM model.AccessRequestModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&reqM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccessRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find access request")
	}

	return toAccessRequestDomain(&reqM), nil
}

// Update overwrites the mutable workflow columns.
func (repo *accessRequestRepository) Update(ctx context.Context, req *entity.AccessRequest) error {
	result := repo.db.WithContext(ctx).Model(&model.AccessRequestModel{}).
		Where("id = ?", req.ID).
		Updates(map[string]any{
			"status":              string(req.Status),
			"rejection_reason":    req.RejectionReason,
			"processed_at":        req.ProcessedAt,
			"last_password_reset": req.LastPasswordReset,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update access request")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccessRequestNotFound
	}

	return nil
}

// List returns matching requests, newest first.
func (repo *accessRequestRepository) List(ctx context.Context, filter repository.AccessRequestFilter) ([]*entity.AccessRequest, error) {
	query := repo.db.WithContext(ctx).Model(&model.AccessRequestModel{})
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Email != "" {
		query = query.Where("email = ?", strings.ToLower(filter.Email))
	}
	if !filter.CreatedBefore.IsZero() {
		query = query.Where("created_at < ?", filter.CreatedBefore)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var rows []model.AccessRequestModel
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list access requests")
	}

	requests := make([]*entity.AccessRequest, 0, len(rows))
	for i := range rows {
		requests = append(requests, toAccessRequestDomain(&rows[i]))
	}

	return requests, nil
}

func toAccessRequestDomain(data *model.AccessRequestModel) *entity.AccessRequest {
	return &entity.AccessRequest{
		ID:                data.ID,
		FullName:          data.FullName,
		Email:             data.Email,
		BusinessName:      data.BusinessName,
		WhatsApp:          data.WhatsApp,
		Plan:              entity.Plan(data.Plan),
		Status:            entity.AccessRequestStatus(data.Status),
		Language:          data.Language,
		RejectionReason:   data.RejectionReason,
		CreatedAt:         data.CreatedAt,
		ProcessedAt:       data.ProcessedAt,
		LastPasswordReset: data.LastPasswordReset,
	}
}

func fromAccessRequestDomain(data *entity.AccessRequest) *model.AccessRequestModel {
	return &model.AccessRequestModel{
		ID:                data.ID,
		FullName:          data.FullName,
		Email:             strings.ToLower(data.Email),
		BusinessName:      data.BusinessName,
		WhatsApp:          data.WhatsApp,
		Plan:              string(data.Plan),
		Status:            string(data.Status),
		Language:          data.Language,
		RejectionReason:   data.RejectionReason,
		CreatedAt:         data.CreatedAt,
		ProcessedAt:       data.ProcessedAt,
		LastPasswordReset: data.LastPasswordReset,
	}
}
