package usecase

import (
	"context"

	"pymerp/internal/domain/entity"
)

// SetResourceScheduleInput targets exactly one of a service or a professional.
// Schedule is the untrusted, JSON-decoded document.
type SetResourceScheduleInput struct {
	ServiceID      string
	ProfessionalID string
	Schedule       any
}

// SetResourceScheduleOutput echoes the updated resource.
type SetResourceScheduleOutput struct {
	Kind       entity.ResourceKind
	ResourceID string
}

// ScheduleUsecase stores weekly availability for companies and their resources.
type ScheduleUsecase interface {
	SetResourceSchedule(ctx context.Context, session *entity.Session, input *SetResourceScheduleInput) (*SetResourceScheduleOutput, error)
	SetCompanySchedule(ctx context.Context, session *entity.Session, schedule any) error
}
