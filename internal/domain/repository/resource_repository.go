package repository

import (
	"context"
	"time"

	"pymerp/internal/domain/entity"
	"pymerp/internal/errors"
)

// ErrResourceNotFound is returned when no service or professional matches.
var ErrResourceNotFound = errors.New("resource not found")

// ResourceRepository persists bookable services and professionals.
type ResourceRepository interface {
	FindByID(ctx context.Context, kind entity.ResourceKind, id string) (*entity.Resource, error)

	// UpdateSchedule replaces the resource schedule and stamps updated_at.
	UpdateSchedule(ctx context.Context, kind entity.ResourceKind, id string, schedule entity.Schedule, at time.Time) error
}
