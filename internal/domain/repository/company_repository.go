package repository

import (
	"context"
	"time"

	"pymerp/internal/domain/entity"
	"pymerp/internal/errors"
)

// ErrCompanyNotFound is returned when no company matches.
var ErrCompanyNotFound = errors.New("company not found")

// CompanyRepository persists tenants.
type CompanyRepository interface {
	// Create stores a new company and assigns its ID.
	Create(ctx context.Context, company *entity.Company) error

	FindByID(ctx context.Context, id string) (*entity.Company, error)

	// FindBySlug returns the first company with the slug. Slugs are not unique.
	FindBySlug(ctx context.Context, slug string) (*entity.Company, error)

	// UpdateSchedule replaces the company business hours.
	UpdateSchedule(ctx context.Context, id string, schedule entity.Schedule, at time.Time) error

	// UpdateGeohash stores the directory geohash computed from the company location.
	UpdateGeohash(ctx context.Context, id, geohash string) error

	// Delete removes the company. Deleting a missing record is not an error.
	Delete(ctx context.Context, id string) error

	// ListPublic returns every company listed in the public directory.
	ListPublic(ctx context.Context) ([]*entity.Company, error)
}
