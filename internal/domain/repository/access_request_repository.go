package repository

import (
	"context"
	"time"

	"pymerp/internal/domain/entity"
	"pymerp/internal/errors"
)

// ErrAccessRequestNotFound is returned when no access request matches.
var ErrAccessRequestNotFound = errors.New("access request not found")

// AccessRequestFilter narrows ListAccessRequests results. Zero values match everything.
type AccessRequestFilter struct {
	Status        entity.AccessRequestStatus
	Email         string
	CreatedBefore time.Time
	Limit         int
}

// AccessRequestRepository persists public signup submissions.
type AccessRequestRepository interface {
	// Create stores a new request and assigns its ID.
	Create(ctx context.Context, req *entity.AccessRequest) error

	// FindByID retrieves a request by ID.
	FindByID(ctx context.Context, id string) (*entity.AccessRequest, error)

	// Update overwrites status, rejection reason and timestamps of an existing request.
	Update(ctx context.Context, req *entity.AccessRequest) error

	// List returns requests matching the filter, newest first.
	List(ctx context.Context, filter AccessRequestFilter) ([]*entity.AccessRequest, error)
}
