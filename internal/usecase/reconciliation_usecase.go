package usecase

import (
	"context"
	"time"

	"pymerp/internal/domain/service"
)

// CompleteProvisioningOutput reports the outcome per advisory step named in the event.
// Failed steps are worth retrying; skipped ones are unknown or no longer apply.
type CompleteProvisioningOutput struct {
	Repaired []string
	Failed   []string
	Skipped  []string
}

// ReconciliationUsecase sweeps access requests that provisioning left behind.
type ReconciliationUsecase interface {
	// RejectStaleRequests rejects requests still PENDING that were created before
	// now minus the configured age, returning how many were rejected.
	RejectStaleRequests(ctx context.Context, now time.Time) (int, error)

	// CompleteProvisioning re-runs the advisory steps a ProvisioningIncomplete event
	// reports as failed.
	CompleteProvisioning(ctx context.Context, event *service.ProvisioningIncompleteEvent) (*CompleteProvisioningOutput, error)
}
