package service

import (
	"context"
	"time"
)

// ProvisioningIncompleteEvent reports a tenant that was created but whose advisory
// provisioning steps failed, so it can be reconciled out of band.
type ProvisioningIncompleteEvent struct {
	RequestID   string    `json:"request_id"`
	TraceID     string    `json:"trace_id,omitempty"` // HTTP request id, for distributed tracing
	Email       string    `json:"email"`
	UserID      string    `json:"user_id"`
	CompanyID   string    `json:"company_id"`
	FailedSteps []string  `json:"failed_steps"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishProvisioningIncomplete publishes a reconciliation event
	PublishProvisioningIncomplete(ctx context.Context, event *ProvisioningIncompleteEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
