// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// --- Input DTOs ---

// RequestAccessInput is a public signup submission as received from the form.
type RequestAccessInput struct {
	FullName     string
	Email        string
	BusinessName string
	WhatsApp     string
	Plan         string
	Language     string
}

// --- Output DTOs ---

// RequestAccessOutput identifies the provisioned tenant. Incomplete lists advisory
// steps that failed and were handed to reconciliation.
type RequestAccessOutput struct {
	RequestID  string
	UserID     string
	CompanyID  string
	Incomplete []string
}

// ProvisioningUsecase turns an access request into a tenant: credential, user and company.
type ProvisioningUsecase interface {
	RequestAccess(ctx context.Context, input *RequestAccessInput) (*RequestAccessOutput, error)
}
