// Package service defines interfaces for external collaborators and stateless domain logic.
// Use cases depend on these contracts; infrastructure packages implement them.
package service

import (
	"context"

	"pymerp/internal/errors"
)

// ErrIdentityNotFound is returned when the auth provider has no credential for the lookup.
var ErrIdentityNotFound = errors.New("identity not found")

// Identity is an auth provider credential.
type Identity struct {
	UID      string
	Email    string
	Disabled bool
}

// IdentityProvider abstracts the hosted auth provider holding login credentials.
type IdentityProvider interface {
	// CreateIdentity creates an email/password credential and returns its uid.
	CreateIdentity(ctx context.Context, email, password, displayName string) (string, error)

	// GetIdentityByEmail returns ErrIdentityNotFound when no credential uses the email.
	GetIdentityByEmail(ctx context.Context, email string) (*Identity, error)

	// UpdatePassword replaces the password of an existing credential.
	UpdatePassword(ctx context.Context, uid, password string) error

	// DeleteIdentity removes the credential. Returns ErrIdentityNotFound when absent.
	DeleteIdentity(ctx context.Context, uid string) error

	// SetCompanyClaim stores company_id as a custom claim on future tokens.
	SetCompanyClaim(ctx context.Context, uid, companyID string) error
}
