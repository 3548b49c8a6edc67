package service

import (
	"context"
	"time"
)

// VerifiedToken is the identity asserted by a validated bearer token.
type VerifiedToken struct {
	UID       string
	Email     string
	CompanyID string // company_id custom claim, empty when not set yet
	ExpiresAt time.Time
}

// TokenVerifier validates bearer tokens presented by clients.
type TokenVerifier interface {
	// VerifyToken checks signature, audience and expiry of the token.
	VerifyToken(ctx context.Context, token string) (*VerifiedToken, error)
}
