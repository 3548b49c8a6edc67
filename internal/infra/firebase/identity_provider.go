package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"

	"pymerp/internal/domain/service"
)

// CompanyClaim is the custom claim carrying the caller's tenant.
const CompanyClaim = "company_id"

// authClient is the subset of *auth.Client used here.
type authClient interface {
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	GetUserByEmail(ctx context.Context, email string) (*auth.UserRecord, error)
	UpdateUser(ctx context.Context, uid string, user *auth.UserToUpdate) (*auth.UserRecord, error)
	DeleteUser(ctx context.Context, uid string) error
	SetCustomUserClaims(ctx context.Context, uid string, customClaims map[string]any) error
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type identityProvider struct {
	client authClient
}

// NewIdentityProvider adapts Firebase Auth to the IdentityProvider contract.
func NewIdentityProvider(client *auth.Client) service.IdentityProvider {
	return &identityProvider{client: client}
}

func (p *identityProvider) CreateIdentity(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		EmailVerified(false).
		Disabled(false)
	if displayName != "" {
		params = params.DisplayName(displayName)
	}

	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		return "", errors.Wrap(err, "failed to create auth user")
	}

	return record.UID, nil
}

func (p *identityProvider) GetIdentityByEmail(ctx context.Context, email string) (*service.Identity, error) {
	record, err := p.client.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, service.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to get auth user")
	}

	return &service.Identity{
		UID:      record.UID,
		Email:    record.Email,
		Disabled: record.Disabled,
	}, nil
}

func (p *identityProvider) UpdatePassword(ctx context.Context, uid, password string) error {
	if _, err := p.client.UpdateUser(ctx, uid, (&auth.UserToUpdate{}).Password(password)); err != nil {
		if auth.IsUserNotFound(err) {
			return service.ErrIdentityNotFound
		}

		return errors.Wrap(err, "failed to update auth user password")
	}

	return nil
}

func (p *identityProvider) DeleteIdentity(ctx context.Context, uid string) error {
	if err := p.client.DeleteUser(ctx, uid); err != nil {
		if auth.IsUserNotFound(err) {
			return service.ErrIdentityNotFound
		}

		return errors.Wrap(err, "failed to delete auth user")
	}

	return nil
}

func (p *identityProvider) SetCompanyClaim(ctx context.Context, uid, companyID string) error {
	if err := p.client.SetCustomUserClaims(ctx, uid, map[string]any{CompanyClaim: companyID}); err != nil {
		return errors.Wrap(err, "failed to set custom claims")
	}

	return nil
}
