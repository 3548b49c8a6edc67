package firebase

import (
	"context"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"

	"pymerp/internal/domain/service"
)

type tokenVerifier struct {
	client authClient
}

// NewTokenVerifier verifies Firebase ID tokens.
func NewTokenVerifier(client *auth.Client) service.TokenVerifier {
	return &tokenVerifier{client: client}
}

func (v *tokenVerifier) VerifyToken(ctx context.Context, token string) (*service.VerifiedToken, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify id token")
	}

	return verifiedFromClaims(decoded), nil
}

func verifiedFromClaims(token *auth.Token) *service.VerifiedToken {
	verified := &service.VerifiedToken{
		UID:       token.UID,
		ExpiresAt: time.Unix(token.Expires, 0).UTC(),
	}
	if email, ok := token.Claims["email"].(string); ok {
		verified.Email = email
	}
	if companyID, ok := token.Claims[CompanyClaim].(string); ok {
		verified.CompanyID = companyID
	}

	return verified
}
