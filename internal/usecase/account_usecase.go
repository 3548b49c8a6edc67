package usecase

import (
	"context"

	"pymerp/internal/domain/entity"
)

// SetCompanyClaimInput asks to attach company_id to a credential's tokens.
// An empty UID means the caller.
type SetCompanyClaimInput struct {
	UID       string
	CompanyID string
}

// AccountUsecase covers operations a signed-in entrepreneur performs on their own account.
type AccountUsecase interface {
	// Authenticate verifies a bearer token and builds the caller session.
	Authenticate(ctx context.Context, token string) (*entity.Session, error)

	SetCompanyClaim(ctx context.Context, session *entity.Session, input *SetCompanyClaimInput) error

	// CompletePasswordChange clears FORCE_PASSWORD_CHANGE after the first login.
	CompletePasswordChange(ctx context.Context, session *entity.Session) (*entity.User, error)
}
