package usecase

import (
	"context"

	"pymerp/internal/domain/entity"
)

// DeleteAccountInput names the account to remove. CompanyID and UserID are optional
// extra documents to delete.
type DeleteAccountInput struct {
	Email     string
	CompanyID string
	UserID    string
}

// DeleteAccountOutput reports what was removed.
type DeleteAccountOutput struct {
	AuthDeleted  bool
	DeletedPaths []string
}

// ResetPasswordOutput reports the outcome of an administrative password reset.
type ResetPasswordOutput struct {
	Email   string
	Created bool // A new credential had to be created.
	Emailed bool
}

// SyncDirectoryOutput reports the directory geohash refresh.
type SyncDirectoryOutput struct {
	Updated int
	Skipped int
}

// AdminUsecase groups the operations available to platform operators.
type AdminUsecase interface {
	ListAccessRequests(ctx context.Context, status entity.AccessRequestStatus) ([]*entity.AccessRequest, error)
	RejectAccessRequest(ctx context.Context, id, reason string) (*entity.AccessRequest, error)
	ResetPassword(ctx context.Context, email string) (*ResetPasswordOutput, error)
	DeleteAccount(ctx context.Context, input *DeleteAccountInput) (*DeleteAccountOutput, error)
	// SyncDirectory recomputes geohashes of public companies and drops the directory cache.
	SyncDirectory(ctx context.Context) (*SyncDirectoryOutput, error)
}
