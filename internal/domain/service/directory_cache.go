package service

import (
	"context"

	"pymerp/internal/domain/entity"
)

// DirectoryCache caches the public company snapshot the directory filters over.
type DirectoryCache interface {
	// GetPublicCompanies reports ok=false on a cache miss.
	GetPublicCompanies(ctx context.Context) (companies []*entity.Company, ok bool, err error)
	SetPublicCompanies(ctx context.Context, companies []*entity.Company) error
	Invalidate(ctx context.Context) error
}
