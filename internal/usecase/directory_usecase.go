package usecase

import (
	"context"

	"pymerp/internal/domain/directory"
)

// SearchCompaniesInput is the directory query. Lat and Lng are the reference point,
// both or neither.
type SearchCompaniesInput struct {
	Filter directory.FilterState
	Lat    *float64
	Lng    *float64
}

// DirectoryUsecase serves the public company directory.
type DirectoryUsecase interface {
	SearchCompanies(ctx context.Context, input *SearchCompaniesInput) ([]directory.Listing, error)
	ListCommuneGroups(ctx context.Context) ([]directory.CommuneGroup, error)
	FindCommune(ctx context.Context, name string) (*directory.CommuneMatch, error)
	// Sitemap renders sitemap.xml for static pages and public company pages.
	Sitemap(ctx context.Context) ([]byte, error)
}

// CompanyQRUsecase produces QR codes pointing at a company's public page.
type CompanyQRUsecase interface {
	CompanyQR(ctx context.Context, slug string) ([]byte, error)
}
