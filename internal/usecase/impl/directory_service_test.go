package impl

import (
	"context"
	"encoding/xml"
	"math"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pymerp/internal/domain/directory"
	"pymerp/internal/domain/entity"
	domainerrors "pymerp/internal/domain/errors"
	mockRepo "pymerp/internal/mocks/repository"
	mockSvc "pymerp/internal/mocks/service"
	"pymerp/internal/usecase"
)

type directoryFixtures struct {
	service     *directoryService
	companyRepo *mockRepo.MockCompanyRepository
	cache       *mockSvc.MockDirectoryCache
}

func createTestDirectoryService(t *testing.T) directoryFixtures {
	f := directoryFixtures{
		companyRepo: mockRepo.NewMockCompanyRepository(t),
		cache:       mockSvc.NewMockDirectoryCache(t),
	}

	srv := NewDirectoryService(DirectoryServiceParams{
		CompanyRepo: f.companyRepo,
		Cache:       f.cache,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	}).(*directoryService)
	srv.now = func() time.Time { return fixedNow }
	f.service = srv

	return f
}

func ptr(v float64) *float64 { return &v }

func directoryCompanies() []*entity.Company {
	return []*entity.Company{
		{ID: "c1", Name: "Café Ñuñoa", Slug: "cafe-nunoa", Commune: "Ñuñoa", Sector: "Gastronomía",
			Location: &entity.GeoPoint{Lat: -33.4569, Lng: -70.5977}, UpdatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)},
		{ID: "c2", Name: "Ferretería Sur", Slug: "ferreteria-sur", Commune: "Concepción", Sector: "Construcción",
			Location: &entity.GeoPoint{Lat: -36.8270, Lng: -73.0503}},
		{ID: "c3", Name: "Sin Slug", Commune: "Ñuñoa"},
	}
}

func TestDirectoryService_SearchCompanies_CacheHit(t *testing.T) {
	f := createTestDirectoryService(t)
	ctx := context.Background()

	f.cache.EXPECT().GetPublicCompanies(ctx).Return(directoryCompanies(), true, nil)

	listings, err := f.service.SearchCompanies(ctx, &usecase.SearchCompaniesInput{
		Filter: directory.FilterState{RadiusKm: 10},
		Lat:    ptr(-33.4489),
		Lng:    ptr(-70.6693),
	})
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "c1", listings[0].Company.ID)
	require.NotNil(t, listings[0].DistanceMeters)
	assert.InDelta(t, 6500, *listings[0].DistanceMeters, 1000)
	f.companyRepo.AssertNotCalled(t, "ListPublic", mock.Anything)
}

func TestDirectoryService_SearchCompanies_CacheMissFillsCache(t *testing.T) {
	f := createTestDirectoryService(t)
	ctx := context.Background()

	companies := directoryCompanies()
	f.cache.EXPECT().GetPublicCompanies(ctx).Return(nil, false, nil)
	f.companyRepo.EXPECT().ListPublic(ctx).Return(companies, nil)
	f.cache.EXPECT().SetPublicCompanies(ctx, companies).Return(nil)

	listings, err := f.service.SearchCompanies(ctx, &usecase.SearchCompaniesInput{
		Filter: directory.FilterState{Commune: "nunoa"},
	})
	require.NoError(t, err)
	assert.Len(t, listings, 2)
}

func TestDirectoryService_SearchCompanies_CacheErrorsDegrade(t *testing.T) {
	f := createTestDirectoryService(t)
	ctx := context.Background()

	f.cache.EXPECT().GetPublicCompanies(ctx).Return(nil, false, errors.New("redis down"))
	f.companyRepo.EXPECT().ListPublic(ctx).Return(directoryCompanies(), nil)
	f.cache.EXPECT().SetPublicCompanies(ctx, mock.Anything).Return(errors.New("redis down"))

	listings, err := f.service.SearchCompanies(ctx, &usecase.SearchCompaniesInput{
		Filter: directory.FilterState{ShowAll: true},
	})
	require.NoError(t, err)
	assert.Len(t, listings, 3)
}

func TestDirectoryService_SearchCompanies_NoFilterIsEmpty(t *testing.T) {
	f := createTestDirectoryService(t)
	ctx := context.Background()

	f.cache.EXPECT().GetPublicCompanies(ctx).Return(directoryCompanies(), true, nil)

	listings, err := f.service.SearchCompanies(ctx, &usecase.SearchCompaniesInput{})
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestDirectoryService_SearchCompanies_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.SearchCompaniesInput
		field string
	}{
		{"radius too large", &usecase.SearchCompaniesInput{Filter: directory.FilterState{RadiusKm: 51}}, "radius_km"},
		{"negative radius", &usecase.SearchCompaniesInput{Filter: directory.FilterState{RadiusKm: -1}}, "radius_km"},
		{"lat without lng", &usecase.SearchCompaniesInput{Lat: ptr(-33)}, "lat,lng"},
		{"lat out of range", &usecase.SearchCompaniesInput{Lat: ptr(-91), Lng: ptr(-70)}, "lat"},
		{"lng out of range", &usecase.SearchCompaniesInput{Lat: ptr(-33), Lng: ptr(181)}, "lng"},
		{"NaN radius", &usecase.SearchCompaniesInput{Filter: directory.FilterState{RadiusKm: math.NaN()}}, "radius_km"},
		{"infinite radius", &usecase.SearchCompaniesInput{Filter: directory.FilterState{RadiusKm: math.Inf(1)}}, "radius_km"},
		{"NaN lat", &usecase.SearchCompaniesInput{Lat: ptr(math.NaN()), Lng: ptr(-70)}, "lat"},
		{"NaN lng", &usecase.SearchCompaniesInput{Lat: ptr(-33), Lng: ptr(math.NaN())}, "lng"},
		{"infinite lng", &usecase.SearchCompaniesInput{Lat: ptr(-33), Lng: ptr(math.Inf(-1))}, "lng"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestDirectoryService(t)

			_, err := f.service.SearchCompanies(context.Background(), tt.input)

			var vErr *domainerrors.ValidationError
			require.True(t, errors.As(err, &vErr))
			require.Len(t, vErr.Fields, 1)
			assert.Equal(t, tt.field, vErr.Fields[0].Field)
		})
	}
}

func TestDirectoryService_ListCommuneGroups(t *testing.T) {
	f := createTestDirectoryService(t)
	ctx := context.Background()

	f.cache.EXPECT().GetPublicCompanies(ctx).Return(directoryCompanies(), true, nil)

	groups, err := f.service.ListCommuneGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Concepción", groups[0].Name)
	assert.Equal(t, "Ñuñoa", groups[1].Name)
	assert.Len(t, groups[1].Companies, 2)
}

func TestDirectoryService_FindCommune(t *testing.T) {
	f := createTestDirectoryService(t)
	ctx := context.Background()

	match, err := f.service.FindCommune(ctx, "nunoa")
	require.NoError(t, err)
	assert.Equal(t, "Ñuñoa", match.Commune)

	_, err = f.service.FindCommune(ctx, "Atlantis")
	assert.True(t, errors.Is(err, domainerrors.ErrCommuneNotFound))

	_, err = f.service.FindCommune(ctx, " ")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestDirectoryService_Sitemap(t *testing.T) {
	f := createTestDirectoryService(t)
	ctx := context.Background()

	f.cache.EXPECT().GetPublicCompanies(ctx).Return(directoryCompanies(), true, nil)

	out, err := f.service.Sitemap(ctx)
	require.NoError(t, err)
	assert.Contains(t, string(out), `<?xml version="1.0" encoding="UTF-8"?>`)

	var set sitemapURLSet
	require.NoError(t, xml.Unmarshal(out, &set))
	require.Len(t, set.URLs, len(sitemapStaticPages)+2)

	assert.Equal(t, "https://pymerp.cl/", set.URLs[0].Loc)
	assert.Equal(t, "2025-03-14T12:00:00Z", set.URLs[0].LastMod)

	company := set.URLs[len(sitemapStaticPages)]
	assert.Equal(t, "https://pymerp.cl/cafe-nunoa", company.Loc)
	assert.Equal(t, "2025-01-02T03:04:05Z", company.LastMod)
	assert.Equal(t, "0.9", company.Priority)

	last := set.URLs[len(set.URLs)-1]
	assert.Equal(t, "https://pymerp.cl/ferreteria-sur", last.Loc)
	assert.Equal(t, "2025-03-14T12:00:00Z", last.LastMod)
}
