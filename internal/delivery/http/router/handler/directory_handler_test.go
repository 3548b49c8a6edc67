package handler

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pymerp/internal/domain/directory"
	"pymerp/internal/domain/entity"
	domainerrors "pymerp/internal/domain/errors"
	mockUsecase "pymerp/internal/mocks/usecase"
	"pymerp/internal/usecase"
)

type directoryHandlerFixtures struct {
	handler     *DirectoryHandler
	directoryUC *mockUsecase.MockDirectoryUsecase
	companyQRUC *mockUsecase.MockCompanyQRUsecase
}

func newDirectoryHandler(t *testing.T) directoryHandlerFixtures {
	f := directoryHandlerFixtures{
		directoryUC: mockUsecase.NewMockDirectoryUsecase(t),
		companyQRUC: mockUsecase.NewMockCompanyQRUsecase(t),
	}
	f.handler = NewDirectoryHandler(DirectoryHandlerParams{
		DirectoryUC: f.directoryUC,
		CompanyQRUC: f.companyQRUC,
	})

	return f
}

func TestDirectoryHandler_SearchCompanies(t *testing.T) {
	t.Run("query string becomes filter", func(t *testing.T) {
		f := newDirectoryHandler(t)
		c, rec := newTestContext(http.MethodGet,
			"/directory/companies?commune=%C3%91u%C3%B1oa&sector=gastro&q=cafe&radiusKm=5&lat=-33.45&lng=-70.66", "", nil)

		distance := 1234.5
		f.directoryUC.EXPECT().SearchCompanies(mock.Anything, mock.MatchedBy(func(in *usecase.SearchCompaniesInput) bool {
			return in.Filter == directory.FilterState{Commune: "Ñuñoa", Sector: "gastro", SearchQuery: "cafe", RadiusKm: 5} &&
				in.Lat != nil && *in.Lat == -33.45 &&
				in.Lng != nil && *in.Lng == -70.66
		})).Return([]directory.Listing{{
			Company: &entity.Company{
				ID: "c1", Name: "Café Ñuñoa", Slug: "cafe-nunoa", Commune: "Ñuñoa",
				Location: &entity.GeoPoint{Lat: -33.4569, Lng: -70.5977},
			},
			DistanceMeters: &distance,
		}}, nil)

		require.NoError(t, f.handler.SearchCompanies(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var data []CompanyListingDTO
		decodeEnvelope(t, rec, &data)
		require.Len(t, data, 1)
		assert.Equal(t, "cafe-nunoa", data[0].Slug)
		assert.Equal(t, &LocationDTO{Lat: -33.4569, Lng: -70.5977}, data[0].Location)
		assert.Equal(t, &distance, data[0].DistanceMeters)
	})

	t.Run("no reference point", func(t *testing.T) {
		f := newDirectoryHandler(t)
		c, _ := newTestContext(http.MethodGet, "/directory/companies?showAll=true", "", nil)

		f.directoryUC.EXPECT().SearchCompanies(mock.Anything, &usecase.SearchCompaniesInput{
			Filter: directory.FilterState{ShowAll: true},
		}).Return(nil, nil)

		require.NoError(t, f.handler.SearchCompanies(c))
	})

	t.Run("bad number", func(t *testing.T) {
		f := newDirectoryHandler(t)
		c, _ := newTestContext(http.MethodGet, "/directory/companies?radiusKm=far", "", nil)

		assert.True(t, errors.Is(f.handler.SearchCompanies(c), domainerrors.ErrValidationFailed))
	})
}

func TestDirectoryHandler_ListCommunes(t *testing.T) {
	f := newDirectoryHandler(t)
	c, rec := newTestContext(http.MethodGet, "/directory/communes", "", nil)

	f.directoryUC.EXPECT().ListCommuneGroups(mock.Anything).Return([]directory.CommuneGroup{{
		Name:      "Ñuñoa",
		Key:       "nunoa",
		Companies: []*entity.Company{{ID: "c1", Name: "Café Ñuñoa", Slug: "cafe-nunoa"}},
	}}, nil)

	require.NoError(t, f.handler.ListCommunes(c))

	var data []CommuneGroupDTO
	decodeEnvelope(t, rec, &data)
	require.Len(t, data, 1)
	assert.Equal(t, "nunoa", data[0].Key)
	assert.Equal(t, "c1", data[0].Companies[0].ID)
}

func TestDirectoryHandler_LookupCommune(t *testing.T) {
	f := newDirectoryHandler(t)
	c, rec := newTestContext(http.MethodGet, "/directory/communes/lookup?name=nunoa", "", nil)

	f.directoryUC.EXPECT().FindCommune(mock.Anything, "nunoa").
		Return(&directory.CommuneMatch{Region: "Metropolitana de Santiago", Province: "Santiago", Commune: "Ñuñoa"}, nil)

	require.NoError(t, f.handler.LookupCommune(c))

	var data directory.CommuneMatch
	decodeEnvelope(t, rec, &data)
	assert.Equal(t, "Ñuñoa", data.Commune)
}

func TestDirectoryHandler_Sitemap(t *testing.T) {
	f := newDirectoryHandler(t)
	c, rec := newTestContext(http.MethodGet, "/sitemap.xml", "", nil)

	f.directoryUC.EXPECT().Sitemap(mock.Anything).Return([]byte("<urlset/>"), nil)

	require.NoError(t, f.handler.Sitemap(c))
	assert.Equal(t, "<urlset/>", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/xml")
	assert.Equal(t, sitemapCacheControl, rec.Header().Get("Cache-Control"))
}

func TestDirectoryHandler_CompanyQR(t *testing.T) {
	t.Run("png", func(t *testing.T) {
		f := newDirectoryHandler(t)
		c, rec := newTestContext(http.MethodGet, "/companies/cafe-nunoa/qr.png", "", nil)
		c.SetParamNames("slug")
		c.SetParamValues("cafe-nunoa")

		f.companyQRUC.EXPECT().CompanyQR(mock.Anything, "cafe-nunoa").Return([]byte("\x89PNG"), nil)

		require.NoError(t, f.handler.CompanyQR(c))
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, "\x89PNG", rec.Body.String())
	})

	t.Run("unknown slug", func(t *testing.T) {
		f := newDirectoryHandler(t)
		c, _ := newTestContext(http.MethodGet, "/companies/nope/qr.png", "", nil)
		c.SetParamNames("slug")
		c.SetParamValues("nope")

		f.companyQRUC.EXPECT().CompanyQR(mock.Anything, "nope").Return(nil, domainerrors.ErrCompanyNotFound)

		assert.True(t, errors.Is(f.handler.CompanyQR(c), domainerrors.ErrCompanyNotFound))
	})
}
