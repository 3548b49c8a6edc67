package directory

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pymerp/internal/domain/entity"
)

var santiagoCenter = orb.Point{-70.6693, -33.4489}

func fixtureCompanies() []*entity.Company {
	return []*entity.Company{
		{ID: "1", Name: "Café Ñuñoa", Region: "Región Metropolitana", Province: "Santiago", Commune: "Ñuñoa",
			Sector: "Gastronomía", CategoryID: "restaurantes", Location: &entity.GeoPoint{Lat: -33.4569, Lng: -70.5974}},
		{ID: "2", Name: "almacén central", Region: "Región Metropolitana", Province: "Santiago", Commune: "Santiago",
			Sector: "Comercio", CategoryID: "almacenes", Location: &entity.GeoPoint{Lat: -33.4450, Lng: -70.6600}},
		{ID: "3", Name: "Bicicletas Viña", Region: "Valparaíso", Province: "Valparaíso", Commune: "Viña del Mar",
			Sector: "Comercio", Industry: "transporte", Location: &entity.GeoPoint{Lat: -33.0245, Lng: -71.5518}},
		{ID: "4", Name: "Zapatería sin mapa", Region: "Región Metropolitana", Province: "Santiago", Commune: "nunoa",
			Sector: "Comercio", Description: "zapatos a medida"},
	}
}

func ids(listings []Listing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.Company.ID)
	}

	return out
}

func TestFilterCompanies_NoFilterWithoutShowAllIsEmpty(t *testing.T) {
	got := FilterCompanies(fixtureCompanies(), FilterState{}, &santiagoCenter)
	assert.Empty(t, got)
}

func TestFilterCompanies_ShowAllReturnsEverythingSortedByName(t *testing.T) {
	got := FilterCompanies(fixtureCompanies(), FilterState{ShowAll: true}, nil)

	assert.Equal(t, []string{"2", "3", "1", "4"}, ids(got))
	for _, l := range got {
		assert.Nil(t, l.DistanceMeters)
	}
}

func TestFilterCompanies_ShowAllRespectsSector(t *testing.T) {
	got := FilterCompanies(fixtureCompanies(), FilterState{ShowAll: true, Sector: "comercio"}, nil)
	assert.ElementsMatch(t, []string{"2", "3", "4"}, ids(got))
}

func TestFilterCompanies_CommuneIgnoresAccentsAndCase(t *testing.T) {
	got := FilterCompanies(fixtureCompanies(), FilterState{Commune: "ÑUÑOA"}, nil)
	assert.ElementsMatch(t, []string{"1", "4"}, ids(got))
}

func TestFilterCompanies_MostSpecificLocationWins(t *testing.T) {
	// Region would exclude Viña del Mar; the commune filter alone applies.
	got := FilterCompanies(fixtureCompanies(), FilterState{Region: "Región Metropolitana", Commune: "Viña del Mar"}, nil)
	assert.Equal(t, []string{"3"}, ids(got))

	got = FilterCompanies(fixtureCompanies(), FilterState{Region: "valparaiso"}, nil)
	assert.Equal(t, []string{"3"}, ids(got))
}

func TestFilterCompanies_CategoryContainmentBothWays(t *testing.T) {
	got := FilterCompanies(fixtureCompanies(), FilterState{CategoryID: "restaurante"}, nil)
	assert.Equal(t, []string{"1"}, ids(got))

	got = FilterCompanies(fixtureCompanies(), FilterState{CategoryID: "almacenes-de-barrio"}, nil)
	assert.Equal(t, []string{"2"}, ids(got))
}

func TestFilterCompanies_SearchQueryFields(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"cafe", []string{"1"}},
		{"ZAPATOS", []string{"4"}},
		{"transporte", []string{"3"}},
		{"viña", []string{"3"}},
		{"nothing-matches", []string{}},
		{"almacen-central", []string{"2"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := FilterCompanies(fixtureCompanies(), FilterState{SearchQuery: tt.query}, nil)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterCompanies_QueryWithoutComparableTextMatchesNothing(t *testing.T) {
	tests := []struct {
		name  string
		state FilterState
	}{
		{"punctuation", FilterState{SearchQuery: "???"}},
		{"punctuation with show all", FilterState{ShowAll: true, SearchQuery: "???"}},
		{"non latin script", FilterState{SearchQuery: "東京"}},
		{"symbol commune", FilterState{ShowAll: true, Commune: "--"}},
		{"symbol sector with commune", FilterState{Commune: "nunoa", Sector: "!!"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterCompanies(fixtureCompanies(), tt.state, nil)
			assert.Empty(t, got)
		})
	}
}

func TestFilterState_HasAnyFilterIgnoresBlankAfterFolding(t *testing.T) {
	assert.False(t, FilterState{SearchQuery: " ?! "}.HasAnyFilter())
	assert.True(t, FilterState{SearchQuery: "café"}.HasAnyFilter())
	assert.True(t, FilterState{RadiusKm: 5}.HasAnyFilter())
}

func TestFilterCompanies_PunctuationSeparatesWords(t *testing.T) {
	companies := []*entity.Company{{ID: "5", Name: "Café-Bar Luna", Commune: "Providencia"}}

	got := FilterCompanies(companies, FilterState{SearchQuery: "cafe bar"}, nil)
	assert.Equal(t, []string{"5"}, ids(got))
}

func TestFilterCompanies_RadiusDropsFarAndUnlocated(t *testing.T) {
	got := FilterCompanies(fixtureCompanies(), FilterState{RadiusKm: 10}, &santiagoCenter)

	require.Equal(t, []string{"2", "1"}, ids(got))
	require.NotNil(t, got[0].DistanceMeters)
	assert.Less(t, *got[0].DistanceMeters, *got[1].DistanceMeters)
	assert.Less(t, *got[1].DistanceMeters, 10_000.0)
}

func TestFilterCompanies_RadiusWithoutReferenceIsIgnored(t *testing.T) {
	got := FilterCompanies(fixtureCompanies(), FilterState{RadiusKm: 1}, nil)
	assert.Len(t, got, 4)
}

func TestFilterCompanies_DistanceFirstThenName(t *testing.T) {
	got := FilterCompanies(fixtureCompanies(), FilterState{ShowAll: true}, &santiagoCenter)

	assert.Equal(t, []string{"2", "1", "3", "4"}, ids(got))
	assert.Nil(t, got[3].DistanceMeters)
	assert.Greater(t, *got[2].DistanceMeters, 90_000.0)
}
