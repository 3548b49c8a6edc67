package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pymerp/internal/domain/entity"
)

func TestFindCommune(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  CommuneMatch
	}{
		{"exact without accents", "nunoa", CommuneMatch{"Región Metropolitana", "Santiago", "Ñuñoa"}},
		{"case and spacing", "  LAS   condes ", CommuneMatch{"Región Metropolitana", "Santiago", "Las Condes"}},
		{"containment", "Comuna de Temuco", CommuneMatch{"La Araucanía", "Cautín", "Temuco"}},
		{"accented input", "Concepción", CommuneMatch{"Biobío", "Concepción", "Concepción"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindCommune(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestFindCommune_NoMatch(t *testing.T) {
	_, ok := FindCommune("   ")
	assert.False(t, ok)

	_, ok = FindCommune("Springfield")
	assert.False(t, ok)
}

func TestAllCommunes(t *testing.T) {
	all := AllCommunes()
	require.NotEmpty(t, all)

	seen := make(map[string]bool, len(all))
	for _, c := range all {
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
		assert.NotEmpty(t, c.Region)
		assert.NotEmpty(t, c.Province)
	}
}

func TestGroupByCommune(t *testing.T) {
	companies := []*entity.Company{
		{ID: "a", Name: "Zeta", Commune: "las condes"},
		{ID: "b", Name: "Alfa", Commune: "Las Condes "},
		{ID: "c", Name: "Beta", Commune: "Ñuñoa"},
		{ID: "d", Name: "Gamma", Commune: ""},
		{ID: "e", Name: "Delta", Commune: "Maipú"},
	}

	groups := GroupByCommune(companies)

	require.Len(t, groups, 3)
	assert.Equal(t, "Las Condes", groups[0].Name)
	assert.Equal(t, "Maipú", groups[1].Name)
	assert.Equal(t, "Ñuñoa", groups[2].Name)

	require.Len(t, groups[0].Companies, 2)
	assert.Equal(t, "Alfa", groups[0].Companies[0].Name)
	assert.Equal(t, "Zeta", groups[0].Companies[1].Name)
}
