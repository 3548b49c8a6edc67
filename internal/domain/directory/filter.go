// Package directory implements the public company directory: filter composition over
// an in-memory company snapshot, commune grouping and the Chilean location hierarchy.
package directory

import (
	"sort"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"pymerp/internal/domain/entity"
	"pymerp/internal/util"
)

// FilterState is the set of directory filters selected by a visitor.
type FilterState struct {
	Region      string
	Province    string
	Commune     string
	Sector      string
	CategoryID  string
	SearchQuery string
	ShowAll     bool
	RadiusKm    float64 // Zero disables radius filtering.
}

func (s FilterState) textFilters() []string {
	return []string{s.Region, s.Province, s.Commune, s.Sector, s.CategoryID, s.SearchQuery}
}

// HasAnyFilter reports whether at least one narrowing filter is set. Text filters
// count only when something comparable is left after NormalizeText.
func (s FilterState) HasAnyFilter() bool {
	for _, v := range s.textFilters() {
		if util.NormalizeText(v) != "" {
			return true
		}
	}

	return s.RadiusKm > 0
}

// unmatchable reports whether a text filter was given but folds to nothing, such as
// "???". Such a filter matches no company.
func (s FilterState) unmatchable() bool {
	for _, v := range s.textFilters() {
		if strings.TrimSpace(v) != "" && util.NormalizeText(v) == "" {
			return true
		}
	}

	return false
}

// Listing is a company selected by the filter, with its distance to the reference
// point when both locations are known.
type Listing struct {
	Company        *entity.Company
	DistanceMeters *float64
}

// locationLevel is the single hierarchical filter that applies.
type locationLevel struct {
	value string
	field func(*entity.Company) string
}

// FilterCompanies applies the filter state to companies and orders the result:
// companies with a known distance first, nearest first, then the rest by name.
// Only the most specific location filter among commune, province and region is applied.
// With ShowAll unset and no filter at all the result is empty.
// The reference point is [lng, lat]; nil disables distance computation.
func FilterCompanies(companies []*entity.Company, state FilterState, reference *orb.Point) []Listing {
	if state.unmatchable() || (!state.ShowAll && !state.HasAnyFilter()) {
		return []Listing{}
	}

	location := mostSpecificLocation(state)
	sector := util.NormalizeText(state.Sector)
	category := util.NormalizeText(state.CategoryID)
	query := util.NormalizeText(state.SearchQuery)
	radiusMeters := state.RadiusKm * 1000
	useRadius := reference != nil && state.RadiusKm > 0

	out := make([]Listing, 0, len(companies))
	for _, c := range companies {
		if c == nil {
			continue
		}
		if location != nil && util.NormalizeText(location.field(c)) != location.value {
			continue
		}
		if sector != "" && !containsEitherWay(util.NormalizeText(c.Sector), sector) {
			continue
		}
		if category != "" && !containsEitherWay(util.NormalizeText(c.CategoryID), category) {
			continue
		}
		if query != "" && !matchesQuery(c, query) {
			continue
		}

		listing := Listing{Company: c}
		if reference != nil && c.Location != nil {
			d := geo.DistanceHaversine(*reference, orb.Point{c.Location.Lng, c.Location.Lat})
			listing.DistanceMeters = &d
		}

		if useRadius && (listing.DistanceMeters == nil || *listing.DistanceMeters > radiusMeters) {
			continue
		}

		out = append(out, listing)
	}

	sortListings(out)

	return out
}

func mostSpecificLocation(state FilterState) *locationLevel {
	if v := util.NormalizeText(state.Commune); v != "" {
		return &locationLevel{value: v, field: func(c *entity.Company) string { return c.Commune }}
	}
	if v := util.NormalizeText(state.Province); v != "" {
		return &locationLevel{value: v, field: func(c *entity.Company) string { return c.Province }}
	}
	if v := util.NormalizeText(state.Region); v != "" {
		return &locationLevel{value: v, field: func(c *entity.Company) string { return c.Region }}
	}

	return nil
}

// containsEitherWay is the permissive sector/category match. An empty candidate never matches.
func containsEitherWay(candidate, query string) bool {
	if candidate == "" {
		return false
	}

	return strings.Contains(candidate, query) || strings.Contains(query, candidate)
}

func matchesQuery(c *entity.Company, query string) bool {
	for _, field := range []string{c.Name, c.ShortDescription, c.Description, c.Commune, c.Sector, c.Industry} {
		if strings.Contains(util.NormalizeText(field), query) {
			return true
		}
	}

	return false
}

func sortListings(listings []Listing) {
	col := collate.New(language.Spanish, collate.Loose)

	sort.SliceStable(listings, func(i, j int) bool {
		a, b := listings[i], listings[j]
		switch {
		case a.DistanceMeters != nil && b.DistanceMeters != nil:
			return *a.DistanceMeters < *b.DistanceMeters
		case a.DistanceMeters != nil:
			return true
		case b.DistanceMeters != nil:
			return false
		default:
			return col.CompareString(a.Company.Name, b.Company.Name) < 0
		}
	})
}
