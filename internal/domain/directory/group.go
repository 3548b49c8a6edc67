package directory

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"pymerp/internal/domain/entity"
	"pymerp/internal/util"
)

// CommuneGroup is the set of public companies located in one commune.
type CommuneGroup struct {
	Name      string
	Key       string
	Companies []*entity.Company
}

// GroupByCommune buckets companies by commune, ignoring case and accents. Groups are
// named after the first spelling seen, title-cased, and sorted by name; companies
// inside a group are sorted by name. Companies without a commune are skipped.
func GroupByCommune(companies []*entity.Company) []CommuneGroup {
	index := make(map[string]int)
	var groups []CommuneGroup

	for _, c := range companies {
		if c == nil {
			continue
		}
		raw := strings.TrimSpace(c.Commune)
		key := util.NormalizeText(raw)
		if key == "" {
			continue
		}

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, CommuneGroup{Name: util.TitleCase(strings.ToLower(raw)), Key: key})
		}
		groups[i].Companies = append(groups[i].Companies, c)
	}

	col := collate.New(language.Spanish, collate.Loose)
	sort.SliceStable(groups, func(i, j int) bool {
		return col.CompareString(groups[i].Name, groups[j].Name) < 0
	})
	for _, g := range groups {
		sort.SliceStable(g.Companies, func(i, j int) bool {
			return col.CompareString(g.Companies[i].Name, g.Companies[j].Name) < 0
		})
	}

	return groups
}
