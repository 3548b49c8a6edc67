package directory

import (
	"strings"

	"pymerp/internal/util"
)

// Location is a node of the region → province → commune hierarchy.
type Location struct {
	ID       string
	Name     string
	Children []Location
}

// CommuneMatch is a commune resolved to its place in the hierarchy.
type CommuneMatch struct {
	Region   string `json:"region"`
	Province string `json:"province"`
	Commune  string `json:"commune"`
}

// CommuneEntry is a flattened commune with its ancestors.
type CommuneEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Region   string `json:"region"`
	Province string `json:"province"`
}

func loc(id, name string, children ...Location) Location {
	return Location{ID: id, Name: name, Children: children}
}

// ChileLocations is the region → province → commune hierarchy offered by the directory.
var ChileLocations = []Location{
	loc("arica-parinacota", "Arica y Parinacota",
		loc("arica", "Arica", loc("arica-city", "Arica"), loc("camarones", "Camarones")),
		loc("parinacota", "Parinacota", loc("putre", "Putre"), loc("general-lagos", "General Lagos")),
	),
	loc("tarapaca", "Tarapacá",
		loc("iquique", "Iquique", loc("iquique-city", "Iquique"), loc("alto-hospicio", "Alto Hospicio")),
		loc("tamarugal", "Tamarugal", loc("pica", "Pica"), loc("huara", "Huara")),
	),
	loc("antofagasta", "Antofagasta",
		loc("antofagasta-prov", "Antofagasta",
			loc("antofagasta-city", "Antofagasta"), loc("mejillones", "Mejillones"), loc("sierra-gorda", "Sierra Gorda")),
		loc("el-loa", "El Loa", loc("calama", "Calama"), loc("ollague", "Ollagüe")),
	),
	loc("atacama", "Atacama",
		loc("copiapo", "Copiapó", loc("copiapo-city", "Copiapó"), loc("caldera", "Caldera")),
		loc("chanaral", "Chañaral", loc("chanaral-city", "Chañaral"), loc("diego-de-almagro", "Diego de Almagro")),
	),
	loc("coquimbo", "Coquimbo",
		loc("elqui", "Elqui", loc("la-serena", "La Serena"), loc("coquimbo-city", "Coquimbo"), loc("vicuna", "Vicuña")),
		loc("limari", "Limarí", loc("ovalle", "Ovalle"), loc("combarbala", "Combarbalá")),
	),
	loc("valparaiso", "Valparaíso",
		loc("valparaiso-prov", "Valparaíso",
			loc("valparaiso-city", "Valparaíso"), loc("vina-del-mar", "Viña del Mar"),
			loc("concon", "Concón"), loc("quintero", "Quintero")),
		loc("san-antonio", "San Antonio", loc("san-antonio-city", "San Antonio"), loc("cartagena", "Cartagena")),
	),
	loc("metropolitana", "Región Metropolitana",
		loc("santiago", "Santiago",
			loc("santiago-centro", "Santiago"), loc("providencia", "Providencia"), loc("las-condes", "Las Condes"),
			loc("nunoa", "Ñuñoa"), loc("maipu", "Maipú"), loc("san-miguel", "San Miguel"),
			loc("la-florida", "La Florida"), loc("puente-alto", "Puente Alto"), loc("san-bernardo", "San Bernardo"),
			loc("recoleta", "Recoleta"), loc("independencia", "Independencia"), loc("estacion-central", "Estación Central")),
		loc("cordillera", "Cordillera", loc("puente-alto-prov", "Puente Alto"), loc("pirque", "Pirque")),
	),
	loc("ohiggins", "O'Higgins",
		loc("cachapoal", "Cachapoal", loc("rancagua", "Rancagua"), loc("codegua", "Codegua")),
		loc("colchagua", "Colchagua", loc("san-fernando", "San Fernando"), loc("chimbarongo", "Chimbarongo")),
	),
	loc("maule", "Maule",
		loc("talca", "Talca", loc("talca-city", "Talca"), loc("curico", "Curicó")),
		loc("linares", "Linares", loc("linares-city", "Linares"), loc("longavi", "Longaví")),
	),
	loc("biobio", "Biobío",
		loc("concepcion", "Concepción",
			loc("concepcion-city", "Concepción"), loc("talcahuano", "Talcahuano"), loc("san-pedro", "San Pedro de la Paz")),
		loc("arauco", "Arauco", loc("lebu", "Lebu"), loc("canete", "Cañete")),
	),
	loc("araucania", "La Araucanía",
		loc("cautin", "Cautín", loc("temuco", "Temuco"), loc("villarrica", "Villarrica")),
		loc("malleco", "Malleco", loc("angol", "Angol"), loc("collipulli", "Collipulli")),
	),
	loc("los-rios", "Los Ríos",
		loc("valdivia", "Valdivia", loc("valdivia-city", "Valdivia"), loc("corral", "Corral")),
	),
	loc("los-lagos", "Los Lagos",
		loc("llanquihue", "Llanquihue", loc("puerto-montt", "Puerto Montt"), loc("puerto-varas", "Puerto Varas")),
	),
	loc("aysen", "Aysén",
		loc("coyhaique", "Coyhaique", loc("coyhaique-city", "Coyhaique"), loc("aysen-city", "Aysén")),
	),
	loc("magallanes", "Magallanes",
		loc("magallanes-prov", "Magallanes", loc("punta-arenas", "Punta Arenas"), loc("puerto-natales", "Puerto Natales")),
	),
}

// communeAliases resolves common spellings that neither exact nor partial matching finds.
// Keys are normalized.
var communeAliases = map[string]CommuneMatch{
	"santiago":     {Region: "Región Metropolitana", Province: "Santiago", Commune: "Santiago"},
	"providencia":  {Region: "Región Metropolitana", Province: "Santiago", Commune: "Providencia"},
	"las condes":   {Region: "Región Metropolitana", Province: "Santiago", Commune: "Las Condes"},
	"nunoa":        {Region: "Región Metropolitana", Province: "Santiago", Commune: "Ñuñoa"},
	"maipu":        {Region: "Región Metropolitana", Province: "Santiago", Commune: "Maipú"},
	"valparaiso":   {Region: "Valparaíso", Province: "Valparaíso", Commune: "Valparaíso"},
	"vina del mar": {Region: "Valparaíso", Province: "Valparaíso", Commune: "Viña del Mar"},
	"concepcion":   {Region: "Biobío", Province: "Concepción", Commune: "Concepción"},
}

// AllCommunes flattens the hierarchy in declaration order.
func AllCommunes() []CommuneEntry {
	var out []CommuneEntry
	for _, region := range ChileLocations {
		for _, province := range region.Children {
			for _, commune := range province.Children {
				out = append(out, CommuneEntry{
					ID:       commune.ID,
					Name:     commune.Name,
					Region:   region.Name,
					Province: province.Name,
				})
			}
		}
	}

	return out
}

// FindCommune resolves free text to a commune, trying an exact normalized match first,
// then containment in either direction, then the alias table.
func FindCommune(name string) (*CommuneMatch, bool) {
	normalized := util.NormalizeText(name)
	if normalized == "" {
		return nil, false
	}

	communes := AllCommunes()
	keys := make([]string, len(communes))
	for i, c := range communes {
		keys[i] = util.NormalizeText(c.Name)
	}

	for i, key := range keys {
		if key == normalized {
			return toMatch(communes[i]), true
		}
	}

	for i, key := range keys {
		if strings.Contains(key, normalized) || strings.Contains(normalized, key) {
			return toMatch(communes[i]), true
		}
	}

	if m, ok := communeAliases[normalized]; ok {
		return &m, true
	}

	return nil, false
}

func toMatch(c CommuneEntry) *CommuneMatch {
	return &CommuneMatch{Region: c.Region, Province: c.Province, Commune: c.Name}
}
