package engine

// Direction identifies one of the two geographic ordering axes.
type Direction string

const (
	Longitude Direction = "longitude"
	Latitude  Direction = "latitude"
)

// Language selects the localized tables: continent display names, option
// labels, and game-over messages. It is an explicit constructor parameter;
// there is no process-wide language state.
type Language string

const (
	LanguageEN Language = "EN"
	LanguageIT Language = "IT"
)

// Languages lists the supported languages.
var Languages = []Language{LanguageEN, LanguageIT}

// Continent is a two-letter continent code.
type Continent string

const (
	Antarctica   Continent = "AN"
	Asia         Continent = "AS"
	Africa       Continent = "AF"
	Europe       Continent = "EU"
	NorthAmerica Continent = "NA"
	Oceania      Continent = "OC"
	SouthAmerica Continent = "SA"
)

// Continents lists every continent code in a fixed order.
var Continents = []Continent{Antarctica, Asia, Africa, Europe, NorthAmerica, Oceania, SouthAmerica}

// Valid reports whether c is one of the seven continent codes.
func (c Continent) Valid() bool {
	for _, known := range Continents {
		if c == known {
			return true
		}
	}
	return false
}

// Name returns the continent display name in the given language.
func (c Continent) Name(lang Language) string {
	names, ok := continentNames[lang]
	if !ok {
		names = continentNames[LanguageEN]
	}
	return names[c]
}

// Location is an immutable record describing a city. Locations are compared
// by value over all fields; at any instant a location belongs to exactly one
// of deck, hand, or board cell.
type Location struct {
	City        string    `json:"city"`
	CityASCII   string    `json:"city_ascii"`
	Longitude   float64   `json:"longitude"`
	Latitude    float64   `json:"latitude"`
	Country     string    `json:"country"`
	CountryISO2 string    `json:"country_iso2"`
	CountryISO3 string    `json:"country_iso3"`
	Population  int       `json:"population"`
	ID          int       `json:"id"`
	Continent   Continent `json:"continent"`
	Capital     bool      `json:"capital"`
}

// Before reports whether l may appear before other along direction.
//
// Along Longitude, "before" means further west; along Latitude it means
// further north (lower rows on the board are further north). The tolerance
// permits l to be slightly on the wrong side of other, in degrees.
func (l Location) Before(other Location, direction Direction, tolerance float64) bool {
	switch direction {
	case Longitude:
		return l.Longitude < other.Longitude ||
			l.Longitude-other.Longitude <= tolerance
	case Latitude:
		return l.Latitude > other.Latitude ||
			other.Latitude-l.Latitude <= tolerance
	}
	return false
}
