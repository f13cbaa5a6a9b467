// Package geo provides the static location database and great-circle
// distance calculations used by location matching.
//
// The database is built once per process and is read-only afterwards, so it
// is safe to share across concurrent scoring calls without locking.
package geo

import (
	"strings"
)

// Coordinates is a latitude/longitude pair in decimal degrees
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location is one named entry in the geo database
type Location struct {
	Name        string
	City        string
	State       string
	Country     string
	Coordinates Coordinates
	MetroArea   string
	Aliases     []string
	Population  int
}

// Database is an immutable lookup table of known locations.
// Construct with NewDatabase and pass by reference; there is no mutation path.
type Database struct {
	byKey      map[string]*Location
	byAlias    map[string]*Location
	metroAreas map[string][]string
	stateAbbr  map[string]string
	countries  map[string][]string
}

// NewDatabase builds the location database from the built-in tables
func NewDatabase() *Database {
	db := &Database{
		byKey:      make(map[string]*Location),
		byAlias:    make(map[string]*Location),
		metroAreas: metroAreas,
		stateAbbr:  stateAbbreviations,
		countries:  countryAliases,
	}

	for i := range cities {
		loc := &cities[i]
		key := normalize(loc.City)
		db.byKey[key] = loc
		if loc.State != "" {
			db.byKey[key+", "+normalize(loc.State)] = loc
		}
		for _, alias := range loc.Aliases {
			db.byAlias[normalize(alias)] = loc
		}
	}

	return db
}

// normalize lowercases, trims, and strips punctuation except commas, which
// carry the "City, Region" structure.
func normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	var b strings.Builder
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ', r == ',':
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Resolve parses a free-form location string against the database.
// Returns the matched location and true, or nil and false when the text is
// empty or unknown. Resolution never fails with an error.
func (db *Database) Resolve(text string) (*Location, bool) {
	normalized := normalize(text)
	if normalized == "" {
		return nil, false
	}

	// Exact key lookup, including the "city, st" form
	if loc, ok := db.byKey[normalized]; ok {
		return loc, true
	}

	// Split "City, Region" and retry on the city part
	if city, region, found := strings.Cut(normalized, ","); found {
		city = strings.TrimSpace(city)
		region = strings.TrimSpace(region)
		if loc, ok := db.byKey[city+", "+region]; ok {
			return loc, true
		}
		// Region may be a full state name rather than an abbreviation
		if abbr, ok := db.stateAbbr[region]; ok {
			if loc, ok := db.byKey[city+", "+strings.ToLower(abbr)]; ok {
				return loc, true
			}
		}
		if loc, ok := db.byKey[city]; ok {
			return loc, true
		}
	}

	// Alias lookup
	if loc, ok := db.byAlias[normalized]; ok {
		return loc, true
	}

	return nil, false
}

// MetroCities returns the cities grouped into the named metro area
func (db *Database) MetroCities(metro string) []string {
	return db.metroAreas[metro]
}

// SameMetro reports whether two locations belong to the same metro grouping
func SameMetro(a, b *Location) bool {
	return a != nil && b != nil && a.MetroArea != "" && a.MetroArea == b.MetroArea
}

// CanonicalState expands a full state name to its abbreviation when known,
// otherwise returns the input unchanged.
func (db *Database) CanonicalState(state string) string {
	if abbr, ok := db.stateAbbr[strings.ToLower(strings.TrimSpace(state))]; ok {
		return abbr
	}
	return strings.TrimSpace(state)
}

// CanonicalCountry resolves country aliases ("US", "America") to the
// canonical country name used by the location table.
func (db *Database) CanonicalCountry(country string) string {
	needle := strings.ToLower(strings.TrimSpace(country))
	for canonical, aliases := range db.countries {
		if strings.ToLower(canonical) == needle {
			return canonical
		}
		for _, alias := range aliases {
			if strings.ToLower(alias) == needle {
				return canonical
			}
		}
	}
	return strings.TrimSpace(country)
}
