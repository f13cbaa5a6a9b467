// Package location resolves free-form candidate location strings and
// classifies them against a job's location requirement.
package location

import (
	"fmt"
	"strings"

	"github.com/jonathan/candidate-ranker/internal/geo"
	"github.com/jonathan/candidate-ranker/internal/types"
)

// Confidence values assigned per match type. Radius matches scale linearly
// between radiusMaxConfidence at distance zero and radiusMinConfidence at the
// configured maximum distance.
const (
	exactCityConfidence    = 100.0
	metroAreaConfidence    = 90.0
	radiusMaxConfidence    = 100.0
	radiusMinConfidence    = 60.0
	stateConfidence        = 60.0
	statePreciseConfidence = 70.0 // requirement named no cities, state is the precise ask
	countryConfidence      = 35.0
	resolvedNoMatchScore   = 10.0
)

// remoteKeywords mark candidate locations that indicate remote availability
var remoteKeywords = []string{"remote", "work from home", "wfh", "distributed", "anywhere", "global"}

// Matcher classifies candidate locations against job requirements.
// It holds only a reference to the read-only geo database and is safe for
// concurrent use.
type Matcher struct {
	db *geo.Database
}

// NewMatcher creates a matcher backed by the given geo database
func NewMatcher(db *geo.Database) *Matcher {
	return &Matcher{db: db}
}

// Match resolves the candidate location text and classifies it against the
// requirement. It never fails: unresolvable text yields a no-match result
// with confidence 0, since unknown locations are an expected, common case.
func (m *Matcher) Match(text string, req *types.LocationRequirement) types.LocationMatch {
	if req == nil {
		return types.LocationMatch{
			MatchType:  types.MatchNone,
			Confidence: 0,
			Reason:     "no location requirement",
		}
	}

	candidate, resolved := m.db.Resolve(text)

	// A candidate with no resolvable location satisfies a remote-friendly
	// requirement; explicit remote keywords resolve to nothing as well.
	if !resolved {
		if req.Remote {
			reason := "no fixed location and remote work permitted"
			if isRemoteText(text) {
				reason = "remote candidate matches remote-friendly role"
			}
			return types.LocationMatch{
				MatchType:  types.MatchRemote,
				Confidence: 100,
				Reason:     reason,
			}
		}
		return types.LocationMatch{
			MatchType:  types.MatchNone,
			Confidence: 0,
			Reason:     "unresolved location",
		}
	}

	reqCities := m.resolveCities(req.Cities)

	// Exact city match
	for _, reqCity := range req.Cities {
		if equalFold(candidate.City, cityName(reqCity)) {
			return types.LocationMatch{
				MatchType:  types.MatchExactCity,
				Confidence: exactCityConfidence,
				Reason:     fmt.Sprintf("exact city match: %s", candidate.Name),
			}
		}
	}
	for _, reqLoc := range reqCities {
		if equalFold(candidate.City, reqLoc.City) {
			return types.LocationMatch{
				MatchType:  types.MatchExactCity,
				Confidence: exactCityConfidence,
				Reason:     fmt.Sprintf("exact city match: %s", candidate.Name),
			}
		}
	}

	// Metro area grouping
	for _, reqLoc := range reqCities {
		if geo.SameMetro(candidate, reqLoc) {
			return types.LocationMatch{
				MatchType:  types.MatchMetroArea,
				Confidence: metroAreaConfidence,
				Reason:     fmt.Sprintf("same metro area: %s", candidate.MetroArea),
			}
		}
	}

	// Proximity radius
	if req.MaxDistanceMiles != nil {
		if match, ok := m.radiusMatch(candidate, reqCities, *req.MaxDistanceMiles); ok {
			return match
		}
	}

	// State / province
	if candidate.State != "" {
		for _, reqState := range req.States {
			if equalFold(m.db.CanonicalState(candidate.State), m.db.CanonicalState(reqState)) {
				confidence := stateConfidence
				if len(req.Cities) == 0 {
					confidence = statePreciseConfidence
				}
				return types.LocationMatch{
					MatchType:  types.MatchState,
					Confidence: confidence,
					Reason:     fmt.Sprintf("same state: %s", m.db.CanonicalState(candidate.State)),
				}
			}
		}
	}

	// Country
	for _, reqCountry := range req.Countries {
		if equalFold(m.db.CanonicalCountry(candidate.Country), m.db.CanonicalCountry(reqCountry)) {
			return types.LocationMatch{
				MatchType:  types.MatchCountry,
				Confidence: countryConfidence,
				Reason:     fmt.Sprintf("same country: %s", candidate.Country),
			}
		}
	}

	return types.LocationMatch{
		MatchType:  types.MatchNone,
		Confidence: resolvedNoMatchScore,
		Reason:     fmt.Sprintf("%s does not satisfy the location requirement", candidate.Name),
	}
}

// radiusMatch finds the nearest requirement city and classifies the candidate
// as within radius when the great-circle distance fits. Confidence scales
// linearly from 100 at distance zero down to 60 at the maximum distance.
func (m *Matcher) radiusMatch(candidate *geo.Location, reqCities []*geo.Location, maxMiles float64) (types.LocationMatch, bool) {
	if maxMiles <= 0 || len(reqCities) == 0 {
		return types.LocationMatch{}, false
	}

	nearest := -1.0
	var nearestCity string
	for _, reqLoc := range reqCities {
		d := geo.Distance(candidate.Coordinates, reqLoc.Coordinates)
		if nearest < 0 || d < nearest {
			nearest = d
			nearestCity = reqLoc.Name
		}
	}

	if nearest < 0 || nearest > maxMiles {
		return types.LocationMatch{}, false
	}

	confidence := radiusMaxConfidence - (radiusMaxConfidence-radiusMinConfidence)*(nearest/maxMiles)
	distance := nearest
	return types.LocationMatch{
		MatchType:     types.MatchWithinRadius,
		Confidence:    confidence,
		DistanceMiles: &distance,
		Reason:        fmt.Sprintf("within %.1f miles of %s", nearest, nearestCity),
	}, true
}

// resolveCities resolves each requirement city string against the geo database
func (m *Matcher) resolveCities(cities []string) []*geo.Location {
	resolved := make([]*geo.Location, 0, len(cities))
	for _, city := range cities {
		if loc, ok := m.db.Resolve(city); ok {
			resolved = append(resolved, loc)
		}
	}
	return resolved
}

// strictAcceptable lists the match types that survive the strict pre-filter
var strictAcceptable = map[types.LocationMatchType]bool{
	types.MatchExactCity:    true,
	types.MatchMetroArea:    true,
	types.MatchWithinRadius: true,
	types.MatchRemote:       true,
}

// strictMinConfidence is the confidence floor below which even an acceptable
// match type is excluded by the strict filter.
const strictMinConfidence = 60.0

// StrictExcluded reports whether a match fails the strict location filter,
// with a human-readable reason when it does.
func StrictExcluded(match types.LocationMatch) (bool, string) {
	if !strictAcceptable[match.MatchType] {
		return true, fmt.Sprintf("location mismatch: %s", match.Reason)
	}
	if match.Confidence < strictMinConfidence {
		return true, fmt.Sprintf("location confidence too low: %.0f%%", match.Confidence)
	}
	return false, ""
}

// isRemoteText reports whether the candidate location text signals remote work
func isRemoteText(text string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range remoteKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// cityName strips a ", Region" suffix from a requirement city entry
func cityName(entry string) string {
	if city, _, found := strings.Cut(entry, ","); found {
		return strings.TrimSpace(city)
	}
	return strings.TrimSpace(entry)
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
