package location

import (
	"testing"

	"github.com/jonathan/candidate-ranker/internal/geo"
	"github.com/jonathan/candidate-ranker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatcher() *Matcher {
	return NewMatcher(geo.NewDatabase())
}

func TestMatch_ExactCity(t *testing.T) {
	m := newTestMatcher()
	req := &types.LocationRequirement{Cities: []string{"San Francisco"}}

	match := m.Match("San Francisco, CA", req)

	assert.Equal(t, types.MatchExactCity, match.MatchType)
	assert.Equal(t, 100.0, match.Confidence)
}

func TestMatch_ExactCityCaseInsensitive(t *testing.T) {
	m := newTestMatcher()
	req := &types.LocationRequirement{Cities: []string{"san francisco"}}

	match := m.Match("SAN FRANCISCO", req)

	assert.Equal(t, types.MatchExactCity, match.MatchType)
	assert.Equal(t, 100.0, match.Confidence)
}

func TestMatch_MetroArea(t *testing.T) {
	m := newTestMatcher()
	req := &types.LocationRequirement{Cities: []string{"San Francisco"}}

	match := m.Match("San Jose, CA", req)

	assert.Equal(t, types.MatchMetroArea, match.MatchType)
	assert.Equal(t, 90.0, match.Confidence)
	assert.Contains(t, match.Reason, "San Francisco Bay Area")
}

func TestMatch_WithinRadius(t *testing.T) {
	m := newTestMatcher()
	maxMiles := 100.0
	req := &types.LocationRequirement{
		Cities:           []string{"Dallas"},
		MaxDistanceMiles: &maxMiles,
	}

	match := m.Match("Fort Worth, TX", req)

	// Fort Worth is in the Dallas-Fort Worth metro, so the metro rule wins first
	assert.Equal(t, types.MatchMetroArea, match.MatchType)

	// Austin to Dallas is roughly 180 miles; use a wider radius
	wide := 250.0
	req = &types.LocationRequirement{Cities: []string{"Dallas"}, MaxDistanceMiles: &wide}
	match = m.Match("Austin, TX", req)

	require.Equal(t, types.MatchWithinRadius, match.MatchType)
	require.NotNil(t, match.DistanceMiles)
	assert.InDelta(t, 181.0, *match.DistanceMiles, 15.0)
	assert.Greater(t, match.Confidence, 60.0)
	assert.Less(t, match.Confidence, 100.0)
}

func TestMatch_RadiusConfidenceScalesWithDistance(t *testing.T) {
	m := newTestMatcher()
	wide := 3000.0
	req := &types.LocationRequirement{Cities: []string{"Denver"}, MaxDistanceMiles: &wide}

	near := m.Match("Salt Lake City, UT", req)
	far := m.Match("Miami, FL", req)

	require.Equal(t, types.MatchWithinRadius, near.MatchType)
	require.Equal(t, types.MatchWithinRadius, far.MatchType)
	assert.Greater(t, near.Confidence, far.Confidence)
	assert.GreaterOrEqual(t, far.Confidence, 60.0)
}

func TestMatch_StateMatch(t *testing.T) {
	m := newTestMatcher()
	req := &types.LocationRequirement{
		Cities: []string{"Houston"},
		States: []string{"TX"},
	}

	match := m.Match("Austin, TX", req)

	assert.Equal(t, types.MatchState, match.MatchType)
	assert.Equal(t, 60.0, match.Confidence)
}

func TestMatch_StateMatchPreciseAskScoresHigher(t *testing.T) {
	m := newTestMatcher()
	req := &types.LocationRequirement{States: []string{"Texas"}}

	match := m.Match("Austin, TX", req)

	assert.Equal(t, types.MatchState, match.MatchType)
	assert.Equal(t, 70.0, match.Confidence, "state-only requirement treats state as the precise ask")
}

func TestMatch_CountryMatch(t *testing.T) {
	m := newTestMatcher()
	req := &types.LocationRequirement{
		Cities:    []string{"Toronto"},
		Countries: []string{"Canada"},
	}

	match := m.Match("Vancouver, BC", req)

	assert.Equal(t, types.MatchCountry, match.MatchType)
	assert.Equal(t, 35.0, match.Confidence)
}

func TestMatch_CountryAliasesResolve(t *testing.T) {
	m := newTestMatcher()
	req := &types.LocationRequirement{Countries: []string{"United States"}}

	match := m.Match("Chicago, IL", req)

	assert.Equal(t, types.MatchCountry, match.MatchType)
}

func TestMatch_ResolvedButNoMatch(t *testing.T) {
	m := newTestMatcher()
	req := &types.LocationRequirement{Cities: []string{"New York"}}

	match := m.Match("Tokyo", req)

	assert.Equal(t, types.MatchNone, match.MatchType)
	assert.Equal(t, 10.0, match.Confidence, "resolved location gets residual confidence")
}

func TestMatch_UnresolvedLocation(t *testing.T) {
	m := newTestMatcher()
	req := &types.LocationRequirement{Cities: []string{"New York"}}

	match := m.Match("Middle of Nowhere", req)

	assert.Equal(t, types.MatchNone, match.MatchType)
	assert.Equal(t, 0.0, match.Confidence)
	assert.Equal(t, "unresolved location", match.Reason)
}

func TestMatch_RemoteCandidateRemoteRole(t *testing.T) {
	m := newTestMatcher()
	req := &types.LocationRequirement{Cities: []string{"New York"}, Remote: true}

	match := m.Match("Remote - US", req)

	assert.Equal(t, types.MatchRemote, match.MatchType)
	assert.Equal(t, 100.0, match.Confidence)
}

func TestMatch_UnresolvedCandidateRemoteRole(t *testing.T) {
	m := newTestMatcher()
	req := &types.LocationRequirement{Remote: true}

	match := m.Match("", req)

	assert.Equal(t, types.MatchRemote, match.MatchType)
	assert.Equal(t, 100.0, match.Confidence)
}

func TestMatch_RemoteCandidateOnSiteRole(t *testing.T) {
	m := newTestMatcher()
	req := &types.LocationRequirement{Cities: []string{"New York"}, OnSite: true}

	match := m.Match("Remote", req)

	assert.Equal(t, types.MatchNone, match.MatchType)
	assert.Equal(t, 0.0, match.Confidence)
}

func TestMatch_PrecedenceExactCityBeatsMetro(t *testing.T) {
	m := newTestMatcher()
	req := &types.LocationRequirement{Cities: []string{"San Jose", "San Francisco"}}

	match := m.Match("San Jose", req)

	assert.Equal(t, types.MatchExactCity, match.MatchType)
	assert.Equal(t, 100.0, match.Confidence)
}

func TestMatch_NilRequirement(t *testing.T) {
	m := newTestMatcher()

	match := m.Match("San Francisco", nil)

	assert.Equal(t, types.MatchNone, match.MatchType)
}

func TestStrictExcluded(t *testing.T) {
	excluded, reason := StrictExcluded(types.LocationMatch{MatchType: types.MatchNone, Confidence: 10, Reason: "elsewhere"})
	assert.True(t, excluded)
	assert.Contains(t, reason, "location mismatch")

	excluded, reason = StrictExcluded(types.LocationMatch{MatchType: types.MatchState, Confidence: 70})
	assert.True(t, excluded, "state matches are not acceptable under strict filtering")
	_ = reason

	excluded, _ = StrictExcluded(types.LocationMatch{MatchType: types.MatchExactCity, Confidence: 100})
	assert.False(t, excluded)

	excluded, _ = StrictExcluded(types.LocationMatch{MatchType: types.MatchRemote, Confidence: 100})
	assert.False(t, excluded)

	excluded, reason = StrictExcluded(types.LocationMatch{MatchType: types.MatchWithinRadius, Confidence: 55})
	assert.True(t, excluded, "acceptable type but confidence below the floor")
	assert.Contains(t, reason, "confidence too low")
}
