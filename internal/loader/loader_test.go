package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/candidate-ranker/internal/schemas"
	"github.com/jonathan/candidate-ranker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadJobRequirement_Valid(t *testing.T) {
	path := writeTempFile(t, "job.json", `{
		"role_title": "Backend Engineer",
		"required_skills": ["Python"],
		"experience": {"min_years": 3, "max_years": 8},
		"location": {"cities": ["San Francisco"], "strict_location_filter": true}
	}`)

	job, err := LoadJobRequirement(path)

	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", job.RoleTitle)
	assert.Equal(t, []string{"Python"}, job.RequiredSkills)
	require.NotNil(t, job.Experience)
	assert.Equal(t, 3.0, job.Experience.MinYears)
	require.NotNil(t, job.Location)
	assert.True(t, job.Location.StrictLocationFilter)
}

func TestLoadJobRequirement_MissingRoleTitle(t *testing.T) {
	path := writeTempFile(t, "job.json", `{"required_skills": ["Python"]}`)

	_, err := LoadJobRequirement(path)

	require.Error(t, err)
	var validationErr *schemas.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestLoadJobRequirement_UnknownFieldRejected(t *testing.T) {
	path := writeTempFile(t, "job.json", `{"role_title": "X", "salary": 100}`)

	_, err := LoadJobRequirement(path)

	require.Error(t, err)
}

func TestLoadJobRequirement_FileMissing(t *testing.T) {
	_, err := LoadJobRequirement(filepath.Join(t.TempDir(), "absent.json"))

	require.Error(t, err)
}

func TestLoadCandidates_Valid(t *testing.T) {
	path := writeTempFile(t, "candidates.json", `[
		{"id": "c1", "name": "Avery Chen", "skills": ["Python"], "location": "San Francisco, CA",
		 "experiences": [{"title": "Engineer", "start_date": "2020-01", "current": true}]},
		{"id": "c2", "name": "Blake Morgan"}
	]`)

	candidates, err := LoadCandidates(path)

	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "c1", candidates[0].ID)
	assert.Equal(t, "2020-01", candidates[0].Experiences[0].StartDate)
}

func TestLoadCandidates_BadDateFormatRejected(t *testing.T) {
	path := writeTempFile(t, "candidates.json", `[
		{"id": "c1", "name": "A", "experiences": [{"title": "Engineer", "start_date": "January 2020"}]}
	]`)

	_, err := LoadCandidates(path)

	require.Error(t, err)
}

func TestLoadCandidates_MissingIDRejected(t *testing.T) {
	path := writeTempFile(t, "candidates.json", `[{"name": "A"}]`)

	_, err := LoadCandidates(path)

	require.Error(t, err)
}

func TestLoadWeights_Valid(t *testing.T) {
	path := writeTempFile(t, "weights.json", `{"skill_match": 0.6, "location_match": 0.4}`)

	weights, err := LoadWeights(path)

	require.NoError(t, err)
	assert.Equal(t, 0.6, weights.SkillMatch)
	assert.Equal(t, 0.4, weights.LocationMatch)
}

func TestLoadWeights_UnknownKeyIsConfigurationError(t *testing.T) {
	path := writeTempFile(t, "weights.json", `{"charisma": 0.5}`)

	_, err := LoadWeights(path)

	require.Error(t, err)
	var confErr *types.ConfigurationError
	assert.ErrorAs(t, err, &confErr)
	var validationErr *schemas.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestLoadWeights_NegativeIsConfigurationError(t *testing.T) {
	path := writeTempFile(t, "weights.json", `{"skill_match": -0.2}`)

	_, err := LoadWeights(path)

	require.Error(t, err)
	var confErr *types.ConfigurationError
	assert.ErrorAs(t, err, &confErr)
}

func TestResolveWeights_Presets(t *testing.T) {
	def, err := ResolveWeights("")
	require.NoError(t, err)
	assert.Equal(t, types.DefaultWeights(), def)

	def, err = ResolveWeights(PresetDefault)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultWeights(), def)

	loc, err := ResolveWeights(PresetLocationCritical)
	require.NoError(t, err)
	assert.Equal(t, types.LocationCriticalWeights(), loc)
}

func TestResolveWeights_PathFallback(t *testing.T) {
	path := writeTempFile(t, "weights.json", `{"skill_match": 1.0}`)

	weights, err := ResolveWeights(path)

	require.NoError(t, err)
	assert.Equal(t, 1.0, weights.SkillMatch)
}
