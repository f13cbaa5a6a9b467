package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeights_SumToOne(t *testing.T) {
	assert.InDelta(t, 1.0, DefaultWeights().Sum(), 1e-9)
}

func TestLocationCriticalWeights_SumToOne(t *testing.T) {
	assert.InDelta(t, 1.0, LocationCriticalWeights().Sum(), 1e-9)
}

func TestWeightsFromMap_ValidKeys(t *testing.T) {
	w, err := WeightsFromMap(map[string]float64{
		"skill_match":    0.7,
		"location_match": 0.3,
	})

	require.NoError(t, err)
	assert.Equal(t, 0.7, w.SkillMatch)
	assert.Equal(t, 0.3, w.LocationMatch)
	assert.Equal(t, 0.0, w.EducationMatch)
}

func TestWeightsFromMap_UnknownKeyRejected(t *testing.T) {
	_, err := WeightsFromMap(map[string]float64{"charisma": 0.5})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "charisma")
	var confErr *ConfigurationError
	assert.ErrorAs(t, err, &confErr)
}

func TestWeightsFromMap_NegativeValueRejected(t *testing.T) {
	_, err := WeightsFromMap(map[string]float64{"skill_match": -0.1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative")
	var confErr *ConfigurationError
	assert.ErrorAs(t, err, &confErr)
}

func TestNormalized_ScalesToOne(t *testing.T) {
	w := WeightConfig{SkillMatch: 2, ExperienceMatch: 1, LocationMatch: 1}

	normalized, err := w.Normalized()

	require.NoError(t, err)
	assert.InDelta(t, 1.0, normalized.Sum(), 1e-9)
	assert.InDelta(t, 0.5, normalized.SkillMatch, 1e-9)
	assert.InDelta(t, 0.25, normalized.ExperienceMatch, 1e-9)
}

func TestNormalized_AlreadyNormalizedUnchanged(t *testing.T) {
	w := DefaultWeights()

	normalized, err := w.Normalized()

	require.NoError(t, err)
	assert.Equal(t, w, normalized)
}

func TestNormalized_AllZeroRejected(t *testing.T) {
	_, err := WeightConfig{}.Normalized()

	require.Error(t, err)
}

func TestNormalized_NegativeWeightRejected(t *testing.T) {
	w := WeightConfig{SkillMatch: 0.5, LocationMatch: -0.2}

	_, err := w.Normalized()

	require.Error(t, err)
}

func TestMap_CoversAllComponents(t *testing.T) {
	m := DefaultWeights().Map()

	assert.Len(t, m, len(ComponentNames))
	for _, name := range ComponentNames {
		assert.Contains(t, m, name)
	}
}
