package types

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// weightTolerance is the floating tolerance for the sum-to-one invariant
const weightTolerance = 1e-6

// WeightConfig holds the scoring weight for each of the seven components.
// It is an explicit enumerated structure, never an open-ended map: unknown
// keys are rejected at construction. After Normalized, values sum to 1.0
// within tolerance.
type WeightConfig struct {
	SkillMatch       float64 `json:"skill_match" validate:"gte=0"`
	ExperienceMatch  float64 `json:"experience_match" validate:"gte=0"`
	EducationMatch   float64 `json:"education_match" validate:"gte=0"`
	IndustryMatch    float64 `json:"industry_match" validate:"gte=0"`
	LocationMatch    float64 `json:"location_match" validate:"gte=0"`
	CareerTrajectory float64 `json:"career_trajectory" validate:"gte=0"`
	KeywordDensity   float64 `json:"keyword_density" validate:"gte=0"`
}

// DefaultWeights returns the standard weight profile
func DefaultWeights() WeightConfig {
	return WeightConfig{
		SkillMatch:       0.30,
		ExperienceMatch:  0.20,
		EducationMatch:   0.15,
		IndustryMatch:    0.15,
		LocationMatch:    0.10,
		CareerTrajectory: 0.05,
		KeywordDensity:   0.05,
	}
}

// LocationCriticalWeights returns the alternate profile for roles where
// physical presence dominates the hiring decision.
func LocationCriticalWeights() WeightConfig {
	return WeightConfig{
		SkillMatch:       0.25,
		ExperienceMatch:  0.20,
		EducationMatch:   0.10,
		IndustryMatch:    0.10,
		LocationMatch:    0.30,
		CareerTrajectory: 0.03,
		KeywordDensity:   0.02,
	}
}

// WeightsFromMap builds a WeightConfig from a raw key/value mapping.
// Unknown keys and negative values are rejected.
func WeightsFromMap(raw map[string]float64) (WeightConfig, error) {
	var w WeightConfig
	for key, value := range raw {
		if value < 0 {
			return WeightConfig{}, &ConfigurationError{Message: fmt.Sprintf("weight %q is negative: %v", key, value)}
		}
		switch key {
		case ComponentSkillMatch:
			w.SkillMatch = value
		case ComponentExperienceMatch:
			w.ExperienceMatch = value
		case ComponentEducationMatch:
			w.EducationMatch = value
		case ComponentIndustryMatch:
			w.IndustryMatch = value
		case ComponentLocationMatch:
			w.LocationMatch = value
		case ComponentCareerTrajectory:
			w.CareerTrajectory = value
		case ComponentKeywordDensity:
			w.KeywordDensity = value
		default:
			return WeightConfig{}, &ConfigurationError{Message: fmt.Sprintf("unrecognized weight key %q", key)}
		}
	}
	return w, nil
}

// Map returns the weights as a name-keyed mapping in canonical component order
func (w WeightConfig) Map() map[string]float64 {
	return map[string]float64{
		ComponentSkillMatch:       w.SkillMatch,
		ComponentExperienceMatch:  w.ExperienceMatch,
		ComponentEducationMatch:   w.EducationMatch,
		ComponentIndustryMatch:    w.IndustryMatch,
		ComponentLocationMatch:    w.LocationMatch,
		ComponentCareerTrajectory: w.CareerTrajectory,
		ComponentKeywordDensity:   w.KeywordDensity,
	}
}

// Sum returns the total of all weights
func (w WeightConfig) Sum() float64 {
	return w.SkillMatch + w.ExperienceMatch + w.EducationMatch + w.IndustryMatch +
		w.LocationMatch + w.CareerTrajectory + w.KeywordDensity
}

// Validate checks the weights using the validator (non-negative values)
func (w WeightConfig) Validate() error {
	validate := validator.New()
	return validate.Struct(w)
}

// Normalized returns a copy of the weights scaled so they sum to 1.0.
// Negative or all-zero weights cannot be normalized and return an error.
func (w WeightConfig) Normalized() (WeightConfig, error) {
	if err := w.Validate(); err != nil {
		return WeightConfig{}, fmt.Errorf("invalid weights: %w", err)
	}

	sum := w.Sum()
	if sum <= 0 {
		return WeightConfig{}, fmt.Errorf("weights sum to zero, cannot normalize")
	}

	if math.Abs(sum-1.0) <= weightTolerance {
		return w, nil
	}

	return WeightConfig{
		SkillMatch:       w.SkillMatch / sum,
		ExperienceMatch:  w.ExperienceMatch / sum,
		EducationMatch:   w.EducationMatch / sum,
		IndustryMatch:    w.IndustryMatch / sum,
		LocationMatch:    w.LocationMatch / sum,
		CareerTrajectory: w.CareerTrajectory / sum,
		KeywordDensity:   w.KeywordDensity / sum,
	}, nil
}
