// Package loader reads the engine's JSON input files, validating each one
// against its embedded schema before decoding.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/candidate-ranker/internal/schemas"
	"github.com/jonathan/candidate-ranker/internal/types"
	embedded "github.com/jonathan/candidate-ranker/schemas"
)

// Weight preset names accepted in place of a weights file
const (
	PresetDefault          = "default"
	PresetLocationCritical = "location_critical"
)

// LoadJobRequirement reads and validates a job requirement file
func LoadJobRequirement(path string) (*types.JobRequirement, error) {
	data, err := readValidated(path, "job_requirement", embedded.JobRequirement)
	if err != nil {
		return nil, err
	}

	var job types.JobRequirement
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("decoding job requirement %s: %w", path, err)
	}
	return &job, nil
}

// LoadCandidates reads and validates a candidate profiles file, which holds
// a JSON array of profiles.
func LoadCandidates(path string) ([]*types.CandidateProfile, error) {
	data, err := readValidated(path, "candidate_profiles", embedded.CandidateProfiles)
	if err != nil {
		return nil, err
	}

	var candidates []*types.CandidateProfile
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("decoding candidates %s: %w", path, err)
	}
	return candidates, nil
}

// LoadWeights reads and validates a weights file. The file holds a flat
// component-name-to-weight object; unknown keys fail validation.
func LoadWeights(path string) (types.WeightConfig, error) {
	data, err := readValidated(path, "weight_config", embedded.WeightConfig)
	if err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			// A weights file rejected by its schema (unknown key, negative
			// value) is a configuration mistake, the same class the engine
			// reports for weights that cannot be normalized.
			return types.WeightConfig{}, &types.ConfigurationError{
				Message: fmt.Sprintf("invalid weights in %s", path),
				Cause:   err,
			}
		}
		return types.WeightConfig{}, err
	}

	var raw map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return types.WeightConfig{}, fmt.Errorf("decoding weights %s: %w", path, err)
	}
	return types.WeightsFromMap(raw)
}

// ResolveWeights turns a preset name or file path into a weight
// configuration. Preset names take precedence; anything else is treated as
// a path. An empty spec yields the default weights.
func ResolveWeights(spec string) (types.WeightConfig, error) {
	switch spec {
	case "", PresetDefault:
		return types.DefaultWeights(), nil
	case PresetLocationCritical:
		return types.LocationCriticalWeights(), nil
	default:
		return LoadWeights(spec)
	}
}

// readValidated loads a file and checks it against the named schema
func readValidated(path, schemaName, schemaContent string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := schemas.Validate(schemaName, schemaContent, string(data)); err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	return data, nil
}
