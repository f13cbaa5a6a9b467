// Package schemas holds the JSON Schema documents for the ranking engine's
// input files, embedded so validation works regardless of working directory.
package schemas

import _ "embed"

//go:embed job_requirement.schema.json
var JobRequirement string

//go:embed weight_config.schema.json
var WeightConfig string

//go:embed candidate_profiles.schema.json
var CandidateProfiles string
