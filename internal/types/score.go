package types

// LocationMatchType classifies how a candidate location satisfies a requirement
type LocationMatchType string

// Location match types, strongest first
const (
	MatchExactCity    LocationMatchType = "exact_city"
	MatchMetroArea    LocationMatchType = "metro_area"
	MatchWithinRadius LocationMatchType = "within_radius"
	MatchState        LocationMatchType = "state_match"
	MatchCountry      LocationMatchType = "country_match"
	MatchRemote       LocationMatchType = "remote"
	MatchNone         LocationMatchType = "no_match"
)

// LocationMatch is the result of classifying one candidate location against
// a job's location requirement. Created per candidate per scoring call.
type LocationMatch struct {
	MatchType     LocationMatchType `json:"match_type"`
	Confidence    float64           `json:"confidence"`
	DistanceMiles *float64          `json:"distance_miles,omitempty"`
	Reason        string            `json:"reason,omitempty"`
}

// Component score names. These are the exactly seven recognized weight keys.
const (
	ComponentSkillMatch       = "skill_match"
	ComponentExperienceMatch  = "experience_match"
	ComponentEducationMatch   = "education_match"
	ComponentIndustryMatch    = "industry_match"
	ComponentLocationMatch    = "location_match"
	ComponentCareerTrajectory = "career_trajectory"
	ComponentKeywordDensity   = "keyword_density"
)

// ComponentNames lists all recognized component names in canonical order
var ComponentNames = []string{
	ComponentSkillMatch,
	ComponentExperienceMatch,
	ComponentEducationMatch,
	ComponentIndustryMatch,
	ComponentLocationMatch,
	ComponentCareerTrajectory,
	ComponentKeywordDensity,
}

// ScoreBreakdown is the complete scoring result for one (job, candidate)
// pair. Owned by the caller once returned; the engine retains no reference.
type ScoreBreakdown struct {
	CandidateID         string             `json:"candidate_id"`
	CandidateName       string             `json:"candidate_name"`
	OverallScore        float64            `json:"overall_score"`
	Components          map[string]float64 `json:"components"`
	MissingRequirements []string           `json:"missing_requirements,omitempty"`
	AdditionalStrengths []string           `json:"additional_strengths,omitempty"`
	Explanation         string             `json:"explanation,omitempty"`
	Rank                int                `json:"rank"`
	Percentile          float64            `json:"percentile"`
}

// FilteredCandidate records a candidate excluded by the strict location
// pre-filter, with a human-readable reason. Exclusion is a filter event,
// not an error, and is reported separately from the ranked output.
type FilteredCandidate struct {
	CandidateID string `json:"candidate_id"`
	Name        string `json:"name"`
	Reason      string `json:"reason"`
}

// RankResult is the full output of one ranking call
type RankResult struct {
	RunID       string              `json:"run_id"`
	Ranked      []ScoreBreakdown    `json:"ranked"`
	FilteredOut []FilteredCandidate `json:"filtered_out,omitempty"`
	Partial     bool                `json:"partial,omitempty"`
}
