// Package types provides type definitions for structured data used throughout the candidate-ranker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SeniorityLevel represents the seniority band a job posting targets
type SeniorityLevel string

// Recognized seniority levels, ordered from junior to executive
const (
	SeniorityInternship SeniorityLevel = "internship"
	SeniorityEntryLevel SeniorityLevel = "entry_level"
	SeniorityMidLevel   SeniorityLevel = "mid_level"
	SenioritySenior     SeniorityLevel = "senior"
	SeniorityLead       SeniorityLevel = "lead"
	SeniorityManager    SeniorityLevel = "manager"
	SeniorityDirector   SeniorityLevel = "director"
	SeniorityExecutive  SeniorityLevel = "executive"
)

// EducationLevel represents a degree level as an ordinal requirement
type EducationLevel string

// Recognized education levels
const (
	EducationNone      EducationLevel = "none"
	EducationAssociate EducationLevel = "associate"
	EducationBachelor  EducationLevel = "bachelor"
	EducationMaster    EducationLevel = "master"
	EducationDoctorate EducationLevel = "doctorate"
)

// educationRank maps education levels to numeric ranks for ordinal comparison
var educationRank = map[EducationLevel]int{
	EducationNone:      0,
	EducationAssociate: 1,
	EducationBachelor:  2,
	EducationMaster:    3,
	EducationDoctorate: 4,
}

// Rank returns the ordinal rank of the education level.
// Unknown levels rank as zero (no requirement).
func (l EducationLevel) Rank() int {
	return educationRank[l]
}

// ExperienceRequirement is the years-of-experience window a job asks for.
// MaxYears of zero means no upper bound.
type ExperienceRequirement struct {
	MinYears float64 `json:"min_years"`
	MaxYears float64 `json:"max_years,omitempty"`
}

// EducationRequirement is the degree level and fields of study a job asks for
type EducationRequirement struct {
	Level  EducationLevel `json:"level"`
	Fields []string       `json:"fields,omitempty"`
}

// LocationRequirement describes where a job expects candidates to be.
// MaxDistanceMiles is nil when no radius constraint applies; zero is a valid
// (if useless) radius and is distinct from absence.
type LocationRequirement struct {
	Cities                   []string `json:"cities,omitempty"`
	States                   []string `json:"states,omitempty"`
	Countries                []string `json:"countries,omitempty"`
	Remote                   bool     `json:"remote,omitempty"`
	Hybrid                   bool     `json:"hybrid,omitempty"`
	OnSite                   bool     `json:"on_site,omitempty"`
	MaxDistanceMiles         *float64 `json:"max_distance_miles,omitempty"`
	StrictLocationFilter     bool     `json:"strict_location_filter,omitempty"`
	LocationWeightMultiplier float64  `json:"location_weight_multiplier,omitempty"`
}

// Multiplier returns the location weight multiplier, defaulting to 1.0 when unset
func (r *LocationRequirement) Multiplier() float64 {
	if r == nil || r.LocationWeightMultiplier <= 0 {
		return 1.0
	}
	return r.LocationWeightMultiplier
}

// HasAnyTarget reports whether the requirement names at least one concrete
// location target (city, state, country) or permits remote work. A strict
// filter without any target excludes every candidate.
func (r *LocationRequirement) HasAnyTarget() bool {
	if r == nil {
		return false
	}
	return len(r.Cities) > 0 || len(r.States) > 0 || len(r.Countries) > 0 || r.Remote
}

// JobRequirement represents a structured job posting produced by an external
// parsing collaborator. Treated as immutable once constructed; the engine
// shares it read-only across all candidate evaluations.
type JobRequirement struct {
	RoleTitle       string                 `json:"role_title"`
	Seniority       SeniorityLevel         `json:"seniority,omitempty"`
	RequiredSkills  []string               `json:"required_skills,omitempty"`
	PreferredSkills []string               `json:"preferred_skills,omitempty"`
	Experience      *ExperienceRequirement `json:"experience,omitempty"`
	Education       *EducationRequirement  `json:"education,omitempty"`
	Industries      []string               `json:"industries,omitempty"`
	Location        *LocationRequirement   `json:"location,omitempty"`
	DescriptionText string                 `json:"description_text,omitempty"`
}
