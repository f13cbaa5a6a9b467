package types

// Experience is a single role in a candidate's work history.
// Dates use the "YYYY-MM" format; an empty EndDate means the role is current.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company,omitempty"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Current     bool   `json:"current,omitempty"`
}

// Education is a single degree in a candidate's education history
type Education struct {
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution,omitempty"`
}

// CandidateProfile represents a sourced candidate, produced by an external
// ingestion collaborator. Read-only input: the engine never mutates it.
type CandidateProfile struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Headline    string       `json:"headline,omitempty"`
	Summary     string       `json:"summary,omitempty"`
	Experiences []Experience `json:"experiences,omitempty"`
	Education   []Education  `json:"education,omitempty"`
	Skills      []string     `json:"skills,omitempty"`
	Location    string       `json:"location,omitempty"`
}
