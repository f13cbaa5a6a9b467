package engine

import (
	"fmt"

	"github.com/jonathan/candidate-ranker/internal/types"
)

// ConfigurationError aliases the shared type so the weight constructors in
// types and the ranking entry point here report the same error class.
type ConfigurationError = types.ConfigurationError

// DataError represents malformed data on a single candidate affecting a
// single component. It degrades that component to a neutral score and is
// surfaced as a note on the breakdown, never as a call failure.
type DataError struct {
	CandidateID string
	Component   string
	Message     string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("data error in %s for candidate %s: %s", e.Component, e.CandidateID, e.Message)
}
