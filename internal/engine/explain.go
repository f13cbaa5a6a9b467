package engine

import (
	"fmt"
	"strings"

	"github.com/jonathan/candidate-ranker/internal/types"
)

// Overall score bands for the explanation label
const (
	excellentThreshold = 85.0
	strongThreshold    = 70.0
	goodThreshold      = 55.0
	fairThreshold      = 40.0
)

// explain builds the human-readable summary for one breakdown: a fit label,
// the candidate's strongest component, outstanding gaps, and any data notes
// collected during scoring.
func explain(breakdown *types.ScoreBreakdown, notes []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s fit (%.1f overall)", fitLabel(breakdown.OverallScore), breakdown.OverallScore)

	if strongest := strongestComponent(breakdown.Components); strongest != "" {
		fmt.Fprintf(&b, "; strongest area: %s (%.0f)", componentLabel(strongest), breakdown.Components[strongest])
	}
	if n := len(breakdown.MissingRequirements); n > 0 {
		fmt.Fprintf(&b, "; %d unmet requirement(s)", n)
	}
	if len(notes) > 0 {
		fmt.Fprintf(&b, ". Notes: %s", strings.Join(notes, "; "))
	}
	return b.String()
}

func fitLabel(overall float64) string {
	switch {
	case overall >= excellentThreshold:
		return "Excellent"
	case overall >= strongThreshold:
		return "Strong"
	case overall >= goodThreshold:
		return "Good"
	case overall >= fairThreshold:
		return "Fair"
	default:
		return "Weak"
	}
}

// strongestComponent returns the highest-scoring component, breaking ties by
// canonical component order so explanations are deterministic.
func strongestComponent(components map[string]float64) string {
	best := ""
	bestScore := -1.0
	for _, name := range types.ComponentNames {
		if score, ok := components[name]; ok && score > bestScore {
			best = name
			bestScore = score
		}
	}
	return best
}

// componentLabel renders a component name for prose
func componentLabel(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}
