package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/candidate-ranker/internal/types"
)

// Education level scores relative to the requirement
const (
	meetsLevelScore = 100.0
	oneBelowScore   = 60.0
	farBelowScore   = 20.0
	fieldMatchBonus = 15.0
)

// degreeKeywords maps degree-name fragments to education levels
var degreeKeywords = []struct {
	keyword string
	level   types.EducationLevel
}{
	{"phd", types.EducationDoctorate},
	{"ph.d", types.EducationDoctorate},
	{"doctor", types.EducationDoctorate},
	{"master", types.EducationMaster},
	{"mba", types.EducationMaster},
	{"m.s", types.EducationMaster},
	{"msc", types.EducationMaster},
	{"bachelor", types.EducationBachelor},
	{"b.s", types.EducationBachelor},
	{"b.a", types.EducationBachelor},
	{"bsc", types.EducationBachelor},
	{"associate", types.EducationAssociate},
}

// EducationResult is the outcome of scoring a candidate's education
type EducationResult struct {
	Score   float64
	Missing []string
	Notes   []string
}

// ScoreEducation compares the required degree level against the candidate's
// highest degree: meets-or-exceeds scores 100, one level below 60, further
// below 20. A field-of-study overlap adds a bonus, capped so the total stays
// within [0,100].
func ScoreEducation(req *types.EducationRequirement, education []types.Education) EducationResult {
	if req == nil || req.Level == "" || req.Level == types.EducationNone {
		return EducationResult{Score: 100, Notes: []string{"no education requirement"}}
	}

	highest := highestEducationLevel(education)
	gap := req.Level.Rank() - highest.Rank()

	var score float64
	switch {
	case gap <= 0:
		score = meetsLevelScore
	case gap == 1:
		score = oneBelowScore
	default:
		score = farBelowScore
	}

	result := EducationResult{}
	if gap > 0 {
		result.Missing = append(result.Missing,
			fmt.Sprintf("education: %s degree required, candidate holds %s", req.Level, highest))
	}

	if fieldOverlaps(req.Fields, education) {
		score += fieldMatchBonus
		result.Notes = append(result.Notes, "field of study matches requirement")
	}

	result.Score = clamp(score)
	return result
}

// highestEducationLevel infers the candidate's top degree from degree names
func highestEducationLevel(education []types.Education) types.EducationLevel {
	highest := types.EducationNone
	for _, edu := range education {
		degree := strings.ToLower(edu.Degree)
		for _, dk := range degreeKeywords {
			if strings.Contains(degree, dk.keyword) && dk.level.Rank() > highest.Rank() {
				highest = dk.level
			}
		}
	}
	return highest
}

// fieldOverlaps reports whether any candidate field of study overlaps a
// required field, by case-insensitive substring in either direction.
func fieldOverlaps(required []string, education []types.Education) bool {
	if len(required) == 0 {
		return false
	}
	for _, edu := range education {
		field := strings.ToLower(strings.TrimSpace(edu.Field))
		if field == "" {
			continue
		}
		for _, req := range required {
			reqField := strings.ToLower(strings.TrimSpace(req))
			if reqField == "" {
				continue
			}
			if strings.Contains(field, reqField) || strings.Contains(reqField, field) {
				return true
			}
		}
	}
	return false
}
