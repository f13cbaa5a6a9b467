package scoring

import (
	"fmt"
	"math"
	"time"

	"github.com/jonathan/candidate-ranker/internal/types"
)

const (
	// Fixed internal blend between the years component and the text
	// relevance component.
	yearsBlendWeight     = 0.5
	relevanceBlendWeight = 0.5

	// atMinimumScore is the years score earned exactly at the required
	// minimum; the segment from minimum to maximum interpolates up to 100.
	atMinimumScore = 70.0

	// recencyHalfLifeYears controls how quickly old experience text loses
	// weight in the relevance calculation.
	recencyHalfLifeYears = 4.0

	neutralScore = 50.0
)

// dateLayout is the "YYYY-MM" format used by experience entries
const dateLayout = "2006-01"

// ExperienceResult is the outcome of scoring a candidate's work history
type ExperienceResult struct {
	Score      float64
	TotalYears float64
	Missing    []string
	Notes      []string
}

// ScoreExperience blends a years-of-experience component with a text
// relevance component. Years map linearly onto the required range; relevance
// is the TF-IDF cosine similarity between the job description and the
// candidate's experience descriptions, with older entries down-weighted by a
// half-life decay. Malformed dates degrade the affected entry, never the call.
func ScoreExperience(req *types.ExperienceRequirement, jobText string, entries []types.Experience, now time.Time) ExperienceResult {
	result := ExperienceResult{}

	totalYears, dateNotes := totalExperienceYears(entries, now)
	result.TotalYears = totalYears
	result.Notes = append(result.Notes, dateNotes...)

	yearsScore := scoreYears(req, totalYears)
	if req != nil && totalYears < req.MinYears {
		shortfall := req.MinYears - totalYears
		result.Missing = append(result.Missing,
			fmt.Sprintf("experience: %.1f years short of the %.0f-year minimum", shortfall, req.MinYears))
	}

	relevanceScore, relevanceNote := relevance(jobText, entries, now)
	if relevanceNote != "" {
		result.Notes = append(result.Notes, relevanceNote)
	}

	result.Score = clamp(yearsBlendWeight*clamp(yearsScore) + relevanceBlendWeight*clamp(relevanceScore))
	return result
}

// scoreYears maps total years onto the required [min,max] window: zero years
// scores 0, the minimum scores atMinimumScore, and the maximum (and beyond)
// scores 100, with linear interpolation between the knees.
func scoreYears(req *types.ExperienceRequirement, total float64) float64 {
	if req == nil {
		return 80 // no stated requirement
	}

	min, max := req.MinYears, req.MaxYears
	switch {
	case min <= 0 && max <= 0:
		return 100
	case total < min:
		return atMinimumScore * (total / min)
	case max <= min:
		// No meaningful upper bound; meeting the minimum is full credit
		return 100
	case total >= max:
		return 100
	default:
		return atMinimumScore + (100-atMinimumScore)*(total-min)/(max-min)
	}
}

// totalExperienceYears sums entry durations. Entries with unparseable start
// dates contribute nothing and are reported in the notes.
func totalExperienceYears(entries []types.Experience, now time.Time) (float64, []string) {
	var months float64
	var notes []string

	for _, entry := range entries {
		if entry.StartDate == "" {
			continue
		}
		start, err := time.Parse(dateLayout, entry.StartDate)
		if err != nil {
			notes = append(notes, fmt.Sprintf("unparseable start date %q for %s", entry.StartDate, entry.Title))
			continue
		}

		end := now
		if entry.EndDate != "" && !entry.Current {
			parsed, err := time.Parse(dateLayout, entry.EndDate)
			if err != nil {
				notes = append(notes, fmt.Sprintf("unparseable end date %q for %s", entry.EndDate, entry.Title))
			} else {
				end = parsed
			}
		}

		if end.After(start) {
			months += end.Sub(start).Hours() / 24 / 30.44
		}
	}

	return months / 12, notes
}

// relevance computes the recency-weighted TF-IDF cosine similarity between
// the job text and the candidate's experience descriptions, scaled to [0,100].
func relevance(jobText string, entries []types.Experience, now time.Time) (float64, string) {
	jobTokens := tokenize(jobText)
	if len(jobTokens) == 0 {
		return neutralScore, "no job description text for relevance scoring"
	}

	candidateTF := make(map[string]float64)
	for _, entry := range entries {
		if entry.Description == "" {
			continue
		}
		weight := recencyWeight(entry, now)
		mergeFrequencies(candidateTF, termFrequencies(tokenize(entry.Description), weight))
	}

	if len(candidateTF) == 0 {
		return neutralScore, "no experience descriptions for relevance scoring"
	}

	similarity := cosineSimilarity(termFrequencies(jobTokens, 1.0), candidateTF)
	return similarity * 100, ""
}

// recencyWeight decays an entry's text weight by half every
// recencyHalfLifeYears since its end date. Current roles carry full weight.
func recencyWeight(entry types.Experience, now time.Time) float64 {
	if entry.Current || entry.EndDate == "" {
		return 1.0
	}
	end, err := time.Parse(dateLayout, entry.EndDate)
	if err != nil {
		return 0.5
	}
	yearsSince := now.Sub(end).Hours() / 24 / 365.25
	if yearsSince <= 0 {
		return 1.0
	}
	return math.Pow(0.5, yearsSince/recencyHalfLifeYears)
}
