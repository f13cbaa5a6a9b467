package scoring

import (
	"sort"
	"strings"

	"github.com/jonathan/candidate-ranker/internal/types"
)

const (
	// maxJobKeywords bounds how many job-description terms count as keywords
	maxJobKeywords = 20

	// shortProfileTokens is the profile length below which the keyword
	// score is capped, so near-empty profiles cannot look keyword-dense.
	shortProfileTokens = 30
	shortProfileCap    = 50.0
)

// ScoreKeywordDensity measures what fraction of the job description's top
// keywords appear anywhere in the candidate's profile text, scaled to
// [0,100]. Very short profiles are capped. Jobs with no description text
// score a neutral 50.
func ScoreKeywordDensity(jobText string, candidate *types.CandidateProfile) float64 {
	keywords := extractKeywords(jobText, maxJobKeywords)
	if len(keywords) == 0 {
		return neutralScore
	}

	profileText := strings.ToLower(candidateText(candidate))
	profileTokens := tokenize(profileText)

	matches := 0
	for _, keyword := range keywords {
		if strings.Contains(profileText, keyword) {
			matches++
		}
	}

	score := float64(matches) / float64(len(keywords)) * 100
	if len(profileTokens) < shortProfileTokens && score > shortProfileCap {
		score = shortProfileCap
	}
	return clamp(score)
}

// extractKeywords returns the most frequent non-stopword terms in the text
func extractKeywords(text string, limit int) []string {
	counts := termFrequencies(tokenize(text), 1.0)
	if len(counts) == 0 {
		return nil
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	// Frequency descending, alphabetical tie-break for determinism
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if len(terms) > limit {
		terms = terms[:limit]
	}
	return terms
}

// candidateText concatenates all free text on a profile
func candidateText(candidate *types.CandidateProfile) string {
	var b strings.Builder
	b.WriteString(candidate.Headline)
	b.WriteString(" ")
	b.WriteString(candidate.Summary)
	for _, exp := range candidate.Experiences {
		b.WriteString(" ")
		b.WriteString(exp.Title)
		b.WriteString(" ")
		b.WriteString(exp.Description)
	}
	for _, skill := range candidate.Skills {
		b.WriteString(" ")
		b.WriteString(skill)
	}
	return b.String()
}
