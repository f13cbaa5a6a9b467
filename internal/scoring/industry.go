package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/candidate-ranker/internal/types"
)

// industryKeywords are the industries inferable from experience text
var industryKeywords = []string{
	"fintech", "healthcare", "e-commerce", "saas", "education",
	"gaming", "social media", "cybersecurity", "ai", "blockchain",
	"logistics", "retail", "insurance", "advertising", "telecom",
	"banking", "biotech", "automotive", "energy", "media",
}

// IndustryResult is the outcome of scoring a candidate's industry history
type IndustryResult struct {
	Score      float64
	Industries []string
	Missing    []string
}

// ScoreIndustry computes the overlap ratio between the required industries
// and the industries inferred from the candidate's experience, scaled to
// [0,100]. An empty requirement scores 100.
func ScoreIndustry(required []string, experiences []types.Experience) IndustryResult {
	if len(required) == 0 {
		return IndustryResult{Score: 100}
	}

	candidateIndustries := inferIndustries(experiences)
	result := IndustryResult{Industries: candidateIndustries}

	matches := 0
	for _, req := range required {
		reqLower := strings.ToLower(strings.TrimSpace(req))
		found := false
		for _, industry := range candidateIndustries {
			if strings.Contains(industry, reqLower) || strings.Contains(reqLower, industry) {
				found = true
				break
			}
		}
		if found {
			matches++
		} else {
			result.Missing = append(result.Missing, fmt.Sprintf("industry experience: %s", req))
		}
	}

	result.Score = clamp(float64(matches) / float64(len(required)) * 100)
	return result
}

// inferIndustries scans experience company names and descriptions for known
// industry keywords.
func inferIndustries(experiences []types.Experience) []string {
	seen := make(map[string]bool)
	for _, exp := range experiences {
		text := strings.ToLower(exp.Company + " " + exp.Description)
		for _, keyword := range industryKeywords {
			if strings.Contains(text, keyword) {
				seen[keyword] = true
			}
		}
	}

	industries := make([]string, 0, len(seen))
	for industry := range seen {
		industries = append(industries, industry)
	}
	sort.Strings(industries)
	return industries
}
