package scoring

import (
	"strings"
	"testing"

	"github.com/jonathan/candidate-ranker/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestScoreKeywordDensity_FullCoverage(t *testing.T) {
	jobText := "Python backend microservices PostgreSQL"
	candidate := &types.CandidateProfile{
		Summary: strings.Repeat("Python backend microservices PostgreSQL engineer shipping production systems ", 5),
	}

	score := ScoreKeywordDensity(jobText, candidate)

	assert.Equal(t, 100.0, score)
}

func TestScoreKeywordDensity_NoCoverage(t *testing.T) {
	jobText := "Python backend microservices"
	candidate := &types.CandidateProfile{
		Summary: strings.Repeat("retail inventory management storefront operations ", 10),
	}

	score := ScoreKeywordDensity(jobText, candidate)

	assert.Equal(t, 0.0, score)
}

func TestScoreKeywordDensity_EmptyJobTextNeutral(t *testing.T) {
	candidate := &types.CandidateProfile{Summary: "Python engineer"}

	assert.Equal(t, 50.0, ScoreKeywordDensity("", candidate))
}

func TestScoreKeywordDensity_ShortProfileCapped(t *testing.T) {
	jobText := "Python backend microservices PostgreSQL"
	candidate := &types.CandidateProfile{
		Headline: "Python backend microservices PostgreSQL",
	}

	score := ScoreKeywordDensity(jobText, candidate)

	// Every keyword matches, but the profile is too short for full credit
	assert.Equal(t, 50.0, score)
}

func TestScoreKeywordDensity_SkillsCount(t *testing.T) {
	jobText := "Kubernetes Terraform"
	candidate := &types.CandidateProfile{
		Summary: strings.Repeat("platform engineer running production clusters and infrastructure automation ", 5),
		Skills:  []string{"Kubernetes", "Terraform"},
	}

	score := ScoreKeywordDensity(jobText, candidate)

	assert.Equal(t, 100.0, score)
}

func TestExtractKeywords_DropsStopwordsAndRanksByFrequency(t *testing.T) {
	text := "build services and services and services with python"

	keywords := extractKeywords(text, 2)

	assert.Equal(t, []string{"services", "build"}, keywords)
}
