package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jonathan/candidate-ranker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *types.RankResult {
	return &types.RankResult{
		RunID: "run_test",
		Ranked: []types.ScoreBreakdown{
			{
				CandidateID:   "c1",
				CandidateName: "Avery Chen",
				OverallScore:  82.5,
				Components: map[string]float64{
					types.ComponentSkillMatch:       90,
					types.ComponentExperienceMatch:  80,
					types.ComponentEducationMatch:   100,
					types.ComponentIndustryMatch:    50,
					types.ComponentLocationMatch:    100,
					types.ComponentCareerTrajectory: 60,
					types.ComponentKeywordDensity:   70,
				},
				MissingRequirements: []string{"industry experience: fintech"},
				Explanation:         "Strong fit (82.5 overall)",
				Rank:                1,
				Percentile:          100,
			},
		},
		FilteredOut: []types.FilteredCandidate{
			{CandidateID: "c2", Name: "Blake Morgan", Reason: "location mismatch"},
		},
	}
}

func TestWriteJSON_RoundTrips(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteJSON(&buf, sampleResult()))

	var decoded types.RankResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run_test", decoded.RunID)
	require.Len(t, decoded.Ranked, 1)
	assert.Equal(t, "c1", decoded.Ranked[0].CandidateID)
	assert.Equal(t, 82.5, decoded.Ranked[0].OverallScore)
	require.Len(t, decoded.FilteredOut, 1)
	assert.Equal(t, "location mismatch", decoded.FilteredOut[0].Reason)
}

func TestWriteCSV_HeaderAndRows(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, sampleResult()))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	header := records[0]
	assert.Equal(t, "rank", header[0])
	assert.Contains(t, header, "skill_match")
	assert.Contains(t, header, "keyword_density")

	row := records[1]
	assert.Equal(t, "1", row[0])
	assert.Equal(t, "c1", row[1])
	assert.Equal(t, "Avery Chen", row[2])
	assert.Equal(t, "82.50", row[3])
	assert.Contains(t, row, "90.00")
}

func TestWriteCSV_EmptyResult(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, &types.RankResult{RunID: "empty"}))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1) // header only
}
