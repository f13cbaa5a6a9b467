// Package export serializes ranking results for downstream consumption.
// JSON preserves the full breakdown structure; CSV flattens it to one row
// per ranked candidate for spreadsheet review.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jonathan/candidate-ranker/internal/types"
)

// WriteJSON writes the full result, indented, to w
func WriteJSON(w io.Writer, result *types.RankResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return nil
}

// csvHeader is the fixed column layout: identity, overall, one column per
// component in canonical order, then the aggregate text fields.
func csvHeader() []string {
	header := []string{"rank", "candidate_id", "candidate_name", "overall_score", "percentile"}
	header = append(header, types.ComponentNames...)
	return append(header, "missing_requirements", "additional_strengths", "explanation")
}

// WriteCSV writes one row per ranked candidate to w. Filtered-out candidates
// are not included; callers wanting them should consult the JSON form.
func WriteCSV(w io.Writer, result *types.RankResult) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader()); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, breakdown := range result.Ranked {
		row := []string{
			strconv.Itoa(breakdown.Rank),
			breakdown.CandidateID,
			breakdown.CandidateName,
			formatScore(breakdown.OverallScore),
			formatScore(breakdown.Percentile),
		}
		for _, name := range types.ComponentNames {
			row = append(row, formatScore(breakdown.Components[name]))
		}
		row = append(row,
			strings.Join(breakdown.MissingRequirements, "; "),
			strings.Join(breakdown.AdditionalStrengths, "; "),
			breakdown.Explanation,
		)
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing csv row for %s: %w", breakdown.CandidateID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 2, 64)
}
