package scoring

import (
	"strings"

	"github.com/jonathan/candidate-ranker/internal/types"
)

// Trajectory scores: advancing careers beat flat ones, which beat
// regressions.
const (
	upwardTrajectoryScore = 100.0
	flatTrajectoryScore   = 60.0
	regressionScore       = 30.0
)

// seniorityKeywords rank title fragments from junior to executive.
// Titles matching none of these rank at the default mid level.
var seniorityKeywords = []struct {
	keyword string
	rank    int
}{
	{"intern", 0},
	{"junior", 1},
	{"associate", 2},
	{"senior", 4},
	{"staff", 5},
	{"lead", 5},
	{"principal", 6},
	{"manager", 6},
	{"director", 7},
	{"vp", 8},
	{"vice president", 8},
	{"head of", 8},
	{"chief", 9},
}

const defaultSeniorityRank = 3

// ScoreTrajectory inspects the ordered experience entries (most recent
// first) for seniority advancement. Upward progression scores 100, a flat
// history 60, and any regression 30. Fewer than two entries count as flat.
func ScoreTrajectory(experiences []types.Experience) float64 {
	if len(experiences) < 2 {
		return flatTrajectoryScore
	}

	ups, downs := 0, 0
	for i := 0; i < len(experiences)-1; i++ {
		newer := titleRank(experiences[i].Title)
		older := titleRank(experiences[i+1].Title)
		switch {
		case newer > older:
			ups++
		case newer < older:
			downs++
		}
	}

	switch {
	case downs > 0:
		return regressionScore
	case ups > 0:
		return upwardTrajectoryScore
	default:
		return flatTrajectoryScore
	}
}

// titleRank returns the highest seniority rank matched in a title
func titleRank(title string) int {
	lower := strings.ToLower(title)
	rank := defaultSeniorityRank
	matched := false
	for _, sk := range seniorityKeywords {
		if strings.Contains(lower, sk.keyword) {
			if !matched || sk.rank > rank {
				rank = sk.rank
			}
			matched = true
		}
	}
	return rank
}
