// Package engine composes the per-component scorers into a full candidate
// ranking run: weight normalization, the strict location pre-filter,
// parallel candidate evaluation, and deterministic ordering of the results.
package engine

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/candidate-ranker/internal/geo"
	"github.com/jonathan/candidate-ranker/internal/location"
	"github.com/jonathan/candidate-ranker/internal/scoring"
	"github.com/jonathan/candidate-ranker/internal/types"
)

// degradedScore is the neutral score a component falls back to when the
// candidate data for it is unusable.
const degradedScore = 50.0

// Engine scores and ranks candidate profiles against a job requirement.
// Safe for concurrent use: all per-run state lives on the call stack.
type Engine struct {
	matcher *location.Matcher
	logger  *zap.Logger
}

// New builds an Engine backed by the built-in geographic database.
// A nil logger disables logging.
func New(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		matcher: location.NewMatcher(geo.NewDatabase()),
		logger:  logger,
	}
}

// Rank scores every candidate against the job, applies the strict location
// pre-filter when requested, and returns the candidates ordered best-first
// with rank and percentile assigned.
//
// A cancelled context returns whatever completed with Partial set; invalid
// weights or a missing job are configuration errors and return no result.
func (e *Engine) Rank(ctx context.Context, job *types.JobRequirement, weights types.WeightConfig, candidates []*types.CandidateProfile) (*types.RankResult, error) {
	if job == nil {
		return nil, &ConfigurationError{Message: "job requirement is required"}
	}
	normalized, err := weights.Normalized()
	if err != nil {
		return nil, &ConfigurationError{Message: "invalid weight configuration", Cause: err}
	}

	result := &types.RankResult{RunID: uuid.New().String()}
	e.logger.Info("ranking run started",
		zap.String("run_id", result.RunID),
		zap.String("role", job.RoleTitle),
		zap.Int("candidates", len(candidates)))

	// Location is classified once per candidate and reused for both the
	// pre-filter and the location component score.
	locMatches := make([]types.LocationMatch, len(candidates))
	for i, candidate := range candidates {
		locMatches[i] = e.matcher.Match(candidate.Location, job.Location)
	}

	strict := job.Location != nil && job.Location.StrictLocationFilter
	pool := make([]*types.CandidateProfile, 0, len(candidates))
	poolMatches := make([]types.LocationMatch, 0, len(candidates))
	for i, candidate := range candidates {
		if strict {
			if excluded, reason := location.StrictExcluded(locMatches[i]); excluded {
				result.FilteredOut = append(result.FilteredOut, types.FilteredCandidate{
					CandidateID: candidate.ID,
					Name:        candidate.Name,
					Reason:      reason,
				})
				e.logger.Debug("candidate excluded by strict location filter",
					zap.String("candidate_id", candidate.ID),
					zap.String("reason", reason))
				continue
			}
		}
		pool = append(pool, candidate)
		poolMatches = append(poolMatches, locMatches[i])
	}

	// One clock reading per run, truncated to the month to match the
	// month granularity of experience dates. Scoring the same inputs twice
	// within a month yields identical breakdowns.
	now := monthStart(time.Now())

	breakdowns := make([]*types.ScoreBreakdown, len(pool))
	g, gCtx := errgroup.WithContext(ctx)
	for i, candidate := range pool {
		g.Go(func() error {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			default:
			}
			breakdowns[i] = e.scoreCandidate(job, normalized, poolMatches[i], candidate, now)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		result.Partial = true
		e.logger.Warn("ranking run interrupted", zap.String("run_id", result.RunID), zap.Error(err))
	}

	for _, breakdown := range breakdowns {
		if breakdown != nil {
			result.Ranked = append(result.Ranked, *breakdown)
		}
	}

	sortBreakdowns(result.Ranked)
	assignRanks(result.Ranked)

	e.logger.Info("ranking run finished",
		zap.String("run_id", result.RunID),
		zap.Int("ranked", len(result.Ranked)),
		zap.Int("filtered_out", len(result.FilteredOut)),
		zap.Bool("partial", result.Partial))
	return result, nil
}

// monthStart truncates t to the first instant of its month in UTC, the same
// resolution as the "YYYY-MM" dates on experience entries.
func monthStart(t time.Time) time.Time {
	year, month, _ := t.UTC().Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// MatchLocation classifies a single candidate location string against a
// job's location requirement without running a full ranking pass.
func (e *Engine) MatchLocation(text string, req *types.LocationRequirement) types.LocationMatch {
	return e.matcher.Match(text, req)
}

// scoreCandidate evaluates all seven components for one candidate and
// assembles the breakdown. Component failures degrade to a neutral score;
// nothing here returns an error.
func (e *Engine) scoreCandidate(job *types.JobRequirement, weights types.WeightConfig, locMatch types.LocationMatch, candidate *types.CandidateProfile, now time.Time) *types.ScoreBreakdown {
	breakdown := &types.ScoreBreakdown{
		CandidateID:   candidate.ID,
		CandidateName: candidate.Name,
		Components:    make(map[string]float64, len(types.ComponentNames)),
	}
	var notes []string

	skills := scoring.ScoreSkills(job.RequiredSkills, job.PreferredSkills, candidate.Skills)
	breakdown.Components[types.ComponentSkillMatch] = skills.Score
	breakdown.MissingRequirements = append(breakdown.MissingRequirements, skills.Missing...)
	breakdown.AdditionalStrengths = append(breakdown.AdditionalStrengths, skills.Extras...)

	e.evaluate(breakdown, &notes, candidate, types.ComponentExperienceMatch, func() float64 {
		exp := scoring.ScoreExperience(job.Experience, job.DescriptionText, candidate.Experiences, now)
		breakdown.MissingRequirements = append(breakdown.MissingRequirements, exp.Missing...)
		notes = append(notes, exp.Notes...)
		return exp.Score
	})

	e.evaluate(breakdown, &notes, candidate, types.ComponentEducationMatch, func() float64 {
		edu := scoring.ScoreEducation(job.Education, candidate.Education)
		breakdown.MissingRequirements = append(breakdown.MissingRequirements, edu.Missing...)
		return edu.Score
	})

	e.evaluate(breakdown, &notes, candidate, types.ComponentIndustryMatch, func() float64 {
		ind := scoring.ScoreIndustry(job.Industries, candidate.Experiences)
		breakdown.MissingRequirements = append(breakdown.MissingRequirements, ind.Missing...)
		return ind.Score
	})

	breakdown.Components[types.ComponentLocationMatch] = locMatch.Confidence
	if locMatch.MatchType == types.MatchNone && locMatch.Reason != "" {
		notes = append(notes, locMatch.Reason)
	}

	e.evaluate(breakdown, &notes, candidate, types.ComponentCareerTrajectory, func() float64 {
		return scoring.ScoreTrajectory(candidate.Experiences)
	})

	e.evaluate(breakdown, &notes, candidate, types.ComponentKeywordDensity, func() float64 {
		return scoring.ScoreKeywordDensity(job.DescriptionText, candidate)
	})

	breakdown.OverallScore = overallScore(weights, breakdown.Components, job.Location.Multiplier())
	breakdown.Explanation = explain(breakdown, notes)
	return breakdown
}

// evaluate runs one component scorer, degrading to a neutral score if the
// scorer panics on malformed candidate data. Degradation is noted on the
// breakdown and never fails the candidate or the run.
func (e *Engine) evaluate(breakdown *types.ScoreBreakdown, notes *[]string, candidate *types.CandidateProfile, component string, score func() float64) {
	defer func() {
		if r := recover(); r != nil {
			dataErr := &DataError{
				CandidateID: candidate.ID,
				Component:   component,
				Message:     fmt.Sprintf("%v", r),
			}
			e.logger.Warn("component degraded", zap.Error(dataErr))
			breakdown.Components[component] = degradedScore
			*notes = append(*notes, fmt.Sprintf("%s degraded to neutral: %v", component, r))
		}
	}()
	breakdown.Components[component] = score()
}

// overallScore computes the weighted sum of component scores. The location
// contribution is scaled by the job's location weight multiplier before the
// final clamp, so a multiplier above 1.0 widens the gap between strong and
// weak location matches.
func overallScore(weights types.WeightConfig, components map[string]float64, locationMultiplier float64) float64 {
	weightByName := weights.Map()
	total := 0.0
	for _, name := range types.ComponentNames {
		contribution := weightByName[name] * components[name]
		if name == types.ComponentLocationMatch {
			contribution *= locationMultiplier
		}
		total += contribution / 100
	}

	score := total * 100
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// sortBreakdowns orders results best-first: overall score descending, skill
// score descending on ties, then candidate name ascending for stability.
func sortBreakdowns(ranked []types.ScoreBreakdown) {
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].OverallScore != ranked[j].OverallScore {
			return ranked[i].OverallScore > ranked[j].OverallScore
		}
		si := ranked[i].Components[types.ComponentSkillMatch]
		sj := ranked[j].Components[types.ComponentSkillMatch]
		if si != sj {
			return si > sj
		}
		return ranked[i].CandidateName < ranked[j].CandidateName
	})
}

// assignRanks numbers the sorted results from 1 and derives percentiles.
// The single-candidate case pins the percentile to 100.
func assignRanks(ranked []types.ScoreBreakdown) {
	n := len(ranked)
	for i := range ranked {
		ranked[i].Rank = i + 1
		if n == 1 {
			ranked[i].Percentile = 100
		} else {
			ranked[i].Percentile = float64(n-1-i) / float64(n-1) * 100
		}
	}
}
