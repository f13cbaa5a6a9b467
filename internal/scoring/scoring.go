// Package scoring provides the independent component scorers used by the
// composite ranking engine. Every scorer is stateless per call: it reads only
// the shared immutable job requirement and the candidate under evaluation,
// and returns a score bounded to [0,100].
package scoring

// Per-skill match points, strongest to weakest
const (
	exactMatchPoints   = 100.0
	synonymMatchPoints = 80.0
	relatedMatchPoints = 60.0
	partialMatchPoints = 40.0
)

// clamp bounds a score to [0,100]
func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
