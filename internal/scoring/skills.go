package scoring

import (
	"fmt"
	"sort"
	"strings"
)

// skillSynonyms maps a skill to names that mean the same thing.
// Lookup is symmetric: either side of the pair counts as a synonym match.
var skillSynonyms = map[string][]string{
	"go":         {"golang"},
	"javascript": {"js", "ecmascript"},
	"typescript": {"ts"},
	"kubernetes": {"k8s"},
	"postgresql": {"postgres"},
	"python3":    {"python"},
	"node.js":    {"nodejs", "node"},
	"react":      {"react.js", "reactjs"},
	"vue":        {"vue.js", "vuejs"},
	"amazon web services": {"aws"},
	"google cloud":        {"gcp", "google cloud platform"},
	"machine learning":    {"ml"},
	"c#":                  {"csharp"},
}

// skillRelations maps a base skill to skills commonly held alongside it.
// A related hit is weaker than a synonym: the candidate works in the same
// ecosystem but not with the exact tool.
var skillRelations = map[string][]string{
	"javascript":       {"typescript", "node.js", "react", "angular", "vue"},
	"python":           {"django", "flask", "fastapi", "pandas", "numpy"},
	"java":             {"spring", "hibernate", "maven", "gradle", "kotlin"},
	"go":               {"grpc", "protobuf", "docker", "kubernetes"},
	"cloud":            {"aws", "azure", "gcp", "devops", "terraform"},
	"machine learning": {"tensorflow", "pytorch", "scikit-learn", "deep learning", "ai"},
	"sql":              {"postgresql", "mysql", "sqlite", "oracle"},
	"devops":           {"docker", "kubernetes", "terraform", "ansible", "ci/cd"},
}

// SkillResult is the outcome of scoring a candidate's skills against a job
type SkillResult struct {
	Score   float64
	Missing []string
	Extras  []string
	Notes   []string
}

// ScoreSkills classifies each required skill against the candidate's skill
// set: exact match 100, listed synonym 80, listed related skill 60, partial
// token overlap 40, otherwise 0 and recorded as missing. The component score
// is the mean of per-skill points. An empty requirement scores 100: there is
// nothing to fail.
func ScoreSkills(required, preferred, candidateSkills []string) SkillResult {
	candidateSet := make(map[string]bool, len(candidateSkills))
	for _, s := range candidateSkills {
		if normalized := normalizeSkill(s); normalized != "" {
			candidateSet[normalized] = true
		}
	}

	result := SkillResult{Score: 100}
	if len(required) == 0 {
		result.Notes = append(result.Notes, "no required skills specified")
		result.Extras = preferredExtras(preferred, candidateSet)
		return result
	}

	total := 0.0
	matched := 0
	for _, raw := range required {
		skill := normalizeSkill(raw)
		if skill == "" {
			continue
		}
		points := classifySkill(skill, candidateSet)
		total += points
		if points > 0 {
			matched++
		} else {
			result.Missing = append(result.Missing, fmt.Sprintf("required skill: %s", raw))
		}
	}

	result.Score = clamp(total / float64(len(required)))
	result.Extras = preferredExtras(preferred, candidateSet)
	result.Notes = append(result.Notes, fmt.Sprintf("%d of %d required skills matched", matched, len(required)))
	return result
}

// classifySkill awards points for the strongest way the candidate covers
// one required skill.
func classifySkill(skill string, candidateSet map[string]bool) float64 {
	if candidateSet[skill] {
		return exactMatchPoints
	}

	for candidate := range candidateSet {
		if isSynonym(skill, candidate) {
			return synonymMatchPoints
		}
	}
	for candidate := range candidateSet {
		if isRelated(skill, candidate) {
			return relatedMatchPoints
		}
	}
	for candidate := range candidateSet {
		if partialOverlap(skill, candidate) {
			return partialMatchPoints
		}
	}

	return 0
}

// preferredExtras records preferred skills the candidate actually holds
func preferredExtras(preferred []string, candidateSet map[string]bool) []string {
	var extras []string
	for _, raw := range preferred {
		skill := normalizeSkill(raw)
		if skill == "" {
			continue
		}
		if candidateSet[skill] {
			extras = append(extras, fmt.Sprintf("preferred skill: %s", raw))
			continue
		}
		for candidate := range candidateSet {
			if isSynonym(skill, candidate) {
				extras = append(extras, fmt.Sprintf("preferred skill: %s", raw))
				break
			}
		}
	}
	sort.Strings(extras)
	return extras
}

func isSynonym(a, b string) bool {
	for base, names := range skillSynonyms {
		for _, name := range names {
			if (a == base && b == name) || (b == base && a == name) {
				return true
			}
		}
	}
	return false
}

func isRelated(a, b string) bool {
	for base, names := range skillRelations {
		for _, name := range names {
			if (a == base && b == name) || (b == base && a == name) {
				return true
			}
		}
	}
	return false
}

// partialOverlap reports a substring containment or a shared token between
// two multi-word skill names.
func partialOverlap(a, b string) bool {
	if len(a) >= 3 && len(b) >= 3 && (strings.Contains(a, b) || strings.Contains(b, a)) {
		return true
	}
	for _, tokenA := range strings.Fields(a) {
		if len(tokenA) < 3 {
			continue
		}
		for _, tokenB := range strings.Fields(b) {
			if tokenA == tokenB {
				return true
			}
		}
	}
	return false
}

// normalizeSkill lowercases and trims a skill name for comparison
func normalizeSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}
