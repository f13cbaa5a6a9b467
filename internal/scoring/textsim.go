package scoring

import (
	"math"
	"strings"
	"unicode"
)

// stopwords excluded from tokenization; keeps keyword and similarity scoring
// from rewarding filler text.
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "as": true, "is": true, "was": true,
	"are": true, "were": true, "be": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "will": true, "would": true,
	"this": true, "that": true, "these": true, "those": true, "you": true,
	"your": true, "our": true, "their": true, "its": true, "we": true,
	"they": true, "it": true, "not": true, "can": true, "all": true,
}

// tokenize splits text into lowercase terms, dropping stopwords and tokens
// shorter than three characters.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#'
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 3 || stopwords[f] {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// termFrequencies counts token occurrences, optionally scaling every count
// by a weight. Weighted counts let recency decay shrink the contribution of
// stale experience text without changing the vocabulary.
func termFrequencies(tokens []string, weight float64) map[string]float64 {
	tf := make(map[string]float64, len(tokens))
	for _, token := range tokens {
		tf[token] += weight
	}
	return tf
}

// mergeFrequencies adds src counts into dst
func mergeFrequencies(dst, src map[string]float64) {
	for term, count := range src {
		dst[term] += count
	}
}

// cosineSimilarity computes the TF-IDF weighted cosine similarity between two
// term-frequency vectors over their shared two-document corpus. Returns a
// value in [0,1].
func cosineSimilarity(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	vocabulary := make(map[string]bool, len(a)+len(b))
	for term := range a {
		vocabulary[term] = true
	}
	for term := range b {
		vocabulary[term] = true
	}

	var dot, normA, normB float64
	for term := range vocabulary {
		// Smoothed inverse document frequency over the two-document corpus
		df := 0.0
		if a[term] > 0 {
			df++
		}
		if b[term] > 0 {
			df++
		}
		idf := math.Log(3.0/(1.0+df)) + 1.0

		wa := a[term] * idf
		wb := b[term] * idf
		dot += wa * wb
		normA += wa * wa
		normB += wb * wb
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
