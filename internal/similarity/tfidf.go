// Package similarity computes a bounded TF-IDF cosine similarity between a
// resume and a job description.
package similarity

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-match/internal/keywords"
	"github.com/jonathan/resume-match/internal/textnorm"
)

const (
	// ShortTextBaseline is returned when either document has too few tokens
	// to carry any signal.
	ShortTextBaseline = 0.5
	// FallbackScore is returned when vectorization yields no features even
	// after relaxing the filters.
	FallbackScore = 0.3
	// Floor and Ceiling clamp the computed similarity. The floor avoids
	// false zero-scores on sparse overlap; the ceiling avoids false
	// high-confidence scores from coincidental exact matches.
	Floor   = 0.1
	Ceiling = 0.8

	// minTokens is the minimum whitespace-separated token count per document.
	minTokens = 5
	// maxFeatures caps the vocabulary considered by the vectorizer.
	maxFeatures = 500
	// maxDocFreqRatio excludes terms whose document frequency exceeds this
	// fraction of the corpus on the first vectorization attempt.
	maxDocFreqRatio = 0.99
)

var wordToken = regexp.MustCompile(`\b\w\w+\b`)

// Score computes the clamped cosine similarity between the two texts.
// Both are normalized first; documents with fewer than minTokens tokens
// yield ShortTextBaseline, and degenerate vocabularies yield FallbackScore.
// The result is always within [Floor, Ceiling]; Score never fails.
func Score(resumeText, jdText string) float64 {
	resumeClean := textnorm.Clean(resumeText)
	jdClean := textnorm.Clean(jdText)

	if len(strings.Fields(resumeClean)) < minTokens || len(strings.Fields(jdClean)) < minTokens {
		return ShortTextBaseline
	}

	docs := [2][]string{tokenize(resumeClean), tokenize(jdClean)}

	sim, ok := cosine(docs, true, maxDocFreqRatio)
	if !ok {
		// No features survived; retry without stop-word removal and with
		// relaxed document-frequency bounds.
		sim, ok = cosine(docs, false, 1.0)
		if !ok {
			return FallbackScore
		}
	}

	return math.Min(Ceiling, math.Max(Floor, sim))
}

func tokenize(text string) []string {
	return wordToken.FindAllString(text, -1)
}

// cosine builds unigram TF-IDF vectors for both documents and returns their
// cosine similarity. The boolean result is false when the vocabulary is
// empty after filtering.
func cosine(docs [2][]string, removeStopWords bool, maxDF float64) (float64, bool) {
	counts := [2]map[string]int{make(map[string]int), make(map[string]int)}
	for i, doc := range docs {
		for _, tok := range doc {
			if removeStopWords && keywords.IsStopWord(tok) {
				continue
			}
			counts[i][tok]++
		}
	}

	// Document frequency filter. With a two-document corpus and a ratio
	// below 1.0 this drops every term shared by both documents; the score
	// clamps further down assume that outcome.
	maxDocCount := maxDF * 2
	type termCount struct {
		term  string
		total int
	}
	vocabulary := make([]termCount, 0, len(counts[0])+len(counts[1]))
	seen := make(map[string]struct{})
	for i := range counts {
		for term := range counts[i] {
			if _, dup := seen[term]; dup {
				continue
			}
			seen[term] = struct{}{}

			df := 0
			if counts[0][term] > 0 {
				df++
			}
			if counts[1][term] > 0 {
				df++
			}
			if float64(df) > maxDocCount {
				continue
			}
			vocabulary = append(vocabulary, termCount{term: term, total: counts[0][term] + counts[1][term]})
		}
	}
	if len(vocabulary) == 0 {
		return 0, false
	}

	// Feature cap keeps the most frequent terms, alphabetical within ties.
	sort.Slice(vocabulary, func(i, j int) bool {
		if vocabulary[i].total != vocabulary[j].total {
			return vocabulary[i].total > vocabulary[j].total
		}
		return vocabulary[i].term < vocabulary[j].term
	})
	if len(vocabulary) > maxFeatures {
		vocabulary = vocabulary[:maxFeatures]
	}

	// Smoothed IDF over the two-document corpus, then L2-normalized dot
	// product.
	var dot, normA, normB float64
	for _, tc := range vocabulary {
		df := 0
		if counts[0][tc.term] > 0 {
			df++
		}
		if counts[1][tc.term] > 0 {
			df++
		}
		idf := math.Log(float64(1+2)/float64(1+df)) + 1

		a := float64(counts[0][tc.term]) * idf
		b := float64(counts[1][tc.term]) * idf
		dot += a * b
		normA += a * a
		normB += b * b
	}
	if normA == 0 || normB == 0 {
		return 0, true
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), true
}
