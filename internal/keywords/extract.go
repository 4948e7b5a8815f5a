// Package keywords ranks the most informative terms of a single document
// using term-frequency weighting over unigrams and bigrams.
//
// The weighting is fit on one document at a time, so the
// inverse-document-frequency component is constant per term and the ranking
// signal is effectively term frequency. Matching scores depend on this
// frequency ranking; a corpus-based IDF would change the results.
package keywords

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-match/internal/textnorm"
)

// DefaultTopN is the number of keywords returned when the caller does not
// specify a limit.
const DefaultTopN = 15

// maxFeatures caps the candidate terms considered by the weighting step.
const maxFeatures = 50

// minTokenLen filters out short tokens before frequency counting.
const minTokenLen = 4

// commonWords is the small fixed filter applied before weighting; the full
// English stop-word list is applied separately inside the weighting step.
var commonWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {},
	"this": {}, "that": {}, "have": {}, "from": {},
}

// termToken matches word tokens of at least two characters, the tokenization
// convention of the weighting step.
var termToken = regexp.MustCompile(`\b\w\w+\b`)

// Extract returns a set of at most topN ranked keywords (unigrams or
// bigrams) from the text. A non-positive topN falls back to DefaultTopN.
// Degenerate input never produces an error: when filtering leaves nothing,
// the most frequent raw tokens are returned instead, and the empty string
// yields an empty set.
func Extract(text string, topN int) map[string]struct{} {
	if topN <= 0 {
		topN = DefaultTopN
	}

	cleaned := textnorm.KeywordClean(text)
	words := strings.Fields(cleaned)

	filtered := make([]string, 0, len(words))
	for _, w := range words {
		if _, common := commonWords[w]; common {
			continue
		}
		if len(w) < minTokenLen {
			continue
		}
		filtered = append(filtered, w)
	}

	if len(filtered) == 0 {
		// Fallback: most frequent raw tokens, stop words included.
		return toSet(topFrequent(words, topN))
	}

	ranked := rankByWeight(cleaned, topN)
	if ranked == nil {
		return toSet(topFrequent(filtered, topN))
	}

	// Pad with the most frequent filtered words not already ranked.
	if len(ranked) < topN {
		present := make(map[string]struct{}, len(ranked))
		for _, term := range ranked {
			present[term] = struct{}{}
		}
		for _, w := range topFrequent(filtered, topN) {
			if len(ranked) >= topN {
				break
			}
			if _, ok := present[w]; ok {
				continue
			}
			ranked = append(ranked, w)
			present[w] = struct{}{}
		}
	}

	return toSet(ranked)
}

// rankByWeight fits the single-document term weighting over unigrams and
// bigrams and returns up to topN terms with strictly positive weight, best
// first. Returns nil when no usable tokens remain after stop-word removal.
func rankByWeight(cleaned string, topN int) []string {
	tokens := termToken.FindAllString(cleaned, -1)

	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, stop := englishStopWords[tok]; stop {
			continue
		}
		kept = append(kept, tok)
	}
	if len(kept) == 0 {
		return nil
	}

	// Term counts over unigrams and bigrams of the surviving tokens.
	counts := make(map[string]int)
	for i, tok := range kept {
		counts[tok]++
		if i+1 < len(kept) {
			counts[tok+" "+kept[i+1]]++
		}
	}

	type scored struct {
		term  string
		count int
	}
	candidates := make([]scored, 0, len(counts))
	for term, count := range counts {
		candidates = append(candidates, scored{term: term, count: count})
	}
	// Highest count first; alphabetical within equal counts so the ranking
	// is deterministic.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].count != candidates[j].count {
			return candidates[i].count > candidates[j].count
		}
		return candidates[i].term < candidates[j].term
	})

	if len(candidates) > maxFeatures {
		candidates = candidates[:maxFeatures]
	}

	limit := min(topN, len(candidates))
	ranked := make([]string, 0, limit)
	for _, c := range candidates[:limit] {
		if c.count <= 0 {
			break
		}
		ranked = append(ranked, c.term)
	}
	return ranked
}

// topFrequent returns up to n words ordered by descending frequency, with
// first occurrence breaking ties.
func topFrequent(words []string, n int) []string {
	if len(words) == 0 {
		return nil
	}

	counts := make(map[string]int, len(words))
	firstSeen := make(map[string]int, len(words))
	order := make([]string, 0, len(words))
	for i, w := range words {
		if _, seen := counts[w]; !seen {
			firstSeen[w] = i
			order = append(order, w)
		}
		counts[w]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if len(order) > n {
		order = order[:n]
	}
	return order
}

func toSet(terms []string) map[string]struct{} {
	set := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		set[term] = struct{}{}
	}
	return set
}
