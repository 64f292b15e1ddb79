package consensus

import "strings"

const (
	// stalemateWindow is how many trailing statements the heuristic inspects.
	stalemateWindow = 6
	// similarityThreshold is the Jaccard similarity above which two
	// statements count as a repeated pair.
	similarityThreshold = 0.7
	// stalematePairLimit is how many similar pairs are tolerated before
	// the discussion counts as stuck.
	stalematePairLimit = 2
)

// detectStalemate reports whether the trailing statements repeat each
// other: more than stalematePairLimit unordered pairs with word-set
// Jaccard similarity above the threshold.
func detectStalemate(statements []Statement) bool {
	if len(statements) < stalemateWindow {
		return false
	}

	recent := statements[len(statements)-stalemateWindow:]
	wordSets := make([]map[string]bool, len(recent))
	for i, s := range recent {
		wordSets[i] = wordSet(s.Body)
	}

	similarCount := 0
	for i := 0; i < len(wordSets); i++ {
		for j := i + 1; j < len(wordSets); j++ {
			if len(wordSets[i]) == 0 || len(wordSets[j]) == 0 {
				continue
			}
			if jaccard(wordSets[i], wordSets[j]) > similarityThreshold {
				similarCount++
			}
		}
	}

	return similarCount > stalematePairLimit
}

// wordSet lowercases and splits a body into its distinct words.
func wordSet(body string) map[string]bool {
	words := strings.Fields(strings.ToLower(body))
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// jaccard computes |a ∩ b| / |a ∪ b| for non-empty sets.
func jaccard(a, b map[string]bool) float64 {
	intersection := 0
	for w := range a {
		if b[w] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
