// Package dedup guards against serving near-duplicate questions by
// comparing candidate text against recently served text with Jaccard
// word-set similarity.
package dedup

import "strings"

// SimilarityThreshold is the Jaccard score above which two question
// texts are treated as duplicates.
const SimilarityThreshold = 0.7

// wordSet lowercases the text, strips everything that is not a letter,
// digit, or space, and splits into a set of words.
func wordSet(text string) map[string]struct{} {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	set := make(map[string]struct{})
	for _, w := range strings.Fields(b.String()) {
		set[w] = struct{}{}
	}
	return set
}

// Similarity returns the Jaccard similarity of the word sets of a and
// b, in [0, 1]. Two empty texts score 0, not 1: an empty candidate
// should never be rejected as a duplicate of empty history.
func Similarity(a, b string) float64 {
	sa := wordSet(a)
	sb := wordSet(b)
	if len(sa) == 0 || len(sb) == 0 {
		return 0
	}

	inter := 0
	for w := range sa {
		if _, ok := sb[w]; ok {
			inter++
		}
	}
	union := len(sa) + len(sb) - inter
	return float64(inter) / float64(union)
}

// TooSimilar reports whether candidate crosses the similarity
// threshold against any of the previous texts.
func TooSimilar(candidate string, previous []string) bool {
	for _, p := range previous {
		if Similarity(candidate, p) > SimilarityThreshold {
			return true
		}
	}
	return false
}
