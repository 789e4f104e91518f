package match

// Similarity returns the matching-block ratio of a and b in [0, 1]:
//
//	2*M / (len(a) + len(b))
//
// where M is the total size of the matching blocks and lengths are in bytes.
// Two empty strings score 1.0 and an empty string against a non-empty one
// scores 0.0.
//
// The decomposition always runs with the lexicographically smaller string as
// its first argument, so Similarity(a, b) == Similarity(b, a) even though the
// longest-match tie-break depends on argument order.
//
// Time complexity: O(len(a) * len(b)) per decomposed window.
func Similarity(a, b string) float64 {
	if b < a {
		a, b = b, a
	}

	return ratio(len(a), len(b), func() int { return matchedSize(MatchingBlocks(a, b)) })
}

// SimilarityRunes is Similarity with lengths and blocks counted in code points.
func SimilarityRunes(a, b string) float64 {
	if b < a {
		a, b = b, a
	}

	ra, rb := []rune(a), []rune(b)

	return ratio(len(ra), len(rb), func() int { return matchedSize(matchingBlocks(ra, rb)) })
}

func ratio(lenA, lenB int, matched func() int) float64 {
	if lenA == 0 && lenB == 0 {
		return 1.0
	}

	if lenA == 0 || lenB == 0 {
		return 0.0
	}

	return 2.0 * float64(matched()) / float64(lenA+lenB)
}
