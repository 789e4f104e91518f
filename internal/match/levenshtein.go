package match

import "unicode/utf8"

// Levenshtein computes the edit distance between two strings in code points:
// the minimum number of single-rune insertions, deletions or substitutions
// that turn one into the other.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	return editDistance([]rune(a), []rune(b))
}

// LevenshteinNormalized returns 1 - distance/max(len(a), len(b)), with lengths
// in code points. Identical strings (including two empty ones) score 1.0.
func LevenshteinNormalized(a, b string) float64 {
	if a == b {
		return 1.0
	}

	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))

	return 1.0 - float64(Levenshtein(a, b))/float64(maxLen)
}

func editDistance[T comparable](a, b []T) int {
	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	// Keep a as the shorter sequence so the rows stay small.
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}
