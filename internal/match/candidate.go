package match

import "sort"

// Candidate is one scored entry of a candidate pool.
type Candidate struct {
	// Index is the position of the word in the pool it was ranked from.
	Index int
	Word  string
	Score float64
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores word against every entry of pool and returns the
// candidates sorted by score (descending), then by pool index.
// A nil scorer means Similarity.
func RankCandidates(word string, pool []string, score Scorer) CandidateList {
	if score == nil {
		score = Similarity
	}

	candidates := make(CandidateList, 0, len(pool))
	for i, w := range pool {
		candidates = append(candidates, Candidate{
			Index: i,
			Word:  w,
			Score: score(word, w),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Higher scores come first; equal scores keep pool order.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Index < c[j].Index
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	if n <= 0 {
		return nil
	}

	return c[:n]
}

// AboveThreshold returns candidates with score at or above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}
