package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankCandidates(t *testing.T) {
	pool := []string{"dogs", "cat", "cats", "cat", "bird"}

	candidates := RankCandidates("cat", pool, nil)
	require.Len(t, candidates, 5)

	// Exact matches first, in pool order
	assert.Equal(t, 1, candidates[0].Index)
	assert.Equal(t, 3, candidates[1].Index)
	assert.Equal(t, 1.0, candidates[0].Score)

	// Then "cats"
	assert.Equal(t, "cats", candidates[2].Word)
	assert.InDelta(t, 6.0/7.0, candidates[2].Score, 1e-9)

	for i := 1; i < len(candidates); i++ {
		assert.GreaterOrEqual(t, candidates[i-1].Score, candidates[i].Score)
	}
}

func TestRankCandidates_CustomScorer(t *testing.T) {
	constant := func(a, b string) float64 { return 0.5 }

	candidates := RankCandidates("x", []string{"c", "b", "a"}, constant)
	require.Len(t, candidates, 3)

	// Equal scores keep pool order
	words := make([]string, len(candidates))
	for i, c := range candidates {
		words[i] = c.Word
	}

	assert.Equal(t, []string{"c", "b", "a"}, words)
}

func TestRankCandidates_EmptyPool(t *testing.T) {
	candidates := RankCandidates("cat", nil, nil)
	assert.Empty(t, candidates)
}

func TestCandidateList_Top(t *testing.T) {
	candidates := CandidateList{
		{Index: 0, Word: "A", Score: 0.9},
		{Index: 1, Word: "B", Score: 0.8},
		{Index: 2, Word: "C", Score: 0.7},
	}

	top2 := candidates.Top(2)
	if len(top2) != 2 {
		t.Errorf("Expected 2 candidates, got %d", len(top2))
	}

	// Request more than available
	top10 := candidates.Top(10)
	if len(top10) != 3 {
		t.Errorf("Expected 3 candidates (all), got %d", len(top10))
	}

	if top0 := candidates.Top(0); len(top0) != 0 {
		t.Errorf("Expected no candidates, got %d", len(top0))
	}
}

func TestCandidateList_AboveThreshold(t *testing.T) {
	candidates := CandidateList{
		{Word: "A", Score: 0.9},
		{Word: "B", Score: 0.7},
		{Word: "C", Score: 0.5},
		{Word: "D", Score: 0.3},
	}

	above := candidates.AboveThreshold(0.7)
	if len(above) != 2 {
		t.Errorf("Expected 2 candidates at or above 0.7, got %d", len(above))
	}
}
