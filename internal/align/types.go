package align

import (
	"time"

	"wordalign/internal/diagnostic"
)

// Entry is one candidate: a word and an opaque tag.
// The aligner compares words only; the tag is carried through for reporting.
type Entry struct {
	Word string `yaml:"word"`
	Tag  string `yaml:"tag"`
}

// Match identifies the candidate a reference word was aligned to.
type Match struct {
	// Index is the position of the entry in the candidate sequence.
	Index int
	Entry Entry
}

// Record is the alignment outcome for one reference word.
type Record struct {
	Reference string
	// Match is nil when no unused candidate cleared the threshold.
	Match *Match
	// Similarity is the score of the match, or 0 when Match is nil.
	Similarity float64
}

// MatchedWord returns the matched candidate word and whether there is one.
func (r Record) MatchedWord() (string, bool) {
	if r.Match == nil {
		return "", false
	}

	return r.Match.Entry.Word, true
}

// MatchedTag returns the tag of the matched candidate and whether there is one.
func (r Record) MatchedTag() (string, bool) {
	if r.Match == nil {
		return "", false
	}

	return r.Match.Entry.Tag, true
}

// ChunkProgress is reported after each chunk of the reference is processed.
// Start and End are the half-open reference bounds of the chunk.
type ChunkProgress struct {
	Start   int
	End     int
	Total   int
	Matched int // cumulative
}

// Summary aggregates one run.
type Summary struct {
	References       int
	Candidates       int
	Matched          int
	Unmatched        int
	UnusedCandidates int
	// MeanSimilarity is averaged over matched records only.
	MeanSimilarity float64
	// Coverage is Matched / References, or 0 for an empty reference.
	Coverage float64
	Elapsed  time.Duration
}

// Result is the full output of Aligner.Align.
type Result struct {
	Records     []Record
	Diagnostics diagnostic.Diagnostics
	Summary     Summary
}

// Words projects entries to their words.
func Words(entries []Entry) []string {
	words := make([]string, len(entries))
	for i, e := range entries {
		words[i] = e.Word
	}

	return words
}
