package align

import (
	"errors"
	"fmt"
	"math"
	"time"

	"wordalign/internal/diagnostic"
	"wordalign/internal/match"
)

// Defaults used by DefaultConfig.
const (
	DefaultThreshold = 0.5
	DefaultChunkSize = 50
)

// minSuggestionScore excludes candidates that share no character with the word.
const minSuggestionScore = math.SmallestNonzeroFloat64

// ErrInvalidChunkSize is returned when the chunk size is below 1.
var ErrInvalidChunkSize = errors.New("chunk size must be at least 1")

// Config configures an Aligner.
type Config struct {
	// Threshold is the minimum score a candidate needs to be matched.
	// Values above 1 disable matching; values at or below 0 accept any
	// candidate that shares at least one character.
	Threshold float64
	// ChunkSize groups reference words for progress reporting. It never
	// changes the records.
	ChunkSize int
	// Scorer compares a reference word with a candidate word.
	// Nil means match.Similarity.
	Scorer match.Scorer
	// Workers is the number of goroutines scoring one reference word's
	// candidates. Values below 2 score sequentially.
	Workers int
	// Suggestions is the number of nearest candidates attached to each
	// unmatched_reference warning. Zero skips the extra ranking pass.
	Suggestions int
	// OnChunk, if set, is called after each chunk.
	OnChunk func(ChunkProgress)
}

// DefaultConfig returns the default alignment configuration.
func DefaultConfig() Config {
	return Config{
		Threshold: DefaultThreshold,
		ChunkSize: DefaultChunkSize,
		Scorer:    match.Similarity,
		Workers:   1,
	}
}

// Aligner performs greedy, reference-ordered alignment.
// An Aligner holds no state between calls and is safe for concurrent use.
type Aligner struct {
	config Config
}

// NewAligner creates a new Aligner.
func NewAligner(config Config) *Aligner {
	if config.Scorer == nil {
		config.Scorer = match.Similarity
	}

	if config.Workers < 1 {
		config.Workers = 1
	}

	return &Aligner{config: config}
}

// Config returns the effective configuration.
func (a *Aligner) Config() Config {
	return a.config
}

// Align pairs every reference word with its best unused candidate.
//
// Reference words are processed strictly in order. For each word, every
// unused candidate is scored in index order, and a candidate replaces the
// current best only when its score is strictly greater than the best so far
// and at least the threshold. On equal top scores the earliest candidate wins.
// A matched candidate is used up for the rest of the run.
//
// The result has exactly one record per reference word, in reference order,
// and is the same for every valid chunk size.
//
// Cost is O(R * C * L^2) for R reference words, C candidates and words of
// length L.
func (a *Aligner) Align(reference []string, candidates []Entry) (*Result, error) {
	if a.config.ChunkSize < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChunkSize, a.config.ChunkSize)
	}

	start := time.Now()

	run := newRun(a.config, Words(candidates))
	result := &Result{
		Records: make([]Record, 0, len(reference)),
	}

	if len(reference) == 0 {
		result.Diagnostics.AddInfo(diagnostic.CodeEmptyInput, "reference sequence is empty", -1, "")
	}

	if len(candidates) == 0 {
		result.Diagnostics.AddInfo(diagnostic.CodeEmptyInput, "candidate sequence is empty", -1, "")
	}

	matched := 0

	for chunkStart := 0; chunkStart < len(reference); chunkStart += a.config.ChunkSize {
		chunkEnd := min(chunkStart+a.config.ChunkSize, len(reference))

		for pos := chunkStart; pos < chunkEnd; pos++ {
			word := reference[pos]

			outcome := run.scan(word)
			if outcome.best < 0 {
				result.Records = append(result.Records, Record{Reference: word})
				a.explainUnmatched(&result.Diagnostics, run, pos, word, outcome)

				continue
			}

			run.owner[outcome.best] = pos
			matched++

			result.Records = append(result.Records, Record{
				Reference: word,
				Match: &Match{
					Index: outcome.best,
					Entry: candidates[outcome.best],
				},
				Similarity: outcome.bestScore,
			})

			if outcome.ties > 0 {
				result.Diagnostics.AddInfo(diagnostic.CodeTieBroken,
					fmt.Sprintf("%d later candidate(s) tied at %.2f; kept candidate #%d",
						outcome.ties, outcome.bestScore, outcome.best),
					pos, word)
			}
		}

		if a.config.OnChunk != nil {
			a.config.OnChunk(ChunkProgress{
				Start:   chunkStart,
				End:     chunkEnd,
				Total:   len(reference),
				Matched: matched,
			})
		}
	}

	result.Summary = summarize(result.Records, len(candidates), time.Since(start))

	if n := result.Summary.UnusedCandidates; n > 0 && len(reference) > 0 {
		result.Diagnostics.AddInfo(diagnostic.CodeUnusedCandidates,
			fmt.Sprintf("%d of %d candidates were not matched", n, len(candidates)), -1, "")
	}

	return result, nil
}

// Align is a convenience wrapper around Aligner.Align with the default
// scorer that returns only the records.
func Align(reference []string, candidates []Entry, threshold float64, chunkSize int) ([]Record, error) {
	config := DefaultConfig()
	config.Threshold = threshold
	config.ChunkSize = chunkSize

	result, err := NewAligner(config).Align(reference, candidates)
	if err != nil {
		return nil, err
	}

	return result.Records, nil
}

// explainUnmatched records why a reference word got no match.
func (a *Aligner) explainUnmatched(diags *diagnostic.Diagnostics, r *run, pos int, word string, o scanOutcome) {
	var reason string

	switch {
	case len(r.words) == 0:
		reason = "no candidates"
	case o.unused == 0:
		reason = "no unused candidates"
	case o.top <= 0:
		reason = "no unused candidate shares a character"
	default:
		reason = fmt.Sprintf("best available %.2f below threshold %.2f", o.top, a.config.Threshold)
	}

	var suggestions []string

	if a.config.Suggestions > 0 {
		ranked := match.RankCandidates(word, r.words, a.config.Scorer).AboveThreshold(minSuggestionScore)
		for _, c := range ranked.Top(a.config.Suggestions) {
			if owner := r.owner[c.Index]; owner >= 0 {
				suggestions = append(suggestions, fmt.Sprintf("%s %.2f (taken by #%d)", c.Word, c.Score, owner))
			} else {
				suggestions = append(suggestions, fmt.Sprintf("%s %.2f", c.Word, c.Score))
			}
		}
	}

	diags.AddWarning(diagnostic.CodeUnmatchedReference, reason, pos, word, suggestions...)
}
