package align

import (
	"golang.org/x/sync/errgroup"
)

// run is the mutable state of a single Align call. It is never shared
// between calls.
type run struct {
	config Config
	words  []string
	// owner[i] is the reference position that took candidate i, or -1.
	owner []int
	// scores is scratch space for parallel scoring.
	scores []float64
}

// scanOutcome is the result of scanning the unused candidates for one word.
type scanOutcome struct {
	best      int     // candidate index, or -1
	bestScore float64 // 0 when best is -1
	ties      int     // later candidates scoring exactly bestScore
	top       float64 // highest unused score regardless of threshold
	unused    int     // unused candidates scanned
}

func newRun(config Config, words []string) *run {
	owner := make([]int, len(words))
	for i := range owner {
		owner[i] = -1
	}

	r := &run{
		config: config,
		words:  words,
		owner:  owner,
	}

	// scores is non-nil exactly when scan takes the parallel path.
	if config.Workers > 1 && len(words) > 1 {
		r.scores = make([]float64, len(words))
	}

	return r
}

// scan picks the best unused candidate for word. It does not mark it used.
func (r *run) scan(word string) scanOutcome {
	if r.scores != nil {
		r.scoreParallel(word)
	}

	out := scanOutcome{best: -1}

	for i, w := range r.words {
		if r.owner[i] >= 0 {
			continue
		}

		var s float64
		if r.scores != nil {
			s = r.scores[i]
		} else {
			s = r.config.Scorer(word, w)
		}

		out.unused++
		out.top = max(out.top, s)

		if s > out.bestScore && s >= r.config.Threshold {
			out.best = i
			out.bestScore = s
			out.ties = 0
		} else if out.best >= 0 && s == out.bestScore {
			out.ties++
		}
	}

	return out
}

// scoreParallel fills r.scores for every unused candidate. Selection still
// runs sequentially in scan over the filled scores, so the first-match-wins
// order is the same as in the sequential path.
func (r *run) scoreParallel(word string) {
	n := len(r.words)
	workers := min(r.config.Workers, n)
	shard := (n + workers - 1) / workers

	var g errgroup.Group

	g.SetLimit(workers)

	for lo := 0; lo < n; lo += shard {
		hi := min(lo+shard, n)

		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if r.owner[i] >= 0 {
					continue
				}

				r.scores[i] = r.config.Scorer(word, r.words[i])
			}

			return nil
		})
	}

	// Scorers cannot fail.
	_ = g.Wait()
}
