package match

import (
	"errors"
	"fmt"
	"sort"

	"github.com/antzucaro/matchr"
)

// Scorer compares two words and returns a similarity in [0, 1].
// Implementations must be pure and safe for concurrent use.
type Scorer func(a, b string) float64

// Scorer names accepted by ScorerByName.
const (
	ScorerRatio       = "ratio"
	ScorerRatioRunes  = "ratio-runes"
	ScorerLevenshtein = "levenshtein"
	ScorerJaroWinkler = "jaro-winkler"
)

// ErrUnknownScorer is returned by ScorerByName for an unregistered name.
var ErrUnknownScorer = errors.New("unknown scorer")

var scorers = map[string]Scorer{
	ScorerRatio:       Similarity,
	ScorerRatioRunes:  SimilarityRunes,
	ScorerLevenshtein: LevenshteinNormalized,
	ScorerJaroWinkler: JaroWinkler,
}

// ScorerByName resolves a scorer by name. The empty name selects the
// matching-block ratio.
func ScorerByName(name string) (Scorer, error) {
	if name == "" {
		return Similarity, nil
	}

	s, ok := scorers[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownScorer, name, ScorerNames())
	}

	return s, nil
}

// ScorerNames lists the registered scorer names in sorted order.
func ScorerNames() []string {
	names := make([]string, 0, len(scorers))
	for name := range scorers {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// JaroWinkler returns the Jaro-Winkler similarity of a and b.
func JaroWinkler(a, b string) float64 {
	if a == "" && b == "" {
		return 1.0
	}

	if a == "" || b == "" {
		return 0.0
	}

	return matchr.JaroWinkler(a, b, false)
}
