package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeOptions selects the steps applied by NormalizeWord.
type NormalizeOptions struct {
	// Unicode composes the word to NFC so that precomposed and combining
	// spellings of the same letter compare equal byte for byte.
	Unicode bool
	// FoldCase lowercases the word.
	FoldCase bool
	// TrimPunct strips leading and trailing punctuation runes.
	TrimPunct bool
}

// Enabled reports whether any normalization step is selected.
func (o NormalizeOptions) Enabled() bool {
	return o.Unicode || o.FoldCase || o.TrimPunct
}

// NormalizeWord applies the selected normalization steps to a single word.
// The pipeline runs in a fixed order:
// 1. NFC composition.
// 2. Case folding.
// 3. Punctuation trimming.
//
// A word made only of punctuation is returned unchanged rather than emptied,
// so the output never loses a token.
func NormalizeWord(s string, opts NormalizeOptions) string {
	if opts.Unicode {
		s = norm.NFC.String(s)
	}

	if opts.FoldCase {
		s = strings.ToLower(s)
	}

	if opts.TrimPunct {
		if trimmed := strings.TrimFunc(s, unicode.IsPunct); trimmed != "" {
			s = trimmed
		}
	}

	return s
}

// NormalizeWords applies NormalizeWord to every element of words and returns
// a new slice.
func NormalizeWords(words []string, opts NormalizeOptions) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = NormalizeWord(w, opts)
	}

	return out
}
