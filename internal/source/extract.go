package source

import (
	"errors"
	"fmt"
	"regexp"

	"wordalign/internal/align"
)

// DefaultPattern matches the word/upos pairs emitted by the tagging step,
// e.g. {"word": "qala", "upos": "VERB"}.
const DefaultPattern = `"word":\s*"([^"]+)",\s*"upos":\s*"([^"]+)"`

// ErrPatternGroups is returned for a pattern without word and tag groups.
var ErrPatternGroups = errors.New("pattern needs a word group and a tag group")

// Extractor pulls word/tag entries out of semi-structured text.
type Extractor struct {
	pattern string
	regex   *regexp.Regexp
	wordIdx int
	tagIdx  int
}

// NewExtractor compiles pattern into an Extractor.
//
// Named groups "word" and "tag" are used when present. Otherwise the first
// two capture groups are the word and the tag, in that order.
// The empty pattern selects DefaultPattern.
func NewExtractor(pattern string) (*Extractor, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to compile extraction pattern: %w", err)
	}

	wordIdx, tagIdx := re.SubexpIndex("word"), re.SubexpIndex("tag")

	switch {
	case wordIdx > 0 && tagIdx > 0:
	case wordIdx > 0 || tagIdx > 0:
		return nil, fmt.Errorf("%w: %q names only one of word/tag", ErrPatternGroups, pattern)
	case re.NumSubexp() < 2:
		return nil, fmt.Errorf("%w: %q has %d group(s)", ErrPatternGroups, pattern, re.NumSubexp())
	default:
		wordIdx, tagIdx = 1, 2
	}

	return &Extractor{
		pattern: pattern,
		regex:   re,
		wordIdx: wordIdx,
		tagIdx:  tagIdx,
	}, nil
}

// Pattern returns the source of the compiled pattern.
func (e *Extractor) Pattern() string {
	return e.pattern
}

// Extract returns every entry matched in text, in order of appearance.
func (e *Extractor) Extract(text string) []align.Entry {
	matches := e.regex.FindAllStringSubmatch(text, -1)

	entries := make([]align.Entry, 0, len(matches))
	for _, m := range matches {
		entries = append(entries, align.Entry{
			Word: m[e.wordIdx],
			Tag:  m[e.tagIdx],
		})
	}

	return entries
}
