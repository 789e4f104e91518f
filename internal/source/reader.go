package source

import (
	"fmt"
	"os"
	"strings"

	"wordalign/internal/align"
	"wordalign/internal/match"
)

// ReadText loads a UTF-8 text file and trims surrounding whitespace.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return strings.TrimSpace(string(data)), nil
}

// Tokenize splits text on Unicode whitespace.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// ReadTokens reads path and tokenizes its content.
func ReadTokens(path string) ([]string, error) {
	text, err := ReadText(path)
	if err != nil {
		return nil, err
	}

	return Tokenize(text), nil
}

// NormalizeEntries applies word normalization to every entry word and
// returns a new slice. Tags are left untouched.
func NormalizeEntries(entries []align.Entry, opts match.NormalizeOptions) []align.Entry {
	out := make([]align.Entry, len(entries))
	for i, e := range entries {
		out[i] = align.Entry{
			Word: match.NormalizeWord(e.Word, opts),
			Tag:  e.Tag,
		}
	}

	return out
}
