package match

import (
	"testing"
)

func TestNormalizeWord(t *testing.T) {
	all := NormalizeOptions{Unicode: true, FoldCase: true, TrimPunct: true}

	tests := []struct {
		name     string
		input    string
		opts     NormalizeOptions
		expected string
	}{
		// Disabled pipeline is the identity
		{"identity", "Word,", NormalizeOptions{}, "Word,"},

		// NFC composition: "e" + combining acute becomes "é"
		{"nfc", "cafe\u0301", NormalizeOptions{Unicode: true}, "caf\u00e9"},
		{"nfc already composed", "caf\u00e9", NormalizeOptions{Unicode: true}, "caf\u00e9"},

		// Case folding
		{"fold", "NOUN", NormalizeOptions{FoldCase: true}, "noun"},

		// Punctuation trimming
		{"trim trailing", "word.", NormalizeOptions{TrimPunct: true}, "word"},
		{"trim both", "«word»", NormalizeOptions{TrimPunct: true}, "word"},
		{"keep inner", "don't", NormalizeOptions{TrimPunct: true}, "don't"},
		{"punctuation only", "...", NormalizeOptions{TrimPunct: true}, "..."},

		// Combined
		{"all", "\"Cafe\u0301!\"", all, "caf\u00e9"},
		{"empty", "", all, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeWord(tt.input, tt.opts)
			if result != tt.expected {
				t.Errorf("NormalizeWord(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeWords(t *testing.T) {
	in := []string{"The", "Cat."}
	out := NormalizeWords(in, NormalizeOptions{FoldCase: true, TrimPunct: true})

	if len(out) != 2 || out[0] != "the" || out[1] != "cat" {
		t.Errorf("NormalizeWords() = %v", out)
	}

	// Input slice is left untouched
	if in[0] != "The" || in[1] != "Cat." {
		t.Errorf("NormalizeWords() modified its input: %v", in)
	}
}

func TestNormalizeOptions_Enabled(t *testing.T) {
	if (NormalizeOptions{}).Enabled() {
		t.Error("zero NormalizeOptions should be disabled")
	}

	if !(NormalizeOptions{FoldCase: true}).Enabled() {
		t.Error("FoldCase should enable normalization")
	}
}
