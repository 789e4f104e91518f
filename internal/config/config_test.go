package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordalign/internal/align"
	"wordalign/internal/export"
	"wordalign/internal/match"
	"wordalign/internal/source"
)

func TestParse(t *testing.T) {
	yaml := `
threshold: 0.7
chunk_size: 10
workers: 4
scorer: ratio-runes
suggestions: 3
missing: "-"
normalize:
  unicode: true
  fold_case: true
output:
  path: out/result.csv
  format: csv
  omit_tag: true
verbose: true
`

	cfg, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 0.7, cfg.Threshold)
	assert.Equal(t, 10, cfg.ChunkSize)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, match.ScorerRatioRunes, cfg.Scorer)
	assert.Equal(t, 3, cfg.Suggestions)
	assert.Equal(t, "-", cfg.Missing)
	assert.True(t, cfg.Normalize.Unicode)
	assert.True(t, cfg.Normalize.FoldCase)
	assert.False(t, cfg.Normalize.TrimPunct)
	assert.Equal(t, "out/result.csv", cfg.Output.Path)
	assert.Equal(t, "csv", cfg.Output.Format)
	assert.True(t, cfg.Output.OmitTag)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.NoColor)

	// Untouched keys keep their defaults
	assert.Equal(t, source.DefaultPattern, cfg.Pattern)
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("{}"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 0.5, cfg.Threshold)
	assert.Equal(t, 50, cfg.ChunkSize)
	assert.Equal(t, export.DefaultMissing, cfg.Missing)
}

func TestParse_ExplicitEmptyStrings(t *testing.T) {
	cfg, err := Parse([]byte("scorer: \"\"\npattern: \"\"\nmissing: \"\"\n"))
	require.NoError(t, err)

	assert.Equal(t, match.ScorerRatio, cfg.Scorer)
	assert.Equal(t, source.DefaultPattern, cfg.Pattern)
	assert.Equal(t, export.DefaultMissing, cfg.Missing)
}

func TestParse_ZeroThresholdIsKept(t *testing.T) {
	cfg, err := Parse([]byte("threshold: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, cfg.Threshold)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		is   error
	}{
		{"chunk size", "chunk_size: 0", align.ErrInvalidChunkSize},
		{"scorer", "scorer: soundex", match.ErrUnknownScorer},
		{"pattern groups", `pattern: "(\\w+)"`, source.ErrPatternGroups},
		{"format", "output: {format: docx}", export.ErrUnknownFormat},
		{"workers", "workers: 0", nil},
		{"suggestions", "suggestions: -1", nil},
		{"bad yaml", "threshold: [", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)

			if tt.is != nil {
				assert.True(t, errors.Is(err, tt.is), "error %v should wrap %v", err, tt.is)
			}
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.ChunkSize = 0
	cfg.Scorer = "nope"

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, align.ErrInvalidChunkSize)
	assert.ErrorIs(t, err, match.ErrUnknownScorer)
}

func TestLoadFile(t *testing.T) {
	cfg, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	dir := t.TempDir()
	path := filepath.Join(dir, "wordalign.yaml")
	require.NoError(t, os.WriteFile(path, []byte("threshold: 0.8\n"), 0o644))

	cfg, err = LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 0.8, cfg.Threshold)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestFindFile(t *testing.T) {
	dir := t.TempDir()
	assert.Empty(t, FindFile(dir))

	hidden := filepath.Join(dir, ".wordalign.yml")
	require.NoError(t, os.WriteFile(hidden, []byte("{}"), 0o644))
	assert.Equal(t, hidden, FindFile(dir))

	visible := filepath.Join(dir, "wordalign.yaml")
	require.NoError(t, os.WriteFile(visible, []byte("{}"), 0o644))
	assert.Equal(t, visible, FindFile(dir))
}

func TestAlignerConfig(t *testing.T) {
	cfg := Default()
	cfg.Scorer = match.ScorerLevenshtein
	cfg.Workers = 3
	cfg.Suggestions = 2

	ac, err := cfg.AlignerConfig()
	require.NoError(t, err)

	assert.Equal(t, cfg.Threshold, ac.Threshold)
	assert.Equal(t, cfg.ChunkSize, ac.ChunkSize)
	assert.Equal(t, 3, ac.Workers)
	assert.Equal(t, 2, ac.Suggestions)
	require.NotNil(t, ac.Scorer)
	assert.Equal(t, match.LevenshteinNormalized("kitten", "sitting"), ac.Scorer("kitten", "sitting"))

	cfg.Scorer = "nope"
	_, err = cfg.AlignerConfig()
	assert.ErrorIs(t, err, match.ErrUnknownScorer)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Normalize.FoldCase = true

	data, err := Marshal(cfg)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
