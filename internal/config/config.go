package config

import (
	"errors"
	"fmt"

	"wordalign/internal/align"
	"wordalign/internal/export"
	"wordalign/internal/match"
	"wordalign/internal/source"
)

// Config represents the application configuration.
type Config struct {
	// Threshold is the minimum similarity for a match.
	Threshold float64 `yaml:"threshold"`
	// ChunkSize is the number of reference words per progress step.
	ChunkSize int `yaml:"chunk_size"`
	// Workers is the number of goroutines scoring candidates.
	Workers int `yaml:"workers"`
	// Scorer names the similarity function (see match.ScorerNames).
	Scorer string `yaml:"scorer"`
	// Suggestions is the number of nearest candidates listed per unmatched word.
	Suggestions int `yaml:"suggestions"`
	// Missing is the text shown in place of an absent match.
	Missing string `yaml:"missing"`
	// Pattern extracts word/tag pairs from the candidate file.
	Pattern string `yaml:"pattern"`

	Normalize NormalizeConfig `yaml:"normalize"`
	Output    OutputConfig    `yaml:"output"`

	NoColor bool `yaml:"no_color"`
	Verbose bool `yaml:"verbose"`
}

// NormalizeConfig selects word normalization applied to both inputs.
type NormalizeConfig struct {
	Unicode   bool `yaml:"unicode"`
	FoldCase  bool `yaml:"fold_case"`
	TrimPunct bool `yaml:"trim_punct"`
}

// OutputConfig selects where and how records are exported.
type OutputConfig struct {
	// Path of the export file. Empty means alignment_<candidates stem>.<ext>.
	Path string `yaml:"path"`
	// Format is xlsx, csv or yaml. Empty means derive from Path, else xlsx.
	Format string `yaml:"format"`
	// OmitTag leaves the Tag column out of the export.
	OmitTag bool `yaml:"omit_tag"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Threshold:   align.DefaultThreshold,
		ChunkSize:   align.DefaultChunkSize,
		Workers:     1,
		Scorer:      match.ScorerRatio,
		Suggestions: 0,
		Missing:     export.DefaultMissing,
		Pattern:     source.DefaultPattern,
	}
}

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var errs []error

	if c.ChunkSize < 1 {
		errs = append(errs, fmt.Errorf("chunk_size: %w: got %d", align.ErrInvalidChunkSize, c.ChunkSize))
	}

	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", c.Workers))
	}

	if c.Suggestions < 0 {
		errs = append(errs, fmt.Errorf("suggestions must not be negative, got %d", c.Suggestions))
	}

	if _, err := match.ScorerByName(c.Scorer); err != nil {
		errs = append(errs, fmt.Errorf("scorer: %w", err))
	}

	if _, err := source.NewExtractor(c.Pattern); err != nil {
		errs = append(errs, fmt.Errorf("pattern: %w", err))
	}

	if c.Output.Format != "" {
		if _, err := export.Lookup(c.Output.Format); err != nil {
			errs = append(errs, fmt.Errorf("output.format: %w", err))
		}
	}

	return errors.Join(errs...)
}

// AlignerConfig converts the configuration into an align.Config.
// The progress hook is left for the caller to set.
func (c *Config) AlignerConfig() (align.Config, error) {
	scorer, err := match.ScorerByName(c.Scorer)
	if err != nil {
		return align.Config{}, err
	}

	return align.Config{
		Threshold:   c.Threshold,
		ChunkSize:   c.ChunkSize,
		Scorer:      scorer,
		Workers:     c.Workers,
		Suggestions: c.Suggestions,
	}, nil
}

// NormalizeOptions converts the normalize section into match options.
func (c *Config) NormalizeOptions() match.NormalizeOptions {
	return match.NormalizeOptions{
		Unicode:   c.Normalize.Unicode,
		FoldCase:  c.Normalize.FoldCase,
		TrimPunct: c.Normalize.TrimPunct,
	}
}
