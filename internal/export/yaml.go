package export

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"wordalign/internal/align"
)

// YAMLWriter writes a YAML sequence with one mapping per record.
type YAMLWriter struct{}

// NewYAMLWriter creates a new yaml writer.
func NewYAMLWriter() *YAMLWriter {
	return &YAMLWriter{}
}

func (y *YAMLWriter) Name() string {
	return "yaml"
}

func (y *YAMLWriter) Description() string {
	return "YAML sequence of records"
}

func (y *YAMLWriter) FileExtension() string {
	return ".yaml"
}

type yamlRecord struct {
	Reference  string  `yaml:"reference"`
	Matched    string  `yaml:"matched"`
	Similarity float64 `yaml:"similarity"`
	Tag        string  `yaml:"tag,omitempty"`
}

func (y *YAMLWriter) Write(w io.Writer, records []align.Record, opts Options) error {
	out := make([]yamlRecord, 0, len(records))
	for _, r := range flatten(records, opts) {
		rec := yamlRecord{
			Reference:  r.Reference,
			Matched:    r.Matched,
			Similarity: r.Similarity,
		}

		if !opts.OmitTag {
			rec.Tag = r.Tag
		}

		out = append(out, rec)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}

	return enc.Close()
}
