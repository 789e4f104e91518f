package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"wordalign/internal/align"
)

// CSVWriter writes comma-separated values with a header row.
type CSVWriter struct{}

// NewCSVWriter creates a new csv writer.
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

func (c *CSVWriter) Name() string {
	return "csv"
}

func (c *CSVWriter) Description() string {
	return "Comma-separated values for spreadsheet import"
}

func (c *CSVWriter) FileExtension() string {
	return ".csv"
}

func (c *CSVWriter) Write(w io.Writer, records []align.Record, opts Options) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header(opts)); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, r := range flatten(records, opts) {
		line := []string{r.Reference, r.Matched, strconv.FormatFloat(r.Similarity, 'f', 4, 64)}
		if !opts.OmitTag {
			line = append(line, r.Tag)
		}

		if err := cw.Write(line); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}
