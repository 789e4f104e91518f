package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"wordalign/internal/align"
)

// SheetName is the worksheet the xlsx writer fills.
const SheetName = "Alignment"

// XLSXWriter writes an Excel workbook with one worksheet.
type XLSXWriter struct{}

// NewXLSXWriter creates a new xlsx writer.
func NewXLSXWriter() *XLSXWriter {
	return &XLSXWriter{}
}

func (x *XLSXWriter) Name() string {
	return "xlsx"
}

func (x *XLSXWriter) Description() string {
	return "Excel workbook"
}

func (x *XLSXWriter) FileExtension() string {
	return ".xlsx"
}

func (x *XLSXWriter) Write(w io.Writer, records []align.Record, opts Options) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to name worksheet: %w", err)
	}

	cols := header(opts)
	if err := setRow(f, 1, toCells(cols)); err != nil {
		return err
	}

	for i, r := range flatten(records, opts) {
		cells := []any{r.Reference, r.Matched, r.Similarity}
		if !opts.OmitTag {
			cells = append(cells, r.Tag)
		}

		if err := setRow(f, i+2, cells); err != nil {
			return err
		}
	}

	last, err := excelize.ColumnNumberToName(len(cols))
	if err != nil {
		return err
	}

	if err := f.SetColWidth(SheetName, "A", last, 20); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}

func setRow(f *excelize.File, n int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}

	if err := f.SetSheetRow(SheetName, cell, &cells); err != nil {
		return fmt.Errorf("failed to write row %d: %w", n, err)
	}

	return nil
}

func toCells(values []string) []any {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}

	return cells
}
