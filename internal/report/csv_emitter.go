package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/SscSPs/contracts_tracker/internal/core/domain"
)

// utf8BOM lets spreadsheet applications detect the encoding of Cyrillic text.
const utf8BOM = "\xEF\xBB\xBF"

// CSVEmitter writes the values of a workbook as CSV with all styling dropped.
// Sheets follow each other separated by an empty record.
type CSVEmitter struct{}

func (CSVEmitter) Format() domain.ExportFormat { return domain.FormatCSV }
func (CSVEmitter) ContentType() string         { return "text/csv; charset=utf-8" }
func (CSVEmitter) Extension() string           { return "csv" }

// Encode writes one record per row, padded to the sheet width.
func (CSVEmitter) Encode(w io.Writer, wb Workbook) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}

	cw := csv.NewWriter(w)
	for i, sheet := range wb.Sheets {
		width := sheet.Width()
		if i > 0 {
			if err := cw.Write(make([]string, width)); err != nil {
				return fmt.Errorf("failed to write csv: %w", err)
			}
		}
		for _, row := range sheet.Rows {
			record := make([]string, width)
			for c, cell := range row {
				record[c] = cellText(cell)
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write csv: %w", err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

func cellText(c Cell) string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return c.Number.StringFixed(2)
	}
	return ""
}
