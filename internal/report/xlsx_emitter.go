package report

import (
	"fmt"
	"io"

	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// XLSXEmitter writes Office Open XML workbooks with excelize.
type XLSXEmitter struct{}

func (XLSXEmitter) Format() domain.ExportFormat { return domain.FormatXLSX }
func (XLSXEmitter) ContentType() string         { return xlsxContentType }
func (XLSXEmitter) Extension() string           { return "xlsx" }

// Encode writes every sheet of wb with its values, styles, merges and widths.
func (XLSXEmitter) Encode(w io.Writer, wb Workbook) error {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	styles := make(map[Style]int)

	for i, sheet := range wb.Sheets {
		name := sheet.Name
		if name == "" {
			name = fmt.Sprintf("Sheet%d", i+1)
		}
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to add sheet %q: %w", name, err)
		}

		if err := writeSheet(f, name, sheet, styles); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, name string, sheet Sheet, styles map[Style]int) error {
	for r, row := range sheet.Rows {
		for c, cell := range row {
			ref := CellRef(r, c)
			switch cell.Kind {
			case CellText:
				if err := f.SetCellStr(name, ref, cell.Text); err != nil {
					return fmt.Errorf("failed to set %s!%s: %w", name, ref, err)
				}
			case CellNumber:
				if err := f.SetCellFloat(name, ref, cell.Number.InexactFloat64(), -1, 64); err != nil {
					return fmt.Errorf("failed to set %s!%s: %w", name, ref, err)
				}
			}
			if !cell.Styled {
				continue
			}
			id, err := styleID(f, styles, cell.Style)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(name, ref, ref, id); err != nil {
				return fmt.Errorf("failed to style %s!%s: %w", name, ref, err)
			}
		}
	}

	for _, m := range sheet.Merges {
		if m.Single() {
			continue
		}
		if err := f.MergeCell(name, m.TopLeft(), m.BottomRight()); err != nil {
			return fmt.Errorf("failed to merge %s!%s:%s: %w", name, m.TopLeft(), m.BottomRight(), err)
		}
	}

	for i, width := range sheet.ColumnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to name column %d: %w", i+1, err)
		}
		if err := f.SetColWidth(name, col, col, width); err != nil {
			return fmt.Errorf("failed to set width of %s!%s: %w", name, col, err)
		}
	}
	return nil
}

// styleID registers each distinct Style once per file.
func styleID(f *excelize.File, cache map[Style]int, s Style) (int, error) {
	if id, ok := cache[s]; ok {
		return id, nil
	}
	id, err := f.NewStyle(toExcelStyle(s))
	if err != nil {
		return 0, fmt.Errorf("failed to register style: %w", err)
	}
	cache[s] = id
	return id, nil
}

func toExcelStyle(s Style) *excelize.Style {
	out := &excelize.Style{
		Font: &excelize.Font{
			Bold:  s.Bold,
			Size:  s.Size,
			Color: string(s.FontColor),
		},
	}
	if s.Fill != "" {
		out.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{string(s.Fill)}}
	}
	if s.HAlign != "" || s.VCenter {
		out.Alignment = &excelize.Alignment{Horizontal: string(s.HAlign), WrapText: true}
		if s.VCenter {
			out.Alignment.Vertical = "center"
		}
	}
	for _, side := range []struct {
		name  string
		color Color
	}{
		{"top", s.Borders.Top},
		{"left", s.Borders.Left},
		{"bottom", s.Borders.Bottom},
		{"right", s.Borders.Right},
	} {
		if side.color == "" {
			continue
		}
		out.Border = append(out.Border, excelize.Border{Type: side.name, Color: string(side.color), Style: 1})
	}
	return out
}
