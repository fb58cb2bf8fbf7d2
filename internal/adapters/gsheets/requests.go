package gsheets

import (
	"strconv"

	"github.com/SscSPs/contracts_tracker/internal/report"
	"google.golang.org/api/sheets/v4"
)

// pixelsPerWidthUnit converts spreadsheet column width units to pixels.
const pixelsPerWidthUnit = 7

// SheetID is the sheet id assigned to the i-th sheet of a workbook. Ids start at
// 1 because a zero id is dropped from API payloads.
func SheetID(i int) int64 {
	return int64(i + 1)
}

// NewSpreadsheet describes an empty spreadsheet sized to hold wb.
func NewSpreadsheet(title string, wb report.Workbook) *sheets.Spreadsheet {
	s := &sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: title},
	}
	for i, sheet := range wb.Sheets {
		s.Sheets = append(s.Sheets, &sheets.Sheet{
			Properties: &sheets.SheetProperties{
				SheetId: SheetID(i),
				Title:   sheet.Name,
				Index:   int64(i),
				GridProperties: &sheets.GridProperties{
					RowCount:    int64(max(len(sheet.Rows), 1)),
					ColumnCount: int64(max(sheet.Width(), 1)),
				},
			},
		})
	}
	return s
}

// BuildRequests translates wb into batch update requests: one UpdateCells per
// sheet followed by its merges and column widths.
func BuildRequests(wb report.Workbook) []*sheets.Request {
	var requests []*sheets.Request
	for i, sheet := range wb.Sheets {
		id := SheetID(i)

		if len(sheet.Rows) > 0 {
			rows := make([]*sheets.RowData, len(sheet.Rows))
			for r, row := range sheet.Rows {
				values := make([]*sheets.CellData, len(row))
				for c, cell := range row {
					values[c] = cellData(cell)
				}
				rows[r] = &sheets.RowData{Values: values}
			}
			requests = append(requests, &sheets.Request{
				UpdateCells: &sheets.UpdateCellsRequest{
					Start:  &sheets.GridCoordinate{SheetId: id},
					Rows:   rows,
					Fields: "userEnteredValue,userEnteredFormat",
				},
			})
		}

		for _, m := range sheet.Merges {
			if m.Single() {
				continue
			}
			requests = append(requests, &sheets.Request{
				MergeCells: &sheets.MergeCellsRequest{
					MergeType: "MERGE_ALL",
					Range: &sheets.GridRange{
						SheetId:          id,
						StartRowIndex:    int64(m.StartRow),
						EndRowIndex:      int64(m.EndRow + 1),
						StartColumnIndex: int64(m.StartCol),
						EndColumnIndex:   int64(m.EndCol + 1),
					},
				},
			})
		}

		for c, width := range sheet.ColumnWidths {
			requests = append(requests, &sheets.Request{
				UpdateDimensionProperties: &sheets.UpdateDimensionPropertiesRequest{
					Range: &sheets.DimensionRange{
						SheetId:    id,
						Dimension:  "COLUMNS",
						StartIndex: int64(c),
						EndIndex:   int64(c + 1),
					},
					Properties: &sheets.DimensionProperties{PixelSize: int64(width * pixelsPerWidthUnit)},
					Fields:     "pixelSize",
				},
			})
		}
	}
	return requests
}

func cellData(cell report.Cell) *sheets.CellData {
	data := &sheets.CellData{}
	switch cell.Kind {
	case report.CellText:
		text := cell.Text
		data.UserEnteredValue = &sheets.ExtendedValue{StringValue: &text}
	case report.CellNumber:
		n := cell.Number.InexactFloat64()
		data.UserEnteredValue = &sheets.ExtendedValue{NumberValue: &n}
	}
	if cell.Styled {
		data.UserEnteredFormat = cellFormat(cell.Style)
	}
	return data
}

func cellFormat(s report.Style) *sheets.CellFormat {
	f := &sheets.CellFormat{
		TextFormat: &sheets.TextFormat{
			Bold:            s.Bold,
			FontSize:        int64(s.Size),
			ForegroundColor: Color(s.FontColor),
		},
		BackgroundColor:     Color(s.Fill),
		HorizontalAlignment: alignment(s.HAlign),
		WrapStrategy:        "WRAP",
	}
	if s.VCenter {
		f.VerticalAlignment = "MIDDLE"
	}
	if s.Borders != (report.Borders{}) {
		f.Borders = &sheets.Borders{
			Top:    border(s.Borders.Top),
			Left:   border(s.Borders.Left),
			Bottom: border(s.Borders.Bottom),
			Right:  border(s.Borders.Right),
		}
	}
	return f
}

func alignment(a report.HAlign) string {
	switch a {
	case report.AlignLeft:
		return "LEFT"
	case report.AlignCenter:
		return "CENTER"
	case report.AlignRight:
		return "RIGHT"
	}
	return ""
}

func border(c report.Color) *sheets.Border {
	if c == "" {
		return nil
	}
	return &sheets.Border{Style: "SOLID", Color: Color(c)}
}

// Color converts an RRGGBB color to the API's 0..1 channel representation.
// Empty or malformed colors yield nil.
func Color(c report.Color) *sheets.Color {
	if len(c) != 6 {
		return nil
	}
	rgb, err := strconv.ParseUint(string(c), 16, 32)
	if err != nil {
		return nil
	}
	return &sheets.Color{
		Red:   float64(rgb>>16&0xFF) / 255,
		Green: float64(rgb>>8&0xFF) / 255,
		Blue:  float64(rgb&0xFF) / 255,
	}
}
