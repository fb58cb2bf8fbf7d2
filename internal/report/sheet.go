package report

import (
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Color is an RRGGBB hex color.
type Color string

// HAlign is the horizontal alignment of a cell.
type HAlign string

const (
	AlignLeft   HAlign = "left"
	AlignCenter HAlign = "center"
	AlignRight  HAlign = "right"
)

// Borders holds the thin border color of each side; an empty color means no border.
type Borders struct {
	Top    Color
	Left   Color
	Bottom Color
	Right  Color
}

// AllBorders draws a thin border of color c on all four sides.
func AllBorders(c Color) Borders {
	return Borders{Top: c, Left: c, Bottom: c, Right: c}
}

// Style is the visual formatting of one cell. It is comparable so emitters can
// deduplicate identical styles.
type Style struct {
	Bold      bool
	Size      float64
	FontColor Color
	Fill      Color
	HAlign    HAlign
	VCenter   bool
	Borders   Borders
}

// CellKind says how a cell value is written.
type CellKind int

const (
	CellBlank CellKind = iota
	CellText
	CellNumber
)

// Cell is one positioned value of a sheet.
type Cell struct {
	Kind   CellKind
	Text   string
	Number decimal.Decimal
	Style  Style
	Styled bool
}

// TextCell returns a styled text cell.
func TextCell(s string, style Style) Cell {
	return Cell{Kind: CellText, Text: s, Style: style, Styled: true}
}

// NumberCell returns a styled numeric cell.
func NumberCell(n decimal.Decimal, style Style) Cell {
	return Cell{Kind: CellNumber, Number: n, Style: style, Styled: true}
}

// BlankCell returns an empty cell that still carries a style.
func BlankCell(style Style) Cell {
	return Cell{Kind: CellBlank, Style: style, Styled: true}
}

// MergeRange is a 0-indexed inclusive block of cells shown as one.
type MergeRange struct {
	StartRow int
	StartCol int
	EndRow   int
	EndCol   int
}

// RowSpan merges columns startCol..endCol of a single row.
func RowSpan(row, startCol, endCol int) MergeRange {
	return MergeRange{StartRow: row, StartCol: startCol, EndRow: row, EndCol: endCol}
}

// TopLeft returns the A1 reference of the first cell of the range.
func (m MergeRange) TopLeft() string {
	return CellRef(m.StartRow, m.StartCol)
}

// BottomRight returns the A1 reference of the last cell of the range.
func (m MergeRange) BottomRight() string {
	return CellRef(m.EndRow, m.EndCol)
}

// Single reports whether the range covers exactly one cell.
func (m MergeRange) Single() bool {
	return m.StartRow == m.EndRow && m.StartCol == m.EndCol
}

// CellRef converts 0-indexed coordinates to A1 notation. Negative coordinates yield "".
func CellRef(row, col int) string {
	ref, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return ""
	}
	return ref
}

// Sheet is a laid-out worksheet independent of any file format.
type Sheet struct {
	Name         string
	Rows         [][]Cell
	Merges       []MergeRange
	ColumnWidths []float64
}

// Cell returns the cell at 0-indexed row and col, or a zero Cell outside the grid.
func (s Sheet) Cell(row, col int) Cell {
	if row < 0 || row >= len(s.Rows) || col < 0 || col >= len(s.Rows[row]) {
		return Cell{}
	}
	return s.Rows[row][col]
}

// Width is the number of columns of the widest row.
func (s Sheet) Width() int {
	w := len(s.ColumnWidths)
	for _, row := range s.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Workbook is an ordered set of sheets.
type Workbook struct {
	Sheets []Sheet
}

// RowCount returns the number of rows of the first sheet.
func (wb Workbook) RowCount() int {
	if len(wb.Sheets) == 0 {
		return 0
	}
	return len(wb.Sheets[0].Rows)
}
