package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SheetData is the sheet name of tabular reports.
const SheetData = "Data"

// ColumnKind selects how a column renders; the zero value is text.
type ColumnKind string

const (
	ColumnText     ColumnKind = "text"
	ColumnCurrency ColumnKind = "currency"
)

// ColumnSpec describes one output column.
type ColumnSpec struct {
	Key   string     `json:"key"`
	Label string     `json:"label"`
	Kind  ColumnKind `json:"kind,omitempty"`
}

// IsCurrency reports whether the column holds money.
func (c ColumnSpec) IsCurrency() bool {
	return c.Kind == ColumnCurrency
}

// Record exposes the values of one report row by column key.
type Record interface {
	Value(key string) (any, bool)
}

// Fields is a map-backed Record for ad hoc rows.
type Fields map[string]any

// Value implements Record.
func (f Fields) Value(key string) (any, bool) {
	v, ok := f[key]
	return v, ok
}

// Records adapts a slice of typed rows to []Record.
func Records[R Record](rows []R) []Record {
	out := make([]Record, len(rows))
	for i, r := range rows {
		out[i] = r
	}
	return out
}

// ColumnWidth returns the display width of a tabular column. The first matching
// rule wins: contract and client columns, name, *_display columns, currency, rest.
func ColumnWidth(c ColumnSpec) float64 {
	switch {
	case c.Key == "contract" || c.Key == "client":
		return 20
	case c.Key == "name":
		return 30
	case strings.HasSuffix(c.Key, "_display"):
		return 25
	case c.IsCurrency():
		return 15
	default:
		return 12
	}
}

// BuildReport lays out rows under a merged title and a header band, one banded
// row per record. Missing values render as empty cells.
func BuildReport(rows []Record, columns []ColumnSpec, title string) Workbook {
	b := NewSheetBuilder(SheetData)
	b.AddMergedTitle(title, len(columns))
	b.AddBlankRow()

	labels := make([]string, len(columns))
	widths := make([]float64, len(columns))
	for i, c := range columns {
		labels[i] = c.Label
		if labels[i] == "" {
			labels[i] = c.Key
		}
		widths[i] = ColumnWidth(c)
	}
	b.AddHeaderRow(labels, []Style{HeaderStyle()})

	for i, row := range rows {
		fill := BandFill(i)
		cells := make([]Cell, len(columns))
		for j, c := range columns {
			var v any
			if row != nil {
				v, _ = row.Value(c.Key)
			}
			cells[j] = dataCell(v, c, fill)
		}
		b.AddDataRow(cells)
	}

	b.SetColumnWidths(widths)
	return Workbook{Sheets: []Sheet{b.Build()}}
}

func dataCell(v any, c ColumnSpec, fill Color) Cell {
	align := AlignLeft
	if c.IsCurrency() {
		align = AlignRight
	}
	style := DataStyle(fill, align)

	if n, ok := numberOf(v); ok {
		if c.IsCurrency() {
			return NumberCell(n, style)
		}
		return TextCell(displayOf(v), style)
	}
	if s := displayOf(v); s != "" {
		return TextCell(s, style)
	}
	return BlankCell(style)
}

// numberOf returns the numeric value of v when it is a number.
// Strings are display text and never count as numbers, including amounts the
// backend sent as strings.
func numberOf(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case domain.Amount:
		return n.Value, n.Valid && n.Number
	case *domain.Amount:
		if n == nil {
			return decimal.Zero, false
		}
		return n.Value, n.Valid && n.Number
	case decimal.Decimal:
		return n, true
	case *decimal.Decimal:
		if n == nil {
			return decimal.Zero, false
		}
		return *n, true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(n), true
	}
	return decimal.Zero, false
}

// displayOf renders v as the literal text shown in a non-numeric cell.
func displayOf(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case domain.Amount:
		if s.Raw != "" {
			return s.Raw
		}
		if s.Valid {
			return s.Value.String()
		}
		return ""
	case *domain.Amount:
		if s == nil {
			return ""
		}
		return displayOf(*s)
	case decimal.Decimal:
		return s.String()
	case *decimal.Decimal:
		if s == nil {
			return ""
		}
		return s.String()
	case fmt.Stringer:
		return s.String()
	}
	return fmt.Sprint(v)
}
