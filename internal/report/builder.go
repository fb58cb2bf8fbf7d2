// Package report lays out spreadsheet reports as format-independent sheets and
// encodes them through emitters.
package report

// Section is one merged block of a section header row.
type Section struct {
	Label string
	Span  int
	Style Style
}

// SheetBuilder appends rows to a sheet and records the merges they need.
// Every Add method returns the 0-based index of the row it wrote.
type SheetBuilder struct {
	name   string
	rows   [][]Cell
	merges []MergeRange
	widths []float64
}

// NewSheetBuilder starts an empty sheet called name.
func NewSheetBuilder(name string) *SheetBuilder {
	return &SheetBuilder{name: name}
}

// AddMergedTitle writes title into the first cell of a new row and merges it
// across width columns.
func (b *SheetBuilder) AddMergedTitle(title string, width int) int {
	style := TitleStyle()
	cells := []Cell{TextCell(title, style)}
	for i := 1; i < width; i++ {
		cells = append(cells, BlankCell(style))
	}
	row := b.appendRow(cells)
	if width > 1 {
		b.Merge(RowSpan(row, 0, width-1))
	}
	return row
}

// AddBlankRow appends an empty separator row.
func (b *SheetBuilder) AddBlankRow() int {
	return b.appendRow(nil)
}

// AddHeaderRow writes one label per column. A single style applies to every
// label; otherwise styles[i] styles labels[i].
func (b *SheetBuilder) AddHeaderRow(labels []string, styles []Style) int {
	cells := make([]Cell, len(labels))
	for i, label := range labels {
		var style Style
		switch {
		case len(styles) == 1:
			style = styles[0]
		case i < len(styles):
			style = styles[i]
		}
		cells[i] = TextCell(label, style)
	}
	return b.appendRow(cells)
}

// AddSectionRow writes a row of merged section headers laid out left to right.
func (b *SheetBuilder) AddSectionRow(sections []Section) int {
	var cells []Cell
	row := len(b.rows)
	for _, s := range sections {
		span := max(s.Span, 1)
		start := len(cells)
		cells = append(cells, TextCell(s.Label, s.Style))
		for i := 1; i < span; i++ {
			cells = append(cells, BlankCell(s.Style))
		}
		if span > 1 {
			b.Merge(RowSpan(row, start, start+span-1))
		}
	}
	return b.appendRow(cells)
}

// AddDataRow appends a body row as given.
func (b *SheetBuilder) AddDataRow(cells []Cell) int {
	return b.appendRow(cells)
}

// AddDividerRow appends a blank row of width filled cells merged into one.
func (b *SheetBuilder) AddDividerRow(width int, style Style) int {
	cells := make([]Cell, width)
	for i := range cells {
		cells[i] = BlankCell(style)
	}
	row := b.appendRow(cells)
	if width > 1 {
		b.Merge(RowSpan(row, 0, width-1))
	}
	return row
}

// AddTotalsRow appends a summary row whose first labelSpan cells are merged
// under the label in cells[0].
func (b *SheetBuilder) AddTotalsRow(cells []Cell, labelSpan int) int {
	row := b.appendRow(cells)
	if labelSpan > 1 {
		b.Merge(RowSpan(row, 0, labelSpan-1))
	}
	return row
}

// Merge records an extra merge range.
func (b *SheetBuilder) Merge(r MergeRange) {
	b.merges = append(b.merges, r)
}

// SetColumnWidths sets the display width of columns 0..len(widths)-1.
func (b *SheetBuilder) SetColumnWidths(widths []float64) {
	b.widths = append([]float64(nil), widths...)
}

// Build returns the finished sheet. The builder may keep being used afterwards.
func (b *SheetBuilder) Build() Sheet {
	rows := make([][]Cell, len(b.rows))
	for i, r := range b.rows {
		rows[i] = append([]Cell(nil), r...)
	}
	return Sheet{
		Name:         b.name,
		Rows:         rows,
		Merges:       append([]MergeRange(nil), b.merges...),
		ColumnWidths: append([]float64(nil), b.widths...),
	}
}

func (b *SheetBuilder) appendRow(cells []Cell) int {
	b.rows = append(b.rows, cells)
	return len(b.rows) - 1
}
