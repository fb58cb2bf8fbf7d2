package report

import (
	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SheetBalance is the sheet name of the balance report.
const SheetBalance = "Balance"

// BalanceTitle is the title of the balance report.
const BalanceTitle = "Balance by Contracts"

// TotalsLabel labels the last row of the balance report.
const TotalsLabel = "TOTAL BALANCE:"

// Column layout of the balance report.
const (
	balColIncomeNumber = iota
	balColIncomeClient
	balColIncomeAmount
	balColIncomePaid
	balColExpenseNumber
	balColExpenseAmount
	balColExpensePaid
	balColDiffAmount
	balColDiffPaid

	balanceWidth
)

var balanceColumnWidths = []float64{20, 25, 15, 15, 20, 15, 15, 15, 15}

var balanceSubheaders = []string{
	"Contract", "Counterparty", "Amount", "Paid",
	"Contract", "Amount", "Paid",
	"Value", "Paid",
}

// BalanceRow is one rendered line of the balance report.
type BalanceRow struct {
	Kind  BalanceRowKind
	Cells []Cell
}

// BalanceRowKind tells primary, continuation and divider rows apart.
type BalanceRowKind int

const (
	BalancePrimary BalanceRowKind = iota
	BalanceContinuation
	BalanceDivider
)

// BalanceTotals are the sums shown in the totals row.
type BalanceTotals struct {
	IncomeAmount decimal.Decimal
	IncomePaid   decimal.Decimal
	Expense      decimal.Decimal
	ExpensePaid  decimal.Decimal
}

// DiffAmount is income value minus expense value.
func (t BalanceTotals) DiffAmount() decimal.Decimal {
	return t.IncomeAmount.Sub(t.Expense)
}

// DiffPaid is income paid minus expense paid.
func (t BalanceTotals) DiffPaid() decimal.Decimal {
	return t.IncomePaid.Sub(t.ExpensePaid)
}

// SumBalance adds up the income sides and the expense aggregates of entries.
// Absent or non-numeric amounts count as zero.
func SumBalance(entries []domain.BalanceEntry) BalanceTotals {
	t := BalanceTotals{
		IncomeAmount: decimal.Zero,
		IncomePaid:   decimal.Zero,
		Expense:      decimal.Zero,
		ExpensePaid:  decimal.Zero,
	}
	for _, e := range entries {
		expense, paid := e.Totals()
		t.IncomeAmount = t.IncomeAmount.Add(e.Income.Amount.Decimal())
		t.IncomePaid = t.IncomePaid.Add(e.Income.Paid.Decimal())
		t.Expense = t.Expense.Add(expense)
		t.ExpensePaid = t.ExpensePaid.Add(paid)
	}
	return t
}

// BuildBalanceReport lays out income contracts next to the expense contracts
// they fund, with per-contract differentials and a totals row.
func BuildBalanceReport(entries []domain.BalanceEntry) Workbook {
	b := NewSheetBuilder(SheetBalance)
	b.AddMergedTitle(BalanceTitle, balanceWidth)
	b.AddBlankRow()
	b.AddSectionRow([]Section{
		{Label: "Income Contracts", Span: 4, Style: sectionStyle(colorIncomeFill)},
		{Label: "Expense Contracts", Span: 3, Style: sectionStyle(colorExpenseFill)},
		{Label: "Balance", Span: 2, Style: sectionStyle(colorBalanceFill)},
	})

	subStyles := make([]Style, balanceWidth)
	for i := range subStyles {
		subStyles[i] = subheaderStyle(sectionFill(i))
	}
	b.AddHeaderRow(balanceSubheaders, subStyles)

	for i, e := range entries {
		for _, row := range BalanceRows(e) {
			b.AddDataRow(row.Cells)
		}
		if i < len(entries)-1 {
			b.AddDividerRow(balanceWidth, dividerStyle())
		}
	}

	b.AddTotalsRow(totalsBalanceRow(SumBalance(entries)), 2)
	b.SetColumnWidths(balanceColumnWidths)
	return Workbook{Sheets: []Sheet{b.Build()}}
}

// BalanceRows renders the body of the balance report for one entry, without the
// divider that separates it from the next entry.
func BalanceRows(e domain.BalanceEntry) []BalanceRow {
	rows := []BalanceRow{{Kind: BalancePrimary, Cells: primaryBalanceRow(e)}}
	for _, ex := range continuationExpenses(e) {
		rows = append(rows, BalanceRow{Kind: BalanceContinuation, Cells: continuationBalanceRow(ex)})
	}
	return rows
}

func sectionFill(col int) Color {
	switch {
	case col >= balColDiffAmount:
		return colorBalanceFill
	case col >= balColExpenseNumber:
		return colorExpenseFill
	default:
		return colorIncomeFill
	}
}

func continuationExpenses(e domain.BalanceEntry) []domain.BalanceExpense {
	if len(e.Expenses) < 2 {
		return nil
	}
	return e.Expenses[1:]
}

func primaryBalanceRow(e domain.BalanceEntry) []Cell {
	left := DataStyle(colorBandEven, AlignLeft)
	right := DataStyle(colorBandEven, AlignRight)

	cells := make([]Cell, balanceWidth)
	cells[balColIncomeNumber] = textOrBlank(e.Income.Number, left)
	cells[balColIncomeClient] = textOrBlank(e.Income.Client, left)
	cells[balColIncomeAmount] = amountCell(e.Income.Amount, right)
	cells[balColIncomePaid] = amountCell(e.Income.Paid, right)

	if len(e.Expenses) > 0 {
		first := e.Expenses[0]
		cells[balColExpenseNumber] = textOrBlank(first.Number, left)
		cells[balColExpenseAmount] = amountCell(first.Amount, right)
		cells[balColExpensePaid] = amountCell(first.Paid, right)
	} else {
		cells[balColExpenseNumber] = BlankCell(left)
		cells[balColExpenseAmount] = BlankCell(right)
		cells[balColExpensePaid] = BlankCell(right)
	}

	diffAmount, diffPaid := e.Differential()
	cells[balColDiffAmount] = NumberCell(diffAmount, signed(right, diffAmount))
	cells[balColDiffPaid] = NumberCell(diffPaid, signed(right, diffPaid))
	return cells
}

func continuationBalanceRow(ex domain.BalanceExpense) []Cell {
	plain := DataStyle(colorBandOdd, "")
	right := DataStyle(colorBandOdd, AlignRight)

	cells := make([]Cell, balanceWidth)
	for i := range cells {
		cells[i] = BlankCell(plain)
	}
	cells[balColExpenseNumber] = textOrBlank(ex.Number, plain)
	cells[balColExpenseAmount] = amountCell(ex.Amount, right)
	cells[balColExpensePaid] = amountCell(ex.Paid, right)
	return cells
}

func totalsBalanceRow(t BalanceTotals) []Cell {
	label := totalsStyle(AlignLeft)
	right := totalsStyle(AlignRight)

	diffAmount, diffPaid := t.DiffAmount(), t.DiffPaid()
	return []Cell{
		TextCell(TotalsLabel, label),
		BlankCell(label),
		NumberCell(t.IncomeAmount, right),
		NumberCell(t.IncomePaid, right),
		BlankCell(right),
		NumberCell(t.Expense, right),
		NumberCell(t.ExpensePaid, right),
		NumberCell(diffAmount, signed(right, diffAmount)),
		NumberCell(diffPaid, signed(right, diffPaid)),
	}
}

// signed makes the style bold and tints it by the sign of v.
func signed(s Style, v decimal.Decimal) Style {
	s.Bold = true
	s.FontColor = SignColor(v.IsNegative())
	return s
}

// amountCell writes a valid amount as a number and echoes any other text as-is.
func amountCell(a domain.Amount, style Style) Cell {
	if a.Valid {
		return NumberCell(a.Value, style)
	}
	return textOrBlank(a.Raw, style)
}

func textOrBlank(s string, style Style) Cell {
	if s == "" {
		return BlankCell(style)
	}
	return TextCell(s, style)
}
