package domain

import "strings"

// TableFilter narrows a contracts table the way the search fields above it do.
// Text filters are case-insensitive substring matches; TypeContract must match exactly.
type TableFilter struct {
	Contract     string `form:"contract" json:"contract,omitempty"`
	Name         string `form:"name" json:"name,omitempty"`
	Client       string `form:"client" json:"client,omitempty"`
	TypeContract string `form:"type" json:"type,omitempty" binding:"omitempty,oneof='инвестиционная программа' 'ремонтная программа'"`
}

// MatchesIncome applies the filter to an income row. Income contracts have no name
// or programme type, so only Contract and Client are considered.
func (f TableFilter) MatchesIncome(r IncomeRow) bool {
	return containsFold(r.Contract, f.Contract) && containsFold(r.Client, f.Client)
}

// MatchesExpense applies the filter to the shared columns of an expense row.
func (f TableFilter) MatchesExpense(c ExpenseCommon) bool {
	if f.TypeContract != "" && c.TypeContract != f.TypeContract {
		return false
	}
	return containsFold(c.Contract, f.Contract) &&
		containsFold(c.Name, f.Name) &&
		containsFold(c.Client, f.Client)
}

func containsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// TableColumn describes one column of a live table.
type TableColumn struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Currency bool   `json:"currency"`
}

// TableRow is one row of a live table together with what the user may do with it.
// Data holds an IncomeRow, PlanningRow or ActualRow.
type TableRow struct {
	Data         any           `json:"data"`
	Capabilities CapabilitySet `json:"capabilities"`
	PaidStatus   PaidStatus    `json:"paidStatus,omitempty"`
}

// TableView is the view model of the income, planning or actual table.
type TableView struct {
	Kind         ExportKind        `json:"kind"`
	Title        string            `json:"title"`
	Columns      []TableColumn     `json:"columns"`
	Rows         []TableRow        `json:"rows"`
	Totals       map[string]string `json:"totals"`
	MonthNames   map[string]string `json:"monthNames,omitempty"`
	Capabilities CapabilitySet     `json:"capabilities"`
}

// BalanceEntryView is one balance entry with its formatted differentials.
type BalanceEntryView struct {
	Entry              BalanceEntry  `json:"entry"`
	ExpenseAmount      string        `json:"expenseAmount"`
	ExpensePaid        string        `json:"expensePaid"`
	DiffAmount         string        `json:"diffAmount"`
	DiffPaid           string        `json:"diffPaid"`
	DiffAmountNegative bool          `json:"diffAmountNegative"`
	DiffPaidNegative   bool          `json:"diffPaidNegative"`
	Reconciled         bool          `json:"reconciled"`
	Capabilities       CapabilitySet `json:"capabilities"`
}

// BalanceTotalsView holds the formatted totals row of the balance view.
type BalanceTotalsView struct {
	IncomeAmount  string `json:"incomeAmount"`
	IncomePaid    string `json:"incomePaid"`
	ExpenseAmount string `json:"expenseAmount"`
	ExpensePaid   string `json:"expensePaid"`
	DiffAmount    string `json:"diffAmount"`
	DiffPaid      string `json:"diffPaid"`
}

// BalanceView is the view model of the balance table.
type BalanceView struct {
	Title        string             `json:"title"`
	Entries      []BalanceEntryView `json:"entries"`
	Totals       BalanceTotalsView  `json:"totals"`
	Capabilities CapabilitySet      `json:"capabilities"`
}

// FinancingPlan is the editable monthly plan of one expense contract.
type FinancingPlan struct {
	Contract     ExpenseContract `json:"contract"`
	Periods      []PlanPeriod    `json:"periods"`
	Rollup       MonthlyPlan     `json:"rollup"`
	Total        string          `json:"total"`
	Capabilities CapabilitySet   `json:"capabilities"`
}

// ExportRequest selects what to export.
type ExportRequest struct {
	Kind   ExportKind
	Format ExportFormat
	Filter TableFilter
}

// ExportResult is an encoded export ready to be sent or written to disk.
type ExportResult struct {
	Kind        ExportKind
	Format      ExportFormat
	Filename    string
	ContentType string
	RowCount    int
	Data        []byte
}

// ExportHistoryPage is one page of the export history.
type ExportHistoryPage struct {
	Records   []ExportRecord `json:"records"`
	NextToken *string        `json:"nextToken,omitempty"`
}
