package report

import (
	"time"

	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	"github.com/SscSPs/contracts_tracker/internal/utils/accounting"
)

// IncomeColumns are the columns of the income contracts export.
func IncomeColumns() []ColumnSpec {
	return []ColumnSpec{
		{Key: "contract", Label: "Contract No."},
		{Key: "date", Label: "Signed"},
		{Key: "client", Label: "Counterparty"},
		{Key: "amount", Label: "Contract Value", Kind: ColumnCurrency},
		{Key: "paid", Label: "Paid", Kind: ColumnCurrency},
	}
}

func expenseLeadColumns() []ColumnSpec {
	return []ColumnSpec{
		{Key: "type_contract_display", Label: "Type"},
		{Key: "contract", Label: "Contract No."},
		{Key: "client", Label: "Counterparty"},
		{Key: "dates_display", Label: "Contract Dates"},
		{Key: "name", Label: "Name"},
		{Key: "contract_amount", Label: "Contract Amount", Kind: ColumnCurrency},
		{Key: "advance", Label: "Advance"},
	}
}

// PlanningColumns are the columns of the financing planning export. The three
// month columns are titled after the month of now and the two following months.
func PlanningColumns(now time.Time) []ColumnSpec {
	names := accounting.MonthNames(now)
	return append(expenseLeadColumns(),
		ColumnSpec{Key: "advance_amount", Label: "Advance Amount", Kind: ColumnCurrency},
		ColumnSpec{Key: "current_month", Label: names["current_month"], Kind: ColumnCurrency},
		ColumnSpec{Key: "next_month_1", Label: names["next_month_1"], Kind: ColumnCurrency},
		ColumnSpec{Key: "next_month_2", Label: names["next_month_2"], Kind: ColumnCurrency},
		ColumnSpec{Key: "three_month_total", Label: "3-Month Total", Kind: ColumnCurrency},
	)
}

// ActualColumns are the columns of the actual financing export.
func ActualColumns() []ColumnSpec {
	return append(expenseLeadColumns(),
		ColumnSpec{Key: "payment_loesk", Label: "LOESK Payment", Kind: ColumnCurrency},
		ColumnSpec{Key: "contractor_costs", Label: "Contractor Payments", Kind: ColumnCurrency},
		ColumnSpec{Key: "closed_works", Label: "Closed Works", Kind: ColumnCurrency},
		ColumnSpec{Key: "balance", Label: "Balance", Kind: ColumnCurrency},
		ColumnSpec{Key: "remaining_funding", Label: "Remaining Funding", Kind: ColumnCurrency},
	)
}

// Columns returns the export columns of a tabular kind, or nil for balance.
func Columns(kind domain.ExportKind, now time.Time) []ColumnSpec {
	switch kind {
	case domain.ExportIncome:
		return IncomeColumns()
	case domain.ExportPlanning:
		return PlanningColumns(now)
	case domain.ExportActual:
		return ActualColumns()
	}
	return nil
}

// TotalledKeys are the columns summed in the footer of the live tables. Contract
// values are not totalled.
func TotalledKeys(kind domain.ExportKind) []string {
	switch kind {
	case domain.ExportPlanning:
		return []string{"advance_amount", "current_month", "next_month_1", "next_month_2", "three_month_total"}
	case domain.ExportActual:
		return []string{"payment_loesk", "contractor_costs", "closed_works", "balance", "remaining_funding"}
	}
	return nil
}

// Title returns the report title of kind.
func Title(kind domain.ExportKind) string {
	switch kind {
	case domain.ExportIncome:
		return "Income Contracts"
	case domain.ExportPlanning:
		return "Financing Planning for Expense Contracts"
	case domain.ExportActual:
		return "Actual Financing for Expense Contracts"
	case domain.ExportBalance:
		return BalanceTitle
	}
	return SheetData
}

// BaseName returns the file name stem of kind.
func BaseName(kind domain.ExportKind) string {
	switch kind {
	case domain.ExportIncome:
		return "income-contracts"
	case domain.ExportPlanning:
		return "planning-financing"
	case domain.ExportActual:
		return "actual-financing"
	case domain.ExportBalance:
		return "balance-by-contract"
	}
	return "data"
}
