package domain

import "github.com/shopspring/decimal"

// BalanceIncome is the income side of a balance entry.
type BalanceIncome struct {
	ID     int64  `json:"id"`
	Number string `json:"number"`
	Client string `json:"client"`
	Amount Amount `json:"amount"`
	Paid   Amount `json:"paid"`
}

// BalanceExpense is one expense contract funded by the income contract.
type BalanceExpense struct {
	ID     int64  `json:"id"`
	Number string `json:"number"`
	Amount Amount `json:"amount"`
	Paid   Amount `json:"paid"`
}

// BalanceEntry pairs an income contract with the expense contracts it funds.
// TotalExpense and TotalPaid are the aggregates precomputed by the backend.
type BalanceEntry struct {
	Income       BalanceIncome    `json:"income_contract"`
	Expenses     []BalanceExpense `json:"expense_contracts"`
	TotalExpense Amount           `json:"total_expense"`
	TotalPaid    Amount           `json:"total_paid"`
	Balance      Amount           `json:"balance"`
}

// BalanceResponse is the body of GET /api/balance.
type BalanceResponse struct {
	Contracts    []BalanceEntry `json:"contracts"`
	TotalBalance Amount         `json:"total_balance"`
}

// SubListTotals sums the expense contracts of the entry.
func (e BalanceEntry) SubListTotals() (expense, paid decimal.Decimal) {
	expense, paid = decimal.Zero, decimal.Zero
	for _, ex := range e.Expenses {
		expense = expense.Add(ex.Amount.Decimal())
		paid = paid.Add(ex.Paid.Decimal())
	}
	return expense, paid
}

// Totals returns the expense aggregates used for every differential.
// The backend aggregates win whenever they are present; a missing aggregate is
// derived from the expense sub-list.
func (e BalanceEntry) Totals() (expense, paid decimal.Decimal) {
	subExpense, subPaid := e.SubListTotals()
	expense, paid = subExpense, subPaid
	if e.TotalExpense.Valid {
		expense = e.TotalExpense.Value
	}
	if e.TotalPaid.Valid {
		paid = e.TotalPaid.Value
	}
	return expense, paid
}

// Reconciled reports whether the backend aggregates agree with the expense sub-list.
func (e BalanceEntry) Reconciled() bool {
	subExpense, subPaid := e.SubListTotals()
	expense, paid := e.Totals()
	return subExpense.Equal(expense) && subPaid.Equal(paid)
}

// Differential returns income amount minus expense total and income paid minus
// expense paid.
func (e BalanceEntry) Differential() (amount, paid decimal.Decimal) {
	expense, expensePaid := e.Totals()
	return e.Income.Amount.Decimal().Sub(expense), e.Income.Paid.Decimal().Sub(expensePaid)
}
