package domain

import "fmt"

// ContractKind distinguishes income contracts from expense contracts.
type ContractKind string

const (
	ContractIncome  ContractKind = "income"
	ContractExpense ContractKind = "expense"
)

// Expense contract programme types as stored by the backend.
const (
	TypeInvestmentProgram = "инвестиционная программа"
	TypeRepairProgram     = "ремонтная программа"
)

// MESClient is the counterparty name that marks a contract as belonging to МЭС.
const MESClient = "МЭС"

// ContractRef carries the contract attributes that capability resolution depends on.
type ContractRef struct {
	ID           int64        `json:"id"`
	Kind         ContractKind `json:"kind" binding:"required,oneof=income expense"`
	Client       string       `json:"client"`
	TypeContract string       `json:"type_contract"`
	IsMES        bool         `json:"is_mes"`
}

// IncomeRow is one row of the income contracts table (GET /api/income).
type IncomeRow struct {
	ID       int64  `json:"id"`
	Contract string `json:"contract"`
	Date     string `json:"date"`
	Client   string `json:"client"`
	Amount   Amount `json:"amount"`
	Paid     Amount `json:"paid"`
}

// Value returns the display value stored under a report column key.
func (r IncomeRow) Value(key string) (any, bool) {
	switch key {
	case "id":
		return r.ID, true
	case "contract":
		return r.Contract, true
	case "date":
		return r.Date, true
	case "client":
		return r.Client, true
	case "amount":
		return r.Amount, true
	case "paid":
		return r.Paid, true
	}
	return nil, false
}

// Ref returns the capability-relevant attributes of the row.
func (r IncomeRow) Ref() ContractRef {
	return ContractRef{ID: r.ID, Kind: ContractIncome, Client: r.Client}
}

// ExpenseCommon holds the fields shared by the planning and actual tables.
type ExpenseCommon struct {
	ID             int64  `json:"id"`
	TypeContract   string `json:"type_contract"`
	Contract       string `json:"contract"`
	Client         string `json:"client"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	Name           string `json:"name"`
	ContractAmount Amount `json:"contract_amount"`
	Advance        string `json:"advance"`
	IsMES          bool   `json:"is_mes"`
}

// TypeDisplay abbreviates the programme type: РП for repair, ИП for investment.
func (c ExpenseCommon) TypeDisplay() string {
	switch c.TypeContract {
	case "":
		return ""
	case TypeRepairProgram:
		return "РП"
	default:
		return "ИП"
	}
}

// DatesDisplay joins the contract dates into a single two-line cell.
func (c ExpenseCommon) DatesDisplay() string {
	if c.StartDate == "" || c.EndDate == "" {
		return ""
	}
	return fmt.Sprintf("Start: %s\nEnd: %s", c.StartDate, c.EndDate)
}

// Ref returns the capability-relevant attributes of the row.
func (c ExpenseCommon) Ref() ContractRef {
	return ContractRef{
		ID:           c.ID,
		Kind:         ContractExpense,
		Client:       c.Client,
		TypeContract: c.TypeContract,
		IsMES:        c.IsMES,
	}
}

func (c ExpenseCommon) value(key string) (any, bool) {
	switch key {
	case "id":
		return c.ID, true
	case "type_contract":
		return c.TypeContract, true
	case "type_contract_display":
		return c.TypeDisplay(), true
	case "contract":
		return c.Contract, true
	case "client":
		return c.Client, true
	case "start_date":
		return c.StartDate, true
	case "end_date":
		return c.EndDate, true
	case "dates_display":
		return c.DatesDisplay(), true
	case "name":
		return c.Name, true
	case "contract_amount":
		return c.ContractAmount, true
	case "advance":
		return c.Advance, true
	}
	return nil, false
}

// PlanningRow is one row of the financing planning table (GET /api/planning).
type PlanningRow struct {
	ExpenseCommon
	AdvanceAmount   Amount            `json:"advance_amount"`
	CurrentMonth    Amount            `json:"current_month"`
	NextMonth1      Amount            `json:"next_month_1"`
	NextMonth2      Amount            `json:"next_month_2"`
	ThreeMonthTotal Amount            `json:"three_month_total"`
	MonthNames      map[string]string `json:"month_names,omitempty"`
}

// Value returns the display value stored under a report column key.
func (r PlanningRow) Value(key string) (any, bool) {
	switch key {
	case "advance_amount":
		return r.AdvanceAmount, true
	case "current_month":
		return r.CurrentMonth, true
	case "next_month_1":
		return r.NextMonth1, true
	case "next_month_2":
		return r.NextMonth2, true
	case "three_month_total":
		return r.ThreeMonthTotal, true
	}
	return r.value(key)
}

// ActualRow is one row of the actual financing table (GET /api/actual).
type ActualRow struct {
	ExpenseCommon
	PaymentLoesk     Amount `json:"payment_loesk"`
	ContractorCosts  Amount `json:"contractor_costs"`
	ClosedWorks      Amount `json:"closed_works"`
	Balance          Amount `json:"balance"`
	RemainingFunding Amount `json:"remaining_funding"`
}

// Value returns the display value stored under a report column key.
func (r ActualRow) Value(key string) (any, bool) {
	switch key {
	case "payment_loesk":
		return r.PaymentLoesk, true
	case "contractor_costs":
		return r.ContractorCosts, true
	case "closed_works":
		return r.ClosedWorks, true
	case "balance":
		return r.Balance, true
	case "remaining_funding":
		return r.RemainingFunding, true
	}
	return r.value(key)
}

// ExpenseContract is the detail record of one expense contract
// (GET /api/expense-contracts/{id}).
type ExpenseContract struct {
	ID                int64  `json:"id"`
	ContractNumber    string `json:"contract_number"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
	Name              string `json:"name"`
	Client            string `json:"client"`
	ContractAmount    Amount `json:"contract_amount"`
	AdvancePercentage Amount `json:"advance_percentage"`
	PaymentLoesk      Amount `json:"payment_loesk"`
	TypeContract      string `json:"type_contract"`
	IncomeContractID  int64  `json:"income_contract_id"`
	Status            string `json:"status"`
	IsMES             bool   `json:"is_mes"`
}

// Ref returns the capability-relevant attributes of the contract.
func (c ExpenseContract) Ref() ContractRef {
	return ContractRef{
		ID:           c.ID,
		Kind:         ContractExpense,
		Client:       c.Client,
		TypeContract: c.TypeContract,
		IsMES:        c.IsMES,
	}
}
