package domain

import "github.com/shopspring/decimal"

// CalPlanEntry is one month of an expense contract's disbursement plan
// (GET /api/expense-contracts/{id}/cal-plan). Date is YYYY-MM-DD.
type CalPlanEntry struct {
	ID     int64  `json:"id"`
	Date   string `json:"date"`
	Amount Amount `json:"plopl"`
}

// MonthlyPlan rolls the plan up into the current month and the two following months.
type MonthlyPlan struct {
	CurrentMonth    decimal.Decimal   `json:"current_month"`
	NextMonth1      decimal.Decimal   `json:"next_month_1"`
	NextMonth2      decimal.Decimal   `json:"next_month_2"`
	ThreeMonthTotal decimal.Decimal   `json:"three_month_total"`
	MonthNames      map[string]string `json:"month_names"`
}

// PlanPeriod is one editable month of the financing plan grid.
type PlanPeriod struct {
	Year   int             `json:"year"`
	Month  int             `json:"month"`
	Key    string          `json:"key"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// PaidStatus classifies an income contract's payment against its value.
type PaidStatus string

const (
	PaidPartial  PaidStatus = "partial"
	PaidExact    PaidStatus = "exact"
	PaidOverpaid PaidStatus = "overpaid"
)
