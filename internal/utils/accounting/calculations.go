package accounting

import (
	"fmt"
	"math"
	"time"

	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// planHorizonYears is how far past the contract end date the financing plan grid extends.
const planHorizonYears = 3

var hundred = decimal.NewFromInt(100)

// AdvanceAmount returns the advance payment for a contract: amount * pct / 100.
// A zero percentage yields zero.
func AdvanceAmount(amount, pct decimal.Decimal) decimal.Decimal {
	if pct.IsZero() {
		return decimal.Zero
	}
	return amount.Mul(pct).Div(hundred)
}

// ContractorCosts sums the contractor payments recorded against an expense contract.
// Non-numeric amounts count as zero.
func ContractorCosts(items []domain.Amount) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Decimal())
	}
	return total
}

// Balance is the funding received from ЛОЭСК minus what was paid to the contractor.
func Balance(paymentLoesk, contractorCosts decimal.Decimal) decimal.Decimal {
	return paymentLoesk.Sub(contractorCosts)
}

// RemainingFunding is the part of the contract value not yet funded.
func RemainingFunding(contractAmount, paymentLoesk decimal.Decimal) decimal.Decimal {
	return contractAmount.Sub(paymentLoesk)
}

// MonthLabel renders a month the way the plan tables title their columns, e.g. "March 2025".
func MonthLabel(t time.Time) string {
	return t.Format("January 2006")
}

// MonthStart truncates t to midnight on the first day of its month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// RollupMonthlyPlan sums the plan entries falling into the month of now and the
// two months after it. Entries with unreadable dates are ignored.
func RollupMonthlyPlan(entries []domain.CalPlanEntry, now time.Time) domain.MonthlyPlan {
	current := MonthStart(now)
	next1 := current.AddDate(0, 1, 0)
	next2 := current.AddDate(0, 2, 0)

	plan := domain.MonthlyPlan{
		CurrentMonth: decimal.Zero,
		NextMonth1:   decimal.Zero,
		NextMonth2:   decimal.Zero,
		MonthNames:   MonthNames(now),
	}

	for _, e := range entries {
		date, ok := parsePlanDate(e.Date, now.Location())
		if !ok {
			continue
		}
		switch {
		case date.Equal(current):
			plan.CurrentMonth = plan.CurrentMonth.Add(e.Amount.Decimal())
		case date.Equal(next1):
			plan.NextMonth1 = plan.NextMonth1.Add(e.Amount.Decimal())
		case date.Equal(next2):
			plan.NextMonth2 = plan.NextMonth2.Add(e.Amount.Decimal())
		}
	}

	plan.ThreeMonthTotal = plan.CurrentMonth.Add(plan.NextMonth1).Add(plan.NextMonth2)
	return plan
}

// MonthNames returns the labels of the current month and the two following months
// keyed by the planning column they title.
func MonthNames(now time.Time) map[string]string {
	current := MonthStart(now)
	return map[string]string{
		"current_month": MonthLabel(current),
		"next_month_1":  MonthLabel(current.AddDate(0, 1, 0)),
		"next_month_2":  MonthLabel(current.AddDate(0, 2, 0)),
	}
}

// PlanPeriods lists every month from the start month through three years past the
// end date, with the planned amount of each month filled in from entries.
// A zero start yields no periods.
func PlanPeriods(start, end time.Time, entries []domain.CalPlanEntry) []domain.PlanPeriod {
	if start.IsZero() {
		return nil
	}
	if end.IsZero() || end.Before(start) {
		end = start
	}

	amounts := make(map[string]decimal.Decimal, len(entries))
	for _, e := range entries {
		date, ok := parsePlanDate(e.Date, start.Location())
		if !ok {
			continue
		}
		key := PeriodKey(date)
		amounts[key] = amounts[key].Add(e.Amount.Decimal())
	}

	limit := end.AddDate(planHorizonYears, 0, 0)
	var periods []domain.PlanPeriod
	for cur := MonthStart(start); !cur.After(limit); cur = cur.AddDate(0, 1, 0) {
		key := PeriodKey(cur)
		amount, ok := amounts[key]
		if !ok {
			amount = decimal.Zero
		}
		periods = append(periods, domain.PlanPeriod{
			Year:   cur.Year(),
			Month:  int(cur.Month()),
			Key:    key,
			Label:  MonthLabel(cur),
			Amount: amount,
		})
	}
	return periods
}

// PeriodKey is the "YYYY-M" key of the month containing t.
func PeriodKey(t time.Time) string {
	return fmt.Sprintf("%d-%d", t.Year(), int(t.Month()))
}

// PaidStatusOf compares the paid amount of an income contract against its value.
func PaidStatusOf(paid, amount decimal.Decimal) domain.PaidStatus {
	switch paid.Cmp(amount) {
	case 0:
		return domain.PaidExact
	case 1:
		return domain.PaidOverpaid
	default:
		return domain.PaidPartial
	}
}

// Valuer is a table row that exposes its cells by column key.
type Valuer interface {
	Value(key string) (any, bool)
}

// ColumnTotals sums the numeric values stored under keys across rows.
// A key appears in the result only when at least one row held a number for it.
func ColumnTotals[R Valuer](rows []R, keys []string) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(keys))
	for _, row := range rows {
		for _, key := range keys {
			v, ok := row.Value(key)
			if !ok {
				continue
			}
			d, ok := numericValue(v)
			if !ok {
				continue
			}
			totals[key] = totals[key].Add(d)
		}
	}
	return totals
}

// BalanceDifferential returns the amount and paid differentials of one balance entry.
func BalanceDifferential(entry domain.BalanceEntry) (amount, paid decimal.Decimal) {
	return entry.Differential()
}

func numericValue(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case domain.Amount:
		return n.Value, n.Valid
	case decimal.Decimal:
		return n, true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(n), true
	case string:
		return domain.ParseAmount(n)
	}
	return decimal.Zero, false
}

func parsePlanDate(raw string, loc *time.Location) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", "2006-01"} {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return MonthStart(t), true
		}
	}
	return time.Time{}, false
}
