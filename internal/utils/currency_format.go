package utils

import (
	"math"
	"strings"

	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencySuffix is appended to every formatted amount.
const CurrencySuffix = " ₽"

// ZeroCurrency is the placeholder shown for absent amounts.
const ZeroCurrency = "0" + CurrencySuffix

// FormatCurrency formats an amount the way the office UI shows money:
// two fraction digits, space-grouped thousands, comma decimal separator.
// Example: 1234.5 returns "1 234,50 ₽"; nil returns "0 ₽".
func FormatCurrency(value *decimal.Decimal) string {
	if value == nil {
		return ZeroCurrency
	}
	return formatFixed(value.StringFixed(2)) + CurrencySuffix
}

// FormatFloat is FormatCurrency for float inputs; NaN and infinities format as "0 ₽".
func FormatFloat(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return ZeroCurrency
	}
	d := decimal.NewFromFloat(value)
	return FormatCurrency(&d)
}

// FormatAmount formats a leniently decoded amount; non-numeric amounts format as "0 ₽".
func FormatAmount(a domain.Amount) string {
	if !a.Valid {
		return ZeroCurrency
	}
	return FormatCurrency(&a.Value)
}

// ParseFormattedAmount converts a display string such as "1 234,50 ₽" back to a number.
// Unreadable input yields zero.
func ParseFormattedAmount(s string) decimal.Decimal {
	d, _ := domain.ParseAmount(s)
	return d
}

// formatFixed regroups a plain "-1234.50" string into "-1 234,50".
func formatFixed(fixed string) string {
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	if fracPart != "" {
		b.WriteByte(',')
		b.WriteString(fracPart)
	}
	return b.String()
}
