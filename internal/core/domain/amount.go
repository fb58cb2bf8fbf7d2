package domain

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value as the contracts API delivers it: a JSON number, a
// numeric string ("1500.00"), a display string ("1 500,00 ₽") or null.
// Decoding never fails; values that cannot be read as a number keep their raw text
// and report Valid == false.
//
// Number is set when the value arrived as a JSON number (or was built from a
// decimal). Tabular report cells are numeric only then; strings are echoed as text.
type Amount struct {
	Value  decimal.Decimal
	Raw    string
	Valid  bool
	Number bool
}

// NewAmount wraps an exact decimal value.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Value: d, Raw: d.String(), Valid: true, Number: true}
}

// NewAmountFromString parses raw leniently.
func NewAmountFromString(raw string) Amount {
	d, ok := ParseAmount(raw)
	if !ok {
		return Amount{Raw: raw}
	}
	return Amount{Value: d, Raw: raw, Valid: true}
}

// Decimal returns the numeric value, or zero when the amount is not numeric.
func (a Amount) Decimal() decimal.Decimal {
	if !a.Valid {
		return decimal.Zero
	}
	return a.Value
}

// IsZero reports whether the amount is absent or numerically zero.
func (a Amount) IsZero() bool {
	return !a.Valid || a.Value.IsZero()
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*a = Amount{}
		return nil
	}

	raw := string(trimmed)
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			*a = Amount{Raw: raw}
			return nil
		}
		*a = NewAmountFromString(s)
		return nil
	}

	*a = NewAmountFromString(raw)
	a.Number = a.Valid
	return nil
}

// MarshalJSON implements json.Marshaler. Numeric amounts are written as decimal
// strings, like the contracts API does.
func (a Amount) MarshalJSON() ([]byte, error) {
	if a.Valid {
		return json.Marshal(a.Value.String())
	}
	if a.Raw == "" {
		return []byte("null"), nil
	}
	return json.Marshal(a.Raw)
}

// displayAmount is the ru-RU display grammar of the backend: optional sign, digit
// groups separated by a space or NBSP, an optional fraction and an optional ₽.
var displayAmount = regexp.MustCompile(`^([-−+]?)(\d+(?:[ \x{00A0}\x{202F}]\d{3})*)(?:[.,](\d+))?[ \x{00A0}\x{202F}]*(?:₽)?$`)

// ParseAmount reads plain decimal strings as well as the ru-RU display format
// produced by the backend ("-1 234,50 ₽"). The second result is false for any
// other text, even when it contains digits ("30%").
func ParseAmount(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, false
	}
	if d, err := decimal.NewFromString(s); err == nil {
		return d, true
	}

	m := displayAmount.FindStringSubmatch(s)
	if m == nil {
		return decimal.Zero, false
	}
	var b strings.Builder
	if m[1] == "-" || m[1] == "−" {
		b.WriteByte('-')
	}
	for _, r := range m[2] {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if m[3] != "" {
		b.WriteByte('.')
		b.WriteString(m[3])
	}
	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
