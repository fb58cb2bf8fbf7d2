package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantValue string
		wantRaw   string
	}{
		{name: "json number", input: `1500.5`, wantValid: true, wantValue: "1500.5", wantRaw: "1500.5"},
		{name: "numeric string", input: `"1000.00"`, wantValid: true, wantValue: "1000", wantRaw: "1000.00"},
		{name: "backend display string", input: `"1 234,50 ₽"`, wantValid: true, wantValue: "1234.5", wantRaw: "1 234,50 ₽"},
		{name: "negative display string", input: `"-2 000,00 ₽"`, wantValid: true, wantValue: "-2000", wantRaw: "-2 000,00 ₽"},
		{name: "null", input: `null`, wantValid: false, wantValue: "0", wantRaw: ""},
		{name: "text", input: `"n/a"`, wantValid: false, wantValue: "0", wantRaw: "n/a"},
		{name: "empty string", input: `""`, wantValid: false, wantValue: "0", wantRaw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a domain.Amount
			require.NoError(t, json.Unmarshal([]byte(tt.input), &a))
			assert.Equal(t, tt.wantValid, a.Valid)
			assert.True(t, decimal.RequireFromString(tt.wantValue).Equal(a.Decimal()), "got %s", a.Decimal())
			assert.Equal(t, tt.wantRaw, a.Raw)
		})
	}
}

func TestAmount_UnmarshalInsideStructNeverFails(t *testing.T) {
	var row domain.IncomeRow
	err := json.Unmarshal([]byte(`{"id": 3, "contract": "Д-1", "amount": {"nested": true}, "paid": "abc"}`), &row)
	require.NoError(t, err)
	assert.Equal(t, int64(3), row.ID)
	assert.False(t, row.Amount.Valid)
	assert.False(t, row.Paid.Valid)
	assert.Equal(t, "abc", row.Paid.Raw)
}

func TestAmount_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		A domain.Amount `json:"a"`
		B domain.Amount `json:"b"`
		C domain.Amount `json:"c"`
	}{
		A: domain.NewAmount(decimal.RequireFromString("12.30")),
		B: domain.NewAmountFromString("n/a"),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": "12.3", "b": "n/a", "c": null}`, string(out))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input     string
		wantValid bool
		wantValue string
	}{
		{input: "  42 ", wantValid: true, wantValue: "42"},
		{input: "12.5", wantValid: true, wantValue: "12.5"},
		{input: "1 234,50 ₽", wantValid: true, wantValue: "1234.5"},
		{input: "1\u00a0234\u00a0567,8\u00a0₽", wantValid: true, wantValue: "1234567.8"},
		{input: "−2 000 ₽", wantValid: true, wantValue: "-2000"},
		{input: "300₽", wantValid: true, wantValue: "300"},
		{input: "₽", wantValid: false, wantValue: "0"},
		{input: "-", wantValid: false, wantValue: "0"},
		{input: "30%", wantValid: false, wantValue: "0"},
		{input: "approx. 5 pcs", wantValid: false, wantValue: "0"},
		{input: "see act #12", wantValid: false, wantValue: "0"},
		{input: "1 23,00 ₽", wantValid: false, wantValue: "0"},
		{input: "12-05", wantValid: false, wantValue: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, ok := domain.ParseAmount(tt.input)
			assert.Equal(t, tt.wantValid, ok)
			assert.True(t, decimal.RequireFromString(tt.wantValue).Equal(d), "got %s", d)
		})
	}
}

func TestAmount_TextWithDigitsStaysText(t *testing.T) {
	var row domain.IncomeRow
	require.NoError(t, json.Unmarshal([]byte(`{"amount": "see act #12", "paid": "30%"}`), &row))

	assert.False(t, row.Amount.Valid)
	assert.Equal(t, "see act #12", row.Amount.Raw)
	assert.True(t, row.Amount.Decimal().IsZero())
	assert.False(t, row.Paid.Valid)
	assert.Equal(t, "30%", row.Paid.Raw)
}

func TestAmount_NumberOnlyForJSONNumbers(t *testing.T) {
	var row domain.IncomeRow
	require.NoError(t, json.Unmarshal([]byte(`{"amount": "1 234,50 ₽", "paid": 1000}`), &row))

	assert.True(t, row.Amount.Valid)
	assert.False(t, row.Amount.Number)
	assert.True(t, row.Paid.Valid)
	assert.True(t, row.Paid.Number)
	assert.True(t, domain.NewAmount(decimal.NewFromInt(5)).Number)
}
