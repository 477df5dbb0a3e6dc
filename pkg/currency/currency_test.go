package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		code  string
		valid bool
	}{
		{"USD", true},
		{"EUR", true},
		{"JPY", true},
		{"INVALID", false},
		{"", false},
		{"usd", false}, // case-sensitive
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValid(tt.code))
		})
	}
}

func TestParse(t *testing.T) {
	assert.Equal(t, EUR, Parse("eur"))
	assert.Equal(t, GBP, Parse(" GBP "))
	assert.Equal(t, DefaultCurrency, Parse(""))
	assert.Equal(t, DefaultCurrency, Parse("XYZ"))
}

func TestNewMoney_DefaultCurrency(t *testing.T) {
	m := NewMoney(decimal.NewFromInt(10), "")
	assert.Equal(t, USD, m.Currency)
}

func TestMoney_FormatFixed(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency Currency
		places   int
		expected string
	}{
		{"grouped dollars", "50000", USD, 2, "$50,000.00"},
		{"millions", "1234567.891", USD, 2, "$1,234,567.89"},
		{"under a thousand", "999.5", USD, 2, "$999.50"},
		{"zero", "0", USD, 2, "$0.00"},
		{"negative", "-2500", USD, 2, "-$2,500.00"},
		{"euro separators", "1234.5", EUR, 2, "1.234,50€"},
		{"swiss apostrophe", "1000000", CHF, 2, "CHF1'000'000.00"},
		{"yen forced to two places", "150000", JPY, 2, "¥150,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMoney(decimal.RequireFromString(tt.amount), tt.currency)
			assert.Equal(t, tt.expected, m.FormatFixed(tt.places))
		})
	}
}
