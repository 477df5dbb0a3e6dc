// Package currency provides money formatting for offer amounts.
// All monetary amounts are carried as decimal.Decimal to avoid floating-point errors.
package currency

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency represents an ISO 4217 currency code.
type Currency string

// Supported currencies.
const (
	USD Currency = "USD" // US Dollar
	EUR Currency = "EUR" // Euro
	GBP Currency = "GBP" // British Pound
	JPY Currency = "JPY" // Japanese Yen
	CAD Currency = "CAD" // Canadian Dollar
	AUD Currency = "AUD" // Australian Dollar
	CHF Currency = "CHF" // Swiss Franc
	SGD Currency = "SGD" // Singapore Dollar
)

// DefaultCurrency is used when an offer does not name its currency.
const DefaultCurrency = USD

// CurrencyInfo contains metadata about a currency.
type CurrencyInfo struct {
	Code         Currency
	Name         string
	Symbol       string
	SymbolBefore bool   // Whether symbol appears before amount
	ThousandsSep string // Thousands separator
	DecimalSep   string // Decimal separator
}

var currencies = map[Currency]CurrencyInfo{
	USD: {Code: USD, Name: "US Dollar", Symbol: "$", SymbolBefore: true, ThousandsSep: ",", DecimalSep: "."},
	EUR: {Code: EUR, Name: "Euro", Symbol: "€", SymbolBefore: false, ThousandsSep: ".", DecimalSep: ","},
	GBP: {Code: GBP, Name: "British Pound", Symbol: "£", SymbolBefore: true, ThousandsSep: ",", DecimalSep: "."},
	JPY: {Code: JPY, Name: "Japanese Yen", Symbol: "¥", SymbolBefore: true, ThousandsSep: ",", DecimalSep: "."},
	CAD: {Code: CAD, Name: "Canadian Dollar", Symbol: "$", SymbolBefore: true, ThousandsSep: ",", DecimalSep: "."},
	AUD: {Code: AUD, Name: "Australian Dollar", Symbol: "$", SymbolBefore: true, ThousandsSep: ",", DecimalSep: "."},
	CHF: {Code: CHF, Name: "Swiss Franc", Symbol: "CHF", SymbolBefore: true, ThousandsSep: "'", DecimalSep: "."},
	SGD: {Code: SGD, Name: "Singapore Dollar", Symbol: "$", SymbolBefore: true, ThousandsSep: ",", DecimalSep: "."},
}

// IsValid checks if a currency code is supported.
func IsValid(code string) bool {
	_, ok := currencies[Currency(code)]
	return ok
}

// GetInfo returns metadata for a currency code.
func GetInfo(code Currency) (CurrencyInfo, bool) {
	info, ok := currencies[code]
	return info, ok
}

// Parse resolves a currency code, case-insensitively, falling back to DefaultCurrency.
func Parse(code string) Currency {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	if _, ok := currencies[c]; ok {
		return c
	}
	return DefaultCurrency
}

// Money represents a monetary amount with currency.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency Currency        `json:"currency"`
}

// NewMoney creates a new Money value.
func NewMoney(amount decimal.Decimal, curr Currency) Money {
	if curr == "" {
		curr = DefaultCurrency
	}
	return Money{Amount: amount, Currency: curr}
}

// FormatFixed renders the amount with symbol, thousands grouping and exactly places decimals.
func (m Money) FormatFixed(places int) string {
	info, ok := GetInfo(m.Currency)
	if !ok {
		return fmt.Sprintf("%s %s", m.Amount.StringFixed(int32(places)), m.Currency)
	}

	number := group(m.Amount.Abs().StringFixed(int32(places)), info)
	sign := ""
	if m.Amount.Round(int32(places)).IsNegative() {
		sign = "-"
	}

	if info.SymbolBefore {
		return sign + info.Symbol + number
	}
	return sign + number + info.Symbol
}

// group inserts thousands separators into a plain fixed-point string like "50000.00".
func group(fixed string, info CurrencyInfo) string {
	intPart, fracPart, hasFrac := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(info.ThousandsSep)
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteString(info.DecimalSep)
		b.WriteString(fracPart)
	}
	return b.String()
}
