// Package money holds the decimal rules shared by wallets, transactions,
// budgets and reports. Amounts are shopspring decimals stored as NUMERIC(14,2).
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

const Places = 2

var (
	ErrNotPositive = errors.New("amount must be positive")
	ErrTooLarge    = errors.New("amount exceeds storable range")
)

// NUMERIC(14,2) holds at most twelve integer digits.
var limit = decimal.New(1, 12)

func init() {
	// Amounts go out as JSON numbers, the way clients send them.
	decimal.MarshalJSONWithoutQuotes = true
}

// Round rounds half away from zero to two fraction digits.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// Positive rounds d and checks it is a storable amount greater than zero.
func Positive(d decimal.Decimal) (decimal.Decimal, error) {
	r := Round(d)
	if !r.IsPositive() {
		return decimal.Zero, ErrNotPositive
	}
	if r.GreaterThanOrEqual(limit) {
		return decimal.Zero, ErrTooLarge
	}
	return r, nil
}

// Storable reports whether d fits a NUMERIC(14,2) column, sign included.
func Storable(d decimal.Decimal) bool {
	return Round(d).Abs().LessThan(limit)
}

// Abs formats the magnitude of d the way notifications print amounts.
func Abs(d decimal.Decimal) string {
	return d.Abs().String()
}
