// Package money converts between decimal currency amounts and their
// integer representation in minor units (cents). All balances in the
// ledger are stored as integer cents; decimals appear only at the edges.
//
// Conversion examples:
//
//	100.50  -> 10050
//	100.505 -> 10051 (half-up)
//	100.504 -> 10050 (half-up)
//	0.01    -> 1
package money

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount is returned when an amount is zero, negative, or
	// otherwise not a usable monetary value.
	ErrInvalidAmount = errors.New("amount must be a positive value")

	// ErrAmountOutOfRange is returned when an amount exceeds the maximum
	// representable value in cents.
	ErrAmountOutOfRange = errors.New("amount exceeds the maximum representable value")
)

var (
	centsPerUnit = decimal.NewFromInt(100)
	maxCents     = decimal.NewFromInt(math.MaxInt64)
)

// ToCents converts a decimal currency amount to integer cents, rounding
// half away from zero. Inputs are strictly positive; sign is applied by
// the operation type, not here.
func ToCents(value decimal.Decimal) (int64, error) {
	if value.Sign() <= 0 {
		return 0, ErrInvalidAmount
	}

	cents := value.Mul(centsPerUnit).Round(0)
	if cents.Cmp(maxCents) > 0 {
		return 0, ErrAmountOutOfRange
	}

	return cents.IntPart(), nil
}

// FromCents converts integer cents back to a decimal amount at a fixed
// scale of 2. The conversion is exact.
func FromCents(cents int64) (decimal.Decimal, error) {
	if cents < 0 {
		return decimal.Decimal{}, ErrInvalidAmount
	}

	return decimal.New(cents, -2), nil
}
