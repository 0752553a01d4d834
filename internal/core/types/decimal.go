// Package types provides value types shared by several registers.
package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Quantity is an exact decimal amount (litres of media, grams of agar, pH, °C).
// Uses decimal.Decimal to avoid floating-point drift when balances are summed.
type Quantity = decimal.Decimal

// ParseQuantity parses a decimal string such as "12.5".
func ParseQuantity(s string) (Quantity, error) {
	q, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse quantity %q: %w", s, err)
	}
	return q, nil
}

// MustQuantity parses a constant, panics on error. Seed data and tests only.
func MustQuantity(s string) Quantity {
	return decimal.RequireFromString(s)
}

// Zero returns the zero quantity.
func Zero() Quantity {
	return decimal.Zero
}

// Sum adds quantities exactly.
func Sum(values ...Quantity) Quantity {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// Ratio returns part/whole rounded to places, or zero when whole is zero.
func Ratio(part, whole int, places int32) Quantity {
	if whole == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(part)).
		DivRound(decimal.NewFromInt(int64(whole)), places)
}
