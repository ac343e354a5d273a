package dca

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// This file contains the averaging calculator: stateless functions over a
// list of purchases. They never modify their input.

// TotalInvestment is the sum of the money invested.
func TotalInvestment(ps []Purchase) decimal.Decimal {
	total := decimal.Zero
	for _, p := range ps {
		total = total.Add(p.Investment)
	}
	return total
}

// TotalQuantity is the sum of the quantities bought.
func TotalQuantity(ps []Purchase) decimal.Decimal {
	total := decimal.Zero
	for _, p := range ps {
		total = total.Add(p.Quantity)
	}
	return total
}

// BreakEven returns the volume-weighted average entry price, that is the
// total investment divided by the total quantity.
//
// It is absent for an empty list, or if the total quantity is zero.
func BreakEven(ps []Purchase) decimal.NullDecimal {
	if len(ps) == 0 {
		return none
	}
	quantity := TotalQuantity(ps)
	if quantity.IsZero() {
		return none
	}
	return some(TotalInvestment(ps).Div(quantity))
}

// NextPurchasePrice returns the price at which the asset has dropped by
// exactly 'drawdown' percent from 'last'.
//
// It is absent if 'last' is absent or not positive. It returns an error
// wrapping ErrInvalidArgument if drawdown is not in [0, 100].
func NextPurchasePrice(last decimal.NullDecimal, drawdown decimal.Decimal) (decimal.NullDecimal, error) {
	if !last.Valid || !last.Decimal.IsPositive() {
		return none, nil
	}
	if err := ValidDrawdown(drawdown); err != nil {
		return none, err
	}
	factor := decimal.NewFromInt(1).Sub(drawdown.Div(hundred))
	return some(last.Decimal.Mul(factor)), nil
}

// ValidDrawdown returns an error wrapping ErrInvalidArgument if d is outside
// [0, 100].
func ValidDrawdown(d decimal.Decimal) error {
	if d.IsNegative() || d.GreaterThan(hundred) {
		return fmt.Errorf("drawdown must be between 0 and 100, got %s: %w", d, ErrInvalidArgument)
	}
	return nil
}

// Summary gathers everything the calculator derives from an asset.
//
// Totals are absent when the ledger is empty.
type Summary struct {
	Asset           string
	Currency        Currency
	Count           int
	TotalInvestment decimal.NullDecimal
	TotalQuantity   decimal.NullDecimal
	BreakEven       decimal.NullDecimal
	LastPrice       decimal.NullDecimal
	Drawdown        decimal.Decimal
	NextPrice       decimal.NullDecimal
}

// Summarize computes the summary of an asset.
func Summarize(a *Asset) (Summary, error) {
	ps := a.Ledger.All()
	s := Summary{
		Asset:     a.Name,
		Currency:  a.Currency,
		Count:     len(ps),
		BreakEven: BreakEven(ps),
		Drawdown:  a.Drawdown,
	}
	if len(ps) > 0 {
		s.TotalInvestment = some(TotalInvestment(ps))
		s.TotalQuantity = some(TotalQuantity(ps))
	}
	if last, ok := a.Ledger.Last(); ok {
		s.LastPrice = some(last.Price)
	}
	next, err := NextPurchasePrice(s.LastPrice, a.Drawdown)
	if err != nil {
		return s, err
	}
	s.NextPrice = next
	return s, nil
}
