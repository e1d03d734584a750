/*
Package statement provides the building blocks for itemized settlement statements.

PURPOSE:
  This package contains domain-agnostic types for building an auditable,
  ordered statement of monetary line items: earnings and deductions grouped
  by category, with totals that are always exact sums of the emitted items.

KEY CONCEPTS:
  - Money: A currency amount backed by decimal.Decimal (money.go)
  - Date:  A day-granularity calendar date (date.go)
  - Item/Builder/Result: The ordered statement itself (statement.go)

DESIGN PRINCIPLES:
  1. Ordering: Items are appended in computation order and never reordered.
     Later amounts (contribution bases, fine bases) are sums over the
     in-progress item sequence, so the order is load-bearing.
  2. Precision: Uses decimal.Decimal to avoid floating-point errors. Each
     item value is rounded to centavos exactly once, at emission.
  3. Sign convention: Item values are always non-negative; whether an item
     adds or subtracts is encoded by its Type, never by numeric sign.

SEE ALSO:
  - statement.go: Item, Builder, Result
  - errors.go: Validation error types
*/
package statement

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Currency amount in BRL
// =============================================================================

type Money struct {
	Value decimal.Decimal
}

func NewMoney(value float64) Money {
	return Money{Value: decimal.NewFromFloat(value)}
}

func NewMoneyFromInt(value int) Money {
	return Money{Value: decimal.NewFromInt(int64(value))}
}

func ZeroMoney() Money {
	return Money{Value: decimal.Zero}
}

func (m Money) Add(o Money) Money              { return Money{Value: m.Value.Add(o.Value)} }
func (m Money) Sub(o Money) Money              { return Money{Value: m.Value.Sub(o.Value)} }
func (m Money) Mul(s decimal.Decimal) Money    { return Money{Value: m.Value.Mul(s)} }
func (m Money) Div(s decimal.Decimal) Money    { return Money{Value: m.Value.Div(s)} }
func (m Money) MulInt(n int) Money             { return m.Mul(decimal.NewFromInt(int64(n))) }
func (m Money) DivInt(n int) Money             { return m.Div(decimal.NewFromInt(int64(n))) }
func (m Money) IsZero() bool                   { return m.Value.IsZero() }
func (m Money) IsPositive() bool               { return m.Value.IsPositive() }
func (m Money) IsNegative() bool               { return m.Value.IsNegative() }
func (m Money) GreaterThan(o Money) bool       { return m.Value.GreaterThan(o.Value) }
func (m Money) Equal(o Money) bool             { return m.Value.Equal(o.Value) }

// Round2 rounds to centavos. Applied once per emitted item; totals are sums
// of already-rounded items and are never re-rounded.
func (m Money) Round2() Money { return Money{Value: m.Value.Round(2)} }

// Percent returns p percent of m (e.g. m.Percent(8) for an 8% contribution).
func (m Money) Percent(p float64) Money {
	return m.Mul(decimal.NewFromFloat(p)).Div(decimal.NewFromInt(100))
}

// Float64 returns the amount as a float for serialization. Exact for any
// value already rounded to centavos.
func (m Money) Float64() float64 {
	f, _ := m.Value.Float64()
	return f
}

func (m Money) String() string { return m.Value.StringFixed(2) }
