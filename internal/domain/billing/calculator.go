// Package billing holds the pure invoice amount calculations. No I/O, no
// state: the same inputs always produce the same decimals, which the create
// path persists verbatim.
package billing

import "github.com/shopspring/decimal"

var (
	hundred = decimal.NewFromInt(100)
)

// Line is a priced quantity: one submitted invoice line before normalization.
type Line struct {
	Rate     decimal.Decimal
	Quantity decimal.Decimal
}

// Amounts are the derived header figures for an invoice.
type Amounts struct {
	LineAmounts    []decimal.Decimal
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxableAmount  decimal.Decimal
	CgstAmount     decimal.Decimal
	SgstAmount     decimal.Decimal
	Total          decimal.Decimal
}

// LineAmount computes round(rate*quantity, 2) with half-up rounding.
func LineAmount(rate, quantity decimal.Decimal) decimal.Decimal {
	return rate.Mul(quantity).Round(2)
}

// Calculate derives all header amounts from the submitted lines and
// percentages. The discount percentage is clamped into [0,100]; the GST
// percentages only get a zero floor, with no upper bound.
func Calculate(lines []Line, discountPct, cgstPct, sgstPct decimal.Decimal) Amounts {
	a := Amounts{LineAmounts: make([]decimal.Decimal, len(lines))}
	for i, l := range lines {
		a.LineAmounts[i] = LineAmount(l.Rate, l.Quantity)
		a.Subtotal = a.Subtotal.Add(a.LineAmounts[i])
	}

	a.DiscountAmount = a.Subtotal.Mul(clamp(discountPct, decimal.Zero, hundred)).Div(hundred).Round(2)
	a.TaxableAmount = a.Subtotal.Sub(a.DiscountAmount)
	a.CgstAmount = a.TaxableAmount.Mul(floorZero(cgstPct)).Div(hundred).Round(2)
	a.SgstAmount = a.TaxableAmount.Mul(floorZero(sgstPct)).Div(hundred).Round(2)
	a.Total = a.TaxableAmount.Add(a.CgstAmount).Add(a.SgstAmount)
	return a
}

func clamp(d, lo, hi decimal.Decimal) decimal.Decimal {
	if d.LessThan(lo) {
		return lo
	}
	if d.GreaterThan(hi) {
		return hi
	}
	return d
}

func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return d
}
