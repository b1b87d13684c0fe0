package entity

import "github.com/shopspring/decimal"

// Floor for quantity, rate and amount on a line item.
var lineItemFloor = decimal.NewFromFloat(0.01)

// InvoiceItem is one invoice line: a catalog item at a frozen rate and
// quantity. Amount is always round(rate*quantity, 2), set server-side.
type InvoiceItem struct {
	ID        string
	InvoiceID string
	ItemID    string
	Quantity  decimal.Decimal
	Rate      decimal.Decimal
	Amount    decimal.Decimal
}

// Validate returns the per-field messages for values below the 0.01 floor.
// An empty slice means the line is storable.
func (it *InvoiceItem) Validate() []string {
	var msgs []string
	if it.Quantity.LessThan(lineItemFloor) {
		msgs = append(msgs, "Quantity must be at least 0.01")
	}
	if it.Rate.LessThan(lineItemFloor) {
		msgs = append(msgs, "Rate must be at least 0.01")
	}
	if it.Amount.LessThan(lineItemFloor) {
		msgs = append(msgs, "Amount must be at least 0.01")
	}
	return msgs
}
