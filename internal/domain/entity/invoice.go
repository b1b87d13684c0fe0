package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is the header row. Amount fields are frozen at creation time and
// never recomputed from the live catalog.
type Invoice struct {
	ID             string
	InvoiceNumber  string
	Date           time.Time // calendar date only
	PONumber       string
	PODate         *time.Time
	Transport      string
	VehicleNo      string
	CustomerID     string
	Subtotal       decimal.Decimal // sum of line amounts
	Discount       decimal.Decimal // discount amount (not the percentage)
	CgstPercentage decimal.Decimal
	SgstPercentage decimal.Decimal
	CgstAmount     decimal.Decimal
	SgstAmount     decimal.Decimal
	Total          decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
