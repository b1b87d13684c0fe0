package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a catalog entry. Line items copy its rate at invoice time; the
// catalog rate may change later without touching existing invoices.
type Item struct {
	ID          string
	Name        string
	Description string
	HSNCode     string // tariff classification code
	Rate        decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
