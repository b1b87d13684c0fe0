package entity

import "time"

// Customer is a billed party. Referenced by invoices, never deleted.
type Customer struct {
	ID        string
	Name      string
	Address   string
	Email     string
	Phone     string
	GSTIN     string // GST registration identifier
	CreatedAt time.Time
	UpdatedAt time.Time
}
