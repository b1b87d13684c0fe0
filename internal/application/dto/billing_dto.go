package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body for POST /api/customers.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	GSTIN   string `json:"gstin,omitempty"`
}

// CustomerResponse customer row in responses.
type CustomerResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	GSTIN     string `json:"gstin,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// CreateItemRequest body for POST /api/items.
type CreateItemRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	HSNCode     string          `json:"hsn_code"`
	Rate        decimal.Decimal `json:"rate"`
}

// ItemResponse catalog item row in responses.
type ItemResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	HSNCode     string          `json:"hsn_code"`
	Rate        decimal.Decimal `json:"rate"`
	CreatedAt   string          `json:"created_at,omitempty"`
	UpdatedAt   string          `json:"updated_at,omitempty"`
}

// CreateInvoiceRequest body for POST /api/invoices.
// Subtotal, Total and per-line Amount are accepted for wire compatibility with
// the browser form but always recomputed server-side. Discount is the discount
// percentage; the stored discount is the computed amount.
type CreateInvoiceRequest struct {
	InvoiceNumber  string               `json:"invoice_number"`
	Date           string               `json:"date"` // YYYY-MM-DD
	PONumber       string               `json:"po_number,omitempty"`
	PODate         string               `json:"po_date,omitempty"` // YYYY-MM-DD
	Transport      string               `json:"transport,omitempty"`
	VehicleNo      string               `json:"vehicle_no,omitempty"`
	CustomerID     string               `json:"customer_id"`
	Subtotal       decimal.Decimal      `json:"subtotal"`
	Discount       decimal.Decimal      `json:"discount"`
	CgstPercentage decimal.Decimal      `json:"cgst_percentage"`
	SgstPercentage decimal.Decimal      `json:"sgst_percentage"`
	Total          decimal.Decimal      `json:"total"`
	Items          []InvoiceItemRequest `json:"items"`
}

// InvoiceItemRequest one submitted invoice line.
type InvoiceItemRequest struct {
	ItemID   string          `json:"item_id"`
	Rate     decimal.Decimal `json:"rate"`
	Quantity decimal.Decimal `json:"quantity"`
	Amount   decimal.Decimal `json:"amount,omitempty"` // ignored, recomputed
}

// InvoiceResponse fully hydrated invoice: customer plus lines with their
// catalog items.
type InvoiceResponse struct {
	ID             string                `json:"id"`
	InvoiceNumber  string                `json:"invoice_number"`
	Date           string                `json:"date"`
	PONumber       string                `json:"po_number,omitempty"`
	PODate         string                `json:"po_date,omitempty"`
	Transport      string                `json:"transport,omitempty"`
	VehicleNo      string                `json:"vehicle_no,omitempty"`
	CustomerID     string                `json:"customer_id"`
	Customer       *CustomerResponse     `json:"customer,omitempty"`
	Subtotal       decimal.Decimal       `json:"subtotal"`
	Discount       decimal.Decimal       `json:"discount"`
	CgstPercentage decimal.Decimal       `json:"cgst_percentage"`
	SgstPercentage decimal.Decimal       `json:"sgst_percentage"`
	CgstAmount     decimal.Decimal       `json:"cgst_amount"`
	SgstAmount     decimal.Decimal       `json:"sgst_amount"`
	Total          decimal.Decimal       `json:"total"`
	Items          []InvoiceItemResponse `json:"items"`
	CreatedAt      string                `json:"created_at,omitempty"`
	UpdatedAt      string                `json:"updated_at,omitempty"`
}

// InvoiceItemResponse one invoice line with its catalog item.
type InvoiceItemResponse struct {
	ID        string          `json:"id"`
	InvoiceID string          `json:"invoice_id"`
	ItemID    string          `json:"item_id"`
	Item      *ItemResponse   `json:"item,omitempty"`
	Quantity  decimal.Decimal `json:"quantity"`
	Rate      decimal.Decimal `json:"rate"`
	Amount    decimal.Decimal `json:"amount"`
}

// CreateInvoiceResponse envelope for a successful POST /api/invoices.
type CreateInvoiceResponse struct {
	Message string           `json:"message"`
	Invoice *InvoiceResponse `json:"invoice"`
}
