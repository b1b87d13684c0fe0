package repository

import (
	"context"

	"github.com/karant-dev/gst-invoice-api/internal/domain/entity"
)

// InvoiceRepository is the persistence port for invoice headers and lines.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	// CreateItems bulk-inserts all lines of one invoice. Partial success is
	// never observable: callers run this inside the creation transaction.
	CreateItems(ctx context.Context, items []*entity.InvoiceItem) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	GetItemsByInvoiceID(ctx context.Context, invoiceID string) ([]*entity.InvoiceItem, error)
	// List returns all invoice headers ordered by date descending.
	List(ctx context.Context) ([]*entity.Invoice, error)
	// ListItems returns every invoice line, for assembling the list response.
	ListItems(ctx context.Context) ([]*entity.InvoiceItem, error)
}
