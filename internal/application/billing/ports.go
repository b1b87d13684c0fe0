package billing

import (
	"context"

	"github.com/karant-dev/gst-invoice-api/internal/domain/repository"
)

// TxRunner runs fn inside one database transaction, with an invoice repository
// bound to that transaction. fn returning an error rolls everything back.
type TxRunner interface {
	Run(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error
}
