package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/karant-dev/gst-invoice-api/internal/application/billing"
	"github.com/karant-dev/gst-invoice-api/internal/domain/repository"
)

var _ billing.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside one PostgreSQL transaction.
type TxRunner struct {
	pool           *pgxpool.Pool
	acquireTimeout time.Duration
}

// NewTxRunner builds the runner. acquireTimeout bounds the whole transaction
// scope, so a starved pool fails with deadline exceeded instead of blocking.
func NewTxRunner(pool *pgxpool.Pool, acquireTimeout time.Duration) *TxRunner {
	return &TxRunner{pool: pool, acquireTimeout: acquireTimeout}
}

// Run begins a transaction, executes fn with an invoice repository bound to
// the tx, and commits — or rolls back when fn or commit fails.
func (r *TxRunner) Run(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error {
	if r.acquireTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.acquireTimeout)
		defer cancel()
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewInvoiceRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
