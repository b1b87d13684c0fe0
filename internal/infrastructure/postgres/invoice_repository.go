package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/karant-dev/gst-invoice-api/internal/domain/entity"
	"github.com/karant-dev/gst-invoice-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implements InvoiceRepository (usable with pool or tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the adapter. Pass a pool or a tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persists the invoice header.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, invoice_number, date, po_number, po_date, transport, vehicle_no,
		                      customer_id, subtotal, discount, cgst_percentage, sgst_percentage,
		                      cgst_amount, sgst_amount, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.InvoiceNumber, invoice.Date,
		nullIfEmpty(invoice.PONumber), invoice.PODate, nullIfEmpty(invoice.Transport), nullIfEmpty(invoice.VehicleNo),
		invoice.CustomerID, invoice.Subtotal, invoice.Discount,
		invoice.CgstPercentage, invoice.SgstPercentage,
		invoice.CgstAmount, invoice.SgstAmount, invoice.Total,
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("invoice references a missing customer: %w", err)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateItems bulk-inserts all lines of an invoice in one batch round trip.
func (r *InvoiceRepo) CreateItems(ctx context.Context, items []*entity.InvoiceItem) error {
	batch := &pgx.Batch{}
	query := `
		INSERT INTO invoice_items (id, invoice_id, item_id, quantity, rate, amount)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, it := range items {
		batch.Queue(query, it.ID, it.InvoiceID, it.ItemID, it.Quantity, it.Rate, it.Amount)
	}
	results := r.q.SendBatch(ctx, batch)
	defer results.Close()
	for range items {
		if _, err := results.Exec(); err != nil {
			switch {
			case isForeignKeyViolation(err):
				return fmt.Errorf("invoice line references a missing item: %w", err)
			case isCheckViolation(err):
				return fmt.Errorf("invoice line below the 0.01 floor: %w", err)
			}
			return fmt.Errorf("insert invoice items: %w", err)
		}
	}
	return nil
}

const invoiceColumns = `id, invoice_number, date, COALESCE(po_number, ''), po_date,
	COALESCE(transport, ''), COALESCE(vehicle_no, ''), customer_id,
	subtotal, discount, COALESCE(cgst_percentage, 0), COALESCE(sgst_percentage, 0),
	COALESCE(cgst_amount, 0), COALESCE(sgst_amount, 0), total, created_at, updated_at`

// GetByID fetches an invoice header by ID. Returns nil when absent.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// List returns all invoice headers, most recent invoice date first. Ties keep
// a stable order via created_at.
func (r *InvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// GetItemsByInvoiceID returns the lines of one invoice.
func (r *InvoiceRepo) GetItemsByInvoiceID(ctx context.Context, invoiceID string) ([]*entity.InvoiceItem, error) {
	query := `
		SELECT id, invoice_id, item_id, quantity, rate, amount
		FROM invoice_items WHERE invoice_id = $1 ORDER BY id`
	return r.queryItems(ctx, query, invoiceID)
}

// ListItems returns every invoice line.
func (r *InvoiceRepo) ListItems(ctx context.Context) ([]*entity.InvoiceItem, error) {
	query := `
		SELECT id, invoice_id, item_id, quantity, rate, amount
		FROM invoice_items ORDER BY invoice_id, id`
	return r.queryItems(ctx, query)
}

func (r *InvoiceRepo) queryItems(ctx context.Context, query string, args ...any) ([]*entity.InvoiceItem, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceItem
	for rows.Next() {
		var it entity.InvoiceItem
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.ItemID, &it.Quantity, &it.Rate, &it.Amount); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.Date, &inv.PONumber, &inv.PODate,
		&inv.Transport, &inv.VehicleNo, &inv.CustomerID,
		&inv.Subtotal, &inv.Discount, &inv.CgstPercentage, &inv.SgstPercentage,
		&inv.CgstAmount, &inv.SgstAmount, &inv.Total, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
