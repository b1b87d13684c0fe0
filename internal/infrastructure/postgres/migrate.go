package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate synchronizes the schema at startup: creates the four tables,
// foreign keys, value floors and the secondary indexes on invoice_items if
// they do not exist yet. Statements are idempotent.
//
// invoice_number is deliberately not unique at this layer: two concurrent
// submissions with the same number may both commit.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS customers (
			id         UUID PRIMARY KEY,
			name       TEXT NOT NULL,
			address    TEXT,
			email      TEXT,
			phone      TEXT,
			gstin      TEXT,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS items (
			id          UUID PRIMARY KEY,
			name        TEXT NOT NULL,
			description TEXT,
			hsn_code    TEXT NOT NULL,
			rate        NUMERIC(10,2) NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL,
			updated_at  TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS invoices (
			id              UUID PRIMARY KEY,
			invoice_number  TEXT NOT NULL,
			date            DATE NOT NULL,
			po_number       TEXT,
			po_date         DATE,
			transport       TEXT,
			vehicle_no      TEXT,
			customer_id     UUID NOT NULL REFERENCES customers(id),
			subtotal        NUMERIC(10,2) NOT NULL,
			discount        NUMERIC(10,2) NOT NULL DEFAULT 0,
			cgst_percentage NUMERIC(5,2),
			sgst_percentage NUMERIC(5,2),
			cgst_amount     NUMERIC(10,2),
			sgst_amount     NUMERIC(10,2),
			total           NUMERIC(10,2) NOT NULL,
			created_at      TIMESTAMPTZ NOT NULL,
			updated_at      TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS invoice_items (
			id         UUID PRIMARY KEY,
			invoice_id UUID NOT NULL REFERENCES invoices(id),
			item_id    UUID NOT NULL REFERENCES items(id),
			quantity   NUMERIC(10,2) NOT NULL CHECK (quantity >= 0.01),
			rate       NUMERIC(10,2) NOT NULL CHECK (rate >= 0.01),
			amount     NUMERIC(10,2) NOT NULL CHECK (amount >= 0.01)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_invoice_items_invoice_id ON invoice_items (invoice_id)`,
		`CREATE INDEX IF NOT EXISTS idx_invoice_items_item_id ON invoice_items (item_id)`,
	}
	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate schema: %w", err)
		}
	}
	return nil
}
