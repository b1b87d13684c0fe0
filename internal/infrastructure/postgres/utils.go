package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error classes the handlers care about.
const (
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isForeignKeyViolation reports whether err is a foreign key violation, e.g. a
// customer_id or item_id referencing a missing row.
func isForeignKeyViolation(err error) bool {
	return pgErrCode(err) == codeForeignKeyViolation
}

// isCheckViolation reports whether err is a CHECK constraint violation, e.g. a
// line value below the 0.01 floor that slipped past validation.
func isCheckViolation(err error) bool {
	return pgErrCode(err) == codeCheckViolation
}
