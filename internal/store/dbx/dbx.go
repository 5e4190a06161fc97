package dbx

import (
	"context"
	"database/sql"
	"time"
)

// QueryTimeout bounds every store round trip. Exceeding it surfaces as a
// gateway timeout to the caller; there is no retry.
const QueryTimeout = 5 * time.Second

// Queryer/Execer/Getter let store code work with *sql.DB and *sql.Tx alike.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
type Getter interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Reader combines the two read contracts for store calls that run both a
// single-row lookup and a row-set query.
type Reader interface {
	Queryer
	Getter
}

// WithTimeout derives the per-statement context a store call runs under.
// Callers must hold the cancel func until result rows are fully consumed.
func WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, QueryTimeout)
}
