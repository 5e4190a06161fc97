package dbx_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/litshelf/books-api/internal/store/dbx"
)

// Both the pool and a transaction must satisfy every store contract.
var (
	_ dbx.Reader = (*sql.DB)(nil)
	_ dbx.Execer = (*sql.DB)(nil)
	_ dbx.Reader = (*sql.Tx)(nil)
	_ dbx.Execer = (*sql.Tx)(nil)
)

func TestWithTimeoutSetsDeadline(t *testing.T) {
	ctx, cancel := dbx.WithTimeout(t.Context())
	defer cancel()

	dl, ok := ctx.Deadline()
	if !ok {
		t.Fatal("expected a deadline on the derived context")
	}
	if until := time.Until(dl); until > dbx.QueryTimeout {
		t.Fatalf("deadline %v out, want at most %v", until, dbx.QueryTimeout)
	}
}
