package apperr

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgconn"
)

// FromStore normalizes errors coming back from the database layer into the
// taxonomy. Deadline expiry becomes a timeout, missing rows become not-found,
// everything else stays an uncaught internal failure (500). The SQLSTATE of a
// Postgres error is surfaced for log lines only, never in the message.
func FromStore(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		return Timeout("database operation timed out")
	case errors.Is(err, sql.ErrNoRows):
		return NotFound("record not found")
	default:
		return err
	}
}

// SQLState extracts the Postgres SQLSTATE code from err, if any. Used to
// enrich log events around store failures.
func SQLState(err error) string {
	var pg *pgconn.PgError
	if errors.As(err, &pg) {
		return pg.Code
	}
	return ""
}
