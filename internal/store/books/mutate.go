package books

import (
	"context"
	"database/sql"

	"github.com/litshelf/books-api/internal/models"
	"github.com/litshelf/books-api/internal/store/dbx"
)

// Create inserts a validated record and returns it with the store-assigned
// id. No other field is altered beyond the trimming done by the builder.
func Create(ctx context.Context, db dbx.Getter, b models.Book) (models.Book, error) {
	q, args := BuildInsert(b)

	qctx, cancel := dbx.WithTimeout(ctx)
	defer cancel()

	if err := db.QueryRowContext(qctx, q, args...).Scan(&b.ID); err != nil {
		return models.Book{}, err
	}
	return GetByID(ctx, db, b.ID)
}

// Update applies a partial update and returns sql.ErrNoRows when the id no
// longer resolves, so a record deleted between the existence check and the
// write still surfaces as not-found.
func Update(ctx context.Context, db dbx.Execer, id int64, c models.BookChanges) error {
	q, args, err := BuildUpdate(id, c)
	if err != nil {
		return err
	}

	qctx, cancel := dbx.WithTimeout(ctx)
	defer cancel()

	res, err := db.ExecContext(qctx, q, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes the row unconditionally; 0 rows affected means the id was
// already gone.
func Delete(ctx context.Context, db dbx.Execer, id int64) error {
	q, args := BuildDelete(id)

	qctx, cancel := dbx.WithTimeout(ctx)
	defer cancel()

	res, err := db.ExecContext(qctx, q, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
