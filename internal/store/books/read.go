package books

import (
	"context"
	"database/sql"

	"github.com/litshelf/books-api/internal/models"
	"github.com/litshelf/books-api/internal/store/dbx"
)

// List returns one page of books plus the total row count for the same
// predicate. The two reads run sequentially; a row appearing or vanishing
// between them is an accepted transient mismatch.
func List(ctx context.Context, db dbx.Reader, f ListFilters) ([]models.Book, int, error) {
	dataSQL, countSQL, args := BuildList(f)

	qctx, cancel := dbx.WithTimeout(ctx)
	defer cancel()

	var total int
	if err := db.QueryRowContext(qctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := db.QueryContext(qctx, dataSQL, append(args, f.Limit, f.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out, err := collectBooks(rows)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// GetByID fetches a single record; sql.ErrNoRows passes through untouched so
// callers can map it to a 404.
func GetByID(ctx context.Context, db dbx.Getter, id int64) (models.Book, error) {
	qctx, cancel := dbx.WithTimeout(ctx)
	defer cancel()

	row := db.QueryRowContext(qctx,
		"SELECT "+bookColumns+" FROM books WHERE id = $1", id)
	return scanBook(row)
}

// Search runs the six-way OR containment match for an already-normalized
// term.
func Search(ctx context.Context, db dbx.Queryer, term string) ([]models.Book, error) {
	q, args := BuildSearch(term)

	qctx, cancel := dbx.WithTimeout(ctx)
	defer cancel()

	rows, err := db.QueryContext(qctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBooks(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(r rowScanner) (models.Book, error) {
	var (
		b     models.Book
		year  sql.NullInt64
		isbn  sql.NullString
		genre sql.NullString
		desc  sql.NullString
	)
	if err := r.Scan(&b.ID, &b.Title, &b.Author, &year, &isbn, &genre, &desc); err != nil {
		return models.Book{}, err
	}
	if year.Valid {
		y := int(year.Int64)
		b.Year = &y
	}
	if isbn.Valid {
		b.ISBN = &isbn.String
	}
	if genre.Valid {
		b.Genre = &genre.String
	}
	if desc.Valid {
		b.Description = &desc.String
	}
	return b, nil
}

func collectBooks(rows *sql.Rows) ([]models.Book, error) {
	out := []models.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
