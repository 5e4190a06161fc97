package books

import (
	"context"
	"database/sql"

	"github.com/litshelf/books-api/internal/store/dbx"
)

// CollectStats gathers the collection summary: total count, per-genre
// histogram (NULL genres excluded), and the year span.
func CollectStats(ctx context.Context, db dbx.Reader) (Stats, error) {
	qctx, cancel := dbx.WithTimeout(ctx)
	defer cancel()

	s := Stats{Genres: map[string]int{}}

	if err := db.QueryRowContext(qctx, `SELECT COUNT(*) FROM books`).Scan(&s.TotalBooks); err != nil {
		return Stats{}, err
	}

	rows, err := db.QueryContext(qctx, `
SELECT genre, COUNT(*) FROM books
WHERE genre IS NOT NULL
GROUP BY genre
ORDER BY COUNT(*) DESC, genre ASC`)
	if err != nil {
		return Stats{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var g string
		var n int
		if err := rows.Scan(&g, &n); err != nil {
			return Stats{}, err
		}
		s.Genres[g] = n
	}
	if err := rows.Err(); err != nil {
		return Stats{}, err
	}

	var yMin, yMax sql.NullInt64
	if err := db.QueryRowContext(qctx, `SELECT MIN(year), MAX(year) FROM books`).Scan(&yMin, &yMax); err != nil {
		return Stats{}, err
	}
	if yMin.Valid {
		v := int(yMin.Int64)
		s.YearMin = &v
	}
	if yMax.Valid {
		v := int(yMax.Int64)
		s.YearMax = &v
	}
	return s, nil
}
