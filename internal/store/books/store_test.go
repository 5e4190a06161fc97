package books_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/litshelf/books-api/internal/models"
	books "github.com/litshelf/books-api/internal/store/books"
)

const selectCols = "SELECT id, title, author, year, isbn, genre, description FROM books"

func bookRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "author", "year", "isbn", "genre", "description"})
}

func TestList_NoFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM books`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	mock.ExpectQuery(regexp.QuoteMeta(selectCols+` ORDER BY id ASC LIMIT $1 OFFSET $2`)).
		WithArgs(10, 0).
		WillReturnRows(bookRows().
			AddRow(1, "Dune", "Frank Herbert", 1965, "0441013597", "Science Fiction", nil).
			AddRow(2, "Emma", "Jane Austen", nil, nil, nil, nil))

	rows, total, err := books.List(t.Context(), db, books.ListFilters{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if total != 42 {
		t.Fatalf("want total=42, got %d", total)
	}
	if len(rows) != 2 {
		t.Fatalf("want 2 rows, got %d", len(rows))
	}
	if rows[0].Year == nil || *rows[0].Year != 1965 {
		t.Fatalf("want year=1965, got %v", rows[0].Year)
	}
	if rows[1].Year != nil || rows[1].ISBN != nil || rows[1].Genre != nil {
		t.Fatalf("NULL columns must scan to nil pointers: %+v", rows[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestList_GenreFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM books WHERE genre = $1`)).
		WithArgs("Fantasy").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(regexp.QuoteMeta(selectCols+` WHERE genre = $1 ORDER BY id ASC LIMIT $2 OFFSET $3`)).
		WithArgs("Fantasy", 5, 0).
		WillReturnRows(bookRows().
			AddRow(3, "The Hobbit", "J.R.R. Tolkien", 1937, nil, "Fantasy", nil))

	rows, total, err := books.List(t.Context(), db, books.ListFilters{Genre: "Fantasy", Page: 1, Limit: 5})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("want total=1 rows=1, got total=%d rows=%d", total, len(rows))
	}
	if rows[0].Genre == nil || *rows[0].Genre != "Fantasy" {
		t.Fatalf("want genre=Fantasy, got %v", rows[0].Genre)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(selectCols+` WHERE id = $1`)).
		WithArgs(int64(99)).
		WillReturnRows(bookRows())

	_, err = books.GetByID(t.Context(), db, 99)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("want sql.ErrNoRows, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCreate_AssignsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO books (title, author, year, isbn, genre, description)\nVALUES ($1, $2, $3, $4, $5, $6) RETURNING id")).
		WithArgs("Dune", "Frank Herbert", 1965, nil, "Science Fiction", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	mock.ExpectQuery(regexp.QuoteMeta(selectCols+` WHERE id = $1`)).
		WithArgs(int64(11)).
		WillReturnRows(bookRows().
			AddRow(11, "Dune", "Frank Herbert", 1965, nil, "Science Fiction", nil))

	year := 1965
	genre := "Science Fiction"
	created, err := books.Create(t.Context(), db, models.Book{
		Title:  "Dune",
		Author: "Frank Herbert",
		Year:   &year,
		Genre:  &genre,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.ID != 11 {
		t.Fatalf("want id=11, got %d", created.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUpdate_RowGone(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE books SET title = $1 WHERE id = $2`)).
		WithArgs("New", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	title := "New"
	err = books.Update(t.Context(), db, 5, models.BookChanges{Title: &title})
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("want sql.ErrNoRows for vanished row, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM books WHERE id = $1`)).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := books.Delete(t.Context(), db, 4); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM books WHERE id = $1`)).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := books.Delete(t.Context(), db, 4); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("want sql.ErrNoRows on second delete, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSearch_MatchesDescriptionOnly(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	pattern := "%arrakis%"
	mock.ExpectQuery(`SELECT id, title, author, year, isbn, genre, description FROM books\s+WHERE public\.immutable_unaccent\(lower\(title\)\) LIKE \$1`).
		WithArgs(pattern, pattern, pattern, pattern, pattern, pattern).
		WillReturnRows(bookRows().
			AddRow(1, "Dune", "Frank Herbert", 1965, nil, nil, "A desert planet called Arrakis."))

	rows, err := books.Search(t.Context(), db, "arrakis")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rows) != 1 || rows[0].Title != "Dune" {
		t.Fatalf("want the Dune row, got %+v", rows)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCollectStats(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM books`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	mock.ExpectQuery(`SELECT genre, COUNT\(\*\) FROM books`).
		WillReturnRows(sqlmock.NewRows([]string{"genre", "count"}).
			AddRow("Fantasy", 2).
			AddRow("Science Fiction", 1))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT MIN(year), MAX(year) FROM books`)).
		WillReturnRows(sqlmock.NewRows([]string{"min", "max"}).AddRow(1937, 1965))

	s, err := books.CollectStats(t.Context(), db)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.TotalBooks != 3 {
		t.Fatalf("want total=3, got %d", s.TotalBooks)
	}
	if s.Genres["Fantasy"] != 2 || s.Genres["Science Fiction"] != 1 {
		t.Fatalf("unexpected histogram: %v", s.Genres)
	}
	if s.YearMin == nil || *s.YearMin != 1937 || s.YearMax == nil || *s.YearMax != 1965 {
		t.Fatalf("unexpected year span: %v %v", s.YearMin, s.YearMax)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
