package books_test

import (
	"testing"

	"github.com/litshelf/books-api/internal/api/apperr"
	"github.com/litshelf/books-api/internal/models"
	books "github.com/litshelf/books-api/internal/store/books"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }

func TestBuildListNoFilters(t *testing.T) {
	dataSQL, countSQL, args := books.BuildList(books.ListFilters{Page: 1, Limit: 10})

	require.Equal(t, "SELECT COUNT(*) FROM books", countSQL)
	require.Equal(t,
		"SELECT id, title, author, year, isbn, genre, description FROM books ORDER BY id ASC LIMIT $1 OFFSET $2",
		dataSQL)
	require.Empty(t, args)
}

func TestBuildListFilters(t *testing.T) {
	f := books.ListFilters{Genre: "Fantasy", Year: intp(1954), Page: 3, Limit: 20}
	dataSQL, countSQL, args := books.BuildList(f)

	require.Equal(t, "SELECT COUNT(*) FROM books WHERE genre = $1 AND year = $2", countSQL)
	require.Equal(t,
		"SELECT id, title, author, year, isbn, genre, description FROM books WHERE genre = $1 AND year = $2 ORDER BY id ASC LIMIT $3 OFFSET $4",
		dataSQL)
	require.Equal(t, []any{"Fantasy", 1954}, args)
	require.Equal(t, 40, f.Offset())
}

func TestBuildListGenreOnly(t *testing.T) {
	_, countSQL, args := books.BuildList(books.ListFilters{Genre: "X", Page: 1, Limit: 5})
	require.Equal(t, "SELECT COUNT(*) FROM books WHERE genre = $1", countSQL)
	require.Equal(t, []any{"X"}, args)
}

func TestBuildSearchBindsTermSixTimes(t *testing.T) {
	q, args := books.BuildSearch("dune")

	require.Len(t, args, 6)
	for _, a := range args {
		require.Equal(t, "%dune%", a)
	}
	require.Contains(t, q, "public.immutable_unaccent(lower(title)) LIKE $1")
	require.Contains(t, q, "public.immutable_unaccent(lower(author)) LIKE $2")
	require.Contains(t, q, "public.immutable_unaccent(lower(genre)) LIKE $3")
	require.Contains(t, q, "isbn LIKE $4")
	require.Contains(t, q, "year::text LIKE $5")
	require.Contains(t, q, "public.immutable_unaccent(lower(description)) LIKE $6")
	require.Contains(t, q, "ORDER BY id ASC")
}

func TestBuildInsertTrimsAndNulls(t *testing.T) {
	b := models.Book{
		Title:  "  Dune  ",
		Author: " Frank Herbert ",
		Year:   intp(1965),
		ISBN:   strp("  "),
		Genre:  strp(" Science Fiction "),
		// Description absent
	}
	q, args := books.BuildInsert(b)

	require.Equal(t,
		"INSERT INTO books (title, author, year, isbn, genre, description)\nVALUES ($1, $2, $3, $4, $5, $6) RETURNING id", q)
	require.Len(t, args, 6)
	require.Equal(t, "Dune", args[0])
	require.Equal(t, "Frank Herbert", args[1])
	require.Equal(t, 1965, *(args[2].(*int)))
	require.Nil(t, args[3].(*string))           // whitespace-only isbn becomes NULL
	require.Equal(t, "Science Fiction", *(args[4].(*string)))
	require.Nil(t, args[5].(*string))
}

func TestBuildUpdateAllowListOrder(t *testing.T) {
	c := models.BookChanges{
		Description: strp("updated"),
		Title:       strp("New Title"),
		Year:        intp(2001),
	}
	q, args, err := books.BuildUpdate(42, c)
	require.NoError(t, err)

	// SET pairs come out in allow-list order regardless of payload order;
	// the id is always the final parameter.
	require.Equal(t, "UPDATE books SET title = $1, year = $2, description = $3 WHERE id = $4", q)
	require.Len(t, args, 4)
	require.Equal(t, "New Title", *(args[0].(*string)))
	require.Equal(t, 2001, args[1])
	require.Equal(t, "updated", *(args[2].(*string)))
	require.Equal(t, int64(42), args[3])
}

func TestBuildUpdateEmptyStringBecomesNull(t *testing.T) {
	c := models.BookChanges{Genre: strp("")}
	q, args, err := books.BuildUpdate(7, c)
	require.NoError(t, err)
	require.Equal(t, "UPDATE books SET genre = $1 WHERE id = $2", q)
	require.Nil(t, args[0].(*string))
	require.Equal(t, int64(7), args[1])
}

func TestBuildUpdateZeroFields(t *testing.T) {
	_, _, err := books.BuildUpdate(1, models.BookChanges{})
	require.Error(t, err)
	require.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestBuildDelete(t *testing.T) {
	q, args := books.BuildDelete(9)
	require.Equal(t, "DELETE FROM books WHERE id = $1", q)
	require.Equal(t, []any{int64(9)}, args)
}
