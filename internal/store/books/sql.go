package books

import (
	"strconv"
	"strings"

	"github.com/litshelf/books-api/internal/api/apperr"
	"github.com/litshelf/books-api/internal/models"
)

// The query builders below are pure: statement text plus an ordered arg list
// in, no I/O. User-controlled values only ever travel as bound parameters;
// the only names interpolated into text come from the fixed column sets here.

const bookColumns = "id, title, author, year, isbn, genre, description"

// allowedUpdateFields is the closed set of columns a partial update may
// touch, in the order the SET clause is assembled. Never derive column names
// from request keys.
var allowedUpdateFields = []string{"title", "author", "year", "isbn", "genre", "description"}

// BuildList returns the data statement, the paired count statement, and the
// shared args. Filter predicates are appended genre first, then year; the
// data statement adds deterministic id ordering plus LIMIT/OFFSET.
func BuildList(f ListFilters) (dataSQL, countSQL string, args []any) {
	where := []string{}
	args = []any{}

	if f.Genre != "" {
		where = append(where, "genre = $"+strconv.Itoa(len(args)+1))
		args = append(args, f.Genre)
	}
	if f.Year != nil {
		where = append(where, "year = $"+strconv.Itoa(len(args)+1))
		args = append(args, *f.Year)
	}

	cond := ""
	if len(where) > 0 {
		cond = " WHERE " + strings.Join(where, " AND ")
	}

	countSQL = "SELECT COUNT(*) FROM books" + cond
	dataSQL = "SELECT " + bookColumns + " FROM books" + cond +
		" ORDER BY id ASC LIMIT $" + strconv.Itoa(len(args)+1) +
		" OFFSET $" + strconv.Itoa(len(args)+2)
	return dataSQL, countSQL, args
}

// BuildSearch matches one term, wildcard-wrapped, independently against each
// searchable column (year cast to text), OR-combined. One input, six
// bindings. The caller binds a term already lowercased and diacritic-folded,
// and the text columns are folded the same way in SQL, so "Márquez" stored in
// a description is reachable by searching either "Márquez" or "marquez".
func BuildSearch(term string) (string, []any) {
	pattern := "%" + term + "%"
	q := "SELECT " + bookColumns + ` FROM books
WHERE public.immutable_unaccent(lower(title)) LIKE $1
   OR public.immutable_unaccent(lower(author)) LIKE $2
   OR public.immutable_unaccent(lower(genre)) LIKE $3
   OR isbn LIKE $4
   OR year::text LIKE $5
   OR public.immutable_unaccent(lower(description)) LIKE $6
ORDER BY id ASC`
	return q, []any{pattern, pattern, pattern, pattern, pattern, pattern}
}

// BuildInsert binds columns in fixed order. String fields are trimmed;
// optionals that are empty after trimming bind as NULL.
func BuildInsert(b models.Book) (string, []any) {
	q := `INSERT INTO books (title, author, year, isbn, genre, description)
VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return q, []any{
		strings.TrimSpace(b.Title),
		strings.TrimSpace(b.Author),
		b.Year,
		trimOpt(b.ISBN),
		trimOpt(b.Genre),
		trimOpt(b.Description),
	}
}

// BuildUpdate assembles "col = $n" pairs for the allow-listed fields present
// in the payload; unknown payload keys were already dropped at decode time.
// An explicit empty string binds as NULL rather than being stored literally.
// The row id is always the final bound parameter.
func BuildUpdate(id int64, c models.BookChanges) (string, []any, error) {
	set := []string{}
	args := []any{}
	add := func(col string, v any) {
		set = append(set, col+" = $"+strconv.Itoa(len(args)+1))
		args = append(args, v)
	}

	for _, col := range allowedUpdateFields {
		switch col {
		case "title":
			if c.Title != nil {
				add(col, trimToNull(*c.Title))
			}
		case "author":
			if c.Author != nil {
				add(col, trimToNull(*c.Author))
			}
		case "year":
			if c.Year != nil {
				add(col, *c.Year)
			}
		case "isbn":
			if c.ISBN != nil {
				add(col, trimToNull(*c.ISBN))
			}
		case "genre":
			if c.Genre != nil {
				add(col, trimToNull(*c.Genre))
			}
		case "description":
			if c.Description != nil {
				add(col, trimToNull(*c.Description))
			}
		}
	}

	if len(set) == 0 {
		return "", nil, apperr.Validation("no valid fields to update")
	}

	args = append(args, id)
	q := "UPDATE books SET " + strings.Join(set, ", ") +
		" WHERE id = $" + strconv.Itoa(len(args))
	return q, args, nil
}

// BuildDelete is unconditional: existence is the caller's concern.
func BuildDelete(id int64) (string, []any) {
	return "DELETE FROM books WHERE id = $1", []any{id}
}

func trimOpt(p *string) *string {
	if p == nil {
		return nil
	}
	return trimToNull(*p)
}

func trimToNull(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
