// Package books implements the /api/books handlers: list, create, search,
// and the single-record operations behind the numeric id route.
package books

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/litshelf/books-api/internal/api/apperr"
	"github.com/litshelf/books-api/internal/api/httpx"
	storebooks "github.com/litshelf/books-api/internal/store/books"
)

const (
	allowCollection = "GET, POST, OPTIONS"
	allowItem       = "GET, PUT, DELETE, OPTIONS"
)

// Collection dispatches /api/books.
func Collection(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			handleList(db, w, r)
		case http.MethodPost:
			handleCreate(db, w, r)
		default:
			w.Header().Set("Allow", allowCollection)
			httpx.Error(w, http.StatusMethodNotAllowed, "method not allowed")
		}
	}
}

// Item dispatches /api/books/{id}. The record is fetched exactly once and
// its existence checked before branching on method, so GET, PUT, and DELETE
// all answer 404 uniformly for an absent id.
func Item(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r.PathValue("id"))
		if err != nil {
			httpx.Fail(w, r, err)
			return
		}

		existing, err := storebooks.GetByID(r.Context(), db, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				httpx.Fail(w, r, apperr.NotFound("book not found"))
				return
			}
			httpx.Fail(w, r, apperr.FromStore(err))
			return
		}

		switch r.Method {
		case http.MethodGet:
			handleGet(w, r, existing)
		case http.MethodPut:
			handleUpdate(db, w, r, existing)
		case http.MethodDelete:
			handleDelete(db, w, r, existing.ID)
		default:
			w.Header().Set("Allow", allowItem)
			httpx.Error(w, http.StatusMethodNotAllowed, "method not allowed")
		}
	}
}
