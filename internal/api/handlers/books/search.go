package books

import (
	"database/sql"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/litshelf/books-api/internal/api/apperr"
	"github.com/litshelf/books-api/internal/api/httpx"
	"github.com/litshelf/books-api/internal/models"
	"github.com/litshelf/books-api/internal/search"
	storebooks "github.com/litshelf/books-api/internal/store/books"
)

const maxSearchTermLen = 200

type searchResponse struct {
	Books []models.Book `json:"books"`
	Count int           `json:"count"`
}

// Search matches one free-text term against every searchable column.
func Search(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", "GET, OPTIONS")
			httpx.Error(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		q := strings.TrimSpace(r.URL.Query().Get("q"))
		if q == "" {
			httpx.Fail(w, r, apperr.Validation("search query q is required"))
			return
		}
		if utf8.RuneCountInString(q) > maxSearchTermLen {
			httpx.Fail(w, r, apperr.Validation("search query must be at most 200 characters"))
			return
		}

		rows, err := storebooks.Search(r.Context(), db, search.Normalize(q))
		if err != nil {
			httpx.Fail(w, r, apperr.FromStore(err))
			return
		}

		httpx.CacheControl(w, time.Minute, 2*time.Minute)
		httpx.WriteJSON(w, http.StatusOK, searchResponse{Books: rows, Count: len(rows)})
	}
}
