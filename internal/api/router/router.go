package router

import (
	"database/sql"
	"net/http"

	"github.com/litshelf/books-api/internal/api/handlers"
	"github.com/litshelf/books-api/internal/api/handlers/books"
	"github.com/litshelf/books-api/internal/api/httpx"
	"github.com/redis/go-redis/v9"
)

// Router builds the immutable route table. Patterns are method-agnostic and
// each handler enforces its own method set so unsupported methods get the
// JSON 405 envelope instead of the mux default. The exact /api/books/search
// pattern takes precedence over the {id} pattern.
func Router(db *sql.DB, rdb *redis.Client) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			httpx.Error(w, http.StatusNotFound, "resource not found")
			return
		}
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", "GET, OPTIONS")
			httpx.Error(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		handlers.Root(w, r)
	})

	mux.Handle("/api/health", handlers.Health(db))
	mux.Handle("/api/stats", handlers.Stats(db, rdb))

	mux.Handle("/api/books", books.Collection(db))
	mux.Handle("/api/books/search", books.Search(db))
	mux.Handle("/api/books/{id}", books.Item(db))

	return mux
}
