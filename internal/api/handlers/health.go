package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/litshelf/books-api/internal/api/apperr"
	"github.com/litshelf/books-api/internal/api/httpx"
	"github.com/litshelf/books-api/internal/store/dbx"
)

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Health probes store liveness with a trivial query.
func Health(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", "GET, OPTIONS")
			httpx.Error(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		qctx, cancel := dbx.WithTimeout(r.Context())
		defer cancel()

		var one int
		if err := db.QueryRowContext(qctx, "SELECT 1").Scan(&one); err != nil {
			httpx.Fail(w, r, apperr.FromStore(err))
			return
		}

		httpx.WriteJSON(w, http.StatusOK, healthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}
