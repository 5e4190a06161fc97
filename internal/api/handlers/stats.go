package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/litshelf/books-api/internal/api/apperr"
	"github.com/litshelf/books-api/internal/api/httpx"
	storebooks "github.com/litshelf/books-api/internal/store/books"
	"github.com/redis/go-redis/v9"
)

const statsCacheKey = "stats:books"
const statsCacheDuration = 30 * time.Second

// Stats serves the collection summary. When Redis is configured the rendered
// body is kept cache-aside for a short window so repeated dashboard polls do
// not hit the store; the response carries the long cache directive either way.
func Stats(db *sql.DB, rdb *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", "GET, OPTIONS")
			httpx.Error(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		httpx.CacheControl(w, 5*time.Minute, 10*time.Minute)

		if rdb != nil {
			if cached, err := rdb.Get(r.Context(), statsCacheKey).Result(); err == nil && cached != "" {
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(cached))
				return
			}
		}

		stats, err := storebooks.CollectStats(r.Context(), db)
		if err != nil {
			httpx.Fail(w, r, apperr.FromStore(err))
			return
		}

		if rdb != nil {
			if body, err := json.MarshalIndent(stats, "", "  "); err == nil {
				_ = rdb.SetEx(r.Context(), statsCacheKey, append(body, '\n'), statsCacheDuration).Err()
			}
		}

		httpx.WriteJSON(w, http.StatusOK, stats)
	}
}
