package books

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/litshelf/books-api/internal/api/apperr"
	"github.com/litshelf/books-api/internal/api/httpx"
	"github.com/litshelf/books-api/internal/models"
	storebooks "github.com/litshelf/books-api/internal/store/books"
)

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type listResponse struct {
	Books      []models.Book `json:"books"`
	Pagination pagination    `json:"pagination"`
}

func handleList(db *sql.DB, w http.ResponseWriter, r *http.Request) {
	f, err := parseListFilters(r.URL.Query())
	if err != nil {
		httpx.Fail(w, r, err)
		return
	}

	rows, total, err := storebooks.List(r.Context(), db, f)
	if err != nil {
		httpx.Fail(w, r, apperr.FromStore(err))
		return
	}

	pages := total / f.Limit
	if total%f.Limit != 0 {
		pages++
	}

	httpx.CacheControl(w, time.Minute, 2*time.Minute)
	httpx.WriteJSON(w, http.StatusOK, listResponse{
		Books: rows,
		Pagination: pagination{
			Page:  f.Page,
			Limit: f.Limit,
			Total: total,
			Pages: pages,
		},
	})
}
