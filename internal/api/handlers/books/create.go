package books

import (
	"database/sql"
	"net/http"

	"github.com/litshelf/books-api/internal/api/apperr"
	"github.com/litshelf/books-api/internal/api/httpx"
	"github.com/litshelf/books-api/internal/models"
	storebooks "github.com/litshelf/books-api/internal/store/books"
	"github.com/litshelf/books-api/internal/validate"
)

type createRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Year        *int   `json:"year"`
	ISBN        string `json:"isbn"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
}

type bookResponse struct {
	Book models.Book `json:"book"`
}

func handleCreate(db *sql.DB, w http.ResponseWriter, r *http.Request) {
	if err := httpx.RequireJSON(r); err != nil {
		httpx.Fail(w, r, err)
		return
	}
	defer r.Body.Close()

	var req createRequest
	if err := httpx.ReadJSON(w, r, &req); err != nil {
		httpx.Fail(w, r, err)
		return
	}

	candidate := models.Book{
		Title:       req.Title,
		Author:      req.Author,
		Year:        req.Year,
		ISBN:        optString(req.ISBN),
		Genre:       optString(req.Genre),
		Description: optString(req.Description),
	}
	if err := validate.Book(&candidate, validate.ModeCreate); err != nil {
		httpx.Fail(w, r, err)
		return
	}

	created, err := storebooks.Create(r.Context(), db, candidate)
	if err != nil {
		httpx.Fail(w, r, apperr.FromStore(err))
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, bookResponse{Book: created})
}
