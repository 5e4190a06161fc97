package books

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/litshelf/books-api/internal/api/apperr"
	"github.com/litshelf/books-api/internal/api/httpx"
	"github.com/litshelf/books-api/internal/models"
	storebooks "github.com/litshelf/books-api/internal/store/books"
	"github.com/litshelf/books-api/internal/validate"
)

func handleGet(w http.ResponseWriter, r *http.Request, b models.Book) {
	httpx.CacheControl(w, 5*time.Minute, 10*time.Minute)
	httpx.WriteJSON(w, http.StatusOK, bookResponse{Book: b})
}

// handleUpdate applies a partial update. Validation runs on the merged
// record (existing fields overlaid with the payload) so a partial update
// cannot combine with untouched fields into an invalid record. The read and
// the write are separate statements; a record deleted in between surfaces
// as 404 from the write's row count.
func handleUpdate(db *sql.DB, w http.ResponseWriter, r *http.Request, existing models.Book) {
	if err := httpx.RequireJSON(r); err != nil {
		httpx.Fail(w, r, err)
		return
	}
	defer r.Body.Close()

	var changes models.BookChanges
	if err := httpx.ReadJSON(w, r, &changes); err != nil {
		httpx.Fail(w, r, err)
		return
	}
	if changes.IsEmpty() {
		httpx.Fail(w, r, apperr.Validation("no valid fields to update"))
		return
	}

	merged := changes.Merged(existing)
	if err := validate.Book(&merged, validate.ModeUpdate); err != nil {
		httpx.Fail(w, r, err)
		return
	}

	if err := storebooks.Update(r.Context(), db, existing.ID, changes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			httpx.Fail(w, r, apperr.NotFound("book not found"))
			return
		}
		httpx.Fail(w, r, apperr.FromStore(err))
		return
	}

	updated, err := storebooks.GetByID(r.Context(), db, existing.ID)
	if err != nil {
		httpx.Fail(w, r, apperr.FromStore(err))
		return
	}

	httpx.WriteJSON(w, http.StatusOK, bookResponse{Book: updated})
}

func handleDelete(db *sql.DB, w http.ResponseWriter, r *http.Request, id int64) {
	if err := storebooks.Delete(r.Context(), db, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			httpx.Fail(w, r, apperr.NotFound("book not found"))
			return
		}
		httpx.Fail(w, r, apperr.FromStore(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
