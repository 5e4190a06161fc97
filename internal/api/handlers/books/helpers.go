package books

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/litshelf/books-api/internal/api/apperr"
	storebooks "github.com/litshelf/books-api/internal/store/books"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// parseListFilters reads page/limit/genre/year from the query string.
// Page and limit fall back to defaults and are clamped rather than rejected;
// a year that is present but non-numeric is malformed input.
func parseListFilters(qs url.Values) (storebooks.ListFilters, error) {
	f := storebooks.ListFilters{Page: defaultPage, Limit: defaultLimit}

	if raw := strings.TrimSpace(qs.Get("page")); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 1 {
			f.Page = v
		}
	}
	if raw := strings.TrimSpace(qs.Get("limit")); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 1 && v <= maxLimit {
			f.Limit = v
		}
	}
	f.Genre = strings.TrimSpace(qs.Get("genre"))
	if raw := strings.TrimSpace(qs.Get("year")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return storebooks.ListFilters{}, apperr.Validation("year filter must be an integer")
		}
		f.Year = &v
	}
	return f, nil
}

// parseID validates the numeric path segment. Anything non-numeric does not
// match the single-record route shape and is a 404, not a 400.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, apperr.NotFound("book not found")
	}
	return id, nil
}

func optString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
