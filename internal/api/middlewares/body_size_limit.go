package middlewares

import (
	"net/http"

	"github.com/litshelf/books-api/internal/api/httpx"
)

// BodySizeLimit rejects oversized requests by declared Content-Length with a
// 413 before any body byte is read and before rate limiting runs. Bodies
// without a declared length are still capped by MaxBytesReader when they are
// decoded.
func BodySizeLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > httpx.MaxBodyBytes {
			httpx.Error(w, http.StatusRequestEntityTooLarge, "request body must not exceed 1 MiB")
			return
		}
		if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			r.Body = http.MaxBytesReader(w, r.Body, httpx.MaxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}
