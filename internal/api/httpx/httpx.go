// Package httpx holds the response/request plumbing shared by all handlers:
// pretty-printed JSON bodies, the {"error": ...} envelope, body decoding
// with the 1 MiB cap, and the one place taxonomy errors become statuses.
package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/litshelf/books-api/internal/api/apperr"
)

// MaxBodyBytes caps request bodies. The declared Content-Length is checked
// against the same constant before the body is ever read.
const MaxBodyBytes = 1 << 20 // 1 MiB

type errorEnvelope struct {
	Error string `json:"error"`
}

// WriteJSON writes v as indented JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	js, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": "internal server error"}`))
		return
	}
	js = append(js, '\n')
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(js)
}

// Error writes the error envelope with the given status and message.
func Error(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, errorEnvelope{Error: message})
}

// Fail maps err through the taxonomy and responds. 5xx detail is logged
// with the request correlation id and never returned to the client.
func Fail(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.Status(err)
	if status >= http.StatusInternalServerError {
		attrs := []any{
			slog.String("request_id", r.Header.Get("X-Request-ID")),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		}
		if code := apperr.SQLState(err); code != "" {
			attrs = append(attrs, slog.String("sqlstate", code))
		}
		slog.Error("request failed", attrs...)
	}
	Error(w, status, apperr.Message(err))
}

// CacheControl sets the freshness directive GET responses carry.
func CacheControl(w http.ResponseWriter, maxAge, staleWhileRevalidate time.Duration) {
	w.Header().Set("Cache-Control",
		"public, max-age="+strconv.Itoa(int(maxAge.Seconds()))+
			", stale-while-revalidate="+strconv.Itoa(int(staleWhileRevalidate.Seconds())))
}

// RequireJSON enforces the application/json content-type on mutating
// requests. Parameters (charset) are tolerated.
func RequireJSON(r *http.Request) error {
	ct := r.Header.Get("Content-Type")
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil || mt != "application/json" {
		return apperr.Validation("content-type must be application/json")
	}
	return nil
}

// ReadJSON decodes a single JSON value from the request body into dst,
// capped at MaxBodyBytes. Unknown fields are tolerated on purpose: unknown
// update keys are dropped, not rejected.
func ReadJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return apperr.TooLarge("request body must not exceed 1 MiB")
		}
		return apperr.BadBody("request body is not valid JSON")
	}

	// The body must hold exactly one JSON value.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return apperr.BadBody("request body must contain a single JSON value")
	}
	return nil
}
