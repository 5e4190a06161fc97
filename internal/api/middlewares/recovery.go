package middlewares

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/litshelf/books-api/internal/api/httpx"
)

// Recovery converts a downstream panic into a generic 500. The panic value
// and stack trace go to the log, never to the client.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				slog.Error("panic recovered",
					slog.String("request_id", GetRequestID(r)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Any("panic", v),
					slog.String("stack", string(debug.Stack())),
				)
				httpx.Error(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
