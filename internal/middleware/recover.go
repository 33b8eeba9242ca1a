package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// Recover converts request-level panics into a generic failure response
// instead of crashing the process.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			slog.Error("panic recovered",
				"panic", rec,
				"method", r.Method,
				"path", r.URL.Path,
				"stack", string(debug.Stack()),
			)

			http.Error(w, "Something went wrong", http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
