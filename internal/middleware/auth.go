package middleware

import (
	"net/http"
	"strings"

	"github.com/willowworks/batrack/internal/ctxkeys"
	"github.com/willowworks/batrack/internal/model"
	"github.com/willowworks/batrack/internal/repository"
	"github.com/willowworks/batrack/internal/service"
)

// Paths whose requests never consume flash messages (static assets).
var skipFlashPaths = []string{
	"/uploads/",
	"/favicon.ico",
}

// Session resolves the request's session and, for authenticated sessions,
// loads the principal into the context. Page-rendering GET requests also pop
// queued flash messages into the context so the next render displays them
// once.
func Session(sessions *service.SessionService, users repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := sessions.FromRequest(r)
			if err != nil {
				// No valid session, continue as anonymous
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxkeys.WithSession(r.Context(), session)

			if session.IsAuthenticated() {
				user, err := users.ByID(*session.UserID)
				if err == nil {
					// Principal loaded for gates and templates; the hash
					// has no business in request context
					user.PasswordHash = ""
					ctx = ctxkeys.WithUser(ctx, user)
				}
			}

			if r.Method == http.MethodGet && !skipFlash(r.URL.Path) {
				flashes := sessions.PopFlashes(session)
				if len(flashes) > 0 {
					ctx = ctxkeys.WithFlashes(ctx, flashes)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func skipFlash(path string) bool {
	for _, prefix := range skipFlashPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// RequireAuth gates listing mutations and the dashboard: anonymous requests
// are flashed a login prompt and redirected to the login page.
func RequireAuth(sessions *service.SessionService) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			user := ctxkeys.User(r.Context())
			if user == nil {
				sessions.AddFlash(w, r, model.FlashError, "Please log in to view this resource")
				http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		}
	}
}

// RequireGuest gates the register and login views: an authenticated
// principal is sent home instead.
func RequireGuest(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxkeys.User(r.Context())
		if user != nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	}
}
