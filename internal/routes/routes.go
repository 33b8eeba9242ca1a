package routes

import (
	"net/http"

	"github.com/willowworks/batrack/internal/app"
	"github.com/willowworks/batrack/internal/handler"
	"github.com/willowworks/batrack/internal/middleware"
	"github.com/willowworks/batrack/internal/storage"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler()
	auth := handler.NewAuthHandler(app.AuthService, app.SessionService)
	bat := handler.NewBatHandler(app.BatService, app.UploadService, app.SessionService)

	requireAuth := middleware.RequireAuth(app.SessionService)

	mux := http.NewServeMux()

	// Uploaded images are static assets when stored on local disk; S3-backed
	// deployments serve them straight from the bucket URL.
	local, ok := app.Storage.(*storage.LocalStorage)
	if ok {
		mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(local.Root()))))
	}

	// Home
	mux.HandleFunc("GET /{$}", home.HomePage)
	mux.HandleFunc("GET /dashboard", requireAuth(home.DashboardPage))

	// Auth
	mux.HandleFunc("GET /auth/register", middleware.RequireGuest(auth.RegisterPage))
	mux.HandleFunc("POST /auth/register", middleware.RequireGuest(auth.Register))
	mux.HandleFunc("GET /auth/login", middleware.RequireGuest(auth.LoginPage))
	mux.HandleFunc("POST /auth/login", middleware.RequireGuest(auth.Login))
	mux.HandleFunc("GET /auth/logout", auth.Logout)

	// Bats
	mux.HandleFunc("GET /bats", bat.Index)
	mux.HandleFunc("GET /bats/new", requireAuth(bat.NewPage))
	mux.HandleFunc("POST /bats", requireAuth(bat.Create))
	mux.HandleFunc("GET /bats/{id}", bat.Show)
	mux.HandleFunc("GET /bats/{id}/edit", requireAuth(bat.EditPage))
	mux.HandleFunc("PUT /bats/{id}", requireAuth(bat.Update))
	mux.HandleFunc("DELETE /bats/{id}", requireAuth(bat.Delete))

	// 404
	mux.HandleFunc("/{path...}", home.NotFoundPage)

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.Config(app.Cfg), // Config must be first (CSRF cookie flags read it)
		middleware.Recover,
		middleware.RequestLogging,
		middleware.MethodOverride, // Before routing decisions: forms submit PUT/DELETE as POST
		middleware.CSRFProtection,
		middleware.Session(app.SessionService, app.UserRepository),
	)
}
