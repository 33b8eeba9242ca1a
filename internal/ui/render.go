package ui

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/willowworks/batrack/internal/ctxkeys"
	"github.com/willowworks/batrack/internal/model"
)

//go:embed templates/*.html
var templatesFS embed.FS

// pageNames lists every renderable page; each is parsed together with the
// shared layout at startup.
var pageNames = []string{
	"home",
	"dashboard",
	"login",
	"register",
	"bats_index",
	"bats_new",
	"bats_show",
	"bats_edit",
	"notfound",
}

var pages = map[string]*template.Template{}

func init() {
	for _, name := range pageNames {
		pages[name] = template.Must(template.ParseFS(
			templatesFS,
			"templates/layout.html",
			"templates/"+name+".html",
		))
	}
}

// View is the data every page template receives. Request-scoped values
// (principal, flashes, CSRF token) come from the context, not from globals.
type View struct {
	AppName   string
	Title     string
	User      *model.User
	Flashes   []model.Flash
	CSRFToken string
	Data      any
}

// Render writes a page using the shared layout.
func Render(w http.ResponseWriter, r *http.Request, page, title string, data any) {
	RenderStatus(w, r, http.StatusOK, page, title, data)
}

// RenderStatus is Render with an explicit response status.
func RenderStatus(w http.ResponseWriter, r *http.Request, status int, page, title string, data any) {
	tmpl, ok := pages[page]
	if !ok {
		slog.Error("render failed, unknown page", "page", page)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	appName := "Batrack"
	cfg := ctxkeys.Config(r.Context())
	if cfg != nil && cfg.AppName != "" {
		appName = cfg.AppName
	}

	view := View{
		AppName:   appName,
		Title:     title,
		User:      ctxkeys.User(r.Context()),
		Flashes:   ctxkeys.Flashes(r.Context()),
		CSRFToken: ctxkeys.CSRFToken(r.Context()),
		Data:      data,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	err := tmpl.ExecuteTemplate(w, "layout.html", view)
	if err != nil {
		slog.Error("render failed", "error", err, "page", page)
	}
}
