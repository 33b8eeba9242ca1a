package handler

import (
	"net/http"

	"github.com/willowworks/batrack/internal/ui"
)

type homeHandler struct{}

func NewHomeHandler() *homeHandler {
	return &homeHandler{}
}

func (h *homeHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, "home", "Cricket Bat Management", nil)
}

func (h *homeHandler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, "dashboard", "Dashboard", nil)
}

func (h *homeHandler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	ui.RenderStatus(w, r, http.StatusNotFound, "notfound", "404 - Page Not Found", nil)
}
