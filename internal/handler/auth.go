package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/willowworks/batrack/internal/model"
	"github.com/willowworks/batrack/internal/repository"
	"github.com/willowworks/batrack/internal/service"
	"github.com/willowworks/batrack/internal/ui"
	"github.com/willowworks/batrack/internal/validation"
)

type authHandler struct {
	authService    *service.AuthService
	sessionService *service.SessionService
}

func NewAuthHandler(authService *service.AuthService, sessionService *service.SessionService) *authHandler {
	return &authHandler{
		authService:    authService,
		sessionService: sessionService,
	}
}

// registerView feeds the registration template: entered values are preserved
// across a failed submit.
type registerView struct {
	Values validation.RegisterInput
	Errors []string
}

type loginView struct {
	Email  string
	Errors []string
}

func (h *authHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, "register", "Register", registerView{})
}

func (h *authHandler) Register(w http.ResponseWriter, r *http.Request) {
	input := validation.RegisterInput{
		Name:            r.FormValue("name"),
		Email:           r.FormValue("email"),
		Password:        r.FormValue("password"),
		PasswordConfirm: r.FormValue("password2"),
		Gender:          r.FormValue("gender"),
		NationalID:      r.FormValue("national_id"),
		Age:             r.FormValue("age"),
		Location:        r.FormValue("location"),
	}

	fields, fieldErrs := validation.ValidateRegistration(input)
	if len(fieldErrs) > 0 {
		ui.Render(w, r, "register", "Register", registerView{
			Values: input,
			Errors: validation.Messages(fieldErrs),
		})
		return
	}

	_, err := h.authService.Register(fields)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			ui.Render(w, r, "register", "Register", registerView{
				Values: input,
				Errors: []string{"Email is already registered"},
			})
		case errors.Is(err, repository.ErrDuplicateNationalID):
			ui.Render(w, r, "register", "Register", registerView{
				Values: input,
				Errors: []string{"National ID is already registered"},
			})
		default:
			slog.Error("registration failed", "error", err)
			h.sessionService.AddFlash(w, r, model.FlashError, "Server error")
			http.Redirect(w, r, "/auth/register", http.StatusSeeOther)
		}
		return
	}

	h.sessionService.AddFlash(w, r, model.FlashSuccess, "You are now registered and can log in")
	http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
}

func (h *authHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, "login", "Login", loginView{})
}

func (h *authHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	user, err := h.authService.Login(email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.sessionService.AddFlash(w, r, model.FlashError, "Invalid email or password")
			http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
			return
		}

		slog.Error("login failed", "error", err, "email", email)
		h.sessionService.AddFlash(w, r, model.FlashError, "Server error")
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
		return
	}

	_, err = h.sessionService.Login(w, r, user.ID)
	if err != nil {
		slog.Error("failed to establish session", "error", err, "user_id", user.ID)
		h.sessionService.AddFlash(w, r, model.FlashError, "Server error")
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
		return
	}

	slog.Info("user logged in", "user_id", user.ID, "email", user.Email)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *authHandler) Logout(w http.ResponseWriter, r *http.Request) {
	err := h.sessionService.Logout(w, r)
	if err != nil {
		slog.Error("logout failed", "error", err)
	}

	h.sessionService.AddFlash(w, r, model.FlashSuccess, "You are logged out")
	http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
}
