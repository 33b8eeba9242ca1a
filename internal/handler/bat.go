package handler

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/willowworks/batrack/internal/ctxkeys"
	"github.com/willowworks/batrack/internal/markdown"
	"github.com/willowworks/batrack/internal/model"
	"github.com/willowworks/batrack/internal/repository"
	"github.com/willowworks/batrack/internal/service"
	"github.com/willowworks/batrack/internal/ui"
	"github.com/willowworks/batrack/internal/validation"
)

// maxUploadMemory bounds the in-memory part of multipart parsing; larger
// parts spill to temp files.
const maxUploadMemory = 4 << 20

type batHandler struct {
	batService     *service.BatService
	uploadService  *service.UploadService
	sessionService *service.SessionService
	markdown       *markdown.Parser
}

func NewBatHandler(batService *service.BatService, uploadService *service.UploadService, sessionService *service.SessionService) *batHandler {
	return &batHandler{
		batService:     batService,
		uploadService:  uploadService,
		sessionService: sessionService,
		markdown:       markdown.NewParser(),
	}
}

type batListItem struct {
	*model.Bat
	ImageURL string
}

type batIndexView struct {
	Bats []batListItem
}

type batFormView struct {
	Values validation.BatInput
	Errors []string
}

type batShowView struct {
	Bat             *model.Bat
	ImageURL        string
	DescriptionHTML template.HTML
}

type batEditView struct {
	Bat    *model.Bat
	Errors []string
}

func (h *batHandler) Index(w http.ResponseWriter, r *http.Request) {
	bats, err := h.batService.Bats()
	if err != nil {
		slog.Error("failed to load bats", "error", err)
		h.sessionService.AddFlash(w, r, model.FlashError, "Failed to load bats")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	items := make([]batListItem, 0, len(bats))
	for _, bat := range bats {
		items = append(items, batListItem{
			Bat:      bat,
			ImageURL: h.batService.ImageURL(bat),
		})
	}

	ui.Render(w, r, "bats_index", "All Bats", batIndexView{Bats: items})
}

func (h *batHandler) NewPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, "bats_new", "Add New Bat", batFormView{})
}

func (h *batHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := r.ParseMultipartForm(maxUploadMemory)
	if err != nil {
		h.sessionService.AddFlash(w, r, model.FlashError, "Please upload an image")
		http.Redirect(w, r, "/bats/new", http.StatusSeeOther)
		return
	}

	_, header, err := r.FormFile("image")
	if err != nil {
		h.sessionService.AddFlash(w, r, model.FlashError, "Please upload an image")
		http.Redirect(w, r, "/bats/new", http.StatusSeeOther)
		return
	}

	imagePath, err := h.uploadService.Accept("image", header)
	if err != nil {
		if errors.Is(err, validation.ErrImageTooLarge) || errors.Is(err, validation.ErrInvalidImageType) {
			h.sessionService.AddFlash(w, r, model.FlashError, err.Error())
		} else {
			slog.Error("failed to store upload", "error", err)
			h.sessionService.AddFlash(w, r, model.FlashError, "Failed to store image")
		}
		http.Redirect(w, r, "/bats/new", http.StatusSeeOther)
		return
	}

	input := validation.BatInput{
		BrandName:       r.FormValue("brand_name"),
		Price:           r.FormValue("price"),
		Description:     r.FormValue("description"),
		BrandAmbassador: r.FormValue("brand_ambassador"),
	}

	fields, fieldErrs := validation.ValidateBat(input)
	if len(fieldErrs) > 0 {
		// Listing validation failed after a successful upload: remove the
		// orphaned file before re-rendering the form
		_ = h.uploadService.Remove(imagePath)

		ui.Render(w, r, "bats_new", "Add New Bat", batFormView{
			Values: input,
			Errors: validation.Messages(fieldErrs),
		})
		return
	}

	_, err = h.batService.Create(user.ID, fields, imagePath)
	if err != nil {
		slog.Error("failed to create bat", "error", err, "user_id", user.ID)
		_ = h.uploadService.Remove(imagePath)
		h.sessionService.AddFlash(w, r, model.FlashError, "Failed to add bat")
		http.Redirect(w, r, "/bats/new", http.StatusSeeOther)
		return
	}

	h.sessionService.AddFlash(w, r, model.FlashSuccess, "Bat added successfully")
	http.Redirect(w, r, "/bats", http.StatusSeeOther)
}

func (h *batHandler) Show(w http.ResponseWriter, r *http.Request) {
	bat, ok := h.loadBat(w, r)
	if !ok {
		return
	}

	ui.Render(w, r, "bats_show", bat.BrandName, batShowView{
		Bat:             bat,
		ImageURL:        h.batService.ImageURL(bat),
		DescriptionHTML: h.renderDescription(bat),
	})
}

func (h *batHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	bat, ok := h.loadBat(w, r)
	if !ok {
		return
	}

	ui.Render(w, r, "bats_edit", "Edit "+bat.BrandName, batEditView{Bat: bat})
}

func (h *batHandler) Update(w http.ResponseWriter, r *http.Request) {
	bat, ok := h.loadBat(w, r)
	if !ok {
		return
	}

	price, description, ambassador, fieldErrs := validation.ValidateBatUpdate(
		r.FormValue("price"),
		r.FormValue("description"),
		r.FormValue("brand_ambassador"),
	)
	if len(fieldErrs) > 0 {
		ui.Render(w, r, "bats_edit", "Edit "+bat.BrandName, batEditView{
			Bat:    bat,
			Errors: validation.Messages(fieldErrs),
		})
		return
	}

	_, err := h.batService.Update(bat.ID, price, description, ambassador)
	if err != nil {
		if errors.Is(err, repository.ErrBatNotFound) {
			h.sessionService.AddFlash(w, r, model.FlashError, "Bat not found")
			http.Redirect(w, r, "/bats", http.StatusSeeOther)
			return
		}

		slog.Error("failed to update bat", "error", err, "bat_id", bat.ID)
		h.sessionService.AddFlash(w, r, model.FlashError, "Failed to update bat")
		http.Redirect(w, r, "/bats", http.StatusSeeOther)
		return
	}

	h.sessionService.AddFlash(w, r, model.FlashSuccess, "Bat updated successfully")
	http.Redirect(w, r, "/bats/"+bat.ID, http.StatusSeeOther)
}

func (h *batHandler) Delete(w http.ResponseWriter, r *http.Request) {
	bat, ok := h.loadBat(w, r)
	if !ok {
		return
	}

	err := h.batService.Delete(bat.ID)
	if err != nil {
		slog.Error("failed to delete bat", "error", err, "bat_id", bat.ID)
		h.sessionService.AddFlash(w, r, model.FlashError, "Failed to delete bat")
		http.Redirect(w, r, "/bats", http.StatusSeeOther)
		return
	}

	h.sessionService.AddFlash(w, r, model.FlashSuccess, "Bat deleted successfully")
	http.Redirect(w, r, "/bats", http.StatusSeeOther)
}

// loadBat resolves the {id} path value; a missing listing flashes and
// redirects to the index.
func (h *batHandler) loadBat(w http.ResponseWriter, r *http.Request) (*model.Bat, bool) {
	bat, err := h.batService.ByID(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, repository.ErrBatNotFound) {
			h.sessionService.AddFlash(w, r, model.FlashError, "Bat not found")
		} else {
			slog.Error("failed to load bat", "error", err, "bat_id", r.PathValue("id"))
			h.sessionService.AddFlash(w, r, model.FlashError, "Failed to load bat details")
		}
		http.Redirect(w, r, "/bats", http.StatusSeeOther)
		return nil, false
	}

	return bat, true
}

func (h *batHandler) renderDescription(bat *model.Bat) template.HTML {
	html, err := h.markdown.Parse([]byte(bat.Description))
	if err != nil {
		slog.Warn("failed to render description", "error", err, "bat_id", bat.ID)
		return template.HTML(template.HTMLEscapeString(bat.Description))
	}
	return template.HTML(html)
}
