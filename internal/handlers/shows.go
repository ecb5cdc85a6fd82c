package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"radiopanel/internal/domain"
	"radiopanel/internal/dto"
)

func (h *Handler) ListShows(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Shows.List()
	if err != nil {
		h.Logger.Error("Failed to load shows", "error", err, "request_id", RequestIDFromContext(r.Context()))
		h.setFlash(w, "error", fmt.Sprintf("Could not load shows: %v", err))
	}
	h.renderPage(w, r, "shows_index.html", map[string]interface{}{
		"ActivePage": "shows",
		"Shows":      entries,
	})
}

func (h *Handler) NewShowPage(w http.ResponseWriter, r *http.Request) {
	stations, err := h.Stations.List()
	if err != nil {
		h.Logger.Error("Failed to load station choices", "error", err)
	}
	h.renderPage(w, r, "shows_form.html", map[string]interface{}{
		"ActivePage": "shows",
		"Heading":    "New show",
		"FormAction": "/shows/new",
		"Key":        "",
		"Show":       domain.Show{},
		"Stations":   stations,
	})
}

func (h *Handler) EditShowPage(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	show, err := h.Shows.Get(key)
	if errors.Is(err, domain.ErrNotFound) {
		h.setFlash(w, "error", fmt.Sprintf("Show '%s' was not found.", key))
		h.redirect(w, r, "/shows")
		return
	}
	if err != nil {
		h.setFlash(w, "error", fmt.Sprintf("Could not load show: %v", err))
		h.redirect(w, r, "/shows")
		return
	}

	stations, err := h.Stations.List()
	if err != nil {
		h.Logger.Error("Failed to load station choices", "error", err)
	}
	h.renderPage(w, r, "shows_form.html", map[string]interface{}{
		"ActivePage": "shows",
		"Heading":    fmt.Sprintf("Edit show '%s'", key),
		"FormAction": "/shows/" + url.PathEscape(key) + "/edit",
		"Key":        key,
		"Show":       show,
		"Stations":   stations,
	})
}

func (h *Handler) CreateShow(w http.ResponseWriter, r *http.Request) {
	h.saveShow(w, r, "")
}

func (h *Handler) UpdateShow(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	// Editing a record that vanished underneath the form goes back to the list.
	if _, err := h.Shows.Get(key); errors.Is(err, domain.ErrNotFound) {
		h.setFlash(w, "error", fmt.Sprintf("Show '%s' was not found.", key))
		h.redirect(w, r, "/shows")
		return
	}

	h.saveShow(w, r, key)
}

func (h *Handler) saveShow(w http.ResponseWriter, r *http.Request, originalKey string) {
	back := "/shows/new"
	if originalKey != "" {
		back = "/shows/" + url.PathEscape(originalKey) + "/edit"
	}

	if err := r.ParseForm(); err != nil {
		h.setFlash(w, "error", "Could not read the submitted form.")
		h.redirect(w, r, back)
		return
	}

	form, err := dto.DecodeShowForm(r.PostForm)
	if err != nil {
		h.setFlash(w, "error", "Could not read the submitted form.")
		h.redirect(w, r, back)
		return
	}

	if errs := form.Validate(h.Config.ShowDefaults); len(errs) > 0 {
		h.setFlash(w, "error", dto.ToResponse(errs))
		h.redirect(w, r, back)
		return
	}

	err = h.Shows.Save(originalKey, form.ShowKey, form.Record())
	var conflict *domain.ConflictError
	switch {
	case errors.As(err, &conflict):
		h.setFlash(w, "error", fmt.Sprintf("A show with key '%s' already exists.", conflict.Key))
		h.redirect(w, r, back)
	case err != nil:
		h.Logger.Error("Failed to save show", "key", form.ShowKey, "error", err, "request_id", RequestIDFromContext(r.Context()))
		h.setFlash(w, "error", fmt.Sprintf("Could not save show: %v", err))
		h.redirect(w, r, back)
	default:
		h.setFlash(w, "success", fmt.Sprintf("Show '%s' saved successfully.", form.ShowKey))
		h.redirect(w, r, "/shows")
	}
}

func (h *Handler) DeleteShow(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	err := h.Shows.Delete(key)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.setFlash(w, "error", fmt.Sprintf("Show '%s' was not found.", key))
	case err != nil:
		h.Logger.Error("Failed to delete show", "key", key, "error", err, "request_id", RequestIDFromContext(r.Context()))
		h.setFlash(w, "error", fmt.Sprintf("Could not delete show: %v", err))
	default:
		h.setFlash(w, "success", fmt.Sprintf("Show '%s' deleted.", key))
	}
	h.redirect(w, r, "/shows")
}
