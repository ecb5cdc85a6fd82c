package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"radiopanel/internal/domain"
	"radiopanel/internal/dto"
)

func (h *Handler) ListStations(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Stations.List()
	if err != nil {
		h.Logger.Error("Failed to load stations", "error", err, "request_id", RequestIDFromContext(r.Context()))
		h.setFlash(w, "error", fmt.Sprintf("Could not load stations: %v", err))
	}
	h.renderPage(w, r, "stations_index.html", map[string]interface{}{
		"ActivePage": "stations",
		"Stations":   entries,
	})
}

func (h *Handler) NewStationPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "stations_form.html", map[string]interface{}{
		"ActivePage": "stations",
		"Heading":    "New station",
		"FormAction": "/stations/new",
		"StationID":  "",
		"StreamURL":  "",
	})
}

func (h *Handler) EditStationPage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	streamURL, err := h.Stations.Get(id)
	if errors.Is(err, domain.ErrNotFound) {
		h.setFlash(w, "error", fmt.Sprintf("Station '%s' was not found.", id))
		h.redirect(w, r, "/stations")
		return
	}
	if err != nil {
		h.setFlash(w, "error", fmt.Sprintf("Could not load station: %v", err))
		h.redirect(w, r, "/stations")
		return
	}

	h.renderPage(w, r, "stations_form.html", map[string]interface{}{
		"ActivePage": "stations",
		"Heading":    fmt.Sprintf("Edit station '%s'", id),
		"FormAction": "/stations/" + url.PathEscape(id) + "/edit",
		"StationID":  id,
		"StreamURL":  streamURL,
	})
}

func (h *Handler) CreateStation(w http.ResponseWriter, r *http.Request) {
	h.saveStation(w, r, "")
}

func (h *Handler) UpdateStation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.Stations.Get(id); errors.Is(err, domain.ErrNotFound) {
		h.setFlash(w, "error", fmt.Sprintf("Station '%s' was not found.", id))
		h.redirect(w, r, "/stations")
		return
	}

	h.saveStation(w, r, id)
}

func (h *Handler) saveStation(w http.ResponseWriter, r *http.Request, originalID string) {
	back := "/stations/new"
	if originalID != "" {
		back = "/stations/" + url.PathEscape(originalID) + "/edit"
	}

	if err := r.ParseForm(); err != nil {
		h.setFlash(w, "error", "Could not read the submitted form.")
		h.redirect(w, r, back)
		return
	}

	form, err := dto.DecodeStationForm(r.PostForm)
	if err != nil {
		h.setFlash(w, "error", "Could not read the submitted form.")
		h.redirect(w, r, back)
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		h.setFlash(w, "error", dto.ToResponse(errs))
		h.redirect(w, r, back)
		return
	}

	err = h.Stations.Save(originalID, form.StationID, form.StreamURL)
	var conflict *domain.ConflictError
	switch {
	case errors.As(err, &conflict):
		h.setFlash(w, "error", fmt.Sprintf("Station '%s' already exists.", conflict.Key))
		h.redirect(w, r, back)
	case err != nil:
		h.Logger.Error("Failed to save station", "id", form.StationID, "error", err, "request_id", RequestIDFromContext(r.Context()))
		h.setFlash(w, "error", fmt.Sprintf("Could not save station: %v", err))
		h.redirect(w, r, back)
	default:
		h.setFlash(w, "success", fmt.Sprintf("Station '%s' saved successfully.", form.StationID))
		h.redirect(w, r, "/stations")
	}
}

func (h *Handler) DeleteStation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.Stations.Delete(id)
	var inUse *domain.InUseError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.setFlash(w, "error", fmt.Sprintf("Station '%s' was not found.", id))
	case errors.As(err, &inUse):
		h.setFlash(w, "error", fmt.Sprintf("Cannot delete station '%s': still referenced by shows %s.", id, strings.Join(inUse.References, ", ")))
	case err != nil:
		h.Logger.Error("Failed to delete station", "id", id, "error", err, "request_id", RequestIDFromContext(r.Context()))
		h.setFlash(w, "error", fmt.Sprintf("Could not delete station: %v", err))
	default:
		h.setFlash(w, "success", fmt.Sprintf("Station '%s' deleted.", id))
	}
	h.redirect(w, r, "/stations")
}
