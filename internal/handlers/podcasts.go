package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"radiopanel/internal/domain"
	"radiopanel/internal/dto"
	"radiopanel/internal/feed"
)

func (h *Handler) ListPodcasts(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Podcasts.List()
	if err != nil {
		h.Logger.Error("Failed to load podcasts", "error", err, "request_id", RequestIDFromContext(r.Context()))
		h.setFlash(w, "error", fmt.Sprintf("Could not load podcasts: %v", err))
	}
	h.renderPage(w, r, "podcasts_index.html", map[string]interface{}{
		"ActivePage": "podcasts",
		"Podcasts":   entries,
	})
}

func (h *Handler) NewPodcastPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "podcasts_form.html", map[string]interface{}{
		"ActivePage": "podcasts",
		"Heading":    "New podcast",
		"FormAction": "/podcasts/new",
		"Key":        "",
		"Podcast":    domain.Podcast{},
	})
}

func (h *Handler) EditPodcastPage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	podcast, err := h.Podcasts.Get(id)
	if errors.Is(err, domain.ErrNotFound) {
		h.setFlash(w, "error", fmt.Sprintf("Podcast '%s' was not found.", id))
		h.redirect(w, r, "/podcasts")
		return
	}
	if err != nil {
		h.setFlash(w, "error", fmt.Sprintf("Could not load podcast: %v", err))
		h.redirect(w, r, "/podcasts")
		return
	}

	h.renderPage(w, r, "podcasts_form.html", map[string]interface{}{
		"ActivePage": "podcasts",
		"Heading":    fmt.Sprintf("Edit podcast '%s'", id),
		"FormAction": "/podcasts/" + url.PathEscape(id) + "/edit",
		"Key":        id,
		"Podcast":    podcast,
	})
}

func (h *Handler) CreatePodcast(w http.ResponseWriter, r *http.Request) {
	h.savePodcast(w, r, "")
}

func (h *Handler) UpdatePodcast(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.Podcasts.Get(id); errors.Is(err, domain.ErrNotFound) {
		h.setFlash(w, "error", fmt.Sprintf("Podcast '%s' was not found.", id))
		h.redirect(w, r, "/podcasts")
		return
	}

	h.savePodcast(w, r, id)
}

func (h *Handler) savePodcast(w http.ResponseWriter, r *http.Request, originalID string) {
	back := "/podcasts/new"
	if originalID != "" {
		back = "/podcasts/" + url.PathEscape(originalID) + "/edit"
	}

	if err := r.ParseForm(); err != nil {
		h.setFlash(w, "error", "Could not read the submitted form.")
		h.redirect(w, r, back)
		return
	}

	form, err := dto.DecodePodcastForm(r.PostForm)
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

	err = h.Podcasts.Save(originalID, form.PodcastID, form.Record())
	var conflict *domain.ConflictError
	switch {
	case errors.As(err, &conflict):
		h.setFlash(w, "error", fmt.Sprintf("A podcast with id '%s' already exists.", conflict.Key))
		h.redirect(w, r, back)
	case err != nil:
		h.Logger.Error("Failed to save podcast", "id", form.PodcastID, "error", err, "request_id", RequestIDFromContext(r.Context()))
		h.setFlash(w, "error", fmt.Sprintf("Could not save podcast: %v", err))
		h.redirect(w, r, back)
	default:
		h.setFlash(w, "success", fmt.Sprintf("Podcast '%s' saved successfully.", form.PodcastID))
		h.redirect(w, r, "/podcasts")
	}
}

func (h *Handler) DeletePodcast(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.Podcasts.Delete(id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.setFlash(w, "error", fmt.Sprintf("Podcast '%s' was not found.", id))
	case err != nil:
		h.Logger.Error("Failed to delete podcast", "id", id, "error", err, "request_id", RequestIDFromContext(r.Context()))
		h.setFlash(w, "error", fmt.Sprintf("Could not delete podcast: %v", err))
	default:
		h.setFlash(w, "success", fmt.Sprintf("Podcast '%s' deleted.", id))
	}
	h.redirect(w, r, "/podcasts")
}

// TestFeed is the one JSON API endpoint: it probes a feed URL and returns the
// extracted metadata so the form can pre-fill author and last build date.
func (h *Handler) TestFeed(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FeedURL string `json:"feed_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, feed.Result{Message: "Invalid request body."})
		return
	}

	if strings.TrimSpace(req.FeedURL) == "" {
		h.writeJSON(w, http.StatusBadRequest, feed.Result{Message: "Feed URL is required."})
		return
	}

	result := h.Probe.Fetch(r.Context(), req.FeedURL)
	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadGateway
	}
	h.writeJSON(w, status, result)
}
