// Package handlers wires the HTTP surface of the admin panel: HTML form
// endpoints with flash-and-redirect feedback plus the one JSON feed-test API.
package handlers

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"radiopanel/internal/config"
	"radiopanel/internal/feed"
	"radiopanel/internal/logger"
	"radiopanel/internal/services"
	"radiopanel/web"
)

type Handler struct {
	Shows    *services.ShowService
	Stations *services.StationService
	Podcasts *services.PodcastService
	Probe    *feed.Probe
	Config   *config.Config
	Logger   *logger.Logger
}

func NewHandler(shows *services.ShowService, stations *services.StationService, podcasts *services.PodcastService, probe *feed.Probe, cfg *config.Config, log *logger.Logger) *Handler {
	return &Handler{
		Shows:    shows,
		Stations: stations,
		Podcasts: podcasts,
		Probe:    probe,
		Config:   cfg,
		Logger:   log.WithComponent("http"),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Home)

	r.Route("/shows", func(r chi.Router) {
		r.Get("/", h.ListShows)
		r.Get("/new", h.NewShowPage)
		r.Post("/new", h.CreateShow)
		r.Get("/{key}/edit", h.EditShowPage)
		r.Post("/{key}/edit", h.UpdateShow)
		r.Post("/{key}/delete", h.DeleteShow)
	})

	r.Route("/stations", func(r chi.Router) {
		r.Get("/", h.ListStations)
		r.Get("/new", h.NewStationPage)
		r.Post("/new", h.CreateStation)
		r.Get("/{id}/edit", h.EditStationPage)
		r.Post("/{id}/edit", h.UpdateStation)
		r.Post("/{id}/delete", h.DeleteStation)
	})

	r.Route("/podcasts", func(r chi.Router) {
		r.Get("/", h.ListPodcasts)
		r.Get("/new", h.NewPodcastPage)
		r.Post("/new", h.CreatePodcast)
		r.Post("/test", h.TestFeed)
		r.Get("/{id}/edit", h.EditPodcastPage)
		r.Post("/{id}/edit", h.UpdatePodcast)
		r.Post("/{id}/delete", h.DeletePodcast)
	})
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/shows", http.StatusFound)
}

// renderPage parses base.html plus the page template from the embedded FS and
// executes the base layout, injecting the site title and any pending flash.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, pageTmpl string, data map[string]interface{}) {
	tmpl, err := template.ParseFS(web.Files, "templates/base.html", "templates/"+pageTmpl)
	if err != nil {
		h.Logger.Error("Failed to parse templates", "template", pageTmpl, "error", err, "request_id", RequestIDFromContext(r.Context()))
		http.Error(w, "Render error", http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = map[string]interface{}{}
	}
	data["SiteTitle"] = h.Config.SiteTitle
	if _, ok := data["ActivePage"]; !ok {
		data["ActivePage"] = ""
	}
	if fl := h.popFlash(w, r); fl != nil {
		data["Flash"] = fl
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		h.Logger.Error("Failed to render page", "template", pageTmpl, "error", err)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.Logger.Error("Failed to encode JSON response", "error", err)
	}
}

// redirect issues the post-form redirect carrying whatever flash was set.
func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}
