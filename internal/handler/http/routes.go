package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Get("/healthz", h.healthz)
	router.Get("/api/version", h.getVersion)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/", h.notesPage)
		r.Get("/api/notes", h.getNotes)
		r.Get("/api/state", h.getState)
		r.Get("/api/export/{format}", h.exportNotes)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
