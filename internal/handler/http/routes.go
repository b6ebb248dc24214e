package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/version", h.getServerVersion)

	// signed routes
	router.Group(func(r chi.Router) {
		r.Use(h.withSignature)
		r.Post("/api/companion/fetch", h.fetch)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
