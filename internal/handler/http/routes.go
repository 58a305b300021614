package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// liveness probe, never gated
	router.Get("/health", h.health)

	if !h.config.Enabled {
		router.NotFound(h.servePassThrough)
		return router
	}

	router.Get("/login", h.loginPage)
	router.Get("/login.html", h.loginPage)

	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/logout", h.logout)
	})

	router.NotFound(h.serve)
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.serve(w, r)
	})

	return router
}
