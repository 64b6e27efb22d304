package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/health", h.health)
	})

	// record routes: the caller must hold a valid token and address the
	// namespace this server serves
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.withNamespace)

		r.Route("/api/records/{collection}", func(r chi.Router) {
			r.Get("/", h.listRecords)
			r.Put("/{key}", h.upsertRecord)
			r.Get("/{key}", h.getRecord)
			r.Delete("/{key}", h.deleteRecord)
		})
	})

	return router
}
