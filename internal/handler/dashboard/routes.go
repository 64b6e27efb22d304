package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	router.Get("/api/status", h.status)

	router.Route("/api/collections/{collection}", func(r chi.Router) {
		r.Use(h.withCollection)
		r.Get("/", h.listRecords)
		r.Put("/{key}", h.putRecord)
		r.Get("/{key}", h.getRecord)
		r.Delete("/{key}", h.deleteRecord)
	})

	router.Post("/api/session/register", h.register)
	router.Post("/api/session/login", h.login)
	router.Post("/api/session/logout", h.logout)

	router.Post("/api/sync", h.syncNow)

	return router
}

// withCollection resolves the engine for the collection path segment and
// rejects unknown collections before any handler runs.
func (h *Handler) withCollection(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.services.Engine(chi.URLParam(r, "collection")) == nil {
			http.Error(w, "unknown collection", http.StatusNotFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
