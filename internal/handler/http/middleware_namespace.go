package http

import (
	"net/http"

	"github.com/airdash/airdash/internal/logger"
)

const namespaceHeader = "X-Airdash-Namespace"

// withNamespace rejects record requests addressed to a foreign deployment
// namespace. All devices of one deployment must agree on the namespace; a
// mismatch means the client is pointed at the wrong server, and storing its
// records would silently split the dataset.
func (h *Handler) withNamespace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		namespace := r.Header.Get(namespaceHeader)
		if namespace != h.cfg.Namespace {
			logger.FromRequest(r).Warn().
				Str("got", namespace).
				Str("want", h.cfg.Namespace).
				Msg("namespace mismatch")
			http.Error(w, "unknown namespace", http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
