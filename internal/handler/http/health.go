package http

import (
	"net/http"

	"github.com/airdash/airdash/internal/utils"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// health is the liveness endpoint the dashboard's connectivity probe polls.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, healthResponse{Status: "ok", Version: h.cfg.Version}, http.StatusOK)
}
