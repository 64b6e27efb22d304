package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/airdash/airdash/internal/adapter"
	"github.com/airdash/airdash/internal/service"
	"github.com/airdash/airdash/internal/utils"
	"github.com/airdash/airdash/models"
)

type credentialsRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Identity string `json:"identity"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	h.authenticate(w, r, h.services.Session.Register)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	h.authenticate(w, r, h.services.Session.Login)
}

func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request, authFn func(ctx context.Context, login, password string) (models.Session, error)) {
	var creds credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	session, err := authFn(r.Context(), creds.Login, creds.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided), errors.Is(err, adapter.ErrBadRequest):
			http.Error(w, "invalid data provided", http.StatusBadRequest)
		case errors.Is(err, adapter.ErrUnauthorized):
			http.Error(w, "invalid login/password", http.StatusUnauthorized)
		case errors.Is(err, adapter.ErrConflict):
			http.Error(w, "login already exists", http.StatusConflict)
		case errors.Is(err, adapter.ErrServerUnavailable):
			http.Error(w, "record server unavailable", http.StatusBadGateway)
		default:
			h.logger.Err(err).Msg("authentication failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, sessionResponse{Identity: session.Identity}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Session.SignOut(r.Context()); err != nil {
		h.logger.Err(err).Msg("sign-out failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
