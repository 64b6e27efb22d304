package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/airdash/airdash/internal/logger"
	"github.com/airdash/airdash/internal/service"
	"github.com/airdash/airdash/internal/store"
	"github.com/airdash/airdash/internal/utils"
	"github.com/airdash/airdash/models"
)

func (h *Handler) upsertRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.upsertRecord").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var record models.Record
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Err(err).Str("func", "*Handler.upsertRecord").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	collection := chi.URLParam(r, "collection")
	key := chi.URLParam(r, "key")

	if err := h.services.RecordService.Upsert(ctx, userID, collection, key, record); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRecord), errors.Is(err, service.ErrKeyMismatch):
			log.Err(err).Msg("record rejected")
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Err(err).Msg("error storing record")
			http.Error(w, "error storing record", statusFromError(err))
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getRecord").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	record, err := h.services.RecordService.Get(ctx, userID, chi.URLParam(r, "collection"), chi.URLParam(r, "key"))
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}
		log.Err(err).Msg("error loading record")
		http.Error(w, "error loading record", statusFromError(err))
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.listRecords").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	response, err := h.services.RecordService.List(ctx, userID, chi.URLParam(r, "collection"), r.URL.Query().Get("prefix"))
	if err != nil {
		log.Err(err).Msg("error listing records")
		http.Error(w, "error listing records", statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.deleteRecord").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	// deleting an absent record succeeds: replayed queue entries must not
	// wedge a client that already converged
	if err := h.services.RecordService.Delete(ctx, userID, chi.URLParam(r, "collection"), chi.URLParam(r, "key")); err != nil {
		log.Err(err).Msg("error deleting record")
		http.Error(w, "error deleting record", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
