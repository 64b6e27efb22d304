package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/airdash/airdash/internal/service"
	"github.com/airdash/airdash/internal/store"
	"github.com/airdash/airdash/internal/utils"
	"github.com/airdash/airdash/models"
)

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	engine := h.services.Engine(chi.URLParam(r, "collection"))

	records := engine.All(r.Context())
	utils.WriteJSON(w, models.RecordListResponse{Records: records, Length: len(records)}, http.StatusOK)
}

func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	engine := h.services.Engine(chi.URLParam(r, "collection"))

	record, err := engine.Get(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}
		h.logger.Err(err).Msg("error reading record")
		http.Error(w, "error reading record", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

// putRecord accepts an edit from the browser. The record is stored locally
// and queued; a 200 here does NOT mean the remote store has it yet.
func (h *Handler) putRecord(w http.ResponseWriter, r *http.Request) {
	engine := h.services.Engine(chi.URLParam(r, "collection"))

	var record models.Record
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if record.Key == "" {
		record.Key = chi.URLParam(r, "key")
	}
	if record.Key != chi.URLParam(r, "key") {
		http.Error(w, service.ErrKeyMismatch.Error(), http.StatusBadRequest)
		return
	}

	if err := engine.Put(r.Context(), record); err != nil {
		if errors.Is(err, service.ErrInvalidRecord) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Err(err).Msg("error storing record")
		http.Error(w, "error storing record", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	engine := h.services.Engine(chi.URLParam(r, "collection"))

	if err := engine.Delete(r.Context(), chi.URLParam(r, "key")); err != nil {
		h.logger.Err(err).Msg("error deleting record")
		http.Error(w, "error deleting record", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
