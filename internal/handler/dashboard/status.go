package dashboard

import (
	"errors"
	"net/http"

	"github.com/airdash/airdash/internal/service"
	"github.com/airdash/airdash/internal/utils"
	"github.com/airdash/airdash/models"
)

type statusResponse struct {
	models.SyncState

	// PendingByCollection breaks the total backlog down for the status strip
	// tooltip.
	PendingByCollection map[string]int `json:"pending_by_collection"`
}

// status feeds the dashboard's status strip: online/offline, identity, and
// queue backlog.
func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	pending := make(map[string]int, len(h.services.Engines))
	for collection, engine := range h.services.Engines {
		pending[collection] = engine.PendingCount()
	}

	utils.WriteJSON(w, statusResponse{
		SyncState:           h.services.Monitor.Snapshot(h.services.PendingTotal()),
		PendingByCollection: pending,
	}, http.StatusOK)
}

type syncReport struct {
	Reports []models.DrainReport `json:"reports"`
}

// syncNow is the dashboard's "sync now" button: refresh every collection from
// the remote store, then flush the queues. Requires the online-authenticated
// state.
func (h *Handler) syncNow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	reports := make([]models.DrainReport, 0, len(h.services.Engines))
	for _, engine := range h.services.Engines {
		if err := engine.Refresh(ctx); err != nil {
			h.syncError(w, err)
			return
		}
		report, err := engine.Drain(ctx)
		if err != nil {
			h.syncError(w, err)
			return
		}
		reports = append(reports, report)
	}

	utils.WriteJSON(w, syncReport{Reports: reports}, http.StatusOK)
}

func (h *Handler) syncError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrNotSyncable) {
		http.Error(w, service.ErrNotSyncable.Error(), http.StatusConflict)
		return
	}
	h.logger.Err(err).Msg("manual sync failed")
	http.Error(w, "sync failed", http.StatusBadGateway)
}
