package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/EduardoVisconti/AssetOps/internal/models"
	"github.com/EduardoVisconti/AssetOps/internal/repo"
)

// ListEvents returns the newest audit events for an equipment record.
// Query: limit (default 25, max 200).
func (h *EquipmentHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	equipmentID := chi.URLParam(r, "id")

	limit := repo.DefaultEventLimit
	if l := r.URL.Query().Get("limit"); l != "" {
		if val, err := strconv.Atoi(l); err == nil && val > 0 && val <= 200 {
			limit = val
		}
	}

	events, err := h.Repo.ListEvents(r.Context(), equipmentID, limit)
	if err != nil {
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}
	if events == nil {
		events = []models.EquipmentEvent{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(events)
}
