package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/EduardoVisconti/AssetOps/internal/metrics"
	"github.com/EduardoVisconti/AssetOps/internal/middleware"
	"github.com/EduardoVisconti/AssetOps/internal/models"
	"github.com/EduardoVisconti/AssetOps/internal/repo"
)

type maintenancePayload struct {
	Date  string `json:"date" validate:"required"`
	Type  string `json:"type" validate:"required,oneof=preventive corrective"`
	Notes string `json:"notes" validate:"max=2000"`
}

//
// ==========================
// Add Maintenance
// ==========================
//

func (h *EquipmentHandler) AddMaintenance(w http.ResponseWriter, r *http.Request) {
	equipmentID := chi.URLParam(r, "id")

	var payload maintenancePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		JSONError(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		JSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, err := time.ParseInLocation(models.DateLayout, payload.Date, time.Local); err != nil {
		JSONValidationError(w, "validation failed",
			map[string]string{"date": "must be a yyyy-MM-dd date"}, http.StatusBadRequest)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		JSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	rec, err := h.Repo.AddMaintenance(r.Context(), equipmentID, models.MaintenanceInput{
		Date:  payload.Date,
		Type:  payload.Type,
		Notes: payload.Notes,
	}, actor)
	if errors.Is(err, repo.ErrNotFound) {
		JSONError(w, "equipment not found", http.StatusNotFound)
		return
	}
	if err != nil {
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}
	metrics.RecordMutation("maintenance")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(rec)
}

//
// ==========================
// Maintenance History
// ==========================
//

func (h *EquipmentHandler) ListMaintenance(w http.ResponseWriter, r *http.Request) {
	equipmentID := chi.URLParam(r, "id")

	records, err := h.Repo.ListMaintenance(r.Context(), equipmentID)
	if err != nil {
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []models.MaintenanceRecord{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}
