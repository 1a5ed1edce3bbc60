package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/EduardoVisconti/AssetOps/internal/listing"
	"github.com/EduardoVisconti/AssetOps/internal/metrics"
	"github.com/EduardoVisconti/AssetOps/internal/middleware"
	"github.com/EduardoVisconti/AssetOps/internal/models"
	"github.com/EduardoVisconti/AssetOps/internal/repo"
)

type EquipmentHandler struct {
	Repo *repo.EquipmentRepo
}

//
// ==========================
// Input payload
// ==========================
//

type equipmentPayload struct {
	Name         string `json:"name" validate:"required,min=1,max=255"`
	SerialNumber string `json:"serial_number" validate:"required,min=1,max=120"`
	Status       string `json:"status" validate:"required,oneof=active inactive maintenance"`

	PurchaseDate    string `json:"purchase_date" validate:"required"`
	LastServiceDate string `json:"last_service_date" validate:"required"`
	NextServiceDate string `json:"next_service_date"`

	ServiceIntervalDays int `json:"service_interval_days" validate:"omitempty,min=1"`

	Owner    string `json:"owner" validate:"max=255"`
	Location string `json:"location" validate:"max=255"`
}

func (p equipmentPayload) toInput() models.EquipmentInput {
	return models.EquipmentInput{
		Name:                strings.TrimSpace(p.Name),
		SerialNumber:        strings.TrimSpace(p.SerialNumber),
		Status:              p.Status,
		PurchaseDate:        p.PurchaseDate,
		LastServiceDate:     p.LastServiceDate,
		NextServiceDate:     strings.TrimSpace(p.NextServiceDate),
		ServiceIntervalDays: p.ServiceIntervalDays,
		Owner:               strings.TrimSpace(p.Owner),
		Location:            strings.TrimSpace(p.Location),
	}
}

// dateFieldErrors applies the date-range rules: purchase and last-service
// dates must not be future-dated, next-service must not be past-dated.
// Dates are calendar days; "today" is local midnight.
func dateFieldErrors(p equipmentPayload) map[string]string {
	fields := make(map[string]string)
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)

	check := func(field, value string) (time.Time, bool) {
		t, err := time.ParseInLocation(models.DateLayout, value, time.Local)
		if err != nil {
			fields[field] = "must be a yyyy-MM-dd date"
			return time.Time{}, false
		}
		return t, true
	}

	if t, ok := check("purchase_date", p.PurchaseDate); ok && t.After(today) {
		fields["purchase_date"] = "cannot be in the future"
	}
	if t, ok := check("last_service_date", p.LastServiceDate); ok && t.After(today) {
		fields["last_service_date"] = "cannot be in the future"
	}
	if next := strings.TrimSpace(p.NextServiceDate); next != "" {
		if t, ok := check("next_service_date", next); ok && t.Before(today) {
			fields["next_service_date"] = "cannot be in the past"
		}
	}
	return fields
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request) (equipmentPayload, bool) {
	var payload equipmentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		JSONError(w, "invalid JSON", http.StatusBadRequest)
		return payload, false
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		JSONError(w, err.Error(), http.StatusBadRequest)
		return payload, false
	}
	if fields := dateFieldErrors(payload); len(fields) > 0 {
		JSONValidationError(w, "validation failed", fields, http.StatusBadRequest)
		return payload, false
	}
	return payload, true
}

//
// ==========================
// List Equipment
// ==========================
//

// ListEquipment returns the equipment list. Query parameters:
// sort, include_archived, limit, status, q, and view (a saved-view key,
// which overrides sort and archive handling).
func (h *EquipmentHandler) ListEquipment(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := 0
	if l := q.Get("limit"); l != "" {
		if val, err := strconv.Atoi(l); err == nil && val > 0 {
			limit = val
		}
	}

	var items []models.Equipment
	var err error

	if key := q.Get("view"); key != "" {
		view, ok := listing.ViewByKey(key)
		if !ok {
			JSONError(w, "unknown view", http.StatusBadRequest)
			return
		}
		// The archived view needs archived rows in the raw fetch, so the
		// view's own filters run on an unfiltered list.
		items, err = h.Repo.List(r.Context(), repo.ListOptions{
			IncludeArchived: true,
			Sort:            listing.ParseSortMode(view.Sort),
		})
		if err == nil {
			items = listing.ApplyView(items, view)
		}
	} else {
		items, err = h.Repo.List(r.Context(), repo.ListOptions{
			IncludeArchived: q.Get("include_archived") == "true",
			Sort:            listing.ParseSortMode(q.Get("sort")),
		})
		if err == nil {
			items = listing.FilterStatus(items, q.Get("status"))
			items = listing.FilterSearch(items, q.Get("q"))
		}
	}
	if err != nil {
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	// Cap after sorting and filtering, never before.
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	if items == nil {
		items = []models.Equipment{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

//
// ==========================
// Get Equipment By ID
// ==========================
//

func (h *EquipmentHandler) GetEquipment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	e, err := h.Repo.GetByID(r.Context(), id)
	if errors.Is(err, repo.ErrNotFound) {
		JSONError(w, "equipment not found", http.StatusNotFound)
		return
	}
	if err != nil {
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(e)
}

//
// ==========================
// Create Equipment
// ==========================
//

func (h *EquipmentHandler) CreateEquipment(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeAndValidate(w, r)
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		JSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	e, err := h.Repo.Create(r.Context(), payload.toInput(), actor)
	if errors.Is(err, repo.ErrSerialExists) {
		metrics.SerialConflictsTotal.Inc()
		JSONCodeError(w, "serial number already in use", CodeSerialExists, http.StatusConflict)
		return
	}
	if err != nil {
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}
	metrics.RecordMutation("create")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(e)
}

//
// ==========================
// Update Equipment
// ==========================
//

func (h *EquipmentHandler) UpdateEquipment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	payload, ok := decodeAndValidate(w, r)
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		JSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	e, err := h.Repo.Update(r.Context(), id, payload.toInput(), actor)
	if errors.Is(err, repo.ErrNotFound) {
		JSONError(w, "equipment not found", http.StatusNotFound)
		return
	}
	if err != nil {
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}
	metrics.RecordMutation("update")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(e)
}

//
// ==========================
// Archive / Unarchive
// ==========================
//

func (h *EquipmentHandler) ArchiveEquipment(w http.ResponseWriter, r *http.Request) {
	h.setArchived(w, r, true)
}

func (h *EquipmentHandler) UnarchiveEquipment(w http.ResponseWriter, r *http.Request) {
	h.setArchived(w, r, false)
}

func (h *EquipmentHandler) setArchived(w http.ResponseWriter, r *http.Request, archived bool) {
	id := chi.URLParam(r, "id")

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		JSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var e models.Equipment
	var err error
	if archived {
		e, err = h.Repo.Archive(r.Context(), id, actor)
	} else {
		e, err = h.Repo.Unarchive(r.Context(), id, actor)
	}
	if errors.Is(err, repo.ErrNotFound) {
		JSONError(w, "equipment not found", http.StatusNotFound)
		return
	}
	if err != nil {
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}
	if archived {
		metrics.RecordMutation("archive")
	} else {
		metrics.RecordMutation("unarchive")
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(e)
}
