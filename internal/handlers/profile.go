package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/EduardoVisconti/AssetOps/internal/middleware"
	"github.com/EduardoVisconti/AssetOps/internal/repo"
)

// ==========================
// ProfileHandler
// ==========================
type ProfileHandler struct {
	Repo *repo.ProfileRepo
}

// Me returns the caller's profile, creating a viewer profile on first
// call. The response role drives UI gating only; the server re-checks the
// profile on every mutation.
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		JSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	p, err := h.Repo.Ensure(r.Context(), actor.UID, actor.Email)
	if err != nil {
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

// GetProfile returns a profile by uid, or 404.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	p, err := h.Repo.Get(r.Context(), uid)
	if errors.Is(err, repo.ErrNotFound) {
		JSONError(w, "profile not found", http.StatusNotFound)
		return
	}
	if err != nil {
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}
