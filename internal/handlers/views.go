package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/EduardoVisconti/AssetOps/internal/listing"
)

// ListViews returns the built-in saved views. Which one a client last used
// is client-local state; the server only publishes the presets.
func ListViews(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(listing.BuiltinViews())
}
