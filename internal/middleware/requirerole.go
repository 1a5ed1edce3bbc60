package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/EduardoVisconti/AssetOps/internal/models"
)

// RoleResolver resolves the effective role for an identity. An identity
// with no profile document must resolve to viewer.
type RoleResolver interface {
	Role(ctx context.Context, uid string) (string, error)
}

// RequireAdmin gates mutating routes on the profile role. Absence of a
// profile never grants access; resolver failures deny with a generic 500.
func RequireAdmin(resolver RoleResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := GetActor(r.Context())
			if !ok {
				denyJSON(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			role, err := resolver.Role(r.Context(), actor.UID)
			if err != nil {
				denyJSON(w, "internal server error", http.StatusInternalServerError)
				return
			}
			if role != models.RoleAdmin {
				denyJSON(w, "admin role required", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func denyJSON(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
