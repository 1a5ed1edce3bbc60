package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/EduardoVisconti/AssetOps/internal/models"
)

type stubResolver struct {
	role string
	err  error
}

func (s stubResolver) Role(ctx context.Context, uid string) (string, error) {
	return s.role, s.err
}

func runRequireAdmin(t *testing.T, resolver RoleResolver, actor *models.Actor) *httptest.ResponseRecorder {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/equipments", nil)
	if actor != nil {
		req = req.WithContext(WithActor(req.Context(), *actor))
	}
	rec := httptest.NewRecorder()
	RequireAdmin(resolver)(next).ServeHTTP(rec, req)
	return rec
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	rec := runRequireAdmin(t, stubResolver{role: models.RoleAdmin}, &models.Actor{UID: "u-1"})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestRequireAdmin_DeniesViewer(t *testing.T) {
	rec := runRequireAdmin(t, stubResolver{role: models.RoleViewer}, &models.Actor{UID: "u-1"})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireAdmin_MissingActor(t *testing.T) {
	rec := runRequireAdmin(t, stubResolver{role: models.RoleAdmin}, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAdmin_ResolverFailure(t *testing.T) {
	rec := runRequireAdmin(t, stubResolver{err: errors.New("db down")}, &models.Actor{UID: "u-1"})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
