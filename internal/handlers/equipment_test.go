package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/EduardoVisconti/AssetOps/internal/middleware"
	"github.com/EduardoVisconti/AssetOps/internal/models"
	"github.com/EduardoVisconti/AssetOps/internal/repo"
)

func newTestHandler(t *testing.T) (*EquipmentHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &EquipmentHandler{Repo: repo.NewEquipmentRepo(db)}, mock
}

func postEquipment(t *testing.T, h *EquipmentHandler, payload map[string]any, asActor bool) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/v1/equipments", bytes.NewReader(body))
	if asActor {
		req = req.WithContext(middleware.WithActor(req.Context(), models.Actor{UID: "u-1", Email: "ops@example.com"}))
	}
	rec := httptest.NewRecorder()
	h.CreateEquipment(rec, req)
	return rec
}

func validPayload() map[string]any {
	return map[string]any{
		"name":              "Forklift A",
		"serial_number":     "fk-001",
		"status":            models.StatusActive,
		"purchase_date":     "2024-01-01",
		"last_service_date": "2024-03-01",
	}
}

func TestCreateEquipment_SerialConflict(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("FK-001").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	rec := postEquipment(t, h, validPayload(), true)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp["code"] != CodeSerialExists {
		t.Errorf("expected code %q, got %q", CodeSerialExists, resp["code"])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateEquipment_RejectsFutureDates(t *testing.T) {
	h, _ := newTestHandler(t)

	payload := validPayload()
	payload["purchase_date"] = time.Now().AddDate(0, 0, 1).Format(models.DateLayout)

	rec := postEquipment(t, h, payload, true)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Fields["purchase_date"] == "" {
		t.Errorf("expected field error on purchase_date, got %v", resp.Fields)
	}
}

func TestCreateEquipment_RejectsPastNextService(t *testing.T) {
	h, _ := newTestHandler(t)

	payload := validPayload()
	payload["next_service_date"] = "2020-01-01"

	rec := postEquipment(t, h, payload, true)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Fields["next_service_date"] == "" {
		t.Errorf("expected field error on next_service_date, got %v", resp.Fields)
	}
}

func TestCreateEquipment_InvalidStatus(t *testing.T) {
	h, _ := newTestHandler(t)

	payload := validPayload()
	payload["status"] = "broken"

	rec := postEquipment(t, h, payload, true)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateEquipment_MissingActor(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := postEquipment(t, h, validPayload(), false)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestListEquipment_UnknownView(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/equipments?view=nope", nil)
	rec := httptest.NewRecorder()
	h.ListEquipment(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}
