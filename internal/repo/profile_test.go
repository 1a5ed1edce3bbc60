package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/EduardoVisconti/AssetOps/internal/models"
)

func TestProfileRepo_Get_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT uid, email, role`).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"uid", "email", "role", "created_at", "updated_at"}))

	r := NewProfileRepo(db)
	_, err = r.Get(context.Background(), "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestProfileRepo_Role_MissingProfileIsViewer(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT uid, email, role`).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"uid", "email", "role", "created_at", "updated_at"}))

	r := NewProfileRepo(db)
	role, err := r.Role(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("Role: %v", err)
	}
	if role != models.RoleViewer {
		t.Errorf("role = %q, want viewer", role)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestProfileRepo_Ensure_CreatesViewerOnce(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectExec(`INSERT INTO user_profiles`).
		WithArgs("u-1", "ops@example.com", models.RoleViewer).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT uid, email, role`).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"uid", "email", "role", "created_at", "updated_at"}).
			AddRow("u-1", "ops@example.com", models.RoleAdmin, now, now))

	r := NewProfileRepo(db)
	p, err := r.Ensure(context.Background(), "u-1", "ops@example.com")
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	// Ensure never downgrades: an existing admin profile is returned as-is.
	if !p.IsAdmin() {
		t.Errorf("unexpected profile: %+v", p)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
