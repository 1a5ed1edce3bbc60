package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/EduardoVisconti/AssetOps/internal/models"
)

// ==========================
// ProfileRepo
// ==========================

// ProfileRepo reads and lazily creates user profile documents. Role
// elevation is an out-of-band administrative action; this repository only
// ever writes viewer profiles.
type ProfileRepo struct {
	DB *sql.DB
}

func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{DB: db}
}

// Get returns the profile for uid, or ErrNotFound. Callers must treat an
// absent profile as role viewer, never admin.
func (r *ProfileRepo) Get(ctx context.Context, uid string) (models.UserProfile, error) {
	var p models.UserProfile
	err := r.DB.QueryRowContext(ctx,
		`SELECT uid, email, role, created_at, updated_at FROM user_profiles WHERE uid = $1`,
		uid,
	).Scan(&p.UID, &p.Email, &p.Role, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserProfile{}, ErrNotFound
	}
	if err != nil {
		return models.UserProfile{}, err
	}
	return p, nil
}

// Ensure creates a viewer profile on first login if none exists, then
// returns the current profile. An existing profile (any role) is left
// untouched.
func (r *ProfileRepo) Ensure(ctx context.Context, uid, email string) (models.UserProfile, error) {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO user_profiles (uid, email, role) VALUES ($1, $2, $3)
		 ON CONFLICT (uid) DO NOTHING`,
		uid, email, models.RoleViewer,
	)
	if err != nil {
		return models.UserProfile{}, err
	}
	return r.Get(ctx, uid)
}

// Role resolves the effective role for uid: the profile's role field, or
// viewer when no profile exists (fail-safe default).
func (r *ProfileRepo) Role(ctx context.Context, uid string) (string, error) {
	p, err := r.Get(ctx, uid)
	if errors.Is(err, ErrNotFound) {
		return models.RoleViewer, nil
	}
	if err != nil {
		return "", err
	}
	return p.Role, nil
}
