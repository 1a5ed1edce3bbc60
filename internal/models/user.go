package models

import "time"

// RoleViewer is the fail-safe default: a user with no profile document is a viewer.
const RoleViewer = "viewer"
const RoleAdmin = "admin"

// UserProfile is the per-identity role document. Role elevation happens
// out of band; the application only ever creates viewer profiles.
type UserProfile struct {
	UID       string    `json:"uid"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAdmin reports whether the profile grants write access.
func (p UserProfile) IsAdmin() bool {
	return p.Role == RoleAdmin
}
