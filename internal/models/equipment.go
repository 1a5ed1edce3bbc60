package models

import (
	"strings"
	"time"
)

// Equipment status values.
const (
	StatusActive      = "active"
	StatusInactive    = "inactive"
	StatusMaintenance = "maintenance"
)

// DefaultServiceIntervalDays is used when a record carries no interval.
const DefaultServiceIntervalDays = 180

// DateLayout is the calendar-day format used for all equipment date fields.
const DateLayout = "2006-01-02"

// Equipment is one tracked asset. Date fields are yyyy-MM-dd strings; an
// unparsable or empty string counts as absent. Records are never physically
// deleted; a non-nil ArchivedAt is the sole archived predicate.
type Equipment struct {
	ID string `json:"id"`

	Name                   string `json:"name"`
	SerialNumber           string `json:"serial_number"`
	SerialNumberNormalized string `json:"-"`

	Status string `json:"status"`

	PurchaseDate    string `json:"purchase_date"`
	LastServiceDate string `json:"last_service_date"`
	NextServiceDate string `json:"next_service_date,omitempty"`

	ServiceIntervalDays int `json:"service_interval_days"`

	Owner    string `json:"owner,omitempty"`
	Location string `json:"location,omitempty"`

	CreatedBy      string    `json:"created_by"`
	CreatedByEmail string    `json:"created_by_email,omitempty"`
	CreatedAt      time.Time `json:"created_at"`

	UpdatedBy      string    `json:"updated_by"`
	UpdatedByEmail string    `json:"updated_by_email,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`

	ArchivedAt      *time.Time `json:"archived_at,omitempty"`
	ArchivedBy      string     `json:"archived_by,omitempty"`
	ArchivedByEmail string     `json:"archived_by_email,omitempty"`
}

// IsArchived reports whether the record is archived.
func (e Equipment) IsArchived() bool {
	return e.ArchivedAt != nil
}

// EquipmentInput is the caller-supplied portion of an equipment record.
type EquipmentInput struct {
	Name         string `json:"name"`
	SerialNumber string `json:"serial_number"`
	Status       string `json:"status"`

	PurchaseDate    string `json:"purchase_date"`
	LastServiceDate string `json:"last_service_date"`
	NextServiceDate string `json:"next_service_date,omitempty"`

	ServiceIntervalDays int `json:"service_interval_days,omitempty"`

	Owner    string `json:"owner,omitempty"`
	Location string `json:"location,omitempty"`
}

// Interval returns the service interval, falling back to the default.
func (in EquipmentInput) Interval() int {
	if in.ServiceIntervalDays > 0 {
		return in.ServiceIntervalDays
	}
	return DefaultServiceIntervalDays
}

// NormalizeSerial canonicalizes a serial number for the uniqueness check:
// trimmed and upper-cased.
func NormalizeSerial(serial string) string {
	return strings.ToUpper(strings.TrimSpace(serial))
}

// ValidStatus reports whether s is one of the three equipment statuses.
func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusInactive || s == StatusMaintenance
}

// Actor identifies who performed an operation. Comes from the verified
// token, never from the request body.
type Actor struct {
	UID   string `json:"uid"`
	Email string `json:"email,omitempty"`
}
