package models

import "time"

// Maintenance types.
const (
	MaintenancePreventive = "preventive"
	MaintenanceCorrective = "corrective"
)

// MaintenanceRecord is one service entry under an equipment record.
type MaintenanceRecord struct {
	ID          string `json:"id"`
	EquipmentID string `json:"equipment_id"`

	Date  string `json:"date"` // yyyy-MM-dd
	Type  string `json:"type"` // preventive, corrective
	Notes string `json:"notes,omitempty"`

	CreatedBy      string    `json:"created_by"`
	CreatedByEmail string    `json:"created_by_email,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// MaintenanceInput is the caller-supplied portion of a maintenance record.
type MaintenanceInput struct {
	Date  string `json:"date"`
	Type  string `json:"type"`
	Notes string `json:"notes,omitempty"`
}

// ValidMaintenanceType reports whether t is preventive or corrective.
func ValidMaintenanceType(t string) bool {
	return t == MaintenancePreventive || t == MaintenanceCorrective
}
