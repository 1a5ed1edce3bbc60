package models

import (
	"encoding/json"
	"time"
)

// Equipment event types. The log is append-only: events are never mutated
// or deleted, and archiving the parent does not touch them.
const (
	EventEquipmentCreated    = "equipment.created"
	EventEquipmentUpdated    = "equipment.updated"
	EventEquipmentArchived   = "equipment.archived"
	EventEquipmentUnarchived = "equipment.unarchived"
	EventMaintenanceAdded    = "maintenance.added"
)

// EquipmentEvent is one audit log entry under an equipment record.
// Metadata is a per-type fixed schema (see the *Meta structs), serialized
// as JSON so the log stays machine-readable.
type EquipmentEvent struct {
	ID          string `json:"id"`
	EquipmentID string `json:"equipment_id"`

	Type     string          `json:"type"`
	Message  string          `json:"message"`
	Metadata json.RawMessage `json:"metadata,omitempty"`

	ActorUID   string    `json:"actor_uid"`
	ActorEmail string    `json:"actor_email,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreatedMeta is the metadata for equipment.created events.
type CreatedMeta struct {
	SerialNumber string `json:"serial_number"`
	Status       string `json:"status"`
}

// UpdatedMeta is the metadata for equipment.updated events.
type UpdatedMeta struct {
	Status          string `json:"status"`
	NextServiceDate string `json:"next_service_date,omitempty"`
}

// ArchiveMeta is the metadata for equipment.archived and
// equipment.unarchived events.
type ArchiveMeta struct {
	SerialNumber string `json:"serial_number,omitempty"`
}

// MaintenanceAddedMeta captures the inputs used when a maintenance record
// moved the parent's service dates.
type MaintenanceAddedMeta struct {
	MaintenanceID   string `json:"maintenance_id"`
	Date            string `json:"date"`
	MaintenanceType string `json:"maintenance_type"`
	IntervalDays    int    `json:"interval_days"`
	NextServiceDate string `json:"next_service_date"`
}

// MarshalMeta serializes a typed metadata value for storage. A nil value
// yields nil metadata.
func MarshalMeta(v any) json.RawMessage {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}
