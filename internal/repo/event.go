package repo

import (
	"context"
	"database/sql"

	"github.com/EduardoVisconti/AssetOps/internal/models"
)

// DefaultEventLimit caps event listings when the caller does not ask for a
// specific count.
const DefaultEventLimit = 25

// appendEvent writes one audit event row inside the caller's transaction.
// Events are append-only; nothing in the repository ever updates or
// deletes them.
func (r *EquipmentRepo) appendEvent(ctx context.Context, tx *sql.Tx, equipmentID, eventType, message string, meta any, actor models.Actor) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO equipment_events (id, equipment_id, type, message, metadata, actor_uid, actor_email)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		r.newID(), equipmentID, eventType, message, []byte(models.MarshalMeta(meta)), actor.UID, actor.Email,
	)
	return err
}

// ListEvents returns the newest audit events for an equipment record,
// creation time descending. max <= 0 uses DefaultEventLimit.
func (r *EquipmentRepo) ListEvents(ctx context.Context, equipmentID string, max int) ([]models.EquipmentEvent, error) {
	if max <= 0 {
		max = DefaultEventLimit
	}

	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, equipment_id, type, message, COALESCE(metadata, 'null'), actor_uid, actor_email, created_at
		 FROM equipment_events
		 WHERE equipment_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		equipmentID, max,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.EquipmentEvent
	for rows.Next() {
		var ev models.EquipmentEvent
		var meta []byte
		if err := rows.Scan(&ev.ID, &ev.EquipmentID, &ev.Type, &ev.Message, &meta, &ev.ActorUID, &ev.ActorEmail, &ev.CreatedAt); err != nil {
			return nil, err
		}
		if string(meta) != "null" {
			ev.Metadata = meta
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}
