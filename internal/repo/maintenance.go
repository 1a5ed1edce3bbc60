package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/EduardoVisconti/AssetOps/internal/listing"
	"github.com/EduardoVisconti/AssetOps/internal/models"
)

// AddMaintenance records a service entry and rolls the parent's service
// dates forward. The parent's interval is read before the batch (a
// documented race under concurrent writers); the maintenance row, the
// parent update, and the maintenance.added event then land in one
// transaction.
func (r *EquipmentRepo) AddMaintenance(ctx context.Context, equipmentID string, in models.MaintenanceInput, actor models.Actor) (models.MaintenanceRecord, error) {
	var interval int
	err := r.DB.QueryRowContext(ctx,
		`SELECT service_interval_days FROM equipments WHERE id = $1`, equipmentID,
	).Scan(&interval)
	if errors.Is(err, sql.ErrNoRows) {
		return models.MaintenanceRecord{}, ErrNotFound
	}
	if err != nil {
		return models.MaintenanceRecord{}, err
	}

	next := listing.NextServiceDateString(in.Date, interval)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.MaintenanceRecord{}, err
	}
	defer tx.Rollback()

	rec := models.MaintenanceRecord{
		ID:             r.newID(),
		EquipmentID:    equipmentID,
		Date:           in.Date,
		Type:           in.Type,
		Notes:          in.Notes,
		CreatedBy:      actor.UID,
		CreatedByEmail: actor.Email,
	}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO maintenance_records (id, equipment_id, date, type, notes, created_by, created_by_email)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`,
		rec.ID, rec.EquipmentID, rec.Date, rec.Type, rec.Notes, rec.CreatedBy, rec.CreatedByEmail,
	).Scan(&rec.CreatedAt)
	if err != nil {
		return models.MaintenanceRecord{}, err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE equipments
		 SET last_service_date = $1, next_service_date = $2,
		     updated_by = $3, updated_by_email = $4, updated_at = NOW()
		 WHERE id = $5`,
		in.Date, next, actor.UID, actor.Email, equipmentID,
	)
	if err != nil {
		return models.MaintenanceRecord{}, err
	}

	err = r.appendEvent(ctx, tx, equipmentID, models.EventMaintenanceAdded,
		"Maintenance recorded",
		models.MaintenanceAddedMeta{
			MaintenanceID:   rec.ID,
			Date:            in.Date,
			MaintenanceType: in.Type,
			IntervalDays:    interval,
			NextServiceDate: next,
		},
		actor)
	if err != nil {
		return models.MaintenanceRecord{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.MaintenanceRecord{}, err
	}
	return rec, nil
}

// ListMaintenance returns an equipment's maintenance history, service date
// descending.
func (r *EquipmentRepo) ListMaintenance(ctx context.Context, equipmentID string) ([]models.MaintenanceRecord, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, equipment_id, date, type, notes, created_by, created_by_email, created_at
		 FROM maintenance_records
		 WHERE equipment_id = $1
		 ORDER BY date DESC`,
		equipmentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.MaintenanceRecord
	for rows.Next() {
		var m models.MaintenanceRecord
		if err := rows.Scan(&m.ID, &m.EquipmentID, &m.Date, &m.Type, &m.Notes, &m.CreatedBy, &m.CreatedByEmail, &m.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, m)
	}
	return records, rows.Err()
}
