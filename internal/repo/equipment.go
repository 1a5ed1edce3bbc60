package repo

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/EduardoVisconti/AssetOps/internal/listing"
	"github.com/EduardoVisconti/AssetOps/internal/models"
)

// ========================
// REPOSITORY STRUCT
// ========================

// EquipmentRepo owns the equipments table and its two child tables
// (maintenance_records, equipment_events). Every mutation runs as one
// transaction that writes the primary row plus its audit event, so either
// all writes land or none do.
type EquipmentRepo struct {
	DB *sql.DB

	newID func() string
}

func NewEquipmentRepo(db *sql.DB) *EquipmentRepo {
	return &EquipmentRepo{DB: db, newID: uuid.NewString}
}

const equipmentCols = `id, name, serial_number, serial_number_normalized, status,
	purchase_date, last_service_date, next_service_date, service_interval_days,
	owner, location,
	created_by, created_by_email, created_at,
	updated_by, updated_by_email, updated_at,
	archived_at, archived_by, archived_by_email`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEquipment(row rowScanner) (models.Equipment, error) {
	var e models.Equipment
	err := row.Scan(
		&e.ID, &e.Name, &e.SerialNumber, &e.SerialNumberNormalized, &e.Status,
		&e.PurchaseDate, &e.LastServiceDate, &e.NextServiceDate, &e.ServiceIntervalDays,
		&e.Owner, &e.Location,
		&e.CreatedBy, &e.CreatedByEmail, &e.CreatedAt,
		&e.UpdatedBy, &e.UpdatedByEmail, &e.UpdatedAt,
		&e.ArchivedAt, &e.ArchivedBy, &e.ArchivedByEmail,
	)
	return e, err
}

// ========================
// LIST
// ========================

type ListOptions struct {
	IncludeArchived bool
	Sort            listing.SortMode
	// Limit caps the result count, applied only after the final ordering
	// is established. Zero means no cap.
	Limit int
}

// nativeOrder is the best ORDER BY the store can produce for a mode. The
// two derived modes get the updated_at ordering and are re-sorted in
// memory afterwards.
func nativeOrder(mode listing.SortMode) string {
	switch mode {
	case listing.SortNameAsc:
		return "ORDER BY name ASC"
	case listing.SortCreatedDesc:
		return "ORDER BY created_at DESC"
	}
	return "ORDER BY updated_at DESC"
}

// List fetches equipment ordered by the best-available native key, falls
// back to an unordered full fetch if the ordered query fails, then
// re-sorts in memory when the mode needs a derived key. The archive filter
// runs post-query; the cap runs last.
func (r *EquipmentRepo) List(ctx context.Context, opts ListOptions) ([]models.Equipment, error) {
	mode := listing.ParseSortMode(string(opts.Sort))

	ordered := true
	rows, err := r.DB.QueryContext(ctx, "SELECT "+equipmentCols+" FROM equipments "+nativeOrder(mode))
	if err != nil {
		ordered = false
		rows, err = r.DB.QueryContext(ctx, "SELECT "+equipmentCols+" FROM equipments")
		if err != nil {
			return nil, err
		}
	}
	defer rows.Close()

	var items []models.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !ordered || listing.NeedsMemorySort(mode) {
		items = listing.Sort(items, mode)
	}

	if !opts.IncludeArchived {
		items = listing.ExcludeArchived(items)
	}

	if opts.Limit > 0 && len(items) > opts.Limit {
		items = items[:opts.Limit]
	}
	return items, nil
}

// ========================
// GET BY ID
// ========================

func (r *EquipmentRepo) GetByID(ctx context.Context, id string) (models.Equipment, error) {
	e, err := scanEquipment(r.DB.QueryRowContext(ctx,
		"SELECT "+equipmentCols+" FROM equipments WHERE id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Equipment{}, ErrNotFound
	}
	return e, err
}

// ========================
// CREATE
// ========================

// Create inserts a new equipment record and its equipment.created event in
// one transaction. The serial uniqueness rule is check-then-write: the
// read runs inside the transaction but is not serialized against
// concurrent creates, a known race accepted for this system's
// single-writer usage pattern.
func (r *EquipmentRepo) Create(ctx context.Context, in models.EquipmentInput, actor models.Actor) (models.Equipment, error) {
	norm := models.NormalizeSerial(in.SerialNumber)

	next := strings.TrimSpace(in.NextServiceDate)
	if next == "" {
		next = listing.NextServiceDateString(in.LastServiceDate, in.Interval())
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Equipment{}, err
	}
	defer tx.Rollback()

	var taken bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM equipments WHERE serial_number_normalized = $1 AND archived_at IS NULL)`,
		norm,
	).Scan(&taken)
	if err != nil {
		return models.Equipment{}, err
	}
	if taken {
		return models.Equipment{}, ErrSerialExists
	}

	e := models.Equipment{
		ID:                     r.newID(),
		Name:                   in.Name,
		SerialNumber:           in.SerialNumber,
		SerialNumberNormalized: norm,
		Status:                 in.Status,
		PurchaseDate:           in.PurchaseDate,
		LastServiceDate:        in.LastServiceDate,
		NextServiceDate:        next,
		ServiceIntervalDays:    in.Interval(),
		Owner:                  in.Owner,
		Location:               in.Location,
		CreatedBy:              actor.UID,
		CreatedByEmail:         actor.Email,
		UpdatedBy:              actor.UID,
		UpdatedByEmail:         actor.Email,
	}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO equipments
			(id, name, serial_number, serial_number_normalized, status,
			 purchase_date, last_service_date, next_service_date, service_interval_days,
			 owner, location,
			 created_by, created_by_email, updated_by, updated_by_email)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		 RETURNING created_at, updated_at`,
		e.ID, e.Name, e.SerialNumber, e.SerialNumberNormalized, e.Status,
		e.PurchaseDate, e.LastServiceDate, e.NextServiceDate, e.ServiceIntervalDays,
		e.Owner, e.Location,
		e.CreatedBy, e.CreatedByEmail, e.UpdatedBy, e.UpdatedByEmail,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return models.Equipment{}, err
	}

	err = r.appendEvent(ctx, tx, e.ID, models.EventEquipmentCreated,
		"Equipment created",
		models.CreatedMeta{SerialNumber: e.SerialNumber, Status: e.Status},
		actor)
	if err != nil {
		return models.Equipment{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Equipment{}, err
	}
	return e, nil
}

// ========================
// UPDATE
// ========================

// Update rewrites the caller-supplied fields and recomputes the derived
// next service date the same way Create does. It deliberately does not
// re-check serial uniqueness.
func (r *EquipmentRepo) Update(ctx context.Context, id string, in models.EquipmentInput, actor models.Actor) (models.Equipment, error) {
	next := strings.TrimSpace(in.NextServiceDate)
	if next == "" {
		next = listing.NextServiceDateString(in.LastServiceDate, in.Interval())
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Equipment{}, err
	}
	defer tx.Rollback()

	e, err := scanEquipment(tx.QueryRowContext(ctx,
		`UPDATE equipments
		 SET name = $1, serial_number = $2, serial_number_normalized = $3, status = $4,
		     purchase_date = $5, last_service_date = $6, next_service_date = $7,
		     service_interval_days = $8, owner = $9, location = $10,
		     updated_by = $11, updated_by_email = $12, updated_at = NOW()
		 WHERE id = $13
		 RETURNING `+equipmentCols,
		in.Name, in.SerialNumber, models.NormalizeSerial(in.SerialNumber), in.Status,
		in.PurchaseDate, in.LastServiceDate, next,
		in.Interval(), in.Owner, in.Location,
		actor.UID, actor.Email, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Equipment{}, ErrNotFound
	}
	if err != nil {
		return models.Equipment{}, err
	}

	err = r.appendEvent(ctx, tx, e.ID, models.EventEquipmentUpdated,
		"Equipment updated",
		models.UpdatedMeta{Status: e.Status, NextServiceDate: e.NextServiceDate},
		actor)
	if err != nil {
		return models.Equipment{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Equipment{}, err
	}
	return e, nil
}

// ========================
// ARCHIVE / UNARCHIVE
// ========================

// Archive sets the archive triple and appends the audit event atomically.
// Child maintenance records and events are not touched; they stay
// queryable under the parent.
func (r *EquipmentRepo) Archive(ctx context.Context, id string, actor models.Actor) (models.Equipment, error) {
	return r.setArchived(ctx, id, actor, true)
}

// Unarchive clears the archive triple. The record's serial may now
// conflict with one created while it was archived; that is accepted.
func (r *EquipmentRepo) Unarchive(ctx context.Context, id string, actor models.Actor) (models.Equipment, error) {
	return r.setArchived(ctx, id, actor, false)
}

func (r *EquipmentRepo) setArchived(ctx context.Context, id string, actor models.Actor, archived bool) (models.Equipment, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Equipment{}, err
	}
	defer tx.Rollback()

	query := `UPDATE equipments
		 SET archived_at = NOW(), archived_by = $1, archived_by_email = $2,
		     updated_by = $1, updated_by_email = $2, updated_at = NOW()
		 WHERE id = $3
		 RETURNING ` + equipmentCols
	eventType := models.EventEquipmentArchived
	message := "Equipment archived"
	if !archived {
		query = `UPDATE equipments
		 SET archived_at = NULL, archived_by = '', archived_by_email = '',
		     updated_by = $1, updated_by_email = $2, updated_at = NOW()
		 WHERE id = $3
		 RETURNING ` + equipmentCols
		eventType = models.EventEquipmentUnarchived
		message = "Equipment restored"
	}

	e, err := scanEquipment(tx.QueryRowContext(ctx, query, actor.UID, actor.Email, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Equipment{}, ErrNotFound
	}
	if err != nil {
		return models.Equipment{}, err
	}

	err = r.appendEvent(ctx, tx, e.ID, eventType, message,
		models.ArchiveMeta{SerialNumber: e.SerialNumber}, actor)
	if err != nil {
		return models.Equipment{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Equipment{}, err
	}
	return e, nil
}
