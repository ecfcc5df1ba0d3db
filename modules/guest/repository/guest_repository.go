package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rsvp-manager/core/database"
	"rsvp-manager/core/logger"
	"rsvp-manager/modules/guest/entity"

	"github.com/lib/pq"
)

const guestColumns = `id, name, phone, email, side, invited_events, event_guests, rsvp_status,
	additional_guests, dietary_preferences, special_requirements, invitation_sent,
	last_updated, created_at, updated_at`

type GuestRepository struct {
	db database.IDatabase
}

func NewGuestRepository(db database.IDatabase) *GuestRepository {
	return &GuestRepository{db: db}
}

// Create inserts a guest under its pre-assigned token. Token collisions come
// back as a unique violation; callers retry with a new token.
func (r *GuestRepository) Create(ctx context.Context, guest *entity.Guest) error {
	query := `
		INSERT INTO guests (id, name, phone, email, side, invited_events, event_guests,
			rsvp_status, additional_guests, dietary_preferences, special_requirements,
			invitation_sent, last_updated, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	now := time.Now()
	guest.LastUpdated = now
	guest.CreatedAt = now
	guest.UpdatedAt = now

	err := r.db.ExecContext(ctx, query,
		guest.ID,
		guest.Name,
		guest.Phone,
		guest.Email,
		guest.Side,
		guest.InvitedEvents,
		guest.EventGuests,
		guest.RSVPStatus,
		guest.AdditionalGuests,
		guest.DietaryPreferences,
		guest.SpecialRequirements,
		guest.InvitationSent,
		guest.LastUpdated,
		guest.CreatedAt,
		guest.UpdatedAt,
	)
	if err != nil && !IsUniqueViolation(err) {
		logger.Error("GuestRepository:Create:Error:", err)
	}
	return err
}

// List returns the full guest collection, oldest first. Filtering happens in
// memory at the service layer.
func (r *GuestRepository) List(ctx context.Context) ([]entity.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests ORDER BY created_at ASC, id ASC`
	var guests []entity.Guest
	if err := r.db.SelectContext(ctx, &guests, query); err != nil {
		logger.Error("GuestRepository:List:Error:", err)
		return nil, err
	}
	return guests, nil
}

func (r *GuestRepository) GetByID(ctx context.Context, id string) (*entity.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE id = $1`
	var guest entity.Guest
	if err := r.db.GetContext(ctx, &guest, query, id); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.Error("GuestRepository:GetByID:Error:", err)
		}
		return nil, err
	}
	return &guest, nil
}

// Update overwrites the full mutable state of a guest. Last write wins; there
// is no version check.
func (r *GuestRepository) Update(ctx context.Context, guest *entity.Guest) error {
	query := `
		UPDATE guests
		SET name = $1, phone = $2, email = $3, side = $4, invited_events = $5,
			event_guests = $6, rsvp_status = $7, additional_guests = $8,
			dietary_preferences = $9, special_requirements = $10, invitation_sent = $11,
			last_updated = $12, updated_at = $13
		WHERE id = $14
	`
	now := time.Now()
	guest.LastUpdated = now
	guest.UpdatedAt = now

	err := r.db.ExecContext(ctx, query,
		guest.Name,
		guest.Phone,
		guest.Email,
		guest.Side,
		guest.InvitedEvents,
		guest.EventGuests,
		guest.RSVPStatus,
		guest.AdditionalGuests,
		guest.DietaryPreferences,
		guest.SpecialRequirements,
		guest.InvitationSent,
		guest.LastUpdated,
		guest.UpdatedAt,
		guest.ID,
	)
	if err != nil {
		logger.Error("GuestRepository:Update:Error:", err)
	}
	return err
}

func (r *GuestRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.ExecContext(ctx, `DELETE FROM guests WHERE id = $1`, id); err != nil {
		logger.Error("GuestRepository:Delete:Error:", err)
		return err
	}
	return nil
}

// DeleteMany removes a batch of guests in one transaction.
func (r *GuestRepository) DeleteMany(ctx context.Context, ids []string) error {
	if err := r.db.ExecContext(ctx, `DELETE FROM guests WHERE id = ANY($1)`, pq.Array(ids)); err != nil {
		logger.Error("GuestRepository:DeleteMany:Error:", err)
		return err
	}
	return nil
}

// BulkPatch is the persisted slice of a computed bulk-update patch.
type BulkPatch struct {
	ID               string
	InvitedEvents    entity.EventList
	EventGuests      entity.CountMap
	RSVPStatus       entity.ResponseMap
	AdditionalGuests entity.CountMap
	Side             *entity.Side
}

// ApplyBulkPatches writes all patches in a single transaction so a bulk
// update is all-or-nothing.
func (r *GuestRepository) ApplyBulkPatches(ctx context.Context, patches []BulkPatch) error {
	tx, err := r.db.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("GuestRepository:ApplyBulkPatches:Begin:Error:", err)
		return err
	}
	defer tx.Rollback()

	query := `
		UPDATE guests
		SET invited_events = $1, event_guests = $2, rsvp_status = $3,
			additional_guests = $4, side = COALESCE($5, side),
			last_updated = $6, updated_at = $6
		WHERE id = $7
	`
	now := time.Now()
	for _, p := range patches {
		var side *string
		if p.Side != nil {
			s := string(*p.Side)
			side = &s
		}
		if _, err := tx.ExecContext(ctx, query,
			p.InvitedEvents,
			p.EventGuests,
			p.RSVPStatus,
			p.AdditionalGuests,
			side,
			now,
			p.ID,
		); err != nil {
			logger.Error("GuestRepository:ApplyBulkPatches:Exec:Error:", err, "guest_id", p.ID)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		logger.Error("GuestRepository:ApplyBulkPatches:Commit:Error:", err)
		return err
	}
	return nil
}

// IsUniqueViolation reports whether err is a Postgres duplicate-key error.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
