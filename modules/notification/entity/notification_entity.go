package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"rsvp-manager/core/entity"

	"github.com/google/uuid"
)

const TypeRSVPUpdate = "rsvp_update"

// Notification is one admin-facing feed entry, produced when a guest submits
// or changes their RSVP. The feed is shared by all admins.
type Notification struct {
	ID      uuid.UUID `db:"id" json:"id"`
	GuestID *string   `db:"guest_id" json:"guest_id"`
	Title   string    `db:"title" json:"title"`
	Message string    `db:"message" json:"message"`
	Type    string    `db:"type" json:"type"`
	Data    JSONB     `db:"data" json:"data"`
	IsRead  bool      `db:"is_read" json:"is_read"`
	entity.BaseEntity
}

type JSONB map[string]interface{}

func (a JSONB) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *JSONB) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &a)
}

type PaginatedNotificationEntity = entity.Pagination[Notification]
