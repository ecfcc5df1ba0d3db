package entity

import (
	"github.com/google/uuid"

	coreEntity "rsvp-manager/core/entity"
)

// AdminUser is an administrator account for the management dashboard. Guests
// never authenticate; their personal token link is the only thing they hold.
type AdminUser struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	Password     string    `db:"password" json:"-"`
	Name         string    `db:"name" json:"name"`
	GoogleLinked bool      `db:"google_linked" json:"google_linked"`
	coreEntity.BaseEntity
}
