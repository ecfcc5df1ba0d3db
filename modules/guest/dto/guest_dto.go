package dto

import (
	"time"

	"rsvp-manager/modules/guest/entity"
)

type CreateGuestRequest struct {
	Name          string         `json:"name"`
	Phone         string         `json:"phone"`
	Email         string         `json:"email"`
	Side          string         `json:"side"`
	InvitedEvents []string       `json:"invited_events"`
	EventGuests   map[string]int `json:"event_guests"`
}

type UpdateGuestRequest struct {
	Name                *string        `json:"name"`
	Phone               *string        `json:"phone"`
	Email               *string        `json:"email"`
	Side                *string        `json:"side"`
	InvitedEvents       *[]string      `json:"invited_events"`
	EventGuests         map[string]int `json:"event_guests"`
	DietaryPreferences  *string        `json:"dietary_preferences"`
	SpecialRequirements *string        `json:"special_requirements"`
	InvitationSent      *bool          `json:"invitation_sent"`
}

type BulkUpdateRequest struct {
	GuestIDs []string `json:"guest_ids"`
	Action   string   `json:"action"` // add | remove | replace
	Events   []string `json:"events"`
	Side     *string  `json:"side"`
}

type BulkDeleteRequest struct {
	GuestIDs []string `json:"guest_ids"`
}

type GuestResponse struct {
	entity.Guest
	Status   entity.Status `json:"status"`
	RSVPLink string        `json:"rsvp_link"`
}

type StatusCounts struct {
	Pending  int `json:"pending"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
	Partial  int `json:"partial"`
}

type ListGuestsResponse struct {
	Guests []GuestResponse `json:"guests"`
	Total  int             `json:"total"`
	Counts StatusCounts    `json:"counts"`
}

type BulkUpdateResponse struct {
	Updated int `json:"updated"`
}

type BulkDeleteResponse struct {
	Deleted int `json:"deleted"`
}

// ImportRowError reports one rejected CSV row; the row number is 1-based and
// counts the header.
type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type ImportResponse struct {
	Imported int              `json:"imported"`
	Failed   []ImportRowError `json:"failed"`
}

type ExportResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
