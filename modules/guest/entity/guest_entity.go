package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type Side string

const (
	SideBride Side = "bride"
	SideGroom Side = "groom"
)

func (s Side) Valid() bool {
	return s == SideBride || s == SideGroom
}

// Response is a guest's answer for a single invited event.
type Response string

const (
	ResponseAccepted Response = "accepted"
	ResponseRejected Response = "rejected"
)

// Status is the coarse aggregate derived from all per-event responses.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusPartial  Status = "partial"
)

// TabAll is the dashboard tab value that disables tab filtering.
const TabAll = "all"

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusPartial:
		return true
	}
	return false
}

// EventList is a set of event keys stored as a JSONB array. Order is
// preserved for display but has no meaning.
type EventList []string

func (e EventList) Value() (driver.Value, error) {
	if e == nil {
		e = EventList{}
	}
	return json.Marshal(e)
}

func (e *EventList) Scan(value any) error {
	return scanJSONB(value, e)
}

func (e EventList) Contains(event string) bool {
	for _, ev := range e {
		if ev == event {
			return true
		}
	}
	return false
}

// ResponseMap maps event key to the guest's response, stored as JSONB.
type ResponseMap map[string]Response

func (m ResponseMap) Value() (driver.Value, error) {
	if m == nil {
		m = ResponseMap{}
	}
	return json.Marshal(m)
}

func (m *ResponseMap) Scan(value any) error {
	return scanJSONB(value, m)
}

// CountMap maps event key to an integer (allowed headcount or extra guests).
type CountMap map[string]int

func (m CountMap) Value() (driver.Value, error) {
	if m == nil {
		m = CountMap{}
	}
	return json.Marshal(m)
}

func (m *CountMap) Scan(value any) error {
	return scanJSONB(value, m)
}

func scanJSONB(value any, dest any) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, dest)
}

// Guest is one invited person or household. The ID is the nanoid token that
// doubles as the public RSVP link path segment.
type Guest struct {
	ID                  string      `db:"id" json:"id"`
	Name                string      `db:"name" json:"name"`
	Phone               string      `db:"phone" json:"phone"`
	Email               string      `db:"email" json:"email"`
	Side                Side        `db:"side" json:"side"`
	InvitedEvents       EventList   `db:"invited_events" json:"invited_events"`
	EventGuests         CountMap    `db:"event_guests" json:"event_guests"`
	RSVPStatus          ResponseMap `db:"rsvp_status" json:"rsvp_status"`
	AdditionalGuests    CountMap    `db:"additional_guests" json:"additional_guests"`
	DietaryPreferences  string      `db:"dietary_preferences" json:"dietary_preferences"`
	SpecialRequirements string      `db:"special_requirements" json:"special_requirements"`
	InvitationSent      bool        `db:"invitation_sent" json:"invitation_sent"`
	LastUpdated         time.Time   `db:"last_updated" json:"last_updated"`
	CreatedAt           time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time   `db:"updated_at" json:"updated_at"`
}

// AggregateStatus reduces a per-event response map, scoped to the invited
// events, to one coarse status:
//
//   - pending: no invited event has a response (including an empty invite set)
//   - accepted/rejected: every invited event answered the same way
//   - partial: anything in between
//
// Responses recorded for events the guest is no longer invited to are
// ignored; such stray entries can exist in rows written before de-invite
// pruning was introduced.
func AggregateStatus(invitedEvents EventList, rsvpStatus ResponseMap) Status {
	if len(invitedEvents) == 0 {
		return StatusPending
	}

	answered, accepted, rejected := 0, 0, 0
	for _, event := range invitedEvents {
		resp, ok := rsvpStatus[event]
		if !ok {
			continue
		}
		answered++
		switch resp {
		case ResponseAccepted:
			accepted++
		case ResponseRejected:
			rejected++
		}
	}

	if answered == 0 {
		return StatusPending
	}
	if accepted == len(invitedEvents) {
		return StatusAccepted
	}
	if rejected == len(invitedEvents) {
		return StatusRejected
	}
	return StatusPartial
}

// AggregateStatus derives the guest's coarse RSVP status.
func (g *Guest) AggregateStatus() Status {
	return AggregateStatus(g.InvitedEvents, g.RSVPStatus)
}

// AllowedHeadcount returns the invited headcount for an event, defaulting to
// 1 when the event has no explicit entry.
func (g *Guest) AllowedHeadcount(event string) int {
	if n, ok := g.EventGuests[event]; ok && n >= 1 {
		return n
	}
	return 1
}
