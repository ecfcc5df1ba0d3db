package service

import (
	"fmt"

	"rsvp-manager/core/errors"
	"rsvp-manager/modules/guest/entity"
)

type BulkAction string

const (
	BulkActionAdd     BulkAction = "add"
	BulkActionRemove  BulkAction = "remove"
	BulkActionReplace BulkAction = "replace"
)

// GuestPatch is the computed per-guest outcome of a bulk update. Response and
// headcount maps are included because de-invited events are pruned in the
// same write.
type GuestPatch struct {
	ID               string
	InvitedEvents    entity.EventList
	EventGuests      entity.CountMap
	RSVPStatus       entity.ResponseMap
	AdditionalGuests entity.CountMap
	Side             *entity.Side
}

// ApplyBulkUpdate computes one patch per selected guest. add unions the event
// set (idempotent), remove subtracts it, replace overwrites it. A non-nil
// side overwrites the guest's side regardless of action. Guests outside the
// selection are untouched and absent from the result.
//
// Responses and headcounts for events no longer invited are pruned rather
// than left to be masked at read time.
func ApplyBulkUpdate(guests []entity.Guest, selectedIDs []string, action BulkAction, events []string, side *entity.Side) ([]GuestPatch, *errors.AppError) {
	if len(selectedIDs) == 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "no guests selected for bulk update", nil)
	}
	switch action {
	case BulkActionAdd, BulkActionRemove, BulkActionReplace:
	default:
		return nil, errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("unknown bulk action %q", action), nil)
	}
	if side != nil && !side.Valid() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("unknown side %q", *side), nil)
	}

	selected := make(map[string]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = true
	}

	var patches []GuestPatch
	for i := range guests {
		g := &guests[i]
		if !selected[g.ID] {
			continue
		}

		var updated entity.EventList
		switch action {
		case BulkActionAdd:
			updated = append(updated, g.InvitedEvents...)
			for _, ev := range events {
				if !updated.Contains(ev) {
					updated = append(updated, ev)
				}
			}
		case BulkActionRemove:
			drop := make(map[string]bool, len(events))
			for _, ev := range events {
				drop[ev] = true
			}
			for _, ev := range g.InvitedEvents {
				if !drop[ev] {
					updated = append(updated, ev)
				}
			}
		case BulkActionReplace:
			updated = append(updated, events...)
		}
		if updated == nil {
			updated = entity.EventList{}
		}

		patch := GuestPatch{
			ID:            g.ID,
			InvitedEvents: updated,
			Side:          side,
		}
		patch.EventGuests, patch.RSVPStatus, patch.AdditionalGuests = pruneToInvited(g, updated)
		patches = append(patches, patch)
	}

	return patches, nil
}

// pruneToInvited drops per-event entries for events outside the new invite
// set. Existing responses for still-invited events are untouched.
func pruneToInvited(g *entity.Guest, invited entity.EventList) (entity.CountMap, entity.ResponseMap, entity.CountMap) {
	eventGuests := entity.CountMap{}
	rsvpStatus := entity.ResponseMap{}
	additional := entity.CountMap{}
	for _, ev := range invited {
		if n, ok := g.EventGuests[ev]; ok {
			eventGuests[ev] = n
		}
		if r, ok := g.RSVPStatus[ev]; ok {
			rsvpStatus[ev] = r
		}
		if n, ok := g.AdditionalGuests[ev]; ok {
			additional[ev] = n
		}
	}
	return eventGuests, rsvpStatus, additional
}
