package service

import (
	"strings"

	"rsvp-manager/modules/guest/entity"
)

// FilterConfig is one dashboard view: every set predicate must pass (logical
// AND). Zero values disable their predicate.
type FilterConfig struct {
	SearchText string
	Side       *entity.Side
	Events     []string
	Status     *entity.Status
	Tab        string // a Status value or TabAll; empty behaves like TabAll
}

// FilterGuests projects the in-memory guest collection onto the visible
// subset for a view. The result preserves input order and the input slice is
// never mutated; callers re-run it on every snapshot or filter change.
func FilterGuests(guests []entity.Guest, cfg FilterConfig) []entity.Guest {
	search := strings.ToLower(strings.TrimSpace(cfg.SearchText))

	var out []entity.Guest
	for _, g := range guests {
		if !matchesSearch(&g, search) {
			continue
		}
		if cfg.Side != nil && g.Side != *cfg.Side {
			continue
		}
		if !matchesEvents(&g, cfg.Events) {
			continue
		}

		if cfg.Status != nil || (cfg.Tab != "" && cfg.Tab != entity.TabAll) {
			status := g.AggregateStatus()
			if cfg.Status != nil && status != *cfg.Status {
				continue
			}
			// Tab and status dropdown stack: both constraints apply.
			if cfg.Tab != "" && cfg.Tab != entity.TabAll && string(status) != cfg.Tab {
				continue
			}
		}

		out = append(out, g)
	}
	return out
}

func matchesSearch(g *entity.Guest, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(g.Name), search) ||
		strings.Contains(strings.ToLower(g.Phone), search) ||
		strings.Contains(strings.ToLower(g.Email), search)
}

// matchesEvents passes when the guest's invited events intersect the filter
// set; an empty filter set disables the predicate.
func matchesEvents(g *entity.Guest, events []string) bool {
	if len(events) == 0 {
		return true
	}
	for _, ev := range events {
		if g.InvitedEvents.Contains(ev) {
			return true
		}
	}
	return false
}

// CountByStatus tallies aggregate statuses across the whole collection for
// the dashboard summary cards. Counts ignore the active filters on purpose.
func CountByStatus(guests []entity.Guest) map[entity.Status]int {
	counts := map[entity.Status]int{
		entity.StatusPending:  0,
		entity.StatusAccepted: 0,
		entity.StatusRejected: 0,
		entity.StatusPartial:  0,
	}
	for i := range guests {
		counts[guests[i].AggregateStatus()]++
	}
	return counts
}
