package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rsvp-manager/modules/guest/entity"
)

func testGuests() []entity.Guest {
	return []entity.Guest{
		{
			ID:            "g1",
			Name:          "Asha Patel",
			Phone:         "+911234567890",
			Email:         "asha@example.com",
			Side:          entity.SideBride,
			InvitedEvents: entity.EventList{"sangeet", "wedding"},
			RSVPStatus:    entity.ResponseMap{"sangeet": entity.ResponseAccepted, "wedding": entity.ResponseAccepted},
		},
		{
			ID:            "g2",
			Name:          "Rohan Mehta",
			Phone:         "+919876543210",
			Side:          entity.SideGroom,
			InvitedEvents: entity.EventList{"wedding"},
		},
		{
			ID:            "g3",
			Name:          "Priya Shah",
			Phone:         "+918888888888",
			Side:          entity.SideBride,
			InvitedEvents: entity.EventList{"mehndi", "wedding"},
			RSVPStatus:    entity.ResponseMap{"mehndi": entity.ResponseRejected, "wedding": entity.ResponseRejected},
		},
	}
}

func guestIDs(guests []entity.Guest) []string {
	ids := make([]string, 0, len(guests))
	for _, g := range guests {
		ids = append(ids, g.ID)
	}
	return ids
}

func TestFilterGuestsDefaultConfigKeepsEveryoneInOrder(t *testing.T) {
	guests := testGuests()
	out := FilterGuests(guests, FilterConfig{})
	assert.Equal(t, []string{"g1", "g2", "g3"}, guestIDs(out))
}

func TestFilterGuestsBySearch(t *testing.T) {
	guests := testGuests()

	out := FilterGuests(guests, FilterConfig{SearchText: "rohan"})
	assert.Equal(t, []string{"g2"}, guestIDs(out))

	// phone and email are searchable too
	out = FilterGuests(guests, FilterConfig{SearchText: "8888"})
	assert.Equal(t, []string{"g3"}, guestIDs(out))

	out = FilterGuests(guests, FilterConfig{SearchText: "ASHA@example"})
	assert.Equal(t, []string{"g1"}, guestIDs(out))
}

func TestFilterGuestsBySide(t *testing.T) {
	guests := testGuests()
	side := entity.SideBride
	out := FilterGuests(guests, FilterConfig{Side: &side})
	assert.Equal(t, []string{"g1", "g3"}, guestIDs(out))
}

func TestFilterGuestsByEventsIntersection(t *testing.T) {
	guests := testGuests()

	out := FilterGuests(guests, FilterConfig{Events: []string{"sangeet", "mehndi"}})
	assert.Equal(t, []string{"g1", "g3"}, guestIDs(out))

	out = FilterGuests(guests, FilterConfig{Events: []string{"haldi"}})
	assert.Empty(t, out)
}

func TestFilterGuestsByStatusAndTabStack(t *testing.T) {
	guests := testGuests()

	status := entity.StatusAccepted
	out := FilterGuests(guests, FilterConfig{Status: &status})
	assert.Equal(t, []string{"g1"}, guestIDs(out))

	out = FilterGuests(guests, FilterConfig{Tab: "rejected"})
	assert.Equal(t, []string{"g3"}, guestIDs(out))

	// contradictory tab and status yields nothing
	out = FilterGuests(guests, FilterConfig{Status: &status, Tab: "rejected"})
	assert.Empty(t, out)

	out = FilterGuests(guests, FilterConfig{Tab: entity.TabAll})
	assert.Len(t, out, 3)
}

func TestFilterGuestsPredicatesCombineWithAnd(t *testing.T) {
	guests := testGuests()
	side := entity.SideBride
	out := FilterGuests(guests, FilterConfig{
		SearchText: "priya",
		Side:       &side,
		Events:     []string{"wedding"},
		Tab:        "rejected",
	})
	assert.Equal(t, []string{"g3"}, guestIDs(out))
}

func TestCountByStatusIgnoresFilters(t *testing.T) {
	counts := CountByStatus(testGuests())

	assert.Equal(t, 1, counts[entity.StatusAccepted])
	assert.Equal(t, 1, counts[entity.StatusRejected])
	assert.Equal(t, 1, counts[entity.StatusPending])
	assert.Equal(t, 0, counts[entity.StatusPartial])
}
