package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateStatus(t *testing.T) {
	cases := []struct {
		name    string
		invited EventList
		rsvp    ResponseMap
		want    Status
	}{
		{
			name:    "no invited events is pending",
			invited: EventList{},
			rsvp:    ResponseMap{},
			want:    StatusPending,
		},
		{
			name:    "no responses is pending",
			invited: EventList{"sangeet", "wedding"},
			rsvp:    ResponseMap{},
			want:    StatusPending,
		},
		{
			name:    "all accepted",
			invited: EventList{"sangeet", "wedding"},
			rsvp:    ResponseMap{"sangeet": ResponseAccepted, "wedding": ResponseAccepted},
			want:    StatusAccepted,
		},
		{
			name:    "all rejected",
			invited: EventList{"sangeet", "wedding"},
			rsvp:    ResponseMap{"sangeet": ResponseRejected, "wedding": ResponseRejected},
			want:    StatusRejected,
		},
		{
			name:    "mixed answers is partial",
			invited: EventList{"sangeet", "wedding"},
			rsvp:    ResponseMap{"sangeet": ResponseAccepted, "wedding": ResponseRejected},
			want:    StatusPartial,
		},
		{
			name:    "subset answered is partial",
			invited: EventList{"sangeet", "wedding", "reception"},
			rsvp:    ResponseMap{"sangeet": ResponseAccepted},
			want:    StatusPartial,
		},
		{
			name:    "stray response for uninvited event is ignored",
			invited: EventList{"wedding"},
			rsvp:    ResponseMap{"sangeet": ResponseRejected, "wedding": ResponseAccepted},
			want:    StatusAccepted,
		},
		{
			name:    "only stray responses is pending",
			invited: EventList{"wedding"},
			rsvp:    ResponseMap{"sangeet": ResponseAccepted},
			want:    StatusPending,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AggregateStatus(tc.invited, tc.rsvp))
		})
	}
}

func TestAllowedHeadcount(t *testing.T) {
	g := &Guest{
		InvitedEvents: EventList{"wedding", "sangeet", "haldi"},
		EventGuests:   CountMap{"wedding": 4, "sangeet": 0},
	}

	assert.Equal(t, 4, g.AllowedHeadcount("wedding"))
	// zero and missing entries both fall back to a single seat
	assert.Equal(t, 1, g.AllowedHeadcount("sangeet"))
	assert.Equal(t, 1, g.AllowedHeadcount("haldi"))
}

func TestEventListContains(t *testing.T) {
	events := EventList{"sangeet", "wedding"}

	assert.True(t, events.Contains("wedding"))
	assert.False(t, events.Contains("mehndi"))
	assert.False(t, EventList{}.Contains("wedding"))
}
