package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsvp-manager/core/errors"
	"rsvp-manager/modules/guest/entity"
)

func TestApplyBulkUpdateAddIsIdempotent(t *testing.T) {
	guests := []entity.Guest{
		{ID: "g1", InvitedEvents: entity.EventList{"wedding"}},
		{ID: "g2", InvitedEvents: entity.EventList{}},
	}

	patches, appErr := ApplyBulkUpdate(guests, []string{"g1", "g2"}, BulkActionAdd, []string{"wedding", "sangeet"}, nil)
	require.Nil(t, appErr)
	require.Len(t, patches, 2)

	// g1 already had wedding; it must not be duplicated
	assert.Equal(t, entity.EventList{"wedding", "sangeet"}, patches[0].InvitedEvents)
	assert.Equal(t, entity.EventList{"wedding", "sangeet"}, patches[1].InvitedEvents)
}

func TestApplyBulkUpdateRemovePrunesResponses(t *testing.T) {
	guests := []entity.Guest{
		{
			ID:               "g1",
			InvitedEvents:    entity.EventList{"sangeet", "wedding"},
			EventGuests:      entity.CountMap{"sangeet": 3, "wedding": 2},
			RSVPStatus:       entity.ResponseMap{"sangeet": entity.ResponseAccepted, "wedding": entity.ResponseAccepted},
			AdditionalGuests: entity.CountMap{"sangeet": 2, "wedding": 1},
		},
	}

	patches, appErr := ApplyBulkUpdate(guests, []string{"g1"}, BulkActionRemove, []string{"sangeet"}, nil)
	require.Nil(t, appErr)
	require.Len(t, patches, 1)

	assert.Equal(t, entity.EventList{"wedding"}, patches[0].InvitedEvents)
	assert.Equal(t, entity.CountMap{"wedding": 2}, patches[0].EventGuests)
	assert.Equal(t, entity.ResponseMap{"wedding": entity.ResponseAccepted}, patches[0].RSVPStatus)
	assert.Equal(t, entity.CountMap{"wedding": 1}, patches[0].AdditionalGuests)
}

func TestApplyBulkUpdateReplaceOverwritesEvents(t *testing.T) {
	guests := []entity.Guest{
		{
			ID:            "g1",
			InvitedEvents: entity.EventList{"sangeet", "wedding"},
			RSVPStatus:    entity.ResponseMap{"wedding": entity.ResponseAccepted},
		},
	}

	patches, appErr := ApplyBulkUpdate(guests, []string{"g1"}, BulkActionReplace, []string{"mehndi"}, nil)
	require.Nil(t, appErr)
	require.Len(t, patches, 1)

	assert.Equal(t, entity.EventList{"mehndi"}, patches[0].InvitedEvents)
	// the old wedding response does not survive the replace
	assert.Empty(t, patches[0].RSVPStatus)
}

func TestApplyBulkUpdateSideOverwrite(t *testing.T) {
	guests := []entity.Guest{
		{ID: "g1", Side: entity.SideGroom, InvitedEvents: entity.EventList{"wedding"}},
		{ID: "g2", Side: entity.SideBride, InvitedEvents: entity.EventList{"wedding"}},
	}

	side := entity.SideBride
	patches, appErr := ApplyBulkUpdate(guests, []string{"g1"}, BulkActionAdd, nil, &side)
	require.Nil(t, appErr)
	require.Len(t, patches, 1)

	assert.Equal(t, "g1", patches[0].ID)
	require.NotNil(t, patches[0].Side)
	assert.Equal(t, entity.SideBride, *patches[0].Side)
}

func TestApplyBulkUpdateSkipsUnselectedGuests(t *testing.T) {
	guests := []entity.Guest{
		{ID: "g1", InvitedEvents: entity.EventList{"wedding"}},
		{ID: "g2", InvitedEvents: entity.EventList{"wedding"}},
	}

	patches, appErr := ApplyBulkUpdate(guests, []string{"g2"}, BulkActionRemove, []string{"wedding"}, nil)
	require.Nil(t, appErr)
	require.Len(t, patches, 1)
	assert.Equal(t, "g2", patches[0].ID)
	assert.Equal(t, entity.EventList{}, patches[0].InvitedEvents)
}

func TestApplyBulkUpdateValidation(t *testing.T) {
	guests := []entity.Guest{{ID: "g1"}}

	_, appErr := ApplyBulkUpdate(guests, nil, BulkActionAdd, []string{"wedding"}, nil)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)

	_, appErr = ApplyBulkUpdate(guests, []string{"g1"}, BulkAction("merge"), []string{"wedding"}, nil)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)

	badSide := entity.Side("neutral")
	_, appErr = ApplyBulkUpdate(guests, []string{"g1"}, BulkActionAdd, nil, &badSide)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}
