package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"rsvp-manager/modules/guest/entity"
)

var exportEvents = []string{"sangeet", "wedding"}

func TestExportHeader(t *testing.T) {
	header := ExportHeader(exportEvents)

	assert.Equal(t, []string{
		"Name", "Phone", "Email", "Side", "Invited Events", "Unique Link",
		"sangeet_status", "sangeet_additional", "sangeet_allowed",
		"wedding_status", "wedding_additional", "wedding_allowed",
		"Dietary Preferences", "Special Requirements", "Last Updated",
	}, header)
}

func TestFlattenGuest(t *testing.T) {
	lastUpdated := time.Date(2026, 2, 14, 10, 30, 0, 0, time.UTC)
	g := &entity.Guest{
		ID:                 "abc12345",
		Name:               "Asha Patel",
		Phone:              "+911234567890",
		Email:              "asha@example.com",
		Side:               entity.SideBride,
		InvitedEvents:      entity.EventList{"wedding"},
		EventGuests:        entity.CountMap{"wedding": 3},
		RSVPStatus:         entity.ResponseMap{"wedding": entity.ResponseAccepted},
		AdditionalGuests:   entity.CountMap{"wedding": 2},
		DietaryPreferences: "vegetarian",
		LastUpdated:        lastUpdated,
	}

	row := FlattenGuest(g, exportEvents, "https://wedding.example.com/rsvp")
	require.Len(t, row, len(ExportHeader(exportEvents)))

	assert.Equal(t, "Asha Patel", row[0])
	assert.Equal(t, "bride", row[3])
	assert.Equal(t, "wedding", row[4])
	assert.Equal(t, "https://wedding.example.com/rsvp/abc12345", row[5])
	// sangeet is in the catalog but not invited: pending with default headcount
	assert.Equal(t, []string{"pending", "0", "1"}, row[6:9])
	assert.Equal(t, []string{"accepted", "2", "3"}, row[9:12])
	assert.Equal(t, "vegetarian", row[12])
	assert.Equal(t, lastUpdated.Format(time.RFC3339), row[14])
}

func TestFlattenGuestZeroLastUpdated(t *testing.T) {
	g := &entity.Guest{Name: "Rohan"}
	row := FlattenGuest(g, exportEvents, "https://example.com")
	assert.Equal(t, "", row[len(row)-1])
}

func TestBuildWorkbook(t *testing.T) {
	guests := []entity.Guest{
		{
			ID:            "g1",
			Name:          "Asha Patel",
			InvitedEvents: entity.EventList{"wedding"},
			RSVPStatus:    entity.ResponseMap{"wedding": entity.ResponseAccepted},
		},
		{ID: "g2", Name: "Rohan Mehta"},
	}

	body, err := BuildWorkbook(guests, exportEvents, "https://example.com")
	require.NoError(t, err)
	require.NotEmpty(t, body)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Guests")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Name", rows[0][0])
	assert.Equal(t, "Asha Patel", rows[1][0])
	assert.Equal(t, "Rohan Mehta", rows[2][0])
}
