package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsvp-manager/core/errors"
	guestEntity "rsvp-manager/modules/guest/entity"
	"rsvp-manager/modules/rsvp/dto"
)

func submissionGuest() *guestEntity.Guest {
	return &guestEntity.Guest{
		ID:            "abc12345",
		Name:          "Asha Patel",
		InvitedEvents: guestEntity.EventList{"sangeet", "wedding"},
		EventGuests:   guestEntity.CountMap{"wedding": 4},
	}
}

func TestValidateSubmissionAcceptsCompleteResponse(t *testing.T) {
	guest := submissionGuest()
	req := &dto.SubmitRSVPRequest{
		Responses: map[string]string{
			"sangeet": "rejected",
			"wedding": "accepted",
		},
		AdditionalGuests: map[string]int{"wedding": 3},
	}

	rsvpStatus, additional, appErr := ValidateSubmission(guest, req)
	require.Nil(t, appErr)

	assert.Equal(t, guestEntity.ResponseMap{
		"sangeet": guestEntity.ResponseRejected,
		"wedding": guestEntity.ResponseAccepted,
	}, rsvpStatus)
	// allowed headcount 4 means up to 3 additional guests
	assert.Equal(t, guestEntity.CountMap{"wedding": 3}, additional)
}

func TestValidateSubmissionRejectsUninvitedEvent(t *testing.T) {
	guest := submissionGuest()
	req := &dto.SubmitRSVPRequest{
		Responses: map[string]string{
			"sangeet": "accepted",
			"wedding": "accepted",
			"haldi":   "accepted",
		},
	}

	_, _, appErr := ValidateSubmission(guest, req)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestValidateSubmissionRequiresEveryInvitedEvent(t *testing.T) {
	guest := submissionGuest()
	req := &dto.SubmitRSVPRequest{
		Responses: map[string]string{"wedding": "accepted"},
	}

	_, _, appErr := ValidateSubmission(guest, req)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestValidateSubmissionRejectsUnknownResponseValue(t *testing.T) {
	guest := submissionGuest()
	req := &dto.SubmitRSVPRequest{
		Responses: map[string]string{
			"sangeet": "maybe",
			"wedding": "accepted",
		},
	}

	_, _, appErr := ValidateSubmission(guest, req)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestValidateSubmissionHeadcountBounds(t *testing.T) {
	guest := submissionGuest()
	base := map[string]string{"sangeet": "rejected", "wedding": "accepted"}

	// boundary: allowed headcount 4 caps additional guests at 3
	req := &dto.SubmitRSVPRequest{Responses: base, AdditionalGuests: map[string]int{"wedding": 4}}
	_, _, appErr := ValidateSubmission(guest, req)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)

	req = &dto.SubmitRSVPRequest{Responses: base, AdditionalGuests: map[string]int{"wedding": -1}}
	_, _, appErr = ValidateSubmission(guest, req)
	require.NotNil(t, appErr)

	req = &dto.SubmitRSVPRequest{Responses: base, AdditionalGuests: map[string]int{"wedding": 3}}
	_, additional, appErr := ValidateSubmission(guest, req)
	require.Nil(t, appErr)
	assert.Equal(t, guestEntity.CountMap{"wedding": 3}, additional)
}

func TestValidateSubmissionDropsCountsForNonAcceptedEvents(t *testing.T) {
	guest := submissionGuest()
	req := &dto.SubmitRSVPRequest{
		Responses: map[string]string{
			"sangeet": "rejected",
			"wedding": "rejected",
		},
		// stale count left over from a form that flipped to rejected
		AdditionalGuests: map[string]int{"wedding": 2},
	}

	_, additional, appErr := ValidateSubmission(guest, req)
	require.Nil(t, appErr)
	assert.Empty(t, additional)
}

func TestValidateSubmissionRejectsCountsForUninvitedEvents(t *testing.T) {
	guest := submissionGuest()
	req := &dto.SubmitRSVPRequest{
		Responses: map[string]string{
			"sangeet": "accepted",
			"wedding": "accepted",
		},
		AdditionalGuests: map[string]int{"haldi": 1},
	}

	_, _, appErr := ValidateSubmission(guest, req)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}
