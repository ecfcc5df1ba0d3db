package dto

import "rsvp-manager/modules/guest/entity"

// RSVPPageResponse is what the public RSVP page needs to render the form,
// including any previously submitted answers so re-submission edits them.
type RSVPPageResponse struct {
	Name                string             `json:"name"`
	InvitedEvents       []string           `json:"invited_events"`
	EventGuests         map[string]int     `json:"event_guests"`
	RSVPStatus          entity.ResponseMap `json:"rsvp_status"`
	AdditionalGuests    map[string]int     `json:"additional_guests"`
	DietaryPreferences  string             `json:"dietary_preferences"`
	SpecialRequirements string             `json:"special_requirements"`
}

type SubmitRSVPRequest struct {
	Responses           map[string]string `json:"responses"` // event -> accepted|rejected
	AdditionalGuests    map[string]int    `json:"additional_guests"`
	DietaryPreferences  string            `json:"dietary_preferences"`
	SpecialRequirements string            `json:"special_requirements"`
}

type SubmitRSVPResponse struct {
	Status entity.Status `json:"status"`
}
