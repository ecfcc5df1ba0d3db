package service

import (
	"context"
	"database/sql"
	"fmt"

	"rsvp-manager/core/errors"
	"rsvp-manager/core/logger"
	guestEntity "rsvp-manager/modules/guest/entity"
	guestRepo "rsvp-manager/modules/guest/repository"
	notifDto "rsvp-manager/modules/notification/dto"
	notifService "rsvp-manager/modules/notification/service"
	"rsvp-manager/modules/rsvp/dto"
)

// RSVPService backs the public RSVP page: resolve a guest by their link
// token and record their submission.
type RSVPService struct {
	guests       *guestRepo.GuestRepository
	notifService *notifService.NotificationService
}

func NewRSVPService(guests *guestRepo.GuestRepository, notifService *notifService.NotificationService) *RSVPService {
	return &RSVPService{
		guests:       guests,
		notifService: notifService,
	}
}

// GetByToken resolves the RSVP page payload. A token that resolves to a
// guest with no assigned events is treated the same as an unknown token:
// there is nothing for that page to render.
func (s *RSVPService) GetByToken(ctx context.Context, token string) (*dto.RSVPPageResponse, *errors.AppError) {
	guest, appErr := s.lookupGuest(ctx, token)
	if appErr != nil {
		return nil, appErr
	}

	return &dto.RSVPPageResponse{
		Name:                guest.Name,
		InvitedEvents:       guest.InvitedEvents,
		EventGuests:         headcounts(guest),
		RSVPStatus:          visibleResponses(guest),
		AdditionalGuests:    guest.AdditionalGuests,
		DietaryPreferences:  guest.DietaryPreferences,
		SpecialRequirements: guest.SpecialRequirements,
	}, nil
}

// Submit validates and records a guest's RSVP, then notifies the admin feed.
func (s *RSVPService) Submit(ctx context.Context, token string, req *dto.SubmitRSVPRequest) (*dto.SubmitRSVPResponse, *errors.AppError) {
	guest, appErr := s.lookupGuest(ctx, token)
	if appErr != nil {
		return nil, appErr
	}

	rsvpStatus, additional, appErr := ValidateSubmission(guest, req)
	if appErr != nil {
		return nil, appErr
	}

	guest.RSVPStatus = rsvpStatus
	guest.AdditionalGuests = additional
	guest.DietaryPreferences = req.DietaryPreferences
	guest.SpecialRequirements = req.SpecialRequirements

	if err := s.guests.Update(ctx, guest); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to save RSVP", err)
	}

	notification := &notifDto.CreateNotificationRequest{
		GuestID: guest.ID,
		Title:   "New RSVP Update",
		Message: fmt.Sprintf("%s has updated their RSVP", guest.Name),
		Data: map[string]interface{}{
			"guest_id": guest.ID,
			"status":   string(guest.AggregateStatus()),
		},
	}
	if err := s.notifService.Create(ctx, notification); err != nil {
		// The RSVP itself landed; a lost notification is not worth failing over.
		logger.Error("RSVPService:Submit:Notify:Error:", err)
	}

	return &dto.SubmitRSVPResponse{Status: guest.AggregateStatus()}, nil
}

// ValidateSubmission checks a submission against the guest's invite and
// returns the maps to persist:
//
//   - every invited event needs a response, and responses are only allowed
//     for invited events
//   - additional guests are bounded by [0, allowed headcount - 1]
//   - additional guests for non-accepted events are zeroed, not rejected
func ValidateSubmission(guest *guestEntity.Guest, req *dto.SubmitRSVPRequest) (guestEntity.ResponseMap, guestEntity.CountMap, *errors.AppError) {
	rsvpStatus := guestEntity.ResponseMap{}
	for event, raw := range req.Responses {
		if !guest.InvitedEvents.Contains(event) {
			return nil, nil, errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("response for uninvited event %q", event), nil)
		}
		resp := guestEntity.Response(raw)
		if resp != guestEntity.ResponseAccepted && resp != guestEntity.ResponseRejected {
			return nil, nil, errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("invalid response %q for event %q", raw, event), nil)
		}
		rsvpStatus[event] = resp
	}
	for _, event := range guest.InvitedEvents {
		if _, ok := rsvpStatus[event]; !ok {
			return nil, nil, errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("missing response for event %q", event), nil)
		}
	}

	additional := guestEntity.CountMap{}
	for event, n := range req.AdditionalGuests {
		if !guest.InvitedEvents.Contains(event) {
			return nil, nil, errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("additional guests for uninvited event %q", event), nil)
		}
		if rsvpStatus[event] != guestEntity.ResponseAccepted {
			// Stale counts from a form that flipped to rejected are
			// dropped silently.
			continue
		}
		max := guest.AllowedHeadcount(event) - 1
		if n < 0 || n > max {
			return nil, nil, errors.NewAppError(errors.ErrInvalidInput,
				fmt.Sprintf("additional guests for %q must be between 0 and %d", event, max), nil)
		}
		additional[event] = n
	}

	return rsvpStatus, additional, nil
}

func (s *RSVPService) lookupGuest(ctx context.Context, token string) (*guestEntity.Guest, *errors.AppError) {
	guest, err := s.guests.GetByID(ctx, token)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewAppError(errors.ErrNotFound, fmt.Sprintf("no guest found with RSVP code %q", token), nil)
		}
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load RSVP", err)
	}
	if len(guest.InvitedEvents) == 0 {
		return nil, errors.NewAppError(errors.ErrNotFound, "this guest has no events assigned", nil)
	}
	return guest, nil
}

// visibleResponses masks stray entries for events the guest is no longer
// invited to.
func visibleResponses(guest *guestEntity.Guest) guestEntity.ResponseMap {
	out := guestEntity.ResponseMap{}
	for event, resp := range guest.RSVPStatus {
		if guest.InvitedEvents.Contains(event) {
			out[event] = resp
		}
	}
	return out
}

func headcounts(guest *guestEntity.Guest) map[string]int {
	out := map[string]int{}
	for _, event := range guest.InvitedEvents {
		out[event] = guest.AllowedHeadcount(event)
	}
	return out
}
