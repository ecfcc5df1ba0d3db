package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hibiken/asynq"

	"rsvp-manager/core/config"
	coreErrors "rsvp-manager/core/errors"
	"rsvp-manager/core/logger"
	guestEntity "rsvp-manager/modules/guest/entity"
	guestRepo "rsvp-manager/modules/guest/repository"
	"rsvp-manager/modules/reminder/dto"
	"rsvp-manager/modules/reminder/tasks"
)

type ReminderService struct {
	guests  *guestRepo.GuestRepository
	queue   *asynq.Client
	baseURL string
}

func NewReminderService(guests *guestRepo.GuestRepository, queue *asynq.Client) *ReminderService {
	return &ReminderService{
		guests:  guests,
		queue:   queue,
		baseURL: config.Get().Server.BaseURL,
	}
}

// SendReminders enqueues a reminder email per guest. An empty selection means
// every guest whose aggregate status is still pending. Guests that cannot be
// reminded are reported back rather than failing the whole batch.
func (s *ReminderService) SendReminders(ctx context.Context, req *dto.SendRemindersRequest) (*dto.SendRemindersResponse, *coreErrors.AppError) {
	guests, appErr := s.selectGuests(ctx, req.GuestIDs)
	if appErr != nil {
		return nil, appErr
	}

	resp := &dto.SendRemindersResponse{Skipped: []dto.SkippedGuest{}}
	for i := range guests {
		guest := &guests[i]
		if guest.Email == "" {
			resp.Skipped = append(resp.Skipped, dto.SkippedGuest{GuestID: guest.ID, Reason: "no email on record"})
			continue
		}

		task, err := tasks.NewReminderEmailTask(tasks.ReminderEmailPayload{
			GuestID:  guest.ID,
			Name:     guest.Name,
			Email:    guest.Email,
			Events:   guest.InvitedEvents,
			RSVPLink: RSVPLink(guest, s.baseURL),
		})
		if err != nil {
			logger.Error("Reminder:BuildTask:Error:", err, "guest_id", guest.ID)
			resp.Skipped = append(resp.Skipped, dto.SkippedGuest{GuestID: guest.ID, Reason: "failed to build task"})
			continue
		}
		if _, err := s.queue.EnqueueContext(ctx, task); err != nil {
			logger.Error("Reminder:Enqueue:Error:", err, "guest_id", guest.ID)
			resp.Skipped = append(resp.Skipped, dto.SkippedGuest{GuestID: guest.ID, Reason: "failed to enqueue"})
			continue
		}
		resp.Queued++
	}

	logger.Info("reminders queued", "queued", resp.Queued, "skipped", len(resp.Skipped))
	return resp, nil
}

// GuestLinks returns the share links for a single guest.
func (s *ReminderService) GuestLinks(ctx context.Context, guestID string) (*dto.GuestLinksResponse, *coreErrors.AppError) {
	guest, err := s.guests.GetByID(ctx, guestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, coreErrors.NewAppError(coreErrors.ErrNotFound, "guest not found", err)
		}
		logger.Error("Reminder:GetGuest:Error:", err, "guest_id", guestID)
		return nil, coreErrors.NewAppError(coreErrors.ErrInternalServer, "failed to load guest", err)
	}

	return &dto.GuestLinksResponse{
		WhatsApp: BuildWhatsAppLink(guest, s.baseURL),
		Mailto:   BuildMailtoLink(guest, s.baseURL),
		RSVPLink: RSVPLink(guest, s.baseURL),
	}, nil
}

func (s *ReminderService) selectGuests(ctx context.Context, ids []string) ([]guestEntity.Guest, *coreErrors.AppError) {
	all, err := s.guests.List(ctx)
	if err != nil {
		logger.Error("Reminder:ListGuests:Error:", err)
		return nil, coreErrors.NewAppError(coreErrors.ErrInternalServer, "failed to load guests", err)
	}

	if len(ids) == 0 {
		pending := make([]guestEntity.Guest, 0)
		for _, guest := range all {
			if guest.AggregateStatus() == guestEntity.StatusPending {
				pending = append(pending, guest)
			}
		}
		return pending, nil
	}

	byID := make(map[string]guestEntity.Guest, len(all))
	for _, guest := range all {
		byID[guest.ID] = guest
	}
	selected := make([]guestEntity.Guest, 0, len(ids))
	for _, id := range ids {
		guest, ok := byID[id]
		if !ok {
			return nil, coreErrors.NewAppError(coreErrors.ErrNotFound, "guest not found: "+id, nil)
		}
		selected = append(selected, guest)
	}
	return selected, nil
}
