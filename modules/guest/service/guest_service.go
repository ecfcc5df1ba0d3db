package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"rsvp-manager/core/config"
	"rsvp-manager/core/constants"
	"rsvp-manager/core/errors"
	"rsvp-manager/core/logger"
	"rsvp-manager/core/utils"
	"rsvp-manager/modules/guest/dto"
	"rsvp-manager/modules/guest/entity"
	"rsvp-manager/modules/guest/repository"

	"github.com/gosimple/slug"
)

type GuestService struct {
	repo *repository.GuestRepository
}

func NewGuestService(repo *repository.GuestRepository) *GuestService {
	return &GuestService{repo: repo}
}

// List loads the guest collection and projects it through the filter engine.
// Status counts always cover the whole collection, matching the dashboard
// summary cards.
func (s *GuestService) List(ctx context.Context, cfg FilterConfig) (*dto.ListGuestsResponse, *errors.AppError) {
	guests, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load guests", err)
	}

	counts := CountByStatus(guests)
	filtered := FilterGuests(guests, cfg)

	resp := &dto.ListGuestsResponse{
		Guests: make([]dto.GuestResponse, 0, len(filtered)),
		Total:  len(filtered),
		Counts: dto.StatusCounts{
			Pending:  counts[entity.StatusPending],
			Accepted: counts[entity.StatusAccepted],
			Rejected: counts[entity.StatusRejected],
			Partial:  counts[entity.StatusPartial],
		},
	}
	for i := range filtered {
		resp.Guests = append(resp.Guests, toGuestResponse(&filtered[i]))
	}
	return resp, nil
}

func (s *GuestService) Get(ctx context.Context, id string) (*dto.GuestResponse, *errors.AppError) {
	guest, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewAppError(errors.ErrNotFound, "guest not found", nil)
		}
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load guest", err)
	}
	resp := toGuestResponse(guest)
	return &resp, nil
}

// Create validates, assigns a fresh RSVP token and persists the guest. Token
// collisions are retried a bounded number of times.
func (s *GuestService) Create(ctx context.Context, req *dto.CreateGuestRequest) (*dto.GuestResponse, *errors.AppError) {
	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)
	if name == "" || phone == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "name and phone are required", nil)
	}

	side := entity.SideGroom
	if req.Side != "" {
		side = entity.Side(req.Side)
		if !side.Valid() {
			return nil, errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("unknown side %q", req.Side), nil)
		}
	}

	invited := NormalizeEventKeys(req.InvitedEvents)
	eventGuests := headcountsForInvite(invited, req.EventGuests)

	guest := &entity.Guest{
		Name:             name,
		Phone:            phone,
		Email:            strings.TrimSpace(req.Email),
		Side:             side,
		InvitedEvents:    invited,
		EventGuests:      eventGuests,
		RSVPStatus:       entity.ResponseMap{},
		AdditionalGuests: entity.CountMap{},
	}

	if appErr := s.createWithFreshToken(ctx, guest); appErr != nil {
		return nil, appErr
	}

	resp := toGuestResponse(guest)
	return &resp, nil
}

func (s *GuestService) createWithFreshToken(ctx context.Context, guest *entity.Guest) *errors.AppError {
	for attempt := 0; attempt < constants.GuestTokenRetries; attempt++ {
		token, err := utils.GenerateGuestToken()
		if err != nil {
			return errors.NewAppError(errors.ErrInternalServer, "failed to generate guest token", err)
		}
		guest.ID = token

		err = s.repo.Create(ctx, guest)
		if err == nil {
			return nil
		}
		if !repository.IsUniqueViolation(err) {
			return errors.NewAppError(errors.ErrInternalServer, "failed to create guest", err)
		}
		logger.Warn("GuestService:Create:TokenCollision", "token", token, "attempt", attempt+1)
	}
	return errors.NewAppError(errors.ErrInternalServer, "failed to allocate a unique guest token", nil)
}

// Update applies an admin edit. When the invited-event set changes, response
// and headcount entries for de-invited events are pruned in the same write.
func (s *GuestService) Update(ctx context.Context, id string, req *dto.UpdateGuestRequest) (*dto.GuestResponse, *errors.AppError) {
	guest, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewAppError(errors.ErrNotFound, "guest not found", nil)
		}
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load guest", err)
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "name cannot be empty", nil)
		}
		guest.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		if strings.TrimSpace(*req.Phone) == "" {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "phone cannot be empty", nil)
		}
		guest.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		guest.Email = strings.TrimSpace(*req.Email)
	}
	if req.Side != nil {
		side := entity.Side(*req.Side)
		if !side.Valid() {
			return nil, errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("unknown side %q", *req.Side), nil)
		}
		guest.Side = side
	}
	if req.DietaryPreferences != nil {
		guest.DietaryPreferences = *req.DietaryPreferences
	}
	if req.SpecialRequirements != nil {
		guest.SpecialRequirements = *req.SpecialRequirements
	}
	if req.InvitationSent != nil {
		guest.InvitationSent = *req.InvitationSent
	}

	if req.InvitedEvents != nil {
		invited := NormalizeEventKeys(*req.InvitedEvents)
		eventGuests, rsvpStatus, additional := pruneToInvited(guest, invited)
		guest.InvitedEvents = invited
		guest.EventGuests = eventGuests
		guest.RSVPStatus = rsvpStatus
		guest.AdditionalGuests = additional
	}
	for ev, n := range req.EventGuests {
		ev = slug.Make(ev)
		if !guest.InvitedEvents.Contains(ev) {
			return nil, errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("headcount set for uninvited event %q", ev), nil)
		}
		if n < 1 {
			return nil, errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("headcount for %q must be at least 1", ev), nil)
		}
		guest.EventGuests[ev] = n
	}

	if err := s.repo.Update(ctx, guest); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update guest", err)
	}

	resp := toGuestResponse(guest)
	return &resp, nil
}

func (s *GuestService) Delete(ctx context.Context, id string) *errors.AppError {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return errors.NewAppError(errors.ErrNotFound, "guest not found", nil)
		}
		return errors.NewAppError(errors.ErrInternalServer, "failed to load guest", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete guest", err)
	}
	return nil
}

// BulkDelete removes the selected guests in one transaction.
func (s *GuestService) BulkDelete(ctx context.Context, req *dto.BulkDeleteRequest) (*dto.BulkDeleteResponse, *errors.AppError) {
	if len(req.GuestIDs) == 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "no guests selected for deletion", nil)
	}
	if err := s.repo.DeleteMany(ctx, req.GuestIDs); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to delete guests", err)
	}
	return &dto.BulkDeleteResponse{Deleted: len(req.GuestIDs)}, nil
}

// BulkUpdate runs the set-operation engine over the current collection and
// commits the resulting patches transactionally.
func (s *GuestService) BulkUpdate(ctx context.Context, req *dto.BulkUpdateRequest) (*dto.BulkUpdateResponse, *errors.AppError) {
	var side *entity.Side
	if req.Side != nil {
		v := entity.Side(*req.Side)
		side = &v
	}

	guests, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load guests", err)
	}

	patches, appErr := ApplyBulkUpdate(guests, req.GuestIDs, BulkAction(req.Action), NormalizeEventKeys(req.Events), side)
	if appErr != nil {
		return nil, appErr
	}

	repoPatches := make([]repository.BulkPatch, 0, len(patches))
	for _, p := range patches {
		repoPatches = append(repoPatches, repository.BulkPatch{
			ID:               p.ID,
			InvitedEvents:    p.InvitedEvents,
			EventGuests:      p.EventGuests,
			RSVPStatus:       p.RSVPStatus,
			AdditionalGuests: p.AdditionalGuests,
			Side:             p.Side,
		})
	}
	if err := s.repo.ApplyBulkPatches(ctx, repoPatches); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to apply bulk update", err)
	}

	return &dto.BulkUpdateResponse{Updated: len(patches)}, nil
}

// NormalizeEventKeys slugs, trims and dedupes event keys while preserving
// order ("Mehndi Night" -> "mehndi-night").
func NormalizeEventKeys(events []string) entity.EventList {
	out := entity.EventList{}
	seen := map[string]bool{}
	for _, ev := range events {
		key := slug.Make(strings.TrimSpace(ev))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}
	return out
}

// headcountsForInvite resolves client-supplied headcounts onto the normalized
// invite set. Keys are slugged first, so a count keyed by display name
// ("Mehndi Night") still lands on its event key; every invited event gets an
// explicit entry, defaulting to 1.
func headcountsForInvite(invited entity.EventList, raw map[string]int) entity.CountMap {
	bySlug := map[string]int{}
	for ev, n := range raw {
		bySlug[slug.Make(strings.TrimSpace(ev))] = n
	}

	out := entity.CountMap{}
	for _, ev := range invited {
		n := bySlug[ev]
		if n < 1 {
			n = 1
		}
		out[ev] = n
	}
	return out
}

func toGuestResponse(g *entity.Guest) dto.GuestResponse {
	return dto.GuestResponse{
		Guest:    *g,
		Status:   g.AggregateStatus(),
		RSVPLink: fmt.Sprintf("%s/%s", config.GetSafe().Server.BaseURL, g.ID),
	}
}
