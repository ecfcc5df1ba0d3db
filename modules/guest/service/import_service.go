package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"rsvp-manager/core/errors"
	"rsvp-manager/core/logger"
	"rsvp-manager/modules/guest/dto"
)

// ImportService maps uploaded CSV rows onto guests. Rows are committed
// one by one: a bad row is reported and skipped, valid rows around it still
// land.
type ImportService struct {
	guests *GuestService
	events []string
}

func NewImportService(guests *GuestService, events []string) *ImportService {
	return &ImportService{guests: guests, events: events}
}

// Import reads a header CSV and creates one guest per valid row.
func (s *ImportService) Import(ctx context.Context, r io.Reader) (*dto.ImportResponse, *errors.AppError) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "failed to read CSV header", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if !containsField(header, "name") || !containsField(header, "phone") {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "CSV must have name and phone columns", nil)
	}

	resp := &dto.ImportResponse{Failed: []dto.ImportRowError{}}
	rowNum := 1 // header row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			resp.Failed = append(resp.Failed, dto.ImportRowError{Row: rowNum, Reason: "malformed CSV row"})
			continue
		}

		row := zipRow(header, record)
		req, rowErr := s.mapRow(row)
		if rowErr != "" {
			resp.Failed = append(resp.Failed, dto.ImportRowError{Row: rowNum, Reason: rowErr})
			continue
		}

		if _, appErr := s.guests.Create(ctx, req); appErr != nil {
			logger.Error("ImportService:Import:Create:Error:", appErr, "row", rowNum)
			resp.Failed = append(resp.Failed, dto.ImportRowError{Row: rowNum, Reason: appErr.Message})
			continue
		}
		resp.Imported++
	}

	logger.Info("ImportService:Import:Done", "imported", resp.Imported, "failed", len(resp.Failed))
	return resp, nil
}

// mapRow converts one string-keyed CSV row to a create request. Returns a
// non-empty reason when the row must be rejected.
func (s *ImportService) mapRow(row map[string]string) (*dto.CreateGuestRequest, string) {
	name := strings.TrimSpace(row["name"])
	phone := strings.TrimSpace(row["phone"])
	if name == "" {
		return nil, "missing required field: name"
	}
	if phone == "" {
		return nil, "missing required field: phone"
	}

	// Invited events arrive as a comma-joined cell.
	rawEvents := row["invitedevents"]
	if rawEvents == "" {
		rawEvents = row["invited_events"]
	}
	var invited []string
	for _, ev := range strings.Split(rawEvents, ",") {
		if ev = strings.TrimSpace(ev); ev != "" {
			invited = append(invited, ev)
		}
	}

	eventGuests := map[string]int{}
	for _, ev := range s.events {
		raw := row[ev+"_guests"]
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n < 1 {
			n = 1
		}
		eventGuests[ev] = n
	}

	side := strings.ToLower(strings.TrimSpace(row["side"]))
	if side != "" && side != "bride" && side != "groom" {
		return nil, fmt.Sprintf("unknown side %q", side)
	}

	return &dto.CreateGuestRequest{
		Name:          name,
		Phone:         phone,
		Email:         strings.TrimSpace(row["email"]),
		Side:          side,
		InvitedEvents: invited,
		EventGuests:   eventGuests,
	}, ""
}

// zipRow keys cells by lowercased header name so column matching is
// case-insensitive ("Name" and "name" both work).
func zipRow(header, record []string) map[string]string {
	row := make(map[string]string, len(header))
	for i, key := range header {
		if i < len(record) {
			row[strings.ToLower(key)] = record[i]
		}
	}
	return row
}

func containsField(header []string, field string) bool {
	for _, h := range header {
		if strings.EqualFold(h, field) {
			return true
		}
	}
	return false
}
