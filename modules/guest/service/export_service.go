package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"rsvp-manager/core/errors"
	"rsvp-manager/core/logger"
	"rsvp-manager/core/storage"
	"rsvp-manager/core/utils"
	"rsvp-manager/modules/guest/dto"
	"rsvp-manager/modules/guest/entity"

	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportService flattens the guest list into tabular records and serializes
// them to CSV (streamed) or XLSX (built with excelize, parked on S3).
type ExportService struct {
	guests  *GuestService
	store   *storage.Storage
	events  []string
	baseURL string
}

func NewExportService(guests *GuestService, store *storage.Storage, events []string, baseURL string) *ExportService {
	return &ExportService{
		guests:  guests,
		store:   store,
		events:  events,
		baseURL: baseURL,
	}
}

// ExportHeader builds the flattened column set: fixed guest columns plus
// status/additional/allowed triplets per catalog event.
func ExportHeader(events []string) []string {
	header := []string{"Name", "Phone", "Email", "Side", "Invited Events", "Unique Link"}
	for _, ev := range events {
		header = append(header, ev+"_status", ev+"_additional", ev+"_allowed")
	}
	return append(header, "Dietary Preferences", "Special Requirements", "Last Updated")
}

// FlattenGuest produces one export row in ExportHeader order. Unanswered
// events export as "pending" with zero additional guests.
func FlattenGuest(g *entity.Guest, events []string, baseURL string) []string {
	invited := make([]string, len(g.InvitedEvents))
	copy(invited, g.InvitedEvents)

	row := []string{
		g.Name,
		g.Phone,
		g.Email,
		string(g.Side),
		strings.Join(invited, ", "),
		fmt.Sprintf("%s/%s", baseURL, g.ID),
	}
	for _, ev := range events {
		status := "pending"
		if resp, ok := g.RSVPStatus[ev]; ok {
			status = string(resp)
		}
		row = append(row,
			status,
			strconv.Itoa(g.AdditionalGuests[ev]),
			strconv.Itoa(g.AllowedHeadcount(ev)),
		)
	}
	lastUpdated := ""
	if !g.LastUpdated.IsZero() {
		lastUpdated = g.LastUpdated.Format(time.RFC3339)
	}
	return append(row, g.DietaryPreferences, g.SpecialRequirements, lastUpdated)
}

// WriteCSV streams the filtered guest list as CSV.
func (s *ExportService) WriteCSV(ctx context.Context, w io.Writer, cfg FilterConfig) *errors.AppError {
	guests, appErr := s.filtered(ctx, cfg)
	if appErr != nil {
		return appErr
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(ExportHeader(s.events)); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to write CSV", err)
	}
	for i := range guests {
		if err := cw.Write(FlattenGuest(&guests[i], s.events, s.baseURL)); err != nil {
			return errors.NewAppError(errors.ErrInternalServer, "failed to write CSV", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to write CSV", err)
	}
	return nil
}

// ExportXLSX builds a workbook for the filtered guest list, uploads it and
// returns the presigned download URL.
func (s *ExportService) ExportXLSX(ctx context.Context, cfg FilterConfig) (*dto.ExportResponse, *errors.AppError) {
	if s.store == nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "xlsx export unavailable: object storage not configured", nil)
	}

	guests, appErr := s.filtered(ctx, cfg)
	if appErr != nil {
		return nil, appErr
	}

	body, err := BuildWorkbook(guests, s.events, s.baseURL)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to build workbook", err)
	}

	key := utils.ExportObjectKey("xlsx", time.Now().Unix())
	url, err := s.store.Upload(ctx, key, body, xlsxContentType)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to upload export", err)
	}

	logger.Info("ExportService:ExportXLSX:Done", "guests", len(guests), "key", key)
	return &dto.ExportResponse{URL: url, ExpiresAt: time.Now().Add(24 * time.Hour)}, nil
}

// BuildWorkbook renders guests into a single-sheet XLSX file.
func BuildWorkbook(guests []entity.Guest, events []string, baseURL string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Guests"
	f.SetSheetName(f.GetSheetName(0), sheet)

	writeRow := func(rowIdx int, values []string) error {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return err
		}
		cells := make([]any, len(values))
		for i, v := range values {
			cells[i] = v
		}
		return f.SetSheetRow(sheet, cell, &cells)
	}

	if err := writeRow(1, ExportHeader(events)); err != nil {
		return nil, err
	}
	for i := range guests {
		if err := writeRow(i+2, FlattenGuest(&guests[i], events, baseURL)); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *ExportService) filtered(ctx context.Context, cfg FilterConfig) ([]entity.Guest, *errors.AppError) {
	guests, err := s.guests.repo.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load guests", err)
	}
	return FilterGuests(guests, cfg), nil
}
