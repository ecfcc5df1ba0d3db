package controller

import (
	"net/http"
	"strings"

	"rsvp-manager/core/controller"
	"rsvp-manager/core/errors"
	"rsvp-manager/core/logger"
	"rsvp-manager/modules/guest/dto"
	"rsvp-manager/modules/guest/entity"
	"rsvp-manager/modules/guest/service"

	"github.com/labstack/echo/v4"
)

type GuestController struct {
	controller.BaseController
	service       *service.GuestService
	importService *service.ImportService
	exportService *service.ExportService
}

func NewGuestController(svc *service.GuestService, importSvc *service.ImportService, exportSvc *service.ExportService) *GuestController {
	return &GuestController{
		BaseController: controller.NewBaseController(),
		service:        svc,
		importService:  importSvc,
		exportService:  exportSvc,
	}
}

// filterFromQuery maps list/export query params onto the filter engine
// config: search, side, events (csv), status, tab.
func filterFromQuery(ctx echo.Context) (service.FilterConfig, *errors.AppError) {
	cfg := service.FilterConfig{
		SearchText: ctx.QueryParam("search"),
		Tab:        ctx.QueryParam("tab"),
	}

	if raw := ctx.QueryParam("side"); raw != "" {
		side := entity.Side(raw)
		if !side.Valid() {
			return cfg, errors.NewAppError(errors.ErrInvalidRequestData, "unknown side filter", nil)
		}
		cfg.Side = &side
	}
	if raw := ctx.QueryParam("status"); raw != "" {
		status := entity.Status(raw)
		if !status.Valid() {
			return cfg, errors.NewAppError(errors.ErrInvalidRequestData, "unknown status filter", nil)
		}
		cfg.Status = &status
	}
	if cfg.Tab != "" && cfg.Tab != entity.TabAll && !entity.Status(cfg.Tab).Valid() {
		return cfg, errors.NewAppError(errors.ErrInvalidRequestData, "unknown tab", nil)
	}
	if raw := ctx.QueryParam("events"); raw != "" {
		for _, ev := range strings.Split(raw, ",") {
			if ev = strings.TrimSpace(ev); ev != "" {
				cfg.Events = append(cfg.Events, ev)
			}
		}
	}
	return cfg, nil
}

// List returns the filtered guest collection plus dashboard status counts.
func (c *GuestController) List(ctx echo.Context) error {
	cfg, appErr := filterFromQuery(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	resp, appErr := c.service.List(ctx.Request().Context(), cfg)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Guests retrieved")
}

func (c *GuestController) Get(ctx echo.Context) error {
	resp, appErr := c.service.Get(ctx.Request().Context(), ctx.Param("id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Guest retrieved")
}

func (c *GuestController) Create(ctx echo.Context) error {
	var req dto.CreateGuestRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body", nil)
	}

	resp, appErr := c.service.Create(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Guest created")
}

func (c *GuestController) Update(ctx echo.Context) error {
	var req dto.UpdateGuestRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body", nil)
	}

	resp, appErr := c.service.Update(ctx.Request().Context(), ctx.Param("id"), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Guest updated")
}

func (c *GuestController) Delete(ctx echo.Context) error {
	if appErr := c.service.Delete(ctx.Request().Context(), ctx.Param("id")); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Guest deleted")
}

func (c *GuestController) BulkUpdate(ctx echo.Context) error {
	var req dto.BulkUpdateRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body", nil)
	}

	resp, appErr := c.service.BulkUpdate(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Guests updated")
}

func (c *GuestController) BulkDelete(ctx echo.Context) error {
	var req dto.BulkDeleteRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body", nil)
	}

	resp, appErr := c.service.BulkDelete(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Guests deleted")
}

// Import accepts a multipart CSV upload under the "file" field.
func (c *GuestController) Import(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "missing file upload", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("GuestController:Import:Open:Error:", err)
		return c.BadRequest(errors.ErrInvalidRequestData, "failed to read uploaded file", nil)
	}
	defer file.Close()

	resp, appErr := c.importService.Import(ctx.Request().Context(), file)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Import finished")
}

// Export serves the filtered guest list: csv streams inline, xlsx goes
// through object storage and returns a download URL.
func (c *GuestController) Export(ctx echo.Context) error {
	cfg, appErr := filterFromQuery(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	format := ctx.QueryParam("format")
	switch format {
	case "", "csv":
		ctx.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
		ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="wedding_guests.csv"`)
		ctx.Response().WriteHeader(http.StatusOK)
		if appErr := c.exportService.WriteCSV(ctx.Request().Context(), ctx.Response(), cfg); appErr != nil {
			logger.Error("GuestController:Export:CSV:Error:", appErr)
			return nil // headers already sent
		}
		return nil
	case "xlsx":
		resp, appErr := c.exportService.ExportXLSX(ctx.Request().Context(), cfg)
		if appErr != nil {
			return c.ErrorResponse(ctx, appErr)
		}
		return c.SuccessResponse(ctx, resp, "Export uploaded")
	default:
		return c.BadRequest(errors.ErrInvalidRequestData, "format must be csv or xlsx", nil)
	}
}
