package controller

import (
	"rsvp-manager/core/controller"
	"rsvp-manager/core/errors"
	"rsvp-manager/modules/reminder/dto"
	"rsvp-manager/modules/reminder/service"

	"github.com/labstack/echo/v4"
)

type ReminderController struct {
	controller.BaseController
	service *service.ReminderService
}

func NewReminderController(svc *service.ReminderService) *ReminderController {
	return &ReminderController{
		BaseController: controller.NewBaseController(),
		service:        svc,
	}
}

// Send queues reminder emails for the selected guests, or for every guest
// still pending when no selection is given.
func (c *ReminderController) Send(ctx echo.Context) error {
	var req dto.SendRemindersRequest
	if err := ctx.Bind(&req); err != nil {
		return c.ErrorResponse(ctx, errors.NewAppError(errors.ErrInvalidRequestData, "invalid request body", err))
	}

	resp, appErr := c.service.SendReminders(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Reminders queued")
}

// Links returns the WhatsApp and mailto share links for a single guest.
func (c *ReminderController) Links(ctx echo.Context) error {
	resp, appErr := c.service.GuestLinks(ctx.Request().Context(), ctx.Param("id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Links generated")
}
