package controller

import (
	"rsvp-manager/core/controller"
	"rsvp-manager/core/errors"
	"rsvp-manager/modules/rsvp/dto"
	"rsvp-manager/modules/rsvp/service"

	"github.com/labstack/echo/v4"
)

type RSVPController struct {
	controller.BaseController
	service *service.RSVPService
}

func NewRSVPController(service *service.RSVPService) *RSVPController {
	return &RSVPController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

// Get serves the RSVP page payload for a guest token.
func (c *RSVPController) Get(ctx echo.Context) error {
	resp, appErr := c.service.GetByToken(ctx.Request().Context(), ctx.Param("token"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "RSVP retrieved")
}

// Submit records a guest's RSVP answers.
func (c *RSVPController) Submit(ctx echo.Context) error {
	var req dto.SubmitRSVPRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body", nil)
	}

	resp, appErr := c.service.Submit(ctx.Request().Context(), ctx.Param("token"), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Thank you for your RSVP!")
}
