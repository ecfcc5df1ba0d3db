package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"rsvp-manager/core/controller"
	"rsvp-manager/core/errors"
	"rsvp-manager/core/logger"
	"rsvp-manager/core/params"
	"rsvp-manager/modules/notification/dto"
	"rsvp-manager/modules/notification/service"

	"github.com/labstack/echo/v4"
)

type NotificationController struct {
	service *service.NotificationService
	controller.BaseController
}

func NewNotificationController(service *service.NotificationService) *NotificationController {
	return &NotificationController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// List retrieves the admin notification feed, newest first.
func (c *NotificationController) List(ctx echo.Context) error {
	queryParams := params.NewQueryParams(ctx)
	result, err := c.service.List(ctx.Request().Context(), queryParams)
	if err != nil {
		return c.InternalServerError(errors.ErrInternalServer, "Failed to get notifications", err)
	}

	return c.SuccessResponse(ctx, result, "Notifications retrieved successfully")
}

// MarkAsRead marks specific notifications as read.
func (c *NotificationController) MarkAsRead(ctx echo.Context) error {
	req := new(dto.MarkAsReadRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	if err := c.service.MarkAsRead(ctx.Request().Context(), req.IDs); err != nil {
		return c.InternalServerError(errors.ErrInternalServer, "Failed to mark as read", err)
	}

	return c.SuccessResponse(ctx, nil, "Marked as read successfully")
}

// MarkAllAsRead marks the entire feed as read.
func (c *NotificationController) MarkAllAsRead(ctx echo.Context) error {
	if err := c.service.MarkAllAsRead(ctx.Request().Context()); err != nil {
		return c.InternalServerError(errors.ErrInternalServer, "Failed to mark all as read", err)
	}

	return c.SuccessResponse(ctx, nil, "Marked all as read successfully")
}

// CountUnread counts unread notifications.
func (c *NotificationController) CountUnread(ctx echo.Context) error {
	count, err := c.service.CountUnread(ctx.Request().Context())
	if err != nil {
		return c.InternalServerError(errors.ErrInternalServer, "Failed to count unread", err)
	}

	return c.SuccessResponse(ctx, map[string]int{"count": count}, "Unread count retrieved")
}

// Stream pushes new notifications over server-sent events until the client
// disconnects.
func (c *NotificationController) Stream(ctx echo.Context) error {
	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	events, cancel := c.service.Subscribe()
	defer cancel()

	reqCtx := ctx.Request().Context()
	for {
		select {
		case <-reqCtx.Done():
			return nil
		case notif, ok := <-events:
			if !ok {
				return nil
			}
			payload, err := json.Marshal(notif)
			if err != nil {
				logger.Error("NotificationController:Stream:Marshal:Error:", err)
				continue
			}
			if _, err := fmt.Fprintf(res, "data: %s\n\n", payload); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
