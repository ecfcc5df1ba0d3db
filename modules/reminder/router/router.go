package router

import (
	"rsvp-manager/core/middleware"
	"rsvp-manager/modules/reminder/controller"

	"github.com/labstack/echo/v4"
)

type ReminderRouter struct {
	controller *controller.ReminderController
}

func NewReminderRouter(controller *controller.ReminderController) *ReminderRouter {
	return &ReminderRouter{
		controller: controller,
	}
}

func (r *ReminderRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	reminders := g.Group("/reminders")
	reminders.Use(mw.AuthMiddleware())

	reminders.POST("", r.controller.Send)
	reminders.GET("/links/:id", r.controller.Links)
}
