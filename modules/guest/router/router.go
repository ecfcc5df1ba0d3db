package router

import (
	"rsvp-manager/core/middleware"
	"rsvp-manager/modules/guest/controller"

	"github.com/labstack/echo/v4"
)

type GuestRouter struct {
	controller *controller.GuestController
}

func NewGuestRouter(controller *controller.GuestController) *GuestRouter {
	return &GuestRouter{
		controller: controller,
	}
}

func (r *GuestRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	guests := g.Group("/guests")
	guests.Use(mw.AuthMiddleware())

	guests.GET("", r.controller.List)
	guests.POST("", r.controller.Create)
	guests.POST("/bulk-update", r.controller.BulkUpdate)
	guests.POST("/bulk-delete", r.controller.BulkDelete)
	guests.POST("/import", r.controller.Import)
	guests.GET("/export", r.controller.Export)
	guests.GET("/:id", r.controller.Get)
	guests.PUT("/:id", r.controller.Update)
	guests.DELETE("/:id", r.controller.Delete)
}
