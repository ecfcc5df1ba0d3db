package router

import (
	"rsvp-manager/modules/rsvp/controller"

	"github.com/labstack/echo/v4"
)

type RSVPRouter struct {
	controller *controller.RSVPController
}

func NewRSVPRouter(controller *controller.RSVPController) *RSVPRouter {
	return &RSVPRouter{controller: controller}
}

// Register mounts the unauthenticated guest-facing routes.
func (r *RSVPRouter) Register(g *echo.Group) {
	rsvp := g.Group("/rsvp")
	rsvp.GET("/:token", r.controller.Get)
	rsvp.POST("/:token", r.controller.Submit)
}
