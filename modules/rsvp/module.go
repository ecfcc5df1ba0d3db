package rsvp

import (
	"rsvp-manager/core/database"
	guestRepo "rsvp-manager/modules/guest/repository"
	notifService "rsvp-manager/modules/notification/service"
	"rsvp-manager/modules/rsvp/controller"
	"rsvp-manager/modules/rsvp/router"
	"rsvp-manager/modules/rsvp/service"

	"github.com/labstack/echo/v4"
)

// Init mounts the public RSVP endpoints. They share the guest repository
// with the admin module and feed the admin notification stream.
func Init(public *echo.Group, db database.IDatabase, notificationService *notifService.NotificationService) {
	guests := guestRepo.NewGuestRepository(db)
	svc := service.NewRSVPService(guests, notificationService)
	ctrl := controller.NewRSVPController(svc)

	router.NewRSVPRouter(ctrl).Register(public)
}
