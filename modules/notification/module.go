package notification

import (
	"rsvp-manager/core/database"
	"rsvp-manager/core/middleware"
	"rsvp-manager/modules/notification/controller"
	"rsvp-manager/modules/notification/repository"
	"rsvp-manager/modules/notification/router"
	"rsvp-manager/modules/notification/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Group, db database.IDatabase, mw *middleware.Middleware) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)

	router.NewNotificationRouter(ctrl).Register(e, mw)

	return svc
}
