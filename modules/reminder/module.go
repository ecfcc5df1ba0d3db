package reminder

import (
	"rsvp-manager/core/constants"
	"rsvp-manager/core/database"
	"rsvp-manager/core/middleware"
	"rsvp-manager/core/queue"
	guestRepo "rsvp-manager/modules/guest/repository"
	"rsvp-manager/modules/reminder/controller"
	"rsvp-manager/modules/reminder/router"
	"rsvp-manager/modules/reminder/service"
	"rsvp-manager/modules/reminder/tasks"

	"github.com/labstack/echo/v4"
)

// Init initializes the reminder module and registers its background worker
func Init(g *echo.Group, db database.IDatabase, mw *middleware.Middleware, q *queue.Queue) {
	guests := guestRepo.NewGuestRepository(db)
	svc := service.NewReminderService(guests, q.Client)
	ctrl := controller.NewReminderController(svc)
	r := router.NewReminderRouter(ctrl)

	r.Register(g, mw)

	q.HandleFunc(constants.TaskTypeReminderEmail, tasks.HandleReminderEmailTask)
}
