package guest

import (
	"rsvp-manager/core/config"
	"rsvp-manager/core/database"
	"rsvp-manager/core/middleware"
	"rsvp-manager/core/storage"
	"rsvp-manager/modules/guest/controller"
	"rsvp-manager/modules/guest/repository"
	"rsvp-manager/modules/guest/router"
	"rsvp-manager/modules/guest/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the guest module and returns the service for use by other modules
func Init(g *echo.Group, db database.IDatabase, mw *middleware.Middleware, store *storage.Storage) *service.GuestService {
	cfg := config.Get()

	repo := repository.NewGuestRepository(db)
	svc := service.NewGuestService(repo)
	importSvc := service.NewImportService(svc, cfg.Wedding.Events)
	exportSvc := service.NewExportService(svc, store, cfg.Wedding.Events, cfg.Server.BaseURL)
	ctrl := controller.NewGuestController(svc, importSvc, exportSvc)
	r := router.NewGuestRouter(ctrl)

	r.Register(g, mw)

	return svc
}
