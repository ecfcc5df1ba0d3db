package auth

import (
	"rsvp-manager/core/cache"
	"rsvp-manager/core/database"
	"rsvp-manager/modules/auth/controller"
	"rsvp-manager/modules/auth/repository"
	"rsvp-manager/modules/auth/router"
	"rsvp-manager/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the auth module
func Init(g *echo.Group, db database.IDatabase, cacheClient *cache.Cache) {
	repo := repository.NewAdminRepository(db)
	svc := service.NewAuthService(repo, cacheClient)
	ctrl := controller.NewAuthController(svc)
	r := router.NewAuthRouter(ctrl)

	r.Register(g)
}
