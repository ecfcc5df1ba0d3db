package router

import (
	"rsvp-manager/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	controller *controller.AuthController
}

func NewAuthRouter(controller *controller.AuthController) *AuthRouter {
	return &AuthRouter{
		controller: controller,
	}
}

// Register wires the auth endpoints. Logout and Me validate the bearer token
// themselves so no middleware group is involved.
func (r *AuthRouter) Register(g *echo.Group) {
	auth := g.Group("/auth")

	auth.POST("/login", r.controller.Login)
	auth.POST("/logout", r.controller.Logout)
	auth.GET("/me", r.controller.Me)
	auth.POST("/password-reset/request", r.controller.RequestPasswordReset)
	auth.POST("/password-reset/confirm", r.controller.ConfirmPasswordReset)
	auth.GET("/google/login", r.controller.GoogleLogin)
	auth.GET("/google/callback", r.controller.GoogleCallback)
}
