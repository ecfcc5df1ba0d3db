package middleware

import (
	"rsvp-manager/core/cache"
	"rsvp-manager/core/constants"
	"rsvp-manager/core/controller"
	"rsvp-manager/core/errors"
	"rsvp-manager/core/logger"
	"rsvp-manager/core/utils"

	"github.com/labstack/echo/v4"
)

type Middleware struct {
	cache *cache.Cache
	base  controller.BaseController
}

func NewMiddleware(cache *cache.Cache) *Middleware {
	return &Middleware{
		cache: cache,
		base:  controller.NewBaseController(),
	}
}

// AuthMiddleware validates the bearer token, rejects blacklisted tokens and
// injects the claims into the request context under ContextTokenData.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := utils.GetTokenFromHeader(c)
			if err != nil {
				return m.base.Unauthorized(errors.ErrMissingAuthorizationHeader, "missing or malformed authorization header", nil)
			}

			blacklisted, err := m.cache.IsTokenBlacklisted(c.Request().Context(), token)
			if err != nil {
				logger.Error("Middleware:AuthMiddleware:IsTokenBlacklisted:Error:", err)
				return m.base.InternalServerError(errors.ErrInternalServer, "failed to check token", nil)
			}
			if blacklisted {
				return m.base.Unauthorized(errors.ErrUnauthorized, "token has been revoked", nil)
			}

			claims, err := utils.ValidateAndParseToken(token)
			if err != nil {
				return m.base.Unauthorized(errors.ErrUnauthorized, "invalid or expired token", nil)
			}
			if claims.Scope != constants.ScopeTokenAccess {
				return m.base.Unauthorized(errors.ErrUnauthorized, "token scope not allowed", nil)
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}
