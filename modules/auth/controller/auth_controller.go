package controller

import (
	"net/http"

	"rsvp-manager/core/controller"
	"rsvp-manager/core/errors"
	"rsvp-manager/core/utils"
	"rsvp-manager/modules/auth/dto"
	"rsvp-manager/modules/auth/service"

	"github.com/labstack/echo/v4"
)

type AuthController struct {
	controller.BaseController
	service *service.AuthService
}

func NewAuthController(svc *service.AuthService) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		service:        svc,
	}
}

func (c *AuthController) Login(ctx echo.Context) error {
	var req dto.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return c.ErrorResponse(ctx, errors.NewAppError(errors.ErrInvalidRequestData, "invalid request body", err))
	}

	resp, appErr := c.service.Login(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Logged in")
}

func (c *AuthController) Logout(ctx echo.Context) error {
	token, appErr := c.bearerToken(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	if appErr := c.service.Logout(ctx.Request().Context(), token); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Logged out")
}

func (c *AuthController) Me(ctx echo.Context) error {
	token, appErr := c.bearerToken(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	resp, appErr := c.service.Me(ctx.Request().Context(), token)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Admin retrieved")
}

func (c *AuthController) RequestPasswordReset(ctx echo.Context) error {
	var req dto.PasswordResetRequest
	if err := ctx.Bind(&req); err != nil {
		return c.ErrorResponse(ctx, errors.NewAppError(errors.ErrInvalidRequestData, "invalid request body", err))
	}

	if appErr := c.service.RequestPasswordReset(ctx.Request().Context(), &req); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Reset code sent")
}

func (c *AuthController) ConfirmPasswordReset(ctx echo.Context) error {
	var req dto.PasswordResetConfirmRequest
	if err := ctx.Bind(&req); err != nil {
		return c.ErrorResponse(ctx, errors.NewAppError(errors.ErrInvalidRequestData, "invalid request body", err))
	}

	if appErr := c.service.ConfirmPasswordReset(ctx.Request().Context(), &req); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Password updated")
}

func (c *AuthController) GoogleLogin(ctx echo.Context) error {
	url, appErr := c.service.GetGoogleAuthURL(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return ctx.Redirect(http.StatusTemporaryRedirect, url)
}

func (c *AuthController) GoogleCallback(ctx echo.Context) error {
	code := ctx.QueryParam("code")
	state := ctx.QueryParam("state")
	if code == "" || state == "" {
		return c.ErrorResponse(ctx, errors.NewAppError(errors.ErrInvalidRequestData, "code and state are required", nil))
	}

	resp, appErr := c.service.HandleGoogleCallback(ctx.Request().Context(), code, state)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "Logged in")
}

func (c *AuthController) bearerToken(ctx echo.Context) (string, *errors.AppError) {
	token, err := utils.GetTokenFromHeader(ctx)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			return "", appErr
		}
		return "", errors.NewAppError(errors.ErrUnauthorized, "invalid authorization header", err)
	}
	return token, nil
}
