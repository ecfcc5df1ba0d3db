package service

import (
	"context"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"rsvp-manager/core/cache"
	"rsvp-manager/core/config"
	"rsvp-manager/core/constants"
	"rsvp-manager/core/errors"
	"rsvp-manager/core/logger"
	"rsvp-manager/core/utils"
	"rsvp-manager/modules/auth/dto"
	"rsvp-manager/modules/auth/entity"
	"rsvp-manager/modules/auth/repository"
)

type AuthService struct {
	repo  *repository.AdminRepository
	cache *cache.Cache
}

func NewAuthService(repo *repository.AdminRepository, cache *cache.Cache) *AuthService {
	return &AuthService{repo: repo, cache: cache}
}

func (service *AuthService) Login(ctx context.Context, requestData *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError) {
	if requestData.Email == "" || requestData.Password == "" {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "email and password are required", nil)
	}

	admin, err := service.repo.GetByEmail(ctx, requestData.Email)
	if err != nil {
		logger.Error("AuthService:Login:GetByEmail:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get admin", err)
	}
	if admin == nil || !utils.ComparePassword(admin.Password, requestData.Password) {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid email or password", nil)
	}

	accessToken, err := utils.GenerateToken(admin.ID, admin.Email, constants.ScopeTokenAccess)
	if err != nil {
		logger.Error("AuthService:Login:GenerateToken:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to generate access token", err)
	}

	return &dto.LoginResponse{
		AccessToken: accessToken,
		Admin:       toAdminResponse(admin),
	}, nil
}

// Logout revokes the presented token until its natural expiry.
func (service *AuthService) Logout(ctx context.Context, token string) *errors.AppError {
	claims, appErr := service.validateSession(ctx, token)
	if appErr != nil {
		return appErr
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := service.cache.BlacklistToken(ctx, token, ttl); err != nil {
		logger.Error("AuthService:Logout:BlacklistToken:Error:", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to revoke token", err)
	}
	return nil
}

func (service *AuthService) Me(ctx context.Context, token string) (*dto.AdminResponse, *errors.AppError) {
	claims, appErr := service.validateSession(ctx, token)
	if appErr != nil {
		return nil, appErr
	}

	admin, err := service.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		logger.Error("AuthService:Me:GetByID:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get admin", err)
	}
	if admin == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "admin not found", nil)
	}

	resp := toAdminResponse(admin)
	return &resp, nil
}

// RequestPasswordReset emails a one-time code to the admin. The OTP lives in
// Redis under the account email and expires on its own.
func (service *AuthService) RequestPasswordReset(ctx context.Context, requestData *dto.PasswordResetRequest) *errors.AppError {
	if !utils.IsValidEmail(requestData.Email) {
		return errors.NewAppError(errors.ErrInvalidRequestData, "invalid email", nil)
	}

	admin, err := service.repo.GetByEmail(ctx, requestData.Email)
	if err != nil {
		logger.Error("AuthService:RequestPasswordReset:GetByEmail:Error:", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to get admin", err)
	}
	if admin == nil {
		return errors.NewAppError(errors.ErrNotFound, "admin not found", nil)
	}

	otpCode := utils.GenerateOTP()
	key := constants.RedisKeyOTPResetPassword + admin.Email
	if err := service.cache.SetOTP(ctx, key, otpCode); err != nil {
		logger.Error("AuthService:RequestPasswordReset:SetOTP:Error:", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to save OTP", err)
	}

	data := utils.TemplateData{
		Name:    admin.Name,
		OTPCode: otpCode,
	}
	if err := utils.SendTemplateEmailFromTemplatesDir(
		[]string{admin.Email},
		"Your Password Reset Code",
		"otp_email.html",
		data,
	); err != nil {
		logger.Error("AuthService:RequestPasswordReset:SendEmail:Error:", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to send OTP email", err)
	}

	return nil
}

func (service *AuthService) ConfirmPasswordReset(ctx context.Context, requestData *dto.PasswordResetConfirmRequest) *errors.AppError {
	if requestData.NewPassword == "" {
		return errors.NewAppError(errors.ErrInvalidRequestData, "new password is required", nil)
	}

	admin, err := service.repo.GetByEmail(ctx, requestData.Email)
	if err != nil {
		logger.Error("AuthService:ConfirmPasswordReset:GetByEmail:Error:", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to get admin", err)
	}
	if admin == nil {
		return errors.NewAppError(errors.ErrNotFound, "admin not found", nil)
	}

	key := constants.RedisKeyOTPResetPassword + admin.Email
	otp, err := service.cache.GetOTP(ctx, key)
	if err != nil {
		logger.Error("AuthService:ConfirmPasswordReset:GetOTP:Error:", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to get OTP", err)
	}
	if otp == "" || otp != requestData.OTP {
		return errors.NewAppError(errors.ErrUnauthorized, "invalid or expired OTP", nil)
	}

	hashedPassword, err := utils.HashPassword(requestData.NewPassword)
	if err != nil {
		logger.Error("AuthService:ConfirmPasswordReset:HashPassword:Error:", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}
	if err := service.repo.UpdatePassword(ctx, admin.ID, hashedPassword); err != nil {
		logger.Error("AuthService:ConfirmPasswordReset:UpdatePassword:Error:", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to update password", err)
	}

	// OTP is single use.
	if err := service.cache.DeleteOTP(ctx, key); err != nil {
		logger.Error("AuthService:ConfirmPasswordReset:DeleteOTP:Error:", err)
	}
	return nil
}

// GetGoogleAuthURL builds the consent URL with a CSRF state nonce stored in
// Redis.
func (service *AuthService) GetGoogleAuthURL(ctx context.Context) (string, *errors.AppError) {
	oauthConfig, appErr := service.googleOAuthConfig()
	if appErr != nil {
		return "", appErr
	}

	state := utils.GenerateRandomString(32)
	if err := service.cache.SaveOAuthState(ctx, state); err != nil {
		logger.Error("AuthService:GetGoogleAuthURL:SaveOAuthState:Error:", err)
		return "", errors.NewAppError(errors.ErrInternalServer, "failed to store state token", err)
	}

	return oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline), nil
}

// HandleGoogleCallback signs in an existing admin via their Google account.
// Unknown Google emails are rejected; sign-in does not create admin accounts.
func (service *AuthService) HandleGoogleCallback(ctx context.Context, code string, state string) (*dto.LoginResponse, *errors.AppError) {
	ok, err := service.cache.ConsumeOAuthState(ctx, state)
	if err != nil {
		logger.Error("AuthService:HandleGoogleCallback:ConsumeOAuthState:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to validate state token", err)
	}
	if !ok {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid or expired state token", nil)
	}

	oauthConfig, appErr := service.googleOAuthConfig()
	if appErr != nil {
		return nil, appErr
	}

	token, err := oauthConfig.Exchange(ctx, code)
	if err != nil {
		logger.Error("AuthService:HandleGoogleCallback:Exchange:Error:", err)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "failed to exchange authorization code", err)
	}

	userInfo, err := fetchGoogleUserInfo(ctx, token.AccessToken)
	if err != nil {
		logger.Error("AuthService:HandleGoogleCallback:UserInfo:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get user info", err)
	}

	admin, err := service.repo.GetByEmail(ctx, userInfo.Email)
	if err != nil {
		logger.Error("AuthService:HandleGoogleCallback:GetByEmail:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get admin", err)
	}
	if admin == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "no admin account for this Google account", nil)
	}

	if !admin.GoogleLinked {
		if err := service.repo.SetGoogleLinked(ctx, admin.ID); err != nil {
			logger.Error("AuthService:HandleGoogleCallback:SetGoogleLinked:Error:", err)
		} else {
			admin.GoogleLinked = true
		}
	}

	accessToken, err := utils.GenerateToken(admin.ID, admin.Email, constants.ScopeTokenAccess)
	if err != nil {
		logger.Error("AuthService:HandleGoogleCallback:GenerateToken:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to generate access token", err)
	}

	return &dto.LoginResponse{
		AccessToken: accessToken,
		Admin:       toAdminResponse(admin),
	}, nil
}

func (service *AuthService) googleOAuthConfig() (*oauth2.Config, *errors.AppError) {
	cfg := config.GetSafe()
	if cfg.Google.ClientID == "" || cfg.Google.ClientSecret == "" || cfg.Google.RedirectURL == "" {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Google OAuth configuration is missing", nil)
	}

	return &oauth2.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}, nil
}

// validateSession checks the blacklist and the token scope.
func (service *AuthService) validateSession(ctx context.Context, token string) (*utils.TokenClaims, *errors.AppError) {
	blacklisted, err := service.cache.IsTokenBlacklisted(ctx, token)
	if err != nil {
		logger.Error("AuthService:ValidateSession:IsTokenBlacklisted:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check token blacklist", err)
	}
	if blacklisted {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "token has been revoked", nil)
	}

	claims, err := utils.ValidateAndParseToken(token)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid token", err)
	}
	if claims.Scope != constants.ScopeTokenAccess {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid token scope", nil)
	}
	return claims, nil
}

func toAdminResponse(admin *entity.AdminUser) dto.AdminResponse {
	return dto.AdminResponse{
		ID:           admin.ID,
		Email:        admin.Email,
		Name:         admin.Name,
		GoogleLinked: admin.GoogleLinked,
	}
}
