package constants

import "time"

// Database pool settings.
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)

// Request handling.
const (
	DefaultRequestTimeout = 15 * time.Second
	ShutdownTimeout       = 10 * time.Second
)

// Token scopes embedded in JWT claims.
const (
	ScopeTokenAccess        = "access"
	ScopeTokenResetPassword = "reset_password"
)

// Echo context keys.
const (
	ContextTokenData = "token_data"
)

// Redis key prefixes.
const (
	RedisKeyTokenBlacklist   = "blacklist:"
	RedisKeyOTPResetPassword = "otp:reset_password:"
	RedisKeyOAuthState       = "oauth:state:"
)

const (
	OTPLength = 6
	OTPTTL    = 10 * time.Minute
	OAuthTTL  = 5 * time.Minute
)

// Guest RSVP tokens double as storage keys and public link path segments.
const (
	GuestTokenLength   = 8
	GuestTokenAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	GuestTokenRetries  = 3
)

// Asynq task types and queues.
const (
	TaskTypeReminderEmail = "reminder:email"
	QueueDefault          = "default"
)
