package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rsvp-manager/core/config"
	"rsvp-manager/core/constants"
	"rsvp-manager/core/logger"

	"github.com/redis/go-redis/v9"
)

// Cache wraps the Redis client for the short-lived auth state this service
// keeps outside Postgres: revoked JWTs, password-reset OTPs, OAuth states.
type Cache struct {
	client *redis.Client
}

func NewCache(cfg config.RedisConfig) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to redis", "addr", cfg.Addr, "error", err)
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Redis initialized successfully", "addr", cfg.Addr, "db", cfg.DB)
	return &Cache{client: client}, nil
}

func (c *Cache) Close() error {
	return c.client.Close()
}

// BlacklistToken revokes a JWT until its natural expiry.
func (c *Cache) BlacklistToken(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // already expired, nothing to revoke
	}
	return c.client.Set(ctx, constants.RedisKeyTokenBlacklist+token, "1", ttl).Err()
}

func (c *Cache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	res, err := c.client.Exists(ctx, constants.RedisKeyTokenBlacklist+token).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}

func (c *Cache) SetOTP(ctx context.Context, key string, otp string) error {
	return c.client.Set(ctx, key, otp, constants.OTPTTL).Err()
}

func (c *Cache) GetOTP(ctx context.Context, key string) (string, error) {
	otp, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return otp, err
}

func (c *Cache) DeleteOTP(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// SaveOAuthState stores a one-shot OAuth state nonce.
func (c *Cache) SaveOAuthState(ctx context.Context, state string) error {
	return c.client.Set(ctx, constants.RedisKeyOAuthState+state, "1", constants.OAuthTTL).Err()
}

// ConsumeOAuthState validates and deletes a state nonce in one step.
func (c *Cache) ConsumeOAuthState(ctx context.Context, state string) (bool, error) {
	res, err := c.client.Del(ctx, constants.RedisKeyOAuthState+state).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}
