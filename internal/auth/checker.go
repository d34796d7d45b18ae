package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

var _ Checker = (*LoginChecker)(nil)

type Checker interface {
	// UserIDForToken returns ErrSessionNotFound for unknown or expired tokens.
	UserIDForToken(ctx context.Context, token string) (string, error)
}

type LoginChecker struct {
	redisClient *redis.Client
}

func NewLoginChecker(redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		redisClient: redisClient,
	}
}

func (c *LoginChecker) UserIDForToken(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrSessionNotFound
	}

	userID, err := c.redisClient.HGet(ctx, sessionKeyPrefix+token, "user_id").Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrSessionNotFound
		}
		return "", fmt.Errorf("get session: %w", err)
	}
	if userID == "" {
		return "", ErrSessionNotFound
	}

	return userID, nil
}
