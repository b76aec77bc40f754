package blacklist

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/27Chinedu/Module13Assignment/internal/logger"
	"github.com/27Chinedu/Module13Assignment/internal/model"
)

const keyPrefix = "revoked:"

var _ model.TokenBlacklist = (*Redis)(nil)

// Redis is a blacklist shared across instances. Keys carry their own
// TTL, so redis reclaims expired entries on its own.
type Redis struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedis creates a Redis blacklist around an existing client.
func NewRedis(client *redis.Client, logger *logger.Logger) *Redis {
	return &Redis{
		client: client,
		logger: logger,
	}
}

func (r *Redis) Add(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	if err := r.client.Set(ctx, keyPrefix+jti, 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}

	return nil
}

// Contains fails open: when redis is unreachable the token is treated
// as not revoked, so authentication stays available.
func (r *Redis) Contains(ctx context.Context, jti string) bool {
	n, err := r.client.Exists(ctx, keyPrefix+jti).Result()
	if err != nil {
		r.logger.Error("blacklist lookup failed, treating token as not revoked", "jti", jti, "error", err)
		return false
	}

	return n > 0
}
