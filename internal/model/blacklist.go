package model

import (
	"context"
	"time"
)

// TokenBlacklist tracks revoked token IDs until their natural expiry.
// Contains reports false when the backing store is unavailable, so a
// broken blacklist degrades auth availability, not correctness of adds.
type TokenBlacklist interface {
	Add(ctx context.Context, jti string, expiresAt time.Time) error
	Contains(ctx context.Context, jti string) bool
}
