package model

import "context"

// EventPublisher emits domain events for downstream consumers.
type EventPublisher interface {
	UserRegistered(ctx context.Context, user User) error
}
