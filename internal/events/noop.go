package events

import (
	"context"

	"github.com/27Chinedu/Module13Assignment/internal/model"
)

var _ model.EventPublisher = (*Noop)(nil)

// Noop drops events. Used when no broker is configured.
type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (n *Noop) UserRegistered(_ context.Context, _ model.User) error {
	return nil
}
