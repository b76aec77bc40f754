package blacklist

import (
	"context"
	"sync"
	"time"

	"github.com/27Chinedu/Module13Assignment/internal/model"
)

const sweepInterval = time.Minute

var _ model.TokenBlacklist = (*Memory)(nil)

// Memory is a process-local blacklist. Expired entries are dropped
// lazily on lookup and by a background sweep.
type Memory struct {
	mu      sync.Mutex
	entries map[string]time.Time
	done    chan struct{}
	once    sync.Once
}

// NewMemory creates a Memory blacklist and starts its sweep loop.
func NewMemory() *Memory {
	m := &Memory{
		entries: make(map[string]time.Time),
		done:    make(chan struct{}),
	}
	go m.sweep()

	return m
}

func (m *Memory) Add(_ context.Context, jti string, expiresAt time.Time) error {
	if !expiresAt.After(time.Now()) {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[jti] = expiresAt

	return nil
}

func (m *Memory) Contains(_ context.Context, jti string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	expiresAt, ok := m.entries[jti]
	if !ok {
		return false
	}
	if !expiresAt.After(time.Now()) {
		delete(m.entries, jti)
		return false
	}

	return true
}

// Close stops the sweep loop.
func (m *Memory) Close() {
	m.once.Do(func() {
		close(m.done)
	})
}

func (m *Memory) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.removeExpired(time.Now())
		}
	}
}

func (m *Memory) removeExpired(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for jti, expiresAt := range m.entries {
		if !expiresAt.After(now) {
			delete(m.entries, jti)
		}
	}
}
