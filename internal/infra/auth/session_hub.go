package auth

import (
	"sync"

	"veggiemarket/internal/domain/entity"
	"veggiemarket/internal/domain/service"
)

// sessionHub is the in-process implementation of SessionPublisher. It holds
// the active shopping identity and fans identity changes out to subscribers.
type sessionHub struct {
	mu          sync.RWMutex
	current     entity.Identity
	subscribers []func(entity.Identity)
}

// NewSessionHub creates a hub starting from the guest identity.
func NewSessionHub() service.SessionPublisher {
	return &sessionHub{current: entity.Guest()}
}

func (h *sessionHub) Current() entity.Identity {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.current
}

func (h *sessionHub) Subscribe(fn func(entity.Identity)) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.subscribers = append(h.subscribers, fn)
}

// Publish replaces the active identity and notifies subscribers in
// registration order. Notifications run outside the lock so a subscriber may
// call Current without deadlocking.
func (h *sessionHub) Publish(identity entity.Identity) {
	h.mu.Lock()
	h.current = identity
	subscribers := make([]func(entity.Identity), len(h.subscribers))
	copy(subscribers, h.subscribers)
	h.mu.Unlock()

	for _, fn := range subscribers {
		fn(identity)
	}
}
