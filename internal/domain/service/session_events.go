package service

import "veggiemarket/internal/domain/entity"

// SessionEvents is the contract between the auth session and the stateful
// shopping containers. It exposes who is shopping right now and notifies
// subscribers whenever that identity changes (login, logout, account switch).
//
// Subscribers use the notification to re-run their reset-then-load transition
// under the new identity's scope key, so a previous identity's state is never
// visible, even transiently.
type SessionEvents interface {
	// Current returns the active identity. Guest when unauthenticated.
	Current() entity.Identity

	// Subscribe registers fn to be called on every identity change. fn is
	// invoked synchronously on the goroutine performing the change.
	Subscribe(fn func(entity.Identity))
}

// SessionPublisher is the write side of SessionEvents, used by the auth
// use case to announce identity changes.
type SessionPublisher interface {
	SessionEvents

	// Publish replaces the active identity and notifies all subscribers.
	Publish(identity entity.Identity)
}
