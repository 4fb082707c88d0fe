package entity

import "veggiemarket/internal/domain/constants"

// Identity is the minimal view of "who is shopping right now" that the cart
// and wishlist containers depend on. The zero value is the guest identity.
type Identity struct {
	UserID  string // Empty for unauthenticated visitors.
	IsAdmin bool
}

// Guest returns the unauthenticated identity.
func Guest() Identity {
	return Identity{}
}

// ScopeKey returns the storage partition key for this identity:
// the user ID, or the guest sentinel when unauthenticated.
func (id Identity) ScopeKey() string {
	if id.UserID == "" {
		return constants.GuestScopeKey
	}

	return id.UserID
}
