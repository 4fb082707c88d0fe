package entity

import "github.com/google/uuid"

// Wishlist is an ordered set of products, unique by product ID.
// Insertion order is preserved for display.
type Wishlist []Product

// Contains reports whether the wishlist holds a product with the given ID.
func (w Wishlist) Contains(id uuid.UUID) bool {
	for _, p := range w {
		if p.ID == id {
			return true
		}
	}

	return false
}
