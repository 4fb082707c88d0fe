package usecase

import (
	"context"

	"veggiemarket/internal/domain/entity"
)

// WishlistOutput returns the wishlist contents.
type WishlistOutput struct {
	Items entity.Wishlist
}

// WishlistUsecase defines the interface for wishlist operations. Like the
// cart it is scoped to the active shopping identity, but admins may use it
// and it is never cleared on logout.
type WishlistUsecase interface {
	// GetWishlist returns the active identity's wishlist.
	GetWishlist(ctx context.Context) (*WishlistOutput, error)

	// Add puts a product on the wishlist. Returns false without error when
	// the product is already present.
	Add(ctx context.Context, productID string) (bool, error)

	// Remove takes a product off the wishlist. Unknown IDs are a no-op.
	Remove(ctx context.Context, productID string) error

	// Contains reports whether a product is on the wishlist.
	Contains(ctx context.Context, productID string) (bool, error)

	// Clear empties the wishlist and removes its storage entry.
	Clear(ctx context.Context) error
}
