// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"veggiemarket/internal/domain/entity"
)

// --- Input DTOs ---

// AddCartItemInput defines the data required to add a product to the cart.
// ProductID accepts both canonical UUIDs and legacy slug identifiers.
type AddCartItemInput struct {
	ProductID string
	Quantity  int
}

// UpdateCartQuantityInput sets the absolute quantity for a cart line.
type UpdateCartQuantityInput struct {
	ProductID string
	Quantity  int
}

// --- Output DTOs ---

// CartOutput returns the cart contents with derived totals.
type CartOutput struct {
	Items      entity.CartItems
	TotalItems int
	Subtotal   float64
}

// CartUsecase defines the interface for shopping cart operations. The cart is
// scoped to the active shopping identity and survives restarts via storage.
type CartUsecase interface {
	// GetCart returns the active identity's cart with derived totals.
	GetCart(ctx context.Context) (*CartOutput, error)

	// AddItem puts quantity units of a product into the cart, merging with an
	// existing line for the same product. Admin identities are a silent no-op.
	AddItem(ctx context.Context, input AddCartItemInput) error

	// UpdateQuantity sets the absolute quantity of a line. A quantity of zero
	// or less removes the line.
	UpdateQuantity(ctx context.Context, input UpdateCartQuantityInput) error

	// RemoveItem deletes a line from the cart. Unknown IDs are a no-op.
	RemoveItem(ctx context.Context, productID string) error

	// Clear empties the cart and removes its storage entry.
	Clear(ctx context.Context) error
}
