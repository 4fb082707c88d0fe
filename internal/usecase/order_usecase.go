package usecase

import (
	"context"

	"veggiemarket/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CheckoutInput defines the data required to place an order from the active
// identity's cart. Payment is cash on delivery; the method is recorded only.
type CheckoutInput struct {
	Street  string `validate:"required"`
	City    string `validate:"required"`
	State   string `validate:"required"`
	ZipCode string `validate:"required"`
	Country string `validate:"required"`
}

// UpdateOrderStatusInput moves an order through its lifecycle. Admin only.
type UpdateOrderStatusInput struct {
	OrderID uuid.UUID
	Status  entity.OrderStatus
}

// --- Output DTOs ---

// CheckoutOutput returns the placed order.
type CheckoutOutput struct {
	Order *entity.Order
}

// OrderUsecase defines the interface for checkout and order management.
type OrderUsecase interface {
	// Checkout prices the active identity's cart, persists the order with its
	// item snapshots, decrements stock, clears the cart, and publishes an
	// order-placed event. Requires an authenticated, non-admin identity.
	Checkout(ctx context.Context, input CheckoutInput) (*CheckoutOutput, error)

	// GetOrder fetches one order. Customers may only read their own orders.
	GetOrder(ctx context.Context, requester entity.Identity, orderID uuid.UUID) (*entity.Order, error)

	// ListOrders returns the requester's orders, or every order for admins.
	ListOrders(ctx context.Context, requester entity.Identity) ([]*entity.Order, error)

	// UpdateStatus transitions an order's status. Admin only; invalid
	// transitions are rejected.
	UpdateStatus(ctx context.Context, input UpdateOrderStatusInput) (*entity.Order, error)

	// CancelOrder cancels an order. Customers may cancel their own pending
	// orders; admins may cancel any order not yet shipped.
	CancelOrder(ctx context.Context, requester entity.Identity, orderID uuid.UUID) (*entity.Order, error)

	// ReceiptQR renders the PNG QR code for an order receipt, subject to the
	// same ownership rules as GetOrder.
	ReceiptQR(ctx context.Context, requester entity.Identity, orderID uuid.UUID) ([]byte, error)
}
