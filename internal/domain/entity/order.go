package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus tracks an order through its fulfilment lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether moving from s to next is allowed.
// Orders move forward through pending -> processing -> shipped -> delivered,
// and may be cancelled at any point before shipping.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return next == OrderStatusProcessing || next == OrderStatusCancelled
	case OrderStatusProcessing:
		return next == OrderStatusShipped || next == OrderStatusCancelled
	case OrderStatusShipped:
		return next == OrderStatusDelivered
	default:
		return false
	}
}

// PaymentMethodCOD is the only supported payment method: cash on delivery.
// The amount is recorded, never charged or validated.
const PaymentMethodCOD = "cod"

// ShippingAddress is the destination captured at checkout.
type ShippingAddress struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// OrderItem is one line of an order, snapshotting the unit price at
// checkout time so later catalog edits don't rewrite order history.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Name      string  // Product name at checkout time.
	Quantity  int     // Units ordered, always >= 1.
	Price     float64 // Unit price at checkout time.
	CreatedAt time.Time
}

// Order is a placed order with its priced lines and destination.
type Order struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Status        OrderStatus
	Items         []OrderItem
	Subtotal      float64 // Sum of line price * quantity.
	Tax           float64 // GST applied on the subtotal.
	ShippingCost  float64 // Flat fee, waived above the free-shipping threshold.
	Total         float64 // Subtotal + tax + shipping.
	Address       ShippingAddress
	PaymentMethod string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
