package service

import (
	"context"
	"time"
)

// OrderEvent is the payload published whenever an order is placed or its
// status changes. Downstream workers (fulfilment, notifications) consume it.
type OrderEvent struct {
	EventType  string    `json:"event_type"` // constants.OrderEventPlaced or constants.OrderEventStatusChanged
	OrderID    string    `json:"order_id"`
	UserID     string    `json:"user_id"`
	Status     string    `json:"status"`
	Total      float64   `json:"total"`
	OccurredAt time.Time `json:"occurred_at"`
	RequestID  string    `json:"request_id,omitempty"` // For tracing across services.
}

// EventPublisher publishes order events to the configured transport.
type EventPublisher interface {
	// PublishOrderEvent publishes an event. Implementations should not block
	// beyond their own transport timeouts.
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases transport resources.
	Close() error
}
