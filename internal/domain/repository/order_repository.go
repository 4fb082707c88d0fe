package repository

import (
	"context"
	"errors"

	"veggiemarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// Create persists a new order together with its items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByUser retrieves all orders placed by the given user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// ListAll retrieves every order, newest first. Back-office use only.
	ListAll(ctx context.Context) ([]*entity.Order, error)

	// UpdateStatus sets the status of an existing order.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
