package repository

import (
	"context"
	"errors"

	"veggiemarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for catalog persistence.
// The application layer will depend on this interface, not the concrete implementation.
type ProductRepository interface {
	// FindByID retrieves a single product by its canonical ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List retrieves products matching the given filters, newest first.
	List(ctx context.Context, filters entity.SearchFilters) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product from the catalog.
	Delete(ctx context.Context, id uuid.UUID) error

	// DecrementStock reduces a product's stock by quantity, clamping at zero.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error
}
