package usecase

import (
	"context"

	"veggiemarket/internal/domain/entity"
)

// --- Input DTOs ---

// ListProductsInput narrows a catalog listing. Zero values mean no constraint.
type ListProductsInput struct {
	Query    string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Organic  *bool
	Featured *bool
}

// CreateProductInput defines the data required to add a catalog product.
// ID is optional; slugs are canonicalized, empty means generate one.
type CreateProductInput struct {
	ID          string
	Name        string  `validate:"required"`
	Description string
	Price       float64 `validate:"gte=0"`
	Stock       int     `validate:"gte=0"`
	Image       string
	Category    string
	Organic     bool
	Unit        string
	Discount    *float64
	Featured    bool
}

// UpdateProductInput modifies an existing catalog product.
type UpdateProductInput struct {
	ID          string  `validate:"required"`
	Name        string  `validate:"required"`
	Description string
	Price       float64 `validate:"gte=0"`
	Stock       int     `validate:"gte=0"`
	Image       string
	Category    string
	Organic     bool
	Unit        string
	Discount    *float64
	Featured    bool
}

// ProductUsecase defines the interface for catalog operations.
type ProductUsecase interface {
	// ListProducts returns catalog products matching the filters, newest first.
	ListProducts(ctx context.Context, input ListProductsInput) ([]*entity.Product, error)

	// GetProduct fetches one product. The ID is canonicalized first, so both
	// UUIDs and legacy slugs resolve.
	GetProduct(ctx context.Context, id string) (*entity.Product, error)

	// CreateProduct adds a product to the catalog. Admin only.
	CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error)

	// UpdateProduct modifies a product. Admin only.
	UpdateProduct(ctx context.Context, input UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes a product from the catalog. Admin only.
	DeleteProduct(ctx context.Context, id string) error

	// SeedDefaults inserts the built-in starter catalog, skipping products
	// that already exist. Used by the seed command.
	SeedDefaults(ctx context.Context) (int, error)
}
