package impl

import (
	"io"
	"log/slog"

	"veggiemarket/config"
	"veggiemarket/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
		},
		Checkout: &config.CheckoutConfig{
			TaxRate:               0.18,
			ShippingFee:           99,
			FreeShippingThreshold: 1000,
		},
	}
}

func testProduct(slug, name string, price float64) *entity.Product {
	return &entity.Product{
		ID:       entity.CanonicalProductID(slug),
		Name:     name,
		Price:    price,
		Stock:    50,
		Category: "vegetables",
		Unit:     "kg",
	}
}
