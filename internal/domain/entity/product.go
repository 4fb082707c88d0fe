// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a single item in the storefront catalog.
type Product struct {
	ID          uuid.UUID // Canonical product identifier. Always a valid UUID; see CanonicalProductID.
	Name        string    // Display name, e.g. "Onion 1 kg".
	Description string    // Longer marketing description, may be empty.
	Price       float64   // Unit price in the store currency. Never negative.
	Stock       int       // Units currently available. Never negative.
	Image       string    // URL of the product image, may be empty.
	Category    string    // Catalog category, e.g. "vegetables", "fruits", "herbs".
	Organic     bool      // Whether the product is certified organic.
	Unit        string    // Sales unit label, e.g. "kg", "bunch", "piece".
	Discount    *float64  // Optional discount percentage. Nil when no discount applies.
	Featured    bool      // Whether the product is featured on the storefront landing page.
	CreatedAt   time.Time // Timestamp of when this product was created.
	UpdatedAt   time.Time // Timestamp of the last modification to this product.
}

// EffectivePrice returns the unit price after applying the optional discount.
func (p *Product) EffectivePrice() float64 {
	if p.Discount == nil || *p.Discount <= 0 {
		return p.Price
	}

	return p.Price * (1 - *p.Discount/100)
}

// SearchFilters narrows catalog listings. Zero values mean "no constraint".
type SearchFilters struct {
	Query    string   // Free-text match against name and description.
	Category string   // Exact category match; empty matches all.
	MinPrice *float64 // Inclusive lower price bound.
	MaxPrice *float64 // Inclusive upper price bound.
	Organic  *bool    // Filter by organic flag when set.
	Featured *bool    // Filter by featured flag when set.
}
