// Package constants defines shared domain-level constant values.
package constants

const (
	// GuestScopeKey is the storage scope used for carts and wishlists of
	// unauthenticated visitors.
	GuestScopeKey = "guest"

	// CartNamespace is the blob-store namespace for cart payloads.
	CartNamespace = "cart"

	// WishlistNamespace is the blob-store namespace for wishlist payloads.
	WishlistNamespace = "wishlist"
)

// Blob store providers selectable via configuration.
const (
	StorageProviderFile   = "file"
	StorageProviderRedis  = "redis"
	StorageProviderMemory = "memory"
)

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers selectable via configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Order event types published on the order topic.
const (
	OrderEventPlaced        = "order.placed"
	OrderEventStatusChanged = "order.status_changed"
)
