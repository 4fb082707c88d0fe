// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
)

// ErrBlobNotFound is returned by BlobStore.Get when no payload exists for a key.
var ErrBlobNotFound = errors.New("blob not found")

// BlobStore is a string-keyed store of opaque serialized payloads. It backs the
// per-identity cart and wishlist partitions, keyed as "{namespace}_{scopeKey}".
//
// Implementations need no concurrency control across keys: each partition has a
// single in-process writer at a time, enforced by the owning container.
type BlobStore interface {
	// Get returns the payload stored under key, or ErrBlobNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores payload under key, replacing any previous value.
	Set(ctx context.Context, key string, payload []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
