// Package storage implements the durable keyed stores backing the cart and
// wishlist containers. Payloads are JSON lists partitioned per identity scope.
package storage

import (
	"context"
	"encoding/json"
	"log/slog"

	"veggiemarket/internal/domain/repository"

	"github.com/pkg/errors"
)

// ScopedStore persists typed lists under "{namespace}_{scopeKey}" keys in a
// BlobStore. One instance serves one namespace across all scopes.
type ScopedStore[T any] struct {
	namespace string
	blobs     repository.BlobStore
	logger    *slog.Logger
}

// NewScopedStore creates a store for the given namespace.
func NewScopedStore[T any](namespace string, blobs repository.BlobStore, logger *slog.Logger) *ScopedStore[T] {
	return &ScopedStore[T]{
		namespace: namespace,
		blobs:     blobs,
		logger:    logger,
	}
}

// Key returns the blob key for a scope.
func (s *ScopedStore[T]) Key(scopeKey string) string {
	return s.namespace + "_" + scopeKey
}

// Load reads the list stored for a scope. A missing key yields an empty list.
// Unparseable payloads fail soft: the corrupt entry is deleted and treated as
// empty, never surfaced to the caller.
func (s *ScopedStore[T]) Load(ctx context.Context, scopeKey string) ([]T, error) {
	key := s.Key(scopeKey)

	payload, err := s.blobs.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrBlobNotFound) {
			return nil, nil
		}

		return nil, errors.Wrapf(err, "failed to load %s", key)
	}

	var values []T
	if err := json.Unmarshal(payload, &values); err != nil {
		s.logger.Warn("Discarding corrupt stored payload",
			slog.String("key", key),
			slog.Any("error", err),
		)
		if delErr := s.blobs.Delete(ctx, key); delErr != nil {
			s.logger.Warn("Failed to delete corrupt payload", slog.String("key", key), slog.Any("error", delErr))
		}

		return nil, nil
	}

	return values, nil
}

// Save writes the list for a scope. An empty list removes the key instead of
// storing an empty payload, keeping "empty" and "absent" indistinguishable.
func (s *ScopedStore[T]) Save(ctx context.Context, scopeKey string, values []T) error {
	key := s.Key(scopeKey)

	if len(values) == 0 {
		return errors.Wrapf(s.blobs.Delete(ctx, key), "failed to clear %s", key)
	}

	payload, err := json.Marshal(values)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", key)
	}

	return errors.Wrapf(s.blobs.Set(ctx, key, payload), "failed to save %s", key)
}

// Clear removes the scope's entry entirely.
func (s *ScopedStore[T]) Clear(ctx context.Context, scopeKey string) error {
	key := s.Key(scopeKey)

	return errors.Wrapf(s.blobs.Delete(ctx, key), "failed to clear %s", key)
}
