package storage

import (
	"context"

	"veggiemarket/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// redisStore is a BlobStore backed by a shared Redis instance, for
// deployments where several service replicas must see the same carts.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore verifies connectivity before returning the store so a
// misconfigured address fails at startup rather than on first request.
func NewRedisStore(ctx context.Context, client *redis.Client) (repository.BlobStore, error) {
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to ping redis")
	}

	return &redisStore{client: client}, nil
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrBlobNotFound
		}

		return nil, errors.Wrapf(err, "failed to read blob %s", key)
	}

	return payload, nil
}

func (s *redisStore) Set(ctx context.Context, key string, payload []byte) error {
	// Blobs live until explicitly cleared, matching file storage semantics.
	if err := s.client.Set(ctx, key, payload, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to store blob %s", key)
	}

	return nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrapf(err, "failed to delete blob %s", key)
	}

	return nil
}
