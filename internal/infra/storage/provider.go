package storage

import (
	"context"
	"log/slog"

	"veggiemarket/config"
	"veggiemarket/internal/domain/constants"
	"veggiemarket/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// BlobStoreParams holds dependencies for the BlobStore, injected by Fx
type BlobStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStore creates a BlobStore based on configuration
func NewBlobStore(params BlobStoreParams) (repository.BlobStore, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Storage not configured, using in-memory store")

		return NewMemoryStore(), nil
	}

	switch cfg.Provider {
	case constants.StorageProviderMemory:
		logger.Info("Using in-memory blob store")

		return NewMemoryStore(), nil

	case constants.StorageProviderFile:
		if cfg.DataPath == "" {
			return nil, errors.New("data path is required for file provider")
		}
		logger.Info("Using file blob store",
			slog.String("data_path", cfg.DataPath),
		)

		return NewFileStore(cfg.DataPath)

	case constants.StorageProviderRedis:
		if cfg.Redis == nil || cfg.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis provider")
		}
		logger.Info("Using redis blob store",
			slog.String("addr", cfg.Redis.Addr),
		)

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		store, err := NewRedisStore(params.Ctx, client)
		if err != nil {
			return nil, err
		}

		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				logger.Info("Closing redis blob store")

				return client.Close()
			},
		})

		return store, nil

	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewBlobStore),
)
