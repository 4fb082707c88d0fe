// Command seed inserts the starter catalog. Re-running it is safe: products
// that already exist are skipped.
package main

import (
	"context"
	"log/slog"
	"os"

	"veggiemarket/config"
	logs "veggiemarket/internal/infra/log"
	"veggiemarket/internal/infra/persistence/postgres"
	"veggiemarket/internal/usecase"
	"veggiemarket/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewProductRepository,
			postgres.NewTransactionManager,
			impl.NewProductService,
		),
		fx.Invoke(runSeed),
	).Run()
}

func runSeed(lc fx.Lifecycle, shutdowner fx.Shutdowner, logger *slog.Logger, productUC usecase.ProductUsecase) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Seed after the DB connection is up, then exit.
			go func() {
				inserted, err := productUC.SeedDefaults(context.Background())
				if err != nil {
					logger.Error("Failed to seed catalog", slog.Any("error", err))

					if shutdownErr := shutdowner.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
						logger.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
						os.Exit(1)
					}

					return
				}

				logger.Info("Catalog seeded", slog.Int("inserted", inserted))

				if err := shutdowner.Shutdown(); err != nil {
					logger.Error("Failed to shutdown gracefully", slog.Any("error", err))
					os.Exit(1)
				}
			}()

			return nil
		},
	})
}
