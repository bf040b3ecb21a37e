package main

import (
	"context"
	"log/slog"
	"os"

	"reviewpulse/config"
	"reviewpulse/internal/delivery"
	"reviewpulse/internal/delivery/etlrun"
	"reviewpulse/internal/etl"
	"reviewpulse/internal/infra/cache"
	logs "reviewpulse/internal/infra/log"
	"reviewpulse/internal/infra/persistence/postgres"
	"reviewpulse/internal/usecase/impl"

	"go.uber.org/fx"
)

type startRunnerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(
			startRunner,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			cache.NewCacheRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			etl.NewNormalizer,
			impl.NewIngestService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				etlrun.NewRunner,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startRunner(ctx context.Context, params startRunnerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Ingestion run failed", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
