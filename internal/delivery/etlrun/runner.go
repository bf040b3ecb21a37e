// Package etlrun contains the one-shot batch delivery that loads the
// denormalized review export and ingests it into the store.
package etlrun

import (
	"context"
	"log/slog"

	"reviewpulse/config"
	"reviewpulse/internal/delivery"
	"reviewpulse/internal/infra/dataset"
	"reviewpulse/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RunnerParams holds dependencies for the ETL runner
type RunnerParams struct {
	fx.In
	fx.Shutdowner

	Config   *config.Config
	Logger   *slog.Logger
	IngestUC usecase.IngestUsecase
}

type etlRunner struct {
	cfg        *config.Config
	logger     *slog.Logger
	ingestUC   usecase.IngestUsecase
	shutdowner fx.Shutdowner
}

// NewRunner creates the batch ingestion delivery.
func NewRunner(params RunnerParams) (delivery.Delivery, error) {
	if params.Config.ETL == nil || params.Config.ETL.CSVPath == "" {
		return nil, errors.New("etl.csvPath config is required")
	}

	return &etlRunner{
		cfg:        params.Config,
		logger:     params.Logger,
		ingestUC:   params.IngestUC,
		shutdowner: params.Shutdowner,
	}, nil
}

// Serve runs one ingestion pass over the configured export and then
// triggers application shutdown.
func (r *etlRunner) Serve(ctx context.Context) error {
	defer func() {
		if err := r.shutdowner.Shutdown(); err != nil {
			r.logger.Error("Failed to shutdown after ingestion", slog.Any("error", err))
		}
	}()

	r.logger.Info("Starting ingestion run", slog.String("csvPath", r.cfg.ETL.CSVPath))

	records, err := dataset.NewCSVLoader(r.cfg.ETL.CSVPath).Load()
	if err != nil {
		return errors.Wrap(err, "failed to load review export")
	}

	report, err := r.ingestUC.IngestRecords(ctx, records)
	if err != nil {
		return errors.Wrap(err, "ingestion run failed")
	}

	r.logger.Info("Ingestion report",
		slog.Int("recordsProcessed", report.RecordsProcessed),
		slog.Int("recordsRejected", report.RecordsRejected),
		slog.Int("productsUpserted", report.ProductsUpserted),
		slog.Int("usersUpserted", report.UsersUpserted),
		slog.Int("reviewsUpserted", report.ReviewsUpserted),
	)

	return nil
}
