package impl

import (
	"context"
	"log/slog"

	"reviewpulse/internal/domain/repository"
	"reviewpulse/internal/errors"
	"reviewpulse/internal/etl"
	"reviewpulse/internal/usecase"
)

type ingestService struct {
	logger     *slog.Logger
	normalizer *etl.Normalizer
	txManager  repository.TransactionManager
	cache      repository.CacheRepository
}

// NewIngestService creates a new ingest service instance
func NewIngestService(
	logger *slog.Logger,
	normalizer *etl.Normalizer,
	txManager repository.TransactionManager,
	cache repository.CacheRepository,
) usecase.IngestUsecase {
	return &ingestService{
		logger:     logger,
		normalizer: normalizer,
		txManager:  txManager,
		cache:      cache,
	}
}

// IngestRecords normalizes a batch of source records and upserts the
// resulting entities record by record. Each record runs in its own
// transaction with the product and user upserts ahead of the review
// upserts, so referential integrity holds within the record.
func (srv *ingestService) IngestRecords(ctx context.Context, records []etl.SourceRecord) (*usecase.IngestReport, error) {
	report := &usecase.IngestReport{}

	for i, record := range records {
		normalized, err := srv.normalizer.Normalize(record)
		if err != nil {
			report.RecordsRejected++
			srv.logger.Warn("Rejected source record",
				"index", i,
				"error", err.Error(),
			)

			continue
		}

		if err := srv.storeRecord(ctx, normalized); err != nil {
			return nil, errors.Wrapf(err, "failed to store record %d (product %s)", i, normalized.Product.ID)
		}

		report.RecordsProcessed++
		report.ProductsUpserted++
		report.UsersUpserted += len(normalized.Users)
		report.ReviewsUpserted += len(normalized.Reviews)
	}

	if report.RecordsProcessed > 0 {
		srv.invalidateAnalytics(ctx)
	}

	srv.logger.Info("Ingestion run finished",
		"processed", report.RecordsProcessed,
		"rejected", report.RecordsRejected,
		"reviews", report.ReviewsUpserted,
	)

	return report, nil
}

func (srv *ingestService) storeRecord(ctx context.Context, normalized *etl.NormalizedRecord) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()
		userRepo := repoFactory.NewUserRepository()
		reviewRepo := repoFactory.NewReviewRepository()

		if err := productRepo.Upsert(ctx, normalized.Product); err != nil {
			return errors.Wrap(err, "failed to upsert product")
		}

		// Users and Reviews are co-indexed; the user always lands first.
		for i, review := range normalized.Reviews {
			if err := userRepo.Upsert(ctx, normalized.Users[i]); err != nil {
				return errors.Wrap(err, "failed to upsert user")
			}
			if err := reviewRepo.Upsert(ctx, review); err != nil {
				return errors.Wrap(err, "failed to upsert review")
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "record transaction failed")
	}

	return nil
}

// invalidateAnalytics drops cached analytics after new data lands. A
// failure here only delays freshness until TTL expiry, so it is logged
// and swallowed.
func (srv *ingestService) invalidateAnalytics(ctx context.Context) {
	if err := srv.cache.DeletePattern(ctx, analyticsCachePattern); err != nil {
		srv.logger.Warn("Failed to invalidate analytics cache", "error", err.Error())
	}
}
