package usecase

import (
	"context"

	"reviewpulse/internal/etl"
)

// IngestReport summarizes one ingestion run over a batch of source records.
type IngestReport struct {
	RecordsProcessed int `json:"records_processed"`
	RecordsRejected  int `json:"records_rejected"`
	ProductsUpserted int `json:"products_upserted"`
	UsersUpserted    int `json:"users_upserted"`
	ReviewsUpserted  int `json:"reviews_upserted"`
}

// IngestUsecase defines the interface for loading source records into the store
type IngestUsecase interface {
	// IngestRecords normalizes a batch of source records and upserts the
	// resulting entities. Structurally broken records are counted and
	// skipped; the batch continues. Re-running over the same batch is
	// idempotent.
	IngestRecords(ctx context.Context, records []etl.SourceRecord) (*IngestReport, error)
}
