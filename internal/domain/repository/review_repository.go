package repository

import (
	"context"

	"reviewpulse/internal/domain/entity"
)

// ReviewRepository defines the standard operations for review persistence
// and the snapshot read the aggregation engine runs on.
type ReviewRepository interface {
	// Upsert inserts the review or, when its ID already exists,
	// overwrites every non-key field with the given values.
	Upsert(ctx context.Context, review *entity.Review) error

	// FindByProduct retrieves one page of a product's reviews joined with
	// the author's display name, ordered by rating descending then review
	// ID ascending.
	FindByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.ReviewWithUser, error)

	// CountByProduct returns the total number of reviews for a product.
	CountByProduct(ctx context.Context, productID string) (int64, error)

	// ListWithProducts returns a point-in-time snapshot of every review
	// joined to its product. The aggregation engine treats the result as
	// immutable input.
	ListWithProducts(ctx context.Context) ([]*entity.ReviewWithProduct, error)
}
