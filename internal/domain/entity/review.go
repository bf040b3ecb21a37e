package entity

import "time"

// RatingScale is the upper bound of the rating range, used to normalize
// ratings into [0, 1] for sentiment comparison.
const RatingScale = 5.0

// Review is a single product review. Its identity is independent of the
// position it occupied in the source row, which is what makes re-ingestion
// idempotent: an upsert by ID overwrites every non-key field.
type Review struct {
	ID             string     // Natural key from the source dataset.
	ProductID      string     // Owning product; upserted before the review within a record.
	UserID         string     // Owning user; upserted before the review within a record.
	Title          string     // Review headline; empty when absent at this row index.
	Content        string     // Review body; empty when absent at this row index.
	Rating         *float64   // Clamped to [1.0, 5.0] at ingestion; nil when the source had none.
	SentimentScore *float64   // Pre-computed sentiment, opaque range; nil when absent.
	SentimentLabel string     // Pre-computed sentiment category; empty when absent.
	ReviewLength   int        // Character count of Content, 0 when absent.
	ReviewDate     *time.Time // Creation date; the source dataset does not carry one.
}

// ReviewWithUser is a read model pairing a review with its author's name,
// used by the paginated product review listing.
type ReviewWithUser struct {
	Review
	UserName string
}

// ReviewWithProduct is the joined read model the aggregation engine consumes:
// one row per review, resolved to its owning product.
type ReviewWithProduct struct {
	Review
	Product Product
}
