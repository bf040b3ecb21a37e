package usecase

import "context"

// RankedProduct is one entry of a per-bucket top product list.
type RankedProduct struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	AvgRating   float64 `json:"avg_rating"`
	ReviewCount int     `json:"review_count"`
}

// CategoryRatingBucket is one row of the top-rated-by-category report.
type CategoryRatingBucket struct {
	Category     string           `json:"category"`
	AvgRating    float64          `json:"avg_rating"`
	ReviewCount  int              `json:"review_count"`
	ProductCount int              `json:"product_count"`
	TopProducts  []*RankedProduct `json:"top_products"`
}

// CategorySentimentBucket is one row of the sentiment-by-category report.
type CategorySentimentBucket struct {
	Category     string           `json:"category"`
	AvgSentiment float64          `json:"avg_sentiment"`
	AvgRating    float64          `json:"avg_rating"`
	ReviewCount  int              `json:"review_count"`
	ProductCount int              `json:"product_count"`
	TopProducts  []*RankedProduct `json:"top_products"`
}

// PriceRangeBucket is one row of the sentiment-by-price-range report.
type PriceRangeBucket struct {
	PriceRange   string           `json:"price_range"`
	AvgSentiment float64          `json:"avg_sentiment"`
	AvgRating    float64          `json:"avg_rating"`
	ReviewCount  int              `json:"review_count"`
	TopProducts  []*RankedProduct `json:"top_products"`
}

// LengthBucket is one row of the review-length-rating report.
type LengthBucket struct {
	LengthCategory string           `json:"length_category"`
	AvgRating      float64          `json:"avg_rating"`
	AvgSentiment   float64          `json:"avg_sentiment"`
	AvgLength      float64          `json:"avg_length"`
	ReviewCount    int              `json:"review_count"`
	TopProducts    []*RankedProduct `json:"top_products"`
}

// DiscountBucket is one row of the discount-review-quality report.
type DiscountBucket struct {
	DiscountRange string           `json:"discount_range"`
	AvgRating     float64          `json:"avg_rating"`
	AvgSentiment  float64          `json:"avg_sentiment"`
	ReviewCount   int              `json:"review_count"`
	ProductCount  int              `json:"product_count"`
	TopProducts   []*RankedProduct `json:"top_products"`
}

// BestValueProduct is one entry of the best-value ranking.
type BestValueProduct struct {
	ProductID       string  `json:"product_id"`
	ProductName     string  `json:"product_name"`
	Category        string  `json:"category"`
	DiscountedPrice float64 `json:"discounted_price_usd"`
	AvgRating       float64 `json:"avg_rating"`
	ReviewCount     int     `json:"review_count"`
	ValueScore      float64 `json:"value_score"`
}

// RatingVarianceProduct is one entry of the rating-variance ranking.
type RatingVarianceProduct struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	Category     string  `json:"category"`
	AvgRating    float64 `json:"avg_rating"`
	RatingStddev float64 `json:"rating_stddev"`
	ReviewCount  int     `json:"review_count"`
	MinRating    float64 `json:"min_rating"`
	MaxRating    float64 `json:"max_rating"`
}

// SentimentComparisonProduct is one entry of the sentiment-rating comparison.
type SentimentComparisonProduct struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	Category     string  `json:"category"`
	AvgRating    float64 `json:"avg_rating"`
	AvgSentiment float64 `json:"avg_sentiment"`
	ReviewCount  int     `json:"review_count"`
	Comparison   string  `json:"comparison"`
}

// AnalyticsUsecase defines the interface for the analytics reports. Every
// report is computed over a point-in-time snapshot of all reviews joined
// to their products, and cached until the next ingestion run or TTL expiry.
type AnalyticsUsecase interface {
	// TopRatedByCategory reports rating statistics per first category
	// segment, best rated category first.
	TopRatedByCategory(ctx context.Context) ([]*CategoryRatingBucket, error)

	// SentimentByCategory reports sentiment statistics per first category
	// segment, most positive category first.
	SentimentByCategory(ctx context.Context) ([]*CategorySentimentBucket, error)

	// SentimentByPriceRange reports sentiment statistics per discounted
	// price band, cheapest band first.
	SentimentByPriceRange(ctx context.Context) ([]*PriceRangeBucket, error)

	// ReviewLengthRating reports rating statistics per review length
	// band, shortest band first.
	ReviewLengthRating(ctx context.Context) ([]*LengthBucket, error)

	// DiscountReviewQuality reports rating statistics per discount band,
	// smallest discount first.
	DiscountReviewQuality(ctx context.Context) ([]*DiscountBucket, error)

	// BestValueProducts ranks products by rating per dollar.
	BestValueProducts(ctx context.Context) ([]*BestValueProduct, error)

	// RatingVariance ranks products by rating consistency.
	RatingVariance(ctx context.Context) ([]*RatingVarianceProduct, error)

	// SentimentRatingComparison ranks products by how far their average
	// sentiment diverges from their normalized average rating.
	SentimentRatingComparison(ctx context.Context) ([]*SentimentComparisonProduct, error)
}
