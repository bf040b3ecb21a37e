package usecase

import "context"

// ProductSummary is a catalog product with its review aggregates.
type ProductSummary struct {
	ProductID       string   `json:"product_id"`
	ProductName     string   `json:"product_name"`
	Category        string   `json:"category"`
	ActualPrice     *float64 `json:"actual_price_usd"`
	DiscountedPrice *float64 `json:"discounted_price_usd"`
	DiscountPct     *float64 `json:"discount_percentage"`
	AboutProduct    string   `json:"about_product"`
	ImgLink         string   `json:"img_link"`
	ProductLink     string   `json:"product_link"`
	AvgRating       float64  `json:"avg_rating"`
	ReviewCount     int      `json:"review_count"`
}

// ReviewItem is one review of the paginated product review listing.
type ReviewItem struct {
	ReviewID       string  `json:"review_id"`
	ReviewTitle    string  `json:"review_title"`
	ReviewContent  string  `json:"review_content"`
	Rating         float64 `json:"rating"`
	SentimentLabel string  `json:"sentiment_label"`
	UserName       string  `json:"user_name"`
}

// ReviewPage is one page of a product's reviews.
type ReviewPage struct {
	Reviews []*ReviewItem `json:"reviews"`
	Total   int           `json:"total"`
	Limit   int           `json:"limit"`
	Offset  int           `json:"offset"`
	HasMore bool          `json:"has_more"`
}

// CatalogUsecase defines the interface for product lookup use cases
type CatalogUsecase interface {
	// SearchProducts finds up to 20 products whose name contains every
	// whitespace-separated word of the query. A blank query matches nothing.
	SearchProducts(ctx context.Context, query string) ([]*ProductSummary, error)

	// GetProduct retrieves one product with its review aggregates.
	GetProduct(ctx context.Context, productID string) (*ProductSummary, error)

	// GetProductReviews retrieves one page of a product's reviews,
	// highest rated first.
	GetProductReviews(ctx context.Context, productID string, limit, offset int) (*ReviewPage, error)
}
