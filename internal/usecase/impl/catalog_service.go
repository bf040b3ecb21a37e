package impl

import (
	"context"
	"log/slog"
	"strings"

	"reviewpulse/internal/domain/entity"
	domainerrors "reviewpulse/internal/domain/errors"
	"reviewpulse/internal/domain/repository"
	"reviewpulse/internal/errors"
	"reviewpulse/internal/usecase"
)

// SearchLimit caps the number of products a name search returns.
const SearchLimit = 20

type catalogService struct {
	logger      *slog.Logger
	productRepo repository.ProductRepository
	reviewRepo  repository.ReviewRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(
	logger *slog.Logger,
	productRepo repository.ProductRepository,
	reviewRepo repository.ReviewRepository,
) usecase.CatalogUsecase {
	return &catalogService{
		logger:      logger,
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
	}
}

// SearchProducts finds products whose name contains every word of the query.
func (srv *catalogService) SearchProducts(ctx context.Context, query string) ([]*usecase.ProductSummary, error) {
	words := strings.Fields(query)
	if len(words) == 0 {
		return []*usecase.ProductSummary{}, nil
	}

	products, err := srv.productRepo.SearchByName(ctx, words, SearchLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	summaries := make([]*usecase.ProductSummary, len(products))
	for i, product := range products {
		summaries[i] = toProductSummary(product)
	}

	return summaries, nil
}

// GetProduct retrieves one product with its review aggregates.
func (srv *catalogService) GetProduct(ctx context.Context, productID string) (*usecase.ProductSummary, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductSummary(product), nil
}

// GetProductReviews retrieves one page of a product's reviews, highest
// rated first.
func (srv *catalogService) GetProductReviews(ctx context.Context, productID string, limit, offset int) (*usecase.ReviewPage, error) {
	if limit <= 0 {
		limit = 5
	}
	if offset < 0 {
		offset = 0
	}

	reviews, err := srv.reviewRepo.FindByProduct(ctx, productID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product reviews")
	}

	total, err := srv.reviewRepo.CountByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count product reviews")
	}

	items := make([]*usecase.ReviewItem, len(reviews))
	for i, review := range reviews {
		items[i] = toReviewItem(review)
	}

	return &usecase.ReviewPage{
		Reviews: items,
		Total:   int(total),
		Limit:   limit,
		Offset:  offset,
		HasMore: offset+len(items) < int(total),
	}, nil
}

func toProductSummary(product *entity.ProductWithStats) *usecase.ProductSummary {
	return &usecase.ProductSummary{
		ProductID:       product.ID,
		ProductName:     product.Name,
		Category:        product.Category,
		ActualPrice:     product.ActualPrice,
		DiscountedPrice: product.DiscountedPrice,
		DiscountPct:     product.DiscountPct,
		AboutProduct:    product.About,
		ImgLink:         product.ImageLink,
		ProductLink:     product.ProductLink,
		AvgRating:       product.AvgRating,
		ReviewCount:     product.ReviewCount,
	}
}

func toReviewItem(review *entity.ReviewWithUser) *usecase.ReviewItem {
	item := &usecase.ReviewItem{
		ReviewID:       review.ID,
		ReviewTitle:    review.Title,
		ReviewContent:  review.Content,
		SentimentLabel: review.SentimentLabel,
		UserName:       review.UserName,
	}
	if review.Rating != nil {
		item.Rating = *review.Rating
	}

	return item
}
