package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	"reviewpulse/config"
	"reviewpulse/internal/analytics"
	"reviewpulse/internal/domain/entity"
	"reviewpulse/internal/domain/repository"
	"reviewpulse/internal/errors"
	"reviewpulse/internal/usecase"
)

// Cache keys for the analytics reports. They share a prefix so the
// ingest service can drop them all with one pattern delete.
const (
	analyticsCachePattern = "analytics:*"

	cacheKeyTopRatedByCategory    = "analytics:top-rated-by-category"
	cacheKeySentimentByCategory   = "analytics:sentiment-by-category"
	cacheKeySentimentByPriceRange = "analytics:sentiment-by-price-range"
	cacheKeyReviewLengthRating    = "analytics:review-length-rating"
	cacheKeyDiscountReviewQuality = "analytics:discount-review-quality"
	cacheKeyBestValueProducts     = "analytics:best-value-products"
	cacheKeyRatingVariance        = "analytics:rating-variance"
	cacheKeySentimentComparison   = "analytics:sentiment-rating-comparison"
)

type analyticsService struct {
	logger     *slog.Logger
	reviewRepo repository.ReviewRepository
	cache      repository.CacheRepository
	topK       int
}

// NewAnalyticsService creates a new analytics service instance
func NewAnalyticsService(
	logger *slog.Logger,
	cfg *config.Config,
	reviewRepo repository.ReviewRepository,
	cache repository.CacheRepository,
) usecase.AnalyticsUsecase {
	topK := analytics.DefaultTopK
	if cfg.Analytics != nil && cfg.Analytics.TopProducts > 0 {
		topK = cfg.Analytics.TopProducts
	}

	return &analyticsService{
		logger:     logger,
		reviewRepo: reviewRepo,
		cache:      cache,
		topK:       topK,
	}
}

// TopRatedByCategory reports rating statistics per first category segment.
func (srv *analyticsService) TopRatedByCategory(ctx context.Context) ([]*usecase.CategoryRatingBucket, error) {
	return loadCached(ctx, srv, cacheKeyTopRatedByCategory, func(data []*entity.ReviewWithProduct) []*usecase.CategoryRatingBucket {
		buckets := analytics.TopRatedByCategory(data, srv.topK)

		results := make([]*usecase.CategoryRatingBucket, len(buckets))
		for i, bucket := range buckets {
			results[i] = &usecase.CategoryRatingBucket{
				Category:     bucket.Bucket,
				AvgRating:    bucket.AvgRating,
				ReviewCount:  bucket.ReviewCount,
				ProductCount: bucket.ProductCount,
				TopProducts:  toRankedProducts(bucket.TopProducts),
			}
		}

		return results
	})
}

// SentimentByCategory reports sentiment statistics per first category segment.
func (srv *analyticsService) SentimentByCategory(ctx context.Context) ([]*usecase.CategorySentimentBucket, error) {
	return loadCached(ctx, srv, cacheKeySentimentByCategory, func(data []*entity.ReviewWithProduct) []*usecase.CategorySentimentBucket {
		buckets := analytics.SentimentByCategory(data, srv.topK)

		results := make([]*usecase.CategorySentimentBucket, len(buckets))
		for i, bucket := range buckets {
			results[i] = &usecase.CategorySentimentBucket{
				Category:     bucket.Bucket,
				AvgSentiment: bucket.AvgSentiment,
				AvgRating:    bucket.AvgRating,
				ReviewCount:  bucket.ReviewCount,
				ProductCount: bucket.ProductCount,
				TopProducts:  toRankedProducts(bucket.TopProducts),
			}
		}

		return results
	})
}

// SentimentByPriceRange reports sentiment statistics per price band.
func (srv *analyticsService) SentimentByPriceRange(ctx context.Context) ([]*usecase.PriceRangeBucket, error) {
	return loadCached(ctx, srv, cacheKeySentimentByPriceRange, func(data []*entity.ReviewWithProduct) []*usecase.PriceRangeBucket {
		buckets := analytics.SentimentByPriceRange(data, srv.topK)

		results := make([]*usecase.PriceRangeBucket, len(buckets))
		for i, bucket := range buckets {
			results[i] = &usecase.PriceRangeBucket{
				PriceRange:   bucket.Bucket,
				AvgSentiment: bucket.AvgSentiment,
				AvgRating:    bucket.AvgRating,
				ReviewCount:  bucket.ReviewCount,
				TopProducts:  toRankedProducts(bucket.TopProducts),
			}
		}

		return results
	})
}

// ReviewLengthRating reports rating statistics per review length band.
func (srv *analyticsService) ReviewLengthRating(ctx context.Context) ([]*usecase.LengthBucket, error) {
	return loadCached(ctx, srv, cacheKeyReviewLengthRating, func(data []*entity.ReviewWithProduct) []*usecase.LengthBucket {
		buckets := analytics.ReviewLengthRating(data, srv.topK)

		results := make([]*usecase.LengthBucket, len(buckets))
		for i, bucket := range buckets {
			results[i] = &usecase.LengthBucket{
				LengthCategory: bucket.Bucket,
				AvgRating:      bucket.AvgRating,
				AvgSentiment:   bucket.AvgSentiment,
				AvgLength:      bucket.AvgLength,
				ReviewCount:    bucket.ReviewCount,
				TopProducts:    toRankedProducts(bucket.TopProducts),
			}
		}

		return results
	})
}

// DiscountReviewQuality reports rating statistics per discount band.
func (srv *analyticsService) DiscountReviewQuality(ctx context.Context) ([]*usecase.DiscountBucket, error) {
	return loadCached(ctx, srv, cacheKeyDiscountReviewQuality, func(data []*entity.ReviewWithProduct) []*usecase.DiscountBucket {
		buckets := analytics.DiscountReviewQuality(data, srv.topK)

		results := make([]*usecase.DiscountBucket, len(buckets))
		for i, bucket := range buckets {
			results[i] = &usecase.DiscountBucket{
				DiscountRange: bucket.Bucket,
				AvgRating:     bucket.AvgRating,
				AvgSentiment:  bucket.AvgSentiment,
				ReviewCount:   bucket.ReviewCount,
				ProductCount:  bucket.ProductCount,
				TopProducts:   toRankedProducts(bucket.TopProducts),
			}
		}

		return results
	})
}

// BestValueProducts ranks products by rating per dollar.
func (srv *analyticsService) BestValueProducts(ctx context.Context) ([]*usecase.BestValueProduct, error) {
	return loadCached(ctx, srv, cacheKeyBestValueProducts, func(data []*entity.ReviewWithProduct) []*usecase.BestValueProduct {
		ranked := analytics.BestValueProducts(data, analytics.BestValueLimit)

		results := make([]*usecase.BestValueProduct, len(ranked))
		for i, product := range ranked {
			results[i] = &usecase.BestValueProduct{
				ProductID:       product.ProductID,
				ProductName:     product.ProductName,
				Category:        product.Category,
				DiscountedPrice: product.DiscountedPrice,
				AvgRating:       product.AvgRating,
				ReviewCount:     product.ReviewCount,
				ValueScore:      product.ValueScore,
			}
		}

		return results
	})
}

// RatingVariance ranks products by rating consistency.
func (srv *analyticsService) RatingVariance(ctx context.Context) ([]*usecase.RatingVarianceProduct, error) {
	return loadCached(ctx, srv, cacheKeyRatingVariance, func(data []*entity.ReviewWithProduct) []*usecase.RatingVarianceProduct {
		ranked := analytics.RatingConsistency(data, analytics.ConsistencyLimit)

		results := make([]*usecase.RatingVarianceProduct, len(ranked))
		for i, product := range ranked {
			results[i] = &usecase.RatingVarianceProduct{
				ProductID:    product.ProductID,
				ProductName:  product.ProductName,
				Category:     product.Category,
				AvgRating:    product.AvgRating,
				RatingStddev: product.RatingStddev,
				ReviewCount:  product.ReviewCount,
				MinRating:    product.MinRating,
				MaxRating:    product.MaxRating,
			}
		}

		return results
	})
}

// SentimentRatingComparison ranks products by sentiment/rating divergence.
func (srv *analyticsService) SentimentRatingComparison(ctx context.Context) ([]*usecase.SentimentComparisonProduct, error) {
	return loadCached(ctx, srv, cacheKeySentimentComparison, func(data []*entity.ReviewWithProduct) []*usecase.SentimentComparisonProduct {
		ranked := analytics.SentimentRatingComparison(data, analytics.DivergenceLimit)

		results := make([]*usecase.SentimentComparisonProduct, len(ranked))
		for i, product := range ranked {
			results[i] = &usecase.SentimentComparisonProduct{
				ProductID:    product.ProductID,
				ProductName:  product.ProductName,
				Category:     product.Category,
				AvgRating:    product.AvgRating,
				AvgSentiment: product.AvgSentiment,
				ReviewCount:  product.ReviewCount,
				Comparison:   product.Comparison,
			}
		}

		return results
	})
}

func toRankedProducts(ranked []analytics.ProductRank) []*usecase.RankedProduct {
	results := make([]*usecase.RankedProduct, len(ranked))
	for i, product := range ranked {
		results[i] = &usecase.RankedProduct{
			ProductID:   product.ProductID,
			ProductName: product.ProductName,
			AvgRating:   product.AvgRating,
			ReviewCount: product.ReviewCount,
		}
	}

	return results
}

// loadCached serves a report from the cache when possible, otherwise
// computes it over a fresh review snapshot and stores the result. Cache
// failures degrade to recomputation, never to a request failure.
func loadCached[T any](
	ctx context.Context,
	srv *analyticsService,
	key string,
	compute func(data []*entity.ReviewWithProduct) []*T,
) ([]*T, error) {
	if raw, err := srv.cache.Get(ctx, key); err == nil {
		var cached []*T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		srv.logger.Warn("Dropping undecodable cached report", "key", key)
	} else if !errors.Is(err, repository.ErrCacheMiss) {
		srv.logger.Warn("Analytics cache read failed", "key", key, "error", err.Error())
	}

	data, err := srv.reviewRepo.ListWithProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load review snapshot")
	}

	results := compute(data)

	if raw, err := json.Marshal(results); err == nil {
		if err := srv.cache.Set(ctx, key, raw); err != nil {
			srv.logger.Warn("Analytics cache write failed", "key", key, "error", err.Error())
		}
	}

	return results, nil
}
