package analytics

import (
	"testing"

	"reviewpulse/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 {
	return &f
}

func product(id, category string, price, discount *float64) entity.Product {
	return entity.Product{
		ID:              id,
		Name:            "Product " + id,
		Category:        category,
		DiscountedPrice: price,
		DiscountPct:     discount,
	}
}

func joined(reviewID string, p entity.Product, mutate func(*entity.Review)) *entity.ReviewWithProduct {
	review := entity.Review{ID: reviewID, ProductID: p.ID}
	if mutate != nil {
		mutate(&review)
	}

	return &entity.ReviewWithProduct{Review: review, Product: p}
}

func withRating(rating float64) func(*entity.Review) {
	return func(r *entity.Review) {
		r.Rating = ptr(rating)
	}
}

func TestTopRatedByCategory(t *testing.T) {
	t.Parallel()

	cables := product("P1", "Electronics|Cables|USB", nil, nil)
	monitors := product("P2", "Electronics|Monitors", nil, nil)
	kettle := product("P3", "Home|Kitchen", nil, nil)
	orphan := product("P4", "", nil, nil)

	data := []*entity.ReviewWithProduct{
		joined("r1", cables, withRating(4.0)),
		joined("r2", cables, withRating(5.0)),
		joined("r3", monitors, withRating(3.0)),
		// Counted in review totals but not in the rating average.
		joined("r4", monitors, nil),
		joined("r5", kettle, withRating(5.0)),
		joined("r6", orphan, withRating(5.0)),
	}

	results := TopRatedByCategory(data, DefaultTopK)
	require.Len(t, results, 2)

	// Descending average rating: Home 5.0 before Electronics 4.0.
	home := results[0]
	assert.Equal(t, "Home", home.Bucket)
	assert.InDelta(t, 5.0, home.AvgRating, 1e-9)
	assert.Equal(t, 1, home.ReviewCount)
	assert.Equal(t, 1, home.ProductCount)

	electronics := results[1]
	assert.Equal(t, "Electronics", electronics.Bucket)
	assert.InDelta(t, 4.0, electronics.AvgRating, 1e-9)
	assert.Equal(t, 4, electronics.ReviewCount)
	assert.Equal(t, 2, electronics.ProductCount)

	require.Len(t, electronics.TopProducts, 2)
	assert.Equal(t, "P1", electronics.TopProducts[0].ProductID)
	assert.InDelta(t, 4.5, electronics.TopProducts[0].AvgRating, 1e-9)
	assert.Equal(t, 2, electronics.TopProducts[0].ReviewCount)
	assert.Equal(t, "P2", electronics.TopProducts[1].ProductID)
	assert.Equal(t, 2, electronics.TopProducts[1].ReviewCount)
}

func TestTopRatedByCategory_TopKLimit(t *testing.T) {
	t.Parallel()

	var data []*entity.ReviewWithProduct
	for _, id := range []string{"P1", "P2", "P3"} {
		data = append(data, joined("r-"+id, product(id, "Electronics", nil, nil), withRating(4.0)))
	}

	results := TopRatedByCategory(data, 2)
	require.Len(t, results, 1)
	assert.Len(t, results[0].TopProducts, 2)

	// Fewer distinct products than K reports them all.
	results = TopRatedByCategory(data, 10)
	require.Len(t, results, 1)
	assert.Len(t, results[0].TopProducts, 3)
}

func TestTopProducts_TieBreaks(t *testing.T) {
	t.Parallel()

	a := product("PA", "Electronics", nil, nil)
	b := product("PB", "Electronics", nil, nil)
	c := product("PC", "Electronics", nil, nil)

	data := []*entity.ReviewWithProduct{
		// PB and PC tie on average rating; PB has more reviews.
		joined("r1", b, withRating(4.0)),
		joined("r2", b, withRating(4.0)),
		joined("r3", c, withRating(4.0)),
		// PA ties PC exactly; product ID decides.
		joined("r4", a, withRating(4.0)),
	}

	results := TopRatedByCategory(data, DefaultTopK)
	require.Len(t, results, 1)

	top := results[0].TopProducts
	require.Len(t, top, 3)
	assert.Equal(t, "PB", top[0].ProductID)
	assert.Equal(t, "PA", top[1].ProductID)
	assert.Equal(t, "PC", top[2].ProductID)
}

func TestSentimentByCategory(t *testing.T) {
	t.Parallel()

	cables := product("P1", "Electronics|Cables", nil, nil)
	kettle := product("P2", "Home|Kitchen", nil, nil)

	data := []*entity.ReviewWithProduct{
		joined("r1", cables, func(r *entity.Review) {
			r.Rating = ptr(4.0)
			r.SentimentScore = ptr(0.9)
		}),
		joined("r2", kettle, func(r *entity.Review) {
			r.Rating = ptr(5.0)
			r.SentimentScore = ptr(0.4)
		}),
		// No sentiment score: excluded from summary and ranking.
		joined("r3", kettle, withRating(1.0)),
	}

	results := SentimentByCategory(data, DefaultTopK)
	require.Len(t, results, 2)

	// Descending average sentiment.
	assert.Equal(t, "Electronics", results[0].Bucket)
	assert.InDelta(t, 0.9, results[0].AvgSentiment, 1e-9)

	home := results[1]
	assert.Equal(t, "Home", home.Bucket)
	assert.Equal(t, 1, home.ReviewCount)
	require.Len(t, home.TopProducts, 1)
	assert.InDelta(t, 5.0, home.TopProducts[0].AvgRating, 1e-9)
	assert.Equal(t, 1, home.TopProducts[0].ReviewCount)
}

func TestSentimentByPriceRange(t *testing.T) {
	t.Parallel()

	cheap := product("P1", "Electronics", ptr(10), nil)
	mid := product("P2", "Electronics", ptr(50), nil)
	unpriced := product("P3", "Electronics", nil, nil)

	data := []*entity.ReviewWithProduct{
		joined("r1", mid, func(r *entity.Review) {
			r.Rating = ptr(3.0)
			r.SentimentScore = ptr(0.2)
		}),
		joined("r2", cheap, func(r *entity.Review) {
			r.Rating = ptr(4.0)
			r.SentimentScore = ptr(0.8)
		}),
		// No sentiment: out of the summary, still ranked in its band.
		joined("r3", cheap, withRating(2.0)),
		// No price: excluded entirely.
		joined("r4", unpriced, func(r *entity.Review) {
			r.Rating = ptr(5.0)
			r.SentimentScore = ptr(0.9)
		}),
	}

	results := SentimentByPriceRange(data, DefaultTopK)
	require.Len(t, results, 2)

	// Fixed ascending band order, not sentiment order.
	low := results[0]
	assert.Equal(t, "$0-$50", low.Bucket)
	assert.Equal(t, 1, low.ReviewCount)
	assert.InDelta(t, 0.8, low.AvgSentiment, 1e-9)

	// Boundary value 50 falls in the next band.
	assert.Equal(t, "$50-$150", results[1].Bucket)

	// Ranking covers the whole band, sentiment or not.
	require.Len(t, low.TopProducts, 1)
	assert.Equal(t, "P1", low.TopProducts[0].ProductID)
	assert.Equal(t, 2, low.TopProducts[0].ReviewCount)
	assert.InDelta(t, 3.0, low.TopProducts[0].AvgRating, 1e-9)
}

func TestReviewLengthRating(t *testing.T) {
	t.Parallel()

	p := product("P1", "Electronics", nil, nil)

	withLength := func(rating float64, length int) func(*entity.Review) {
		return func(r *entity.Review) {
			r.Rating = ptr(rating)
			r.ReviewLength = length
		}
	}

	data := []*entity.ReviewWithProduct{
		joined("r1", p, withLength(4.0, 99)),
		joined("r2", p, withLength(3.0, 100)),
		joined("r3", p, withLength(5.0, 500)),
		joined("r4", p, withLength(2.0, 1000)),
		// No rating: excluded.
		joined("r5", p, func(r *entity.Review) { r.ReviewLength = 50 }),
	}

	results := ReviewLengthRating(data, DefaultTopK)
	require.Len(t, results, 4)

	assert.Equal(t, "Short (<100 chars)", results[0].Bucket)
	assert.Equal(t, "Medium (100-500 chars)", results[1].Bucket)
	assert.Equal(t, "Long (500-1000 chars)", results[2].Bucket)
	assert.Equal(t, "Very Long (1000+ chars)", results[3].Bucket)

	assert.Equal(t, 1, results[0].ReviewCount)
	assert.InDelta(t, 99, results[0].AvgLength, 1e-9)
	assert.InDelta(t, 3.0, results[1].AvgRating, 1e-9)
}

func TestDiscountReviewQuality(t *testing.T) {
	t.Parallel()

	full := product("P1", "Electronics", nil, ptr(10))
	half := product("P2", "Electronics", nil, ptr(50))
	unknown := product("P3", "Electronics", nil, nil)

	data := []*entity.ReviewWithProduct{
		joined("r1", half, withRating(2.0)),
		joined("r2", full, withRating(5.0)),
		joined("r3", unknown, withRating(4.0)),
	}

	results := DiscountReviewQuality(data, DefaultTopK)
	require.Len(t, results, 2)

	assert.Equal(t, "0-25% off", results[0].Bucket)
	assert.InDelta(t, 5.0, results[0].AvgRating, 1e-9)
	assert.Equal(t, 1, results[0].ProductCount)

	assert.Equal(t, "50-75% off", results[1].Bucket)
}

func TestBucketCompleteness(t *testing.T) {
	t.Parallel()

	// Every reported bucket must hold at least one qualifying review.
	p := product("P1", "Electronics", ptr(20), nil)
	data := []*entity.ReviewWithProduct{
		joined("r1", p, withRating(4.0)),
	}

	for name, results := range map[string][]*BucketResult{
		"top rated":      TopRatedByCategory(data, DefaultTopK),
		"sentiment":      SentimentByCategory(data, DefaultTopK),
		"price range":    SentimentByPriceRange(data, DefaultTopK),
		"review length":  ReviewLengthRating(data, DefaultTopK),
		"discount range": DiscountReviewQuality(data, DefaultTopK),
	} {
		for _, result := range results {
			assert.GreaterOrEqual(t, result.ReviewCount, 1, name)
		}
	}
}

func TestAggregate_EmptyDataset(t *testing.T) {
	t.Parallel()

	assert.Empty(t, TopRatedByCategory(nil, DefaultTopK))
	assert.Empty(t, SentimentByPriceRange(nil, DefaultTopK))
}
