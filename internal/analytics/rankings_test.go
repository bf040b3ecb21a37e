package analytics

import (
	"testing"

	"reviewpulse/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestValueProducts(t *testing.T) {
	t.Parallel()

	bargain := product("P1", "Electronics", ptr(20), nil)
	premium := product("P2", "Electronics", ptr(100), nil)
	free := product("P3", "Electronics", ptr(0), nil)
	unpriced := product("P4", "Electronics", nil, nil)

	data := []*entity.ReviewWithProduct{
		joined("r1", bargain, withRating(4.0)),
		joined("r2", premium, withRating(5.0)),
		// Unrated review of a priced product does not qualify.
		joined("r3", bargain, nil),
		// Zero or missing price never qualifies.
		joined("r4", free, withRating(5.0)),
		joined("r5", unpriced, withRating(5.0)),
	}

	results := BestValueProducts(data, BestValueLimit)
	require.Len(t, results, 2)

	// 4.0 / 20 * 1000 = 200, well above 5.0 / 100 * 1000 = 50.
	best := results[0]
	assert.Equal(t, "P1", best.ProductID)
	assert.InDelta(t, 200.0, best.ValueScore, 1e-9)
	assert.InDelta(t, 4.0, best.AvgRating, 1e-9)
	assert.Equal(t, 1, best.ReviewCount)
	assert.InDelta(t, 20.0, best.DiscountedPrice, 1e-9)

	assert.Equal(t, "P2", results[1].ProductID)
	assert.InDelta(t, 50.0, results[1].ValueScore, 1e-9)
}

func TestBestValueProducts_Limit(t *testing.T) {
	t.Parallel()

	var data []*entity.ReviewWithProduct
	for _, id := range []string{"P1", "P2", "P3"} {
		p := product(id, "Electronics", ptr(10), nil)
		data = append(data, joined("r-"+id, p, withRating(4.0)))
	}

	assert.Len(t, BestValueProducts(data, 2), 2)
}

func TestRatingConsistency(t *testing.T) {
	t.Parallel()

	steady := product("P1", "Electronics", nil, nil)
	volatile := product("P2", "Electronics", nil, nil)

	data := []*entity.ReviewWithProduct{
		joined("r1", steady, withRating(4.0)),
		joined("r2", steady, withRating(4.0)),
		joined("r3", volatile, withRating(1.0)),
		joined("r4", volatile, withRating(5.0)),
	}

	results := RatingConsistency(data, ConsistencyLimit)
	require.Len(t, results, 2)

	// Most consistent first.
	first := results[0]
	assert.Equal(t, "P1", first.ProductID)
	assert.InDelta(t, 0.0, first.RatingStddev, 1e-9)
	assert.InDelta(t, 4.0, first.AvgRating, 1e-9)
	assert.InDelta(t, 4.0, first.MinRating, 1e-9)
	assert.InDelta(t, 4.0, first.MaxRating, 1e-9)

	second := results[1]
	assert.Equal(t, "P2", second.ProductID)
	// Population stddev of {1, 5} is 2.
	assert.InDelta(t, 2.0, second.RatingStddev, 1e-9)
	assert.InDelta(t, 1.0, second.MinRating, 1e-9)
	assert.InDelta(t, 5.0, second.MaxRating, 1e-9)
	assert.Equal(t, 2, second.ReviewCount)
}

func TestRatingConsistency_TieOnStddev(t *testing.T) {
	t.Parallel()

	low := product("PA", "Electronics", nil, nil)
	high := product("PB", "Electronics", nil, nil)

	data := []*entity.ReviewWithProduct{
		joined("r1", low, withRating(3.0)),
		joined("r2", high, withRating(5.0)),
	}

	results := RatingConsistency(data, ConsistencyLimit)
	require.Len(t, results, 2)

	// Equal stddev resolves by descending average rating.
	assert.Equal(t, "PB", results[0].ProductID)
	assert.Equal(t, "PA", results[1].ProductID)
}

func TestSentimentRatingComparison(t *testing.T) {
	t.Parallel()

	withSentiment := func(rating, sentiment float64) func(*entity.Review) {
		return func(r *entity.Review) {
			r.Rating = ptr(rating)
			r.SentimentScore = ptr(sentiment)
		}
	}

	// All three products average rating 4.0, normalized to 0.8.
	// Sentiment 0.9 > 0.8 is higher; 0.55 < 0.64 means the rating is
	// higher; 0.75 sits between the asymmetric thresholds.
	higher := product("P1", "Electronics", nil, nil)
	lower := product("P2", "Electronics", nil, nil)
	aligned := product("P3", "Electronics", nil, nil)
	unrated := product("P4", "Electronics", nil, nil)

	data := []*entity.ReviewWithProduct{
		joined("r1", higher, withSentiment(4.0, 0.9)),
		joined("r2", lower, withSentiment(4.0, 0.55)),
		joined("r3", aligned, withSentiment(4.0, 0.75)),
		// Missing either score disqualifies the review.
		joined("r4", unrated, func(r *entity.Review) { r.SentimentScore = ptr(0.9) }),
	}

	results := SentimentRatingComparison(data, DivergenceLimit)
	require.Len(t, results, 3)

	byID := make(map[string]*DivergenceProduct, len(results))
	for _, result := range results {
		byID[result.ProductID] = result
	}

	assert.Equal(t, ComparisonSentimentHigher, byID["P1"].Comparison)
	assert.Equal(t, ComparisonRatingHigher, byID["P2"].Comparison)
	assert.Equal(t, ComparisonAligned, byID["P3"].Comparison)

	// Largest absolute divergence first: |0.55-0.8| > |0.9-0.8| > |0.75-0.8|.
	assert.Equal(t, "P2", results[0].ProductID)
	assert.Equal(t, "P1", results[1].ProductID)
	assert.Equal(t, "P3", results[2].ProductID)
}

func TestSentimentRatingComparison_Limit(t *testing.T) {
	t.Parallel()

	var data []*entity.ReviewWithProduct
	for _, id := range []string{"P1", "P2", "P3"} {
		p := product(id, "Electronics", nil, nil)
		data = append(data, joined("r-"+id, p, func(r *entity.Review) {
			r.Rating = ptr(4.0)
			r.SentimentScore = ptr(0.9)
		}))
	}

	assert.Len(t, SentimentRatingComparison(data, 2), 2)
}
