// Package analytics computes bucketed summary statistics and ranked
// product lists over an in-memory snapshot of reviews joined to their
// products.
package analytics

import (
	"math"

	"reviewpulse/internal/domain/entity"
)

// band is one half-open interval of a discretized numeric attribute.
// A value belongs to the first band whose upper bound exceeds it.
type band struct {
	label string
	upper float64
}

// Price bands over the discounted price, ascending.
var priceBands = []band{
	{label: "$0-$50", upper: 50},
	{label: "$50-$150", upper: 150},
	{label: "$150-$300", upper: 300},
	{label: "$300-$500", upper: 500},
	{label: "$500+", upper: math.Inf(1)},
}

// Discount bands over the discount percentage, ascending.
var discountBands = []band{
	{label: "0-25% off", upper: 25},
	{label: "25-50% off", upper: 50},
	{label: "50-75% off", upper: 75},
	{label: "75%+ off", upper: math.Inf(1)},
}

// Review-length bands over the body character count, ascending.
var lengthBands = []band{
	{label: "Short (<100 chars)", upper: 100},
	{label: "Medium (100-500 chars)", upper: 500},
	{label: "Long (500-1000 chars)", upper: 1000},
	{label: "Very Long (1000+ chars)", upper: math.Inf(1)},
}

func bandLabel(bands []band, value float64) string {
	for _, b := range bands {
		if value < b.upper {
			return b.label
		}
	}

	return bands[len(bands)-1].label
}

func bandLabels(bands []band) []string {
	labels := make([]string, len(bands))
	for i, b := range bands {
		labels[i] = b.label
	}

	return labels
}

// keyFunc derives the bucket key for one review. ok is false when the
// review carries no usable value for this bucketing attribute, which
// excludes it from the pass entirely.
type keyFunc func(review *entity.ReviewWithProduct) (key string, ok bool)

func categoryKey(review *entity.ReviewWithProduct) (string, bool) {
	if review.Product.Category == "" {
		return "", false
	}

	return review.Product.PrimaryCategory(), true
}

func priceRangeKey(review *entity.ReviewWithProduct) (string, bool) {
	price := review.Product.DiscountedPrice
	if price == nil {
		return "", false
	}

	return bandLabel(priceBands, *price), true
}

func discountRangeKey(review *entity.ReviewWithProduct) (string, bool) {
	pct := review.Product.DiscountPct
	if pct == nil {
		return "", false
	}

	return bandLabel(discountBands, *pct), true
}

func lengthKey(review *entity.ReviewWithProduct) (string, bool) {
	return bandLabel(lengthBands, float64(review.ReviewLength)), true
}

func hasRating(review *entity.ReviewWithProduct) bool {
	return review.Rating != nil
}

func hasSentiment(review *entity.ReviewWithProduct) bool {
	return review.SentimentScore != nil
}

func everything(*entity.ReviewWithProduct) bool {
	return true
}
