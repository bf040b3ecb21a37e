package analytics

import (
	"math"
	"sort"

	"reviewpulse/internal/domain/entity"
)

// Whole-dataset ranking sizes.
const (
	BestValueLimit   = 5
	ConsistencyLimit = 20
	DivergenceLimit  = 30
)

// Sentiment/rating comparison labels.
const (
	ComparisonSentimentHigher = "Sentiment Higher"
	ComparisonRatingHigher    = "Rating Higher"
	ComparisonAligned         = "Aligned"
)

// Asymmetric multipliers for the divergence classification. The
// lower-bound check is deliberately looser than the upper-bound check;
// this asymmetry is part of the contract, not a bug.
const (
	sentimentHigherMultiplier = 1.0
	ratingHigherMultiplier    = 0.8
)

// ValueProduct is one entry of the best-value ranking.
type ValueProduct struct {
	ProductID       string
	ProductName     string
	Category        string
	DiscountedPrice float64
	AvgRating       float64
	ReviewCount     int
	ValueScore      float64
}

// ConsistencyProduct is one entry of the rating-consistency ranking.
type ConsistencyProduct struct {
	ProductID    string
	ProductName  string
	Category     string
	AvgRating    float64
	RatingStddev float64
	ReviewCount  int
	MinRating    float64
	MaxRating    float64
}

// DivergenceProduct is one entry of the sentiment/rating comparison.
type DivergenceProduct struct {
	ProductID    string
	ProductName  string
	Category     string
	AvgRating    float64
	AvgSentiment float64
	ReviewCount  int
	Comparison   string
}

type valueAcc struct {
	id     string
	name   string
	cat    string
	price  float64
	rating meanAcc
	count  int
}

// BestValueProducts ranks products by rating per dollar,
// value_score = (avg rating / discounted price) * 1000, over rated
// reviews of positively priced products. Descending by value score,
// ties by descending average rating, then product ID.
func BestValueProducts(data []*entity.ReviewWithProduct, limit int) []*ValueProduct {
	accs := make(map[string]*valueAcc)
	for _, review := range data {
		price := review.Product.DiscountedPrice
		if review.Rating == nil || price == nil || *price <= 0 {
			continue
		}

		acc := accs[review.ProductID]
		if acc == nil {
			acc = &valueAcc{
				id:    review.ProductID,
				name:  review.Product.Name,
				cat:   review.Product.Category,
				price: *price,
			}
			accs[review.ProductID] = acc
		}

		acc.count++
		acc.rating.add(review.Rating)
	}

	results := make([]*ValueProduct, 0, len(accs))
	for _, acc := range accs {
		avg := acc.rating.mean()
		results = append(results, &ValueProduct{
			ProductID:       acc.id,
			ProductName:     acc.name,
			Category:        acc.cat,
			DiscountedPrice: acc.price,
			AvgRating:       avg,
			ReviewCount:     acc.count,
			ValueScore:      avg / acc.price * 1000,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].ValueScore != results[j].ValueScore {
			return results[i].ValueScore > results[j].ValueScore
		}
		if results[i].AvgRating != results[j].AvgRating {
			return results[i].AvgRating > results[j].AvgRating
		}

		return results[i].ProductID < results[j].ProductID
	})

	return truncate(results, limit)
}

type consistencyAcc struct {
	id    string
	name  string
	cat   string
	n     int
	sum   float64
	sumSq float64
	min   float64
	max   float64
}

// RatingConsistency ranks products by population standard deviation of
// their ratings, most consistent first. Ties by descending average
// rating, then product ID.
func RatingConsistency(data []*entity.ReviewWithProduct, limit int) []*ConsistencyProduct {
	accs := make(map[string]*consistencyAcc)
	for _, review := range data {
		if review.Rating == nil {
			continue
		}
		rating := *review.Rating

		acc := accs[review.ProductID]
		if acc == nil {
			acc = &consistencyAcc{
				id:   review.ProductID,
				name: review.Product.Name,
				cat:  review.Product.Category,
				min:  rating,
				max:  rating,
			}
			accs[review.ProductID] = acc
		}

		acc.n++
		acc.sum += rating
		acc.sumSq += rating * rating
		acc.min = min(acc.min, rating)
		acc.max = max(acc.max, rating)
	}

	results := make([]*ConsistencyProduct, 0, len(accs))
	for _, acc := range accs {
		mean := acc.sum / float64(acc.n)
		// Floating point can push the variance slightly below zero.
		variance := max(0, acc.sumSq/float64(acc.n)-mean*mean)

		results = append(results, &ConsistencyProduct{
			ProductID:    acc.id,
			ProductName:  acc.name,
			Category:     acc.cat,
			AvgRating:    mean,
			RatingStddev: math.Sqrt(variance),
			ReviewCount:  acc.n,
			MinRating:    acc.min,
			MaxRating:    acc.max,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].RatingStddev != results[j].RatingStddev {
			return results[i].RatingStddev < results[j].RatingStddev
		}
		if results[i].AvgRating != results[j].AvgRating {
			return results[i].AvgRating > results[j].AvgRating
		}

		return results[i].ProductID < results[j].ProductID
	})

	return truncate(results, limit)
}

type divergenceAcc struct {
	id        string
	name      string
	cat       string
	rating    meanAcc
	sentiment meanAcc
	count     int
}

// SentimentRatingComparison classifies each product by how its average
// sentiment compares to its average rating normalized to [0, 1], and
// ranks by descending absolute divergence. Only reviews carrying both a
// rating and a sentiment score qualify.
func SentimentRatingComparison(data []*entity.ReviewWithProduct, limit int) []*DivergenceProduct {
	accs := make(map[string]*divergenceAcc)
	for _, review := range data {
		if review.Rating == nil || review.SentimentScore == nil {
			continue
		}

		acc := accs[review.ProductID]
		if acc == nil {
			acc = &divergenceAcc{
				id:   review.ProductID,
				name: review.Product.Name,
				cat:  review.Product.Category,
			}
			accs[review.ProductID] = acc
		}

		acc.count++
		acc.rating.add(review.Rating)
		acc.sentiment.add(review.SentimentScore)
	}

	type scored struct {
		result     *DivergenceProduct
		divergence float64
	}

	results := make([]scored, 0, len(accs))
	for _, acc := range accs {
		avgRating := acc.rating.mean()
		avgSentiment := acc.sentiment.mean()
		normalized := avgRating / entity.RatingScale

		comparison := ComparisonAligned
		switch {
		case avgSentiment > normalized*sentimentHigherMultiplier:
			comparison = ComparisonSentimentHigher
		case avgSentiment < normalized*ratingHigherMultiplier:
			comparison = ComparisonRatingHigher
		}

		results = append(results, scored{
			result: &DivergenceProduct{
				ProductID:    acc.id,
				ProductName:  acc.name,
				Category:     acc.cat,
				AvgRating:    avgRating,
				AvgSentiment: avgSentiment,
				ReviewCount:  acc.count,
				Comparison:   comparison,
			},
			divergence: math.Abs(avgSentiment - normalized),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].divergence != results[j].divergence {
			return results[i].divergence > results[j].divergence
		}

		return results[i].result.ProductID < results[j].result.ProductID
	})

	ranked := make([]*DivergenceProduct, 0, min(limit, len(results)))
	for _, s := range truncate(results, limit) {
		ranked = append(ranked, s.result)
	}

	return ranked
}

func truncate[T any](results []T, limit int) []T {
	if limit > 0 && len(results) > limit {
		return results[:limit]
	}

	return results
}
