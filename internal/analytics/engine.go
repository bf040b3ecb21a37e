package analytics

import (
	"sort"

	"reviewpulse/internal/domain/entity"
)

// DefaultTopK is the number of ranked products reported per bucket.
const DefaultTopK = 5

// ProductRank is one entry of a per-bucket ranked product list.
type ProductRank struct {
	ProductID   string
	ProductName string
	AvgRating   float64
	ReviewCount int
}

// BucketResult couples one bucket's summary statistics with its ranked
// top products. Averages are taken over the reviews that carry the
// averaged attribute; counts cover every qualifying review. Undefined
// aggregates report 0.
type BucketResult struct {
	Bucket       string
	ReviewCount  int
	ProductCount int
	AvgRating    float64
	AvgSentiment float64
	AvgLength    float64
	TopProducts  []ProductRank
}

// meanAcc averages the values actually present, ignoring nil
// observations the way SQL AVG ignores NULL.
type meanAcc struct {
	sum float64
	n   int
}

func (a *meanAcc) add(v *float64) {
	if v != nil {
		a.addValue(*v)
	}
}

func (a *meanAcc) addValue(v float64) {
	a.sum += v
	a.n++
}

func (a meanAcc) mean() float64 {
	if a.n == 0 {
		return 0
	}

	return a.sum / float64(a.n)
}

// bucketSpec configures one bucketed aggregation pass. qualifies gates
// the summary rows, ranks gates the top-K rows; the two predicates are
// allowed to differ.
type bucketSpec struct {
	key       keyFunc
	qualifies func(*entity.ReviewWithProduct) bool
	ranks     func(*entity.ReviewWithProduct) bool
	order     func([]*BucketResult)
	topK      int
}

type summaryAcc struct {
	count     int
	rating    meanAcc
	sentiment meanAcc
	length    meanAcc
	products  map[string]struct{}
}

type productAcc struct {
	id     string
	name   string
	rating meanAcc
	count  int
}

// aggregate runs one bucketed pass over the snapshot. A bucket with no
// qualifying summary review is never reported, even when reviews in it
// pass the ranking predicate.
func aggregate(data []*entity.ReviewWithProduct, spec bucketSpec) []*BucketResult {
	summaries := make(map[string]*summaryAcc)
	rankings := make(map[string]map[string]*productAcc)

	for _, review := range data {
		key, ok := spec.key(review)
		if !ok {
			continue
		}

		if spec.qualifies(review) {
			summary := summaries[key]
			if summary == nil {
				summary = &summaryAcc{products: make(map[string]struct{})}
				summaries[key] = summary
			}

			summary.count++
			summary.rating.add(review.Rating)
			summary.sentiment.add(review.SentimentScore)
			summary.length.addValue(float64(review.ReviewLength))
			summary.products[review.ProductID] = struct{}{}
		}

		if spec.ranks(review) {
			bucket := rankings[key]
			if bucket == nil {
				bucket = make(map[string]*productAcc)
				rankings[key] = bucket
			}

			product := bucket[review.ProductID]
			if product == nil {
				product = &productAcc{id: review.ProductID, name: review.Product.Name}
				bucket[review.ProductID] = product
			}

			product.count++
			product.rating.add(review.Rating)
		}
	}

	results := make([]*BucketResult, 0, len(summaries))
	for key, summary := range summaries {
		results = append(results, &BucketResult{
			Bucket:       key,
			ReviewCount:  summary.count,
			ProductCount: len(summary.products),
			AvgRating:    summary.rating.mean(),
			AvgSentiment: summary.sentiment.mean(),
			AvgLength:    summary.length.mean(),
			TopProducts:  topProducts(rankings[key], spec.topK),
		})
	}

	spec.order(results)

	return results
}

// topProducts ranks a bucket's products by average rating descending,
// then review count descending, then product ID ascending for a
// deterministic order.
func topProducts(bucket map[string]*productAcc, k int) []ProductRank {
	if len(bucket) == 0 || k <= 0 {
		return nil
	}

	ranked := make([]*productAcc, 0, len(bucket))
	for _, product := range bucket {
		ranked = append(ranked, product)
	}

	sort.Slice(ranked, func(i, j int) bool {
		ri, rj := ranked[i].rating.mean(), ranked[j].rating.mean()
		if ri != rj {
			return ri > rj
		}
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}

		return ranked[i].id < ranked[j].id
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}

	top := make([]ProductRank, len(ranked))
	for i, product := range ranked {
		top[i] = ProductRank{
			ProductID:   product.id,
			ProductName: product.name,
			AvgRating:   product.rating.mean(),
			ReviewCount: product.count,
		}
	}

	return top
}

// orderByBands renders buckets in the fixed ascending band order.
func orderByBands(labels []string) func([]*BucketResult) {
	index := make(map[string]int, len(labels))
	for i, label := range labels {
		index[label] = i
	}

	return func(results []*BucketResult) {
		sort.Slice(results, func(i, j int) bool {
			return index[results[i].Bucket] < index[results[j].Bucket]
		})
	}
}

func orderByAvgRatingDesc(results []*BucketResult) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].AvgRating != results[j].AvgRating {
			return results[i].AvgRating > results[j].AvgRating
		}

		return results[i].Bucket < results[j].Bucket
	})
}

func orderByAvgSentimentDesc(results []*BucketResult) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].AvgSentiment != results[j].AvgSentiment {
			return results[i].AvgSentiment > results[j].AvgSentiment
		}

		return results[i].Bucket < results[j].Bucket
	})
}

// TopRatedByCategory buckets reviews by the first category segment and
// ranks categories by descending average rating. Reviews without a
// rating still count toward review totals.
func TopRatedByCategory(data []*entity.ReviewWithProduct, topK int) []*BucketResult {
	return aggregate(data, bucketSpec{
		key:       categoryKey,
		qualifies: everything,
		ranks:     everything,
		order:     orderByAvgRatingDesc,
		topK:      topK,
	})
}

// SentimentByCategory buckets sentiment-scored reviews by the first
// category segment, ordered by descending average sentiment.
func SentimentByCategory(data []*entity.ReviewWithProduct, topK int) []*BucketResult {
	return aggregate(data, bucketSpec{
		key:       categoryKey,
		qualifies: hasSentiment,
		ranks:     hasSentiment,
		order:     orderByAvgSentimentDesc,
		topK:      topK,
	})
}

// SentimentByPriceRange buckets reviews by the discounted-price band.
// Summary rows require a sentiment score; the per-band product ranking
// deliberately does not, so it reflects every review in the band.
func SentimentByPriceRange(data []*entity.ReviewWithProduct, topK int) []*BucketResult {
	return aggregate(data, bucketSpec{
		key:       priceRangeKey,
		qualifies: hasSentiment,
		ranks:     everything,
		order:     orderByBands(bandLabels(priceBands)),
		topK:      topK,
	})
}

// ReviewLengthRating buckets rated reviews by body-length band,
// ascending by length.
func ReviewLengthRating(data []*entity.ReviewWithProduct, topK int) []*BucketResult {
	return aggregate(data, bucketSpec{
		key:       lengthKey,
		qualifies: hasRating,
		ranks:     hasRating,
		order:     orderByBands(bandLabels(lengthBands)),
		topK:      topK,
	})
}

// DiscountReviewQuality buckets rated reviews by discount band,
// ascending by discount.
func DiscountReviewQuality(data []*entity.ReviewWithProduct, topK int) []*BucketResult {
	return aggregate(data, bucketSpec{
		key:       discountRangeKey,
		qualifies: hasRating,
		ranks:     hasRating,
		order:     orderByBands(bandLabels(discountBands)),
		topK:      topK,
	})
}
