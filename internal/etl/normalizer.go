package etl

import (
	"strings"
	"unicode/utf8"

	"reviewpulse/internal/domain/entity"
	"reviewpulse/internal/errors"
)

// Rating bounds applied at ingestion. Out-of-range ratings are
// saturated, not rejected.
const (
	RatingMin = 1.0
	RatingMax = 5.0
)

// Structural errors reject a single record; normalization of other
// records continues.
var (
	ErrMissingProductID   = errors.New("source record missing product_id")
	ErrMissingProductName = errors.New("source record missing product_name")
)

// NormalizedRecord holds the entity upserts produced from one source
// record. Users and Reviews are co-indexed: Users[i] authored
// Reviews[i]. The same user may appear more than once; upserts are
// idempotent so duplicates are harmless.
type NormalizedRecord struct {
	Product *entity.Product
	Users   []*entity.User
	Reviews []*entity.Review
}

// Normalizer turns source records into entity upserts. It is stateless
// and safe for concurrent use.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize produces the entity upserts for one source record.
//
// The product upsert is always emitted, independent of review count.
// Each entry of the review_id list yields one review, attributed to the
// co-indexed user. When the user list is shorter than the review list,
// overflow reviews fall back to the first listed user; this mirrors a
// known quality compromise of the source data. A review with no
// resolvable user is dropped.
//
// Data-quality issues never fail the record. Only a missing product
// identifier or product name is structural and rejects it.
func (n *Normalizer) Normalize(record SourceRecord) (*NormalizedRecord, error) {
	productID := strings.TrimSpace(record[FieldProductID])
	if productID == "" {
		return nil, errors.WithStack(ErrMissingProductID)
	}

	productName := strings.TrimSpace(record[FieldProductName])
	if productName == "" {
		return nil, errors.WithStack(ErrMissingProductName)
	}

	// Commas in the raw category encoding are path separators; rewrite
	// them so the first-segment bucketing key is well formed.
	category := strings.ReplaceAll(record[FieldCategory], ",", entity.CategorySeparator)
	about := strings.ReplaceAll(record[FieldAboutProduct], entity.CategorySeparator, ". ")

	result := &NormalizedRecord{
		Product: &entity.Product{
			ID:              productID,
			Name:            productName,
			Category:        category,
			ActualPrice:     safeFloat(record[FieldActualPrice]),
			DiscountedPrice: safeFloat(record[FieldDiscountedPrice]),
			DiscountPct:     safeFloat(record[FieldDiscountPct]),
			About:           about,
			ImageLink:       record[FieldImageLink],
			ProductLink:     record[FieldProductLink],
		},
	}

	reviewIDs := record.List(FieldReviewID)
	if len(reviewIDs) == 0 {
		return result, nil
	}

	userIDs := record.List(FieldUserID)
	userNames := record.List(FieldUserName)
	titles := record.List(FieldReviewTitle)
	contents := record.List(FieldReviewContent)

	// Rating and sentiment are record-level values shared by every
	// review emitted from this record.
	rating := clampRating(safeFloat(record[FieldRating]))
	sentimentScore := safeFloat(record[FieldSentimentScore])
	sentimentLabel := record[FieldSentimentLabel]

	for i, reviewID := range reviewIDs {
		userID, userName := resolveUser(userIDs, userNames, i)
		if userID == "" {
			continue
		}

		content := valueAt(contents, i)

		result.Users = append(result.Users, &entity.User{
			ID:   userID,
			Name: userName,
		})
		result.Reviews = append(result.Reviews, &entity.Review{
			ID:             reviewID,
			ProductID:      productID,
			UserID:         userID,
			Title:          valueAt(titles, i),
			Content:        content,
			Rating:         rating,
			SentimentScore: sentimentScore,
			SentimentLabel: sentimentLabel,
			ReviewLength:   utf8.RuneCountInString(content),
		})
	}

	return result, nil
}

// resolveUser picks the user for review index i, falling back to the
// first listed user when the user list is too short.
func resolveUser(userIDs, userNames []string, i int) (id, name string) {
	if i < len(userIDs) {
		return userIDs[i], valueAt(userNames, i)
	}

	if len(userIDs) > 0 {
		name = ""
		if len(userNames) > 0 {
			name = userNames[0]
		}

		return userIDs[0], name
	}

	return "", ""
}

func valueAt(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}

	return ""
}

func clampRating(rating *float64) *float64 {
	if rating == nil {
		return nil
	}

	clamped := max(RatingMin, min(RatingMax, *rating))

	return &clamped
}
