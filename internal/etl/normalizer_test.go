package etl

import (
	"testing"

	"reviewpulse/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() SourceRecord {
	return SourceRecord{
		FieldProductID:       "P1",
		FieldProductName:     "USB Cable",
		FieldCategory:        "Electronics,Cables,USB",
		FieldActualPrice:     "19.99",
		FieldDiscountedPrice: "9.99",
		FieldDiscountPct:     "50",
		FieldAboutProduct:    "Fast charging|Durable braid",
		FieldImageLink:       "https://img.example.com/p1.jpg",
		FieldProductLink:     "https://shop.example.com/p1",
		FieldUserID:          "u1,u2",
		FieldUserName:        "Alice,Bob",
		FieldReviewID:        "r1,r2",
		FieldReviewTitle:     "Great,Okay",
		FieldReviewContent:   "Works well,Does the job",
		FieldRating:          "4.3",
		FieldSentimentScore:  "0.8",
		FieldSentimentLabel:  "positive",
	}
}

func TestNormalizer_Normalize(t *testing.T) {
	t.Parallel()

	normalizer := NewNormalizer()

	result, err := normalizer.Normalize(validRecord())
	require.NoError(t, err)

	product := result.Product
	require.NotNil(t, product)
	assert.Equal(t, "P1", product.ID)
	assert.Equal(t, "USB Cable", product.Name)
	assert.Equal(t, "Electronics|Cables|USB", product.Category)
	assert.Equal(t, "Electronics", product.PrimaryCategory())
	assert.Equal(t, "Fast charging. Durable braid", product.About)
	require.NotNil(t, product.DiscountedPrice)
	assert.InDelta(t, 9.99, *product.DiscountedPrice, 1e-9)
	require.NotNil(t, product.DiscountPct)
	assert.InDelta(t, 50, *product.DiscountPct, 1e-9)

	require.Len(t, result.Users, 2)
	require.Len(t, result.Reviews, 2)

	assert.Equal(t, "u1", result.Users[0].ID)
	assert.Equal(t, "Alice", result.Users[0].Name)
	assert.Equal(t, "u2", result.Users[1].ID)

	first := result.Reviews[0]
	assert.Equal(t, "r1", first.ID)
	assert.Equal(t, "P1", first.ProductID)
	assert.Equal(t, "u1", first.UserID)
	assert.Equal(t, "Great", first.Title)
	assert.Equal(t, "Works well", first.Content)
	assert.Equal(t, len("Works well"), first.ReviewLength)
	require.NotNil(t, first.Rating)
	assert.InDelta(t, 4.3, *first.Rating, 1e-9)
	require.NotNil(t, first.SentimentScore)
	assert.InDelta(t, 0.8, *first.SentimentScore, 1e-9)
	assert.Equal(t, "positive", first.SentimentLabel)

	assert.Equal(t, "u2", result.Reviews[1].UserID)
}

func TestNormalizer_Normalize_StructuralRejection(t *testing.T) {
	t.Parallel()

	normalizer := NewNormalizer()

	t.Run("missing product id", func(t *testing.T) {
		t.Parallel()

		record := validRecord()
		record[FieldProductID] = "  "

		_, err := normalizer.Normalize(record)
		assert.True(t, errors.Is(err, ErrMissingProductID))
	})

	t.Run("missing product name", func(t *testing.T) {
		t.Parallel()

		record := validRecord()
		delete(record, FieldProductName)

		_, err := normalizer.Normalize(record)
		assert.True(t, errors.Is(err, ErrMissingProductName))
	})
}

func TestNormalizer_Normalize_RatingClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rating   string
		expected *float64
	}{
		{name: "below range saturates to 1", rating: "0.2", expected: floatPtr(1.0)},
		{name: "above range saturates to 5", rating: "9.7", expected: floatPtr(5.0)},
		{name: "in range kept", rating: "3.8", expected: floatPtr(3.8)},
		{name: "unparseable becomes nil", rating: "five", expected: nil},
		{name: "empty becomes nil", rating: "", expected: nil},
	}

	normalizer := NewNormalizer()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			record := validRecord()
			record[FieldRating] = tt.rating

			result, err := normalizer.Normalize(record)
			require.NoError(t, err)
			require.NotEmpty(t, result.Reviews)

			got := result.Reviews[0].Rating
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.InDelta(t, *tt.expected, *got, 1e-9)
		})
	}
}

func TestNormalizer_Normalize_UserFallback(t *testing.T) {
	t.Parallel()

	normalizer := NewNormalizer()

	// Fewer users than reviews: overflow reviews go to the first user.
	record := validRecord()
	record[FieldUserID] = "u1"
	record[FieldUserName] = "Alice"
	record[FieldReviewID] = "r1,r2,r3"

	result, err := normalizer.Normalize(record)
	require.NoError(t, err)
	require.Len(t, result.Reviews, 3)

	for _, review := range result.Reviews {
		assert.Equal(t, "u1", review.UserID)
	}
	for _, user := range result.Users {
		assert.Equal(t, "Alice", user.Name)
	}
}

func TestNormalizer_Normalize_NoUsersSkipsReviews(t *testing.T) {
	t.Parallel()

	normalizer := NewNormalizer()

	record := validRecord()
	record[FieldUserID] = ""
	record[FieldUserName] = ""

	result, err := normalizer.Normalize(record)
	require.NoError(t, err)

	assert.NotNil(t, result.Product)
	assert.Empty(t, result.Users)
	assert.Empty(t, result.Reviews)
}

func TestNormalizer_Normalize_EmptyReviewList(t *testing.T) {
	t.Parallel()

	normalizer := NewNormalizer()

	record := validRecord()
	record[FieldReviewID] = ""

	result, err := normalizer.Normalize(record)
	require.NoError(t, err)

	assert.NotNil(t, result.Product)
	assert.Empty(t, result.Users)
	assert.Empty(t, result.Reviews)
}

func TestNormalizer_Normalize_ShortTitleAndContentLists(t *testing.T) {
	t.Parallel()

	normalizer := NewNormalizer()

	record := validRecord()
	record[FieldReviewID] = "r1,r2,r3"
	record[FieldUserID] = "u1,u2,u3"
	record[FieldUserName] = "Alice"
	record[FieldReviewTitle] = "Great"
	record[FieldReviewContent] = "Works well"

	result, err := normalizer.Normalize(record)
	require.NoError(t, err)
	require.Len(t, result.Reviews, 3)

	// Missing entries degrade to absent values, never errors.
	assert.Equal(t, "Great", result.Reviews[0].Title)
	assert.Empty(t, result.Reviews[1].Title)
	assert.Empty(t, result.Reviews[2].Content)
	assert.Zero(t, result.Reviews[2].ReviewLength)
	assert.Empty(t, result.Users[1].Name)
}
