// Package etl normalizes denormalized review export rows into product,
// user and review entities.
package etl

import (
	"strconv"
	"strings"
)

// Field names of the source export.
const (
	FieldProductID       = "product_id"
	FieldProductName     = "product_name"
	FieldCategory        = "category"
	FieldActualPrice     = "actual_price_usd"
	FieldDiscountedPrice = "discounted_price_usd"
	FieldDiscountPct     = "discount_percentage"
	FieldAboutProduct    = "about_product"
	FieldImageLink       = "img_link"
	FieldProductLink     = "product_link"
	FieldUserID          = "user_id"
	FieldUserName        = "user_name"
	FieldReviewID        = "review_id"
	FieldReviewTitle     = "review_title"
	FieldReviewContent   = "review_content"
	FieldRating          = "rating"
	FieldSentimentScore  = "sentiment_score"
	FieldSentimentLabel  = "sentiment_label"
)

// SourceRecord is one flat row of the source export, field name to raw
// string value. A row carries one product and comma-joined parallel lists
// for its users and reviews.
type SourceRecord map[string]string

// List splits a multi-valued field on commas and returns the trimmed,
// non-empty entries in order. A missing field yields an empty list.
func (r SourceRecord) List(field string) []string {
	raw, ok := r[field]
	if !ok || raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	return values
}

// safeFloat parses a numeric field leniently. Empty or unparseable
// values degrade to nil instead of failing the record.
func safeFloat(value string) *float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}

	return &f
}
