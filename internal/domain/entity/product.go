// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "strings"

// CategorySeparator delimits the segments of a product's category path.
const CategorySeparator = "|"

// Product is a catalog item from the source dataset. Its ID is the natural
// key carried by the dataset itself; an upsert by ID overwrites every other
// field (last write wins, no field-level merge).
type Product struct {
	ID              string   // Natural key from the source dataset, never reassigned.
	Name            string   // Product display name.
	Category        string   // Pipe-delimited category path, e.g. "Electronics|Cables|USB".
	ActualPrice     *float64 // List price in USD; nil when absent in the source.
	DiscountedPrice *float64 // Sale price in USD; nil when absent in the source.
	DiscountPct     *float64 // Discount percentage in [0, 100]; nil when absent.
	About           string   // Free-text product description.
	ImageLink       string   // External image URL.
	ProductLink     string   // External product page URL.
}

// PrimaryCategory returns the first segment of the category path, the
// grouping key used throughout analytics. Empty when no category is set.
func (p *Product) PrimaryCategory() string {
	if p.Category == "" {
		return ""
	}

	segment, _, _ := strings.Cut(p.Category, CategorySeparator)

	return segment
}

// ProductWithStats is a read model pairing a product with review aggregates.
type ProductWithStats struct {
	Product
	AvgRating   float64 // Mean rating over the product's rated reviews, 0 when none.
	ReviewCount int     // Total number of reviews for the product.
}
