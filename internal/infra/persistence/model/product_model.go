// Package model holds the GORM-specific structs mapping the domain
// entities to their tables.
package model

// ProductModel is the GORM-specific struct for the 'products' table.
// Prices and the discount percentage are nullable because the source
// export frequently omits them.
type ProductModel struct {
	ProductID          string   `gorm:"type:varchar(64);primary_key"`
	ProductName        string   `gorm:"type:text;not null"`
	Category           string   `gorm:"type:text"`
	ActualPriceUSD     *float64 `gorm:"column:actual_price_usd"`
	DiscountedPriceUSD *float64 `gorm:"column:discounted_price_usd"`
	DiscountPercentage *float64
	AboutProduct       string `gorm:"type:text"`
	ImgLink            string `gorm:"type:text"`
	ProductLink        string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
