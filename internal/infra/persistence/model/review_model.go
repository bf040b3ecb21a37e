package model

import "time"

// ReviewModel is the GORM-specific struct for the 'reviews' table.
type ReviewModel struct {
	ReviewID       string `gorm:"type:varchar(64);primary_key"`
	ProductID      string `gorm:"type:varchar(64);not null;index"`
	UserID         string `gorm:"type:varchar(64);not null;index"`
	ReviewTitle    string `gorm:"type:text"`
	ReviewContent  string `gorm:"type:text"`
	Rating         *float64
	SentimentScore *float64
	SentimentLabel string `gorm:"type:varchar(32)"`
	ReviewLength   int    `gorm:"not null;default:0"`
	ReviewDate     *time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
