package postgres

import (
	"context"

	"reviewpulse/internal/domain/entity"
	domainerrors "reviewpulse/internal/domain/errors"
	"reviewpulse/internal/domain/repository"
	"reviewpulse/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// reviewUserRow is the scan target for the review listing joined with the
// author's display name.
type reviewUserRow struct {
	model.ReviewModel
	UserName string
}

// reviewProductRow is the scan target for the flat review/product join the
// aggregation snapshot reads.
type reviewProductRow struct {
	model.ReviewModel
	ProductName        string
	Category           string
	ActualPriceUSD     *float64
	DiscountedPriceUSD *float64
	DiscountPercentage *float64
	AboutProduct       string
	ImgLink            string
	ProductLink        string
}

// Upsert inserts the review or overwrites every non-key field when the ID
// already exists. Re-ingesting the same export is therefore idempotent.
func (repo *reviewRepository) Upsert(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "review_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"product_id",
				"user_id",
				"review_title",
				"review_content",
				"rating",
				"sentiment_score",
				"sentiment_label",
				"review_length",
			}),
		}).
		Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReviewUpsertFailed.WrapMessage("invalid product or user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrReviewUpsertFailed.WrapMessage("missing required review information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert review")
	}

	return nil
}

// FindByProduct retrieves one page of a product's reviews with the author's
// display name, best-rated first.
func (repo *reviewRepository) FindByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.ReviewWithUser, error) {
	var rows []*reviewUserRow

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("reviews.*, users.user_name").
		Joins("JOIN users ON users.user_id = reviews.user_id").
		Where("reviews.product_id = ?", productID).
		Order("reviews.rating DESC NULLS LAST, reviews.review_id ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by product")
	}

	reviews := make([]*entity.ReviewWithUser, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, &entity.ReviewWithUser{
			Review:   *toReviewDomain(&row.ReviewModel),
			UserName: row.UserName,
		})
	}

	return reviews, nil
}

// CountByProduct returns the total number of reviews for a product.
func (repo *reviewRepository) CountByProduct(ctx context.Context, productID string) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count reviews by product")
	}

	return count, nil
}

// ListWithProducts returns a snapshot of every review joined to its product.
func (repo *reviewRepository) ListWithProducts(ctx context.Context) ([]*entity.ReviewWithProduct, error) {
	var rows []*reviewProductRow

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("reviews.*, "+
			"products.product_name, products.category, "+
			"products.actual_price_usd, products.discounted_price_usd, products.discount_percentage, "+
			"products.about_product, products.img_link, products.product_link").
		Joins("JOIN products ON products.product_id = reviews.product_id").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews with products")
	}

	joined := make([]*entity.ReviewWithProduct, 0, len(rows))
	for _, row := range rows {
		joined = append(joined, &entity.ReviewWithProduct{
			Review: *toReviewDomain(&row.ReviewModel),
			Product: entity.Product{
				ID:              row.ProductID,
				Name:            row.ProductName,
				Category:        row.Category,
				ActualPrice:     row.ActualPriceUSD,
				DiscountedPrice: row.DiscountedPriceUSD,
				DiscountPct:     row.DiscountPercentage,
				About:           row.AboutProduct,
				ImageLink:       row.ImgLink,
				ProductLink:     row.ProductLink,
			},
		})
	}

	return joined, nil
}

// --- Mapper Functions ---

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:             data.ReviewID,
		ProductID:      data.ProductID,
		UserID:         data.UserID,
		Title:          data.ReviewTitle,
		Content:        data.ReviewContent,
		Rating:         data.Rating,
		SentimentScore: data.SentimentScore,
		SentimentLabel: data.SentimentLabel,
		ReviewLength:   data.ReviewLength,
		ReviewDate:     data.ReviewDate,
	}
}

// fromReviewDomain converts a domain Review entity to a GORM ReviewModel.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ReviewID:       data.ID,
		ProductID:      data.ProductID,
		UserID:         data.UserID,
		ReviewTitle:    data.Title,
		ReviewContent:  data.Content,
		Rating:         data.Rating,
		SentimentScore: data.SentimentScore,
		SentimentLabel: data.SentimentLabel,
		ReviewLength:   data.ReviewLength,
		ReviewDate:     data.ReviewDate,
	}
}
