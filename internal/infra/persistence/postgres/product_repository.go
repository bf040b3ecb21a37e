package postgres

import (
	"context"
	"strings"

	"reviewpulse/internal/domain/entity"
	domainerrors "reviewpulse/internal/domain/errors"
	"reviewpulse/internal/domain/repository"
	"reviewpulse/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// productStatsRow is the scan target for reads that join products with
// their review aggregates.
type productStatsRow struct {
	model.ProductModel
	AvgRating   *float64
	ReviewCount int
}

const productStatsSelect = "products.*, " +
	"(SELECT AVG(r.rating) FROM reviews r WHERE r.product_id = products.product_id) AS avg_rating, " +
	"(SELECT COUNT(*) FROM reviews r WHERE r.product_id = products.product_id) AS review_count"

// Upsert inserts the product or overwrites every non-key field when the ID already exists.
func (repo *productRepository) Upsert(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}},
			UpdateAll: true,
		}).
		Create(productM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrProductUpsertFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert product")
	}

	return nil
}

// FindByID retrieves a single product with its review aggregates.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.ProductWithStats, error) {
	var row productStatsRow

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Select(productStatsSelect).
		Where("products.product_id = ?", id).
		Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductStatsDomain(&row), nil
}

// SearchByName retrieves up to limit products whose name contains every
// given word, case-insensitively, each with its review aggregates.
func (repo *productRepository) SearchByName(ctx context.Context, words []string, limit int) ([]*entity.ProductWithStats, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Select(productStatsSelect)

	for _, word := range words {
		query = query.Where("products.product_name ILIKE ?", "%"+escapeLike(word)+"%")
	}

	var rows []*productStatsRow
	if err := query.
		Order("products.product_name ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search products by name")
	}

	products := make([]*entity.ProductWithStats, 0, len(rows))
	for _, row := range rows {
		products = append(products, toProductStatsDomain(row))
	}

	return products, nil
}

// escapeLike neutralizes LIKE wildcards in user-supplied search words so
// they match literally.
func escapeLike(word string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return replacer.Replace(word)
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:              data.ProductID,
		Name:            data.ProductName,
		Category:        data.Category,
		ActualPrice:     data.ActualPriceUSD,
		DiscountedPrice: data.DiscountedPriceUSD,
		DiscountPct:     data.DiscountPercentage,
		About:           data.AboutProduct,
		ImageLink:       data.ImgLink,
		ProductLink:     data.ProductLink,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ProductID:          data.ID,
		ProductName:        data.Name,
		Category:           data.Category,
		ActualPriceUSD:     data.ActualPrice,
		DiscountedPriceUSD: data.DiscountedPrice,
		DiscountPercentage: data.DiscountPct,
		AboutProduct:       data.About,
		ImgLink:            data.ImageLink,
		ProductLink:        data.ProductLink,
	}
}

// toProductStatsDomain converts a joined stats row to the read model.
// A product with no rated reviews has a NULL average, reported as 0.
func toProductStatsDomain(row *productStatsRow) *entity.ProductWithStats {
	if row == nil {
		return nil
	}

	stats := &entity.ProductWithStats{
		Product:     *toProductDomain(&row.ProductModel),
		ReviewCount: row.ReviewCount,
	}
	if row.AvgRating != nil {
		stats.AvgRating = *row.AvgRating
	}

	return stats
}
