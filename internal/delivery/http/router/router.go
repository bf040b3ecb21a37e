// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"reviewpulse/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler   *handler.CatalogHandler
	AnalyticsHandler *handler.AnalyticsHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler   *handler.CatalogHandler
	analyticsHandler *handler.AnalyticsHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:   params.CatalogHandler,
		analyticsHandler: params.AnalyticsHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	// Health check endpoint
	api.GET("/health", handler.HealthCheck)

	// Catalog routes
	productGroup := api.Group("/products")
	{
		productGroup.GET("/search", r.catalogHandler.SearchProducts)
		productGroup.GET("/:id", r.catalogHandler.GetProduct)
		productGroup.GET("/:id/reviews", r.catalogHandler.GetProductReviews)
	}

	// Analytics report routes
	analyticsGroup := api.Group("/analytics")
	{
		analyticsGroup.GET("/top-rated-by-category", r.analyticsHandler.TopRatedByCategory)
		analyticsGroup.GET("/sentiment-by-category", r.analyticsHandler.SentimentByCategory)
		analyticsGroup.GET("/sentiment-by-price-range", r.analyticsHandler.SentimentByPriceRange)
		analyticsGroup.GET("/review-length-rating", r.analyticsHandler.ReviewLengthRating)
		analyticsGroup.GET("/discount-review-quality", r.analyticsHandler.DiscountReviewQuality)
		analyticsGroup.GET("/best-value-products", r.analyticsHandler.BestValueProducts)
		analyticsGroup.GET("/rating-variance", r.analyticsHandler.RatingVariance)
		analyticsGroup.GET("/sentiment-rating-comparison", r.analyticsHandler.SentimentRatingComparison)
	}
}
