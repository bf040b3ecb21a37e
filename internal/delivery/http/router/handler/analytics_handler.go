package handler

import (
	"log/slog"
	"net/http"

	"reviewpulse/internal/delivery/http/response"
	"reviewpulse/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AnalyticsHandlerParams holds dependencies for AnalyticsHandler, injected by Fx.
type AnalyticsHandlerParams struct {
	fx.In

	AnalyticsUC usecase.AnalyticsUsecase
	Logger      *slog.Logger
}

// AnalyticsHandler holds dependencies for the analytics report handlers
type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUsecase
	logger      *slog.Logger
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler
func NewAnalyticsHandler(params AnalyticsHandlerParams) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUC: params.AnalyticsUC,
		logger:      params.Logger,
	}
}

// TopRatedByCategory handles the per-category rating report
func (h *AnalyticsHandler) TopRatedByCategory(c echo.Context) error {
	buckets, err := h.analyticsUC.TopRatedByCategory(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, buckets)
}

// SentimentByCategory handles the per-category sentiment report
func (h *AnalyticsHandler) SentimentByCategory(c echo.Context) error {
	buckets, err := h.analyticsUC.SentimentByCategory(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, buckets)
}

// SentimentByPriceRange handles the per-price-band sentiment report
func (h *AnalyticsHandler) SentimentByPriceRange(c echo.Context) error {
	buckets, err := h.analyticsUC.SentimentByPriceRange(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, buckets)
}

// ReviewLengthRating handles the review-length versus rating report
func (h *AnalyticsHandler) ReviewLengthRating(c echo.Context) error {
	buckets, err := h.analyticsUC.ReviewLengthRating(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, buckets)
}

// DiscountReviewQuality handles the per-discount-band rating report
func (h *AnalyticsHandler) DiscountReviewQuality(c echo.Context) error {
	buckets, err := h.analyticsUC.DiscountReviewQuality(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, buckets)
}

// BestValueProducts handles the rating-per-dollar ranking
func (h *AnalyticsHandler) BestValueProducts(c echo.Context) error {
	products, err := h.analyticsUC.BestValueProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// RatingVariance handles the rating consistency ranking
func (h *AnalyticsHandler) RatingVariance(c echo.Context) error {
	products, err := h.analyticsUC.RatingVariance(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// SentimentRatingComparison handles the sentiment divergence ranking
func (h *AnalyticsHandler) SentimentRatingComparison(c echo.Context) error {
	products, err := h.analyticsUC.SentimentRatingComparison(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}
