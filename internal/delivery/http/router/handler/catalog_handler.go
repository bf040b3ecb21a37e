package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"reviewpulse/internal/delivery/http/response"
	"reviewpulse/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for product lookup handlers
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// SearchProducts handles name search over the catalog
func (h *CatalogHandler) SearchProducts(c echo.Context) error {
	query := c.QueryParam("q")

	products, err := h.catalogUC.SearchProducts(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// GetProduct handles retrieving a single product with its review aggregates
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID := c.Param("id")
	if productID == "" {
		return response.BadRequest(c, "INVALID_ID", "Product ID is required")
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// GetProductReviews handles the paginated review listing for a product
func (h *CatalogHandler) GetProductReviews(c echo.Context) error {
	productID := c.Param("id")
	if productID == "" {
		return response.BadRequest(c, "INVALID_ID", "Product ID is required")
	}

	limit, err := parseIntParam(c.QueryParam("limit"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PAGINATION", "Invalid limit parameter")
	}
	offset, err := parseIntParam(c.QueryParam("offset"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PAGINATION", "Invalid offset parameter")
	}

	page, err := h.catalogUC.GetProductReviews(c.Request().Context(), productID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// parseIntParam parses an optional integer query parameter. An absent
// parameter maps to 0 so the use case applies its defaults.
func parseIntParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}

	return strconv.Atoi(raw)
}
