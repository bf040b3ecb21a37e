package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"reviewpulse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogStub returns canned results for handler tests.
type catalogStub struct {
	summaries []*usecase.ProductSummary
	summary   *usecase.ProductSummary
	page      *usecase.ReviewPage

	gotQuery  string
	gotLimit  int
	gotOffset int
}

func (s *catalogStub) SearchProducts(_ context.Context, query string) ([]*usecase.ProductSummary, error) {
	s.gotQuery = query

	return s.summaries, nil
}

func (s *catalogStub) GetProduct(_ context.Context, _ string) (*usecase.ProductSummary, error) {
	return s.summary, nil
}

func (s *catalogStub) GetProductReviews(_ context.Context, _ string, limit, offset int) (*usecase.ReviewPage, error) {
	s.gotLimit = limit
	s.gotOffset = offset

	return s.page, nil
}

func newCatalogHandler(stub *catalogStub) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: stub,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func newTestContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestCatalogHandler_SearchProducts(t *testing.T) {
	stub := &catalogStub{
		summaries: []*usecase.ProductSummary{
			{ProductID: "P1", ProductName: "USB Cable"},
		},
	}
	handler := newCatalogHandler(stub)

	c, rec := newTestContext(t, "/api/products/search?q=usb+cable")

	err := handler.SearchProducts(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "usb cable", stub.gotQuery)
	assert.Contains(t, rec.Body.String(), `"product_id":"P1"`)
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	handler := newCatalogHandler(&catalogStub{
		summary: &usecase.ProductSummary{ProductID: "P1", ProductName: "USB Cable", AvgRating: 4.5},
	})

	c, rec := newTestContext(t, "/api/products/P1")
	c.SetParamNames("id")
	c.SetParamValues("P1")

	err := handler.GetProduct(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"avg_rating":4.5`)
}

func TestCatalogHandler_GetProductReviews_ForwardsPagination(t *testing.T) {
	stub := &catalogStub{
		page: &usecase.ReviewPage{Reviews: []*usecase.ReviewItem{}, Total: 0, Limit: 2, Offset: 4},
	}
	handler := newCatalogHandler(stub)

	c, rec := newTestContext(t, "/api/products/P1/reviews?limit=2&offset=4")
	c.SetParamNames("id")
	c.SetParamValues("P1")

	err := handler.GetProductReviews(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, stub.gotLimit)
	assert.Equal(t, 4, stub.gotOffset)
}

func TestCatalogHandler_GetProductReviews_RejectsBadPagination(t *testing.T) {
	handler := newCatalogHandler(&catalogStub{})

	c, rec := newTestContext(t, "/api/products/P1/reviews?limit=abc")
	c.SetParamNames("id")
	c.SetParamValues("P1")

	err := handler.GetProductReviews(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_PAGINATION")
}
