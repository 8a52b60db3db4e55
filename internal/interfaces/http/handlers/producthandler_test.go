package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	prodUsecases "github.com/orderline-io/orderline/internal/application/product/usecases"
	vo "github.com/orderline-io/orderline/internal/domain/order/valueobjects"
	"github.com/orderline-io/orderline/internal/domain/product"
	"github.com/orderline-io/orderline/internal/interfaces/http/handlers/testutil"
	"github.com/orderline-io/orderline/internal/shared/errors"
)

type mockCreateProductUC struct {
	result  *product.Product
	err     error
	lastCmd prodUsecases.CreateProductCommand
}

func (m *mockCreateProductUC) Execute(ctx context.Context, cmd prodUsecases.CreateProductCommand) (*product.Product, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockGetProductUC struct {
	result *prodUsecases.GetProductResult
	err    error
}

func (m *mockGetProductUC) Execute(ctx context.Context, query prodUsecases.GetProductQuery) (*prodUsecases.GetProductResult, error) {
	return m.result, m.err
}

type mockListProductsUC struct {
	result    *prodUsecases.ListProductsResult
	err       error
	lastQuery prodUsecases.ListProductsQuery
}

func (m *mockListProductsUC) Execute(ctx context.Context, query prodUsecases.ListProductsQuery) (*prodUsecases.ListProductsResult, error) {
	m.lastQuery = query
	return m.result, m.err
}

type mockAdjustStockUC struct {
	result  *product.Product
	err     error
	lastCmd prodUsecases.AdjustStockCommand
}

func (m *mockAdjustStockUC) Execute(ctx context.Context, cmd prodUsecases.AdjustStockCommand) (*product.Product, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockArchiveProductUC struct {
	result  *product.Product
	err     error
	lastSID string
}

func (m *mockArchiveProductUC) Execute(ctx context.Context, productSID string) (*product.Product, error) {
	m.lastSID = productSID
	return m.result, m.err
}

func createTestProduct(t *testing.T) *product.Product {
	t.Helper()
	p, err := product.NewProduct("Mechanical Keyboard", "Tactile switches.", vo.NewMoney(2500, "USD"), 10)
	require.NoError(t, err)
	p.SetID(1)
	return p
}

func newTestProductHandler(
	createUC createProductUseCase,
	getUC getProductUseCase,
	listUC listProductsUseCase,
	adjustUC adjustStockUseCase,
	archiveUC archiveProductUseCase,
) *ProductHandler {
	return NewProductHandler(createUC, getUC, listUC, adjustUC, archiveUC, testutil.NewMockLogger())
}

func TestProductHandler_CreateProduct(t *testing.T) {
	t.Run("creates product", func(t *testing.T) {
		mockUC := &mockCreateProductUC{result: createTestProduct(t)}
		handler := newTestProductHandler(mockUC, nil, nil, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/products", CreateProductRequest{
			Name:          "Mechanical Keyboard",
			Description:   "Tactile switches.",
			AmountInCents: 2500,
			Currency:      "USD",
			Stock:         10,
		})

		handler.CreateProduct(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, int64(2500), mockUC.lastCmd.AmountInCents)
		assert.Equal(t, "USD", mockUC.lastCmd.Currency)
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		handler := newTestProductHandler(&mockCreateProductUC{}, nil, nil, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/products", CreateProductRequest{
			Name:     "Freebie",
			Currency: "USD",
		})

		handler.CreateProduct(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("translates validation error", func(t *testing.T) {
		mockUC := &mockCreateProductUC{err: errors.NewValidationError("unsupported currency")}
		handler := newTestProductHandler(mockUC, nil, nil, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/products", CreateProductRequest{
			Name:          "Mechanical Keyboard",
			AmountInCents: 2500,
			Currency:      "XXX",
			Stock:         10,
		})

		handler.CreateProduct(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProductHandler_GetProduct(t *testing.T) {
	t.Run("returns product with rendered description", func(t *testing.T) {
		mockUC := &mockGetProductUC{result: &prodUsecases.GetProductResult{
			Product:         createTestProduct(t),
			DescriptionHTML: "<p>Tactile switches.</p>",
		}}
		handler := newTestProductHandler(nil, mockUC, nil, nil, nil)

		c, w := testutil.NewTestContext(http.MethodGet, "/products/prd_x", nil)
		testutil.SetURLParam(c, "sid", "prd_x")

		handler.GetProduct(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Contains(t, string(resp.Data), "Tactile switches")
	})

	t.Run("translates not found", func(t *testing.T) {
		mockUC := &mockGetProductUC{err: errors.NewNotFoundError("product not found")}
		handler := newTestProductHandler(nil, mockUC, nil, nil, nil)

		c, w := testutil.NewTestContext(http.MethodGet, "/products/prd_missing", nil)
		testutil.SetURLParam(c, "sid", "prd_missing")

		handler.GetProduct(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProductHandler_ListProducts(t *testing.T) {
	t.Run("lists active products by default", func(t *testing.T) {
		mockUC := &mockListProductsUC{result: &prodUsecases.ListProductsResult{
			Products: []*product.Product{createTestProduct(t)},
			Total:    1,
		}}
		handler := newTestProductHandler(nil, nil, mockUC, nil, nil)

		c, w := testutil.NewTestContext(http.MethodGet, "/products", nil)

		handler.ListProducts(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, mockUC.lastQuery.IncludeArchived)
	})

	t.Run("honours include_archived flag", func(t *testing.T) {
		mockUC := &mockListProductsUC{result: &prodUsecases.ListProductsResult{Total: 0}}
		handler := newTestProductHandler(nil, nil, mockUC, nil, nil)

		c, w := testutil.NewTestContext(http.MethodGet, "/products", nil)
		testutil.SetQueryParams(c, map[string]string{"include_archived": "true"})

		handler.ListProducts(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, mockUC.lastQuery.IncludeArchived)
	})
}

func TestProductHandler_AdjustStock(t *testing.T) {
	t.Run("sets absolute stock level", func(t *testing.T) {
		mockUC := &mockAdjustStockUC{result: createTestProduct(t)}
		handler := newTestProductHandler(nil, nil, nil, mockUC, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/products/prd_x/stock", AdjustStockRequest{Stock: 25})
		testutil.SetURLParam(c, "sid", "prd_x")

		handler.AdjustStock(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "prd_x", mockUC.lastCmd.ProductSID)
		assert.Equal(t, 25, mockUC.lastCmd.Stock)
	})

	t.Run("translates negative stock rejection", func(t *testing.T) {
		mockUC := &mockAdjustStockUC{err: errors.NewValidationError("stock cannot be negative")}
		handler := newTestProductHandler(nil, nil, nil, mockUC, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/products/prd_x/stock", AdjustStockRequest{Stock: -1})
		testutil.SetURLParam(c, "sid", "prd_x")

		handler.AdjustStock(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProductHandler_ArchiveProduct(t *testing.T) {
	t.Run("archives product", func(t *testing.T) {
		archived := createTestProduct(t)
		archived.Archive()
		mockUC := &mockArchiveProductUC{result: archived}
		handler := newTestProductHandler(nil, nil, nil, nil, mockUC)

		c, w := testutil.NewTestContext(http.MethodPost, "/products/prd_x/archive", nil)
		testutil.SetURLParam(c, "sid", "prd_x")

		handler.ArchiveProduct(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "prd_x", mockUC.lastSID)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Contains(t, string(resp.Data), `"archived":true`)
	})

	t.Run("translates not found", func(t *testing.T) {
		mockUC := &mockArchiveProductUC{err: errors.NewNotFoundError("product not found")}
		handler := newTestProductHandler(nil, nil, nil, nil, mockUC)

		c, w := testutil.NewTestContext(http.MethodPost, "/products/prd_missing/archive", nil)
		testutil.SetURLParam(c, "sid", "prd_missing")

		handler.ArchiveProduct(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
