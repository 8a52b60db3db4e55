package usecases

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/orderline-io/orderline/internal/domain/order/valueobjects"
	"github.com/orderline-io/orderline/internal/domain/product"
	"github.com/orderline-io/orderline/internal/shared/errors"
	"github.com/orderline-io/orderline/internal/shared/logger"
	"github.com/orderline-io/orderline/internal/shared/services/markdown"
	"github.com/orderline-io/orderline/internal/shared/utils"
)

type mockProductRepository struct {
	CreateFunc   func(ctx context.Context, p *product.Product) error
	UpdateFunc   func(ctx context.Context, p *product.Product) error
	GetByIDFunc  func(ctx context.Context, id uint) (*product.Product, error)
	GetBySIDFunc func(ctx context.Context, sid string) (*product.Product, error)
	ListFunc     func(ctx context.Context, filter product.ListFilter) ([]*product.Product, int64, error)
}

func (m *mockProductRepository) Create(ctx context.Context, p *product.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockProductRepository) Update(ctx context.Context, p *product.Product) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProductRepository) GetByID(ctx context.Context, id uint) (*product.Product, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProductRepository) GetBySID(ctx context.Context, sid string) (*product.Product, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockProductRepository) List(ctx context.Context, filter product.ListFilter) ([]*product.Product, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)      {}
func (m *mockLogger) Info(msg string, args ...any)       {}
func (m *mockLogger) Warn(msg string, args ...any)       {}
func (m *mockLogger) Error(msg string, args ...any)      {}
func (m *mockLogger) With(args ...any) logger.Interface  { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }
func (m *mockLogger) Debugw(msg string, kv ...any)       {}
func (m *mockLogger) Infow(msg string, kv ...any)        {}
func (m *mockLogger) Warnw(msg string, kv ...any)        {}
func (m *mockLogger) Errorw(msg string, kv ...any)       {}

func storedProduct(t *testing.T) *product.Product {
	t.Helper()
	price := vo.NewMoney(1999, "USD")
	p, err := product.NewProduct("Keyboard", "A **solid** keyboard.\n\n<script>alert(1)</script>", price, 5)
	require.NoError(t, err)
	p.SetID(1)
	return p
}

func TestCreateProductUseCase_Execute(t *testing.T) {
	t.Run("creates product", func(t *testing.T) {
		var saved *product.Product
		repo := &mockProductRepository{
			CreateFunc: func(ctx context.Context, p *product.Product) error {
				p.SetID(1)
				saved = p
				return nil
			},
		}

		uc := NewCreateProductUseCase(repo, &mockLogger{})
		result, err := uc.Execute(context.Background(), CreateProductCommand{
			Name:          "Keyboard",
			Description:   "A keyboard.",
			AmountInCents: 1999,
			Currency:      "USD",
			Stock:         5,
		})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Contains(t, result.SID(), "prd_")
		assert.Equal(t, int64(1999), result.Price().AmountInCents())
	})

	t.Run("rejects invalid currency", func(t *testing.T) {
		uc := NewCreateProductUseCase(&mockProductRepository{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), CreateProductCommand{
			Name:          "Keyboard",
			AmountInCents: 1999,
			Currency:      "XYZ",
			Stock:         5,
		})

		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("rejects empty name", func(t *testing.T) {
		uc := NewCreateProductUseCase(&mockProductRepository{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), CreateProductCommand{
			Name:          "",
			AmountInCents: 1999,
			Currency:      "USD",
			Stock:         5,
		})

		assert.True(t, errors.IsValidationError(err))
	})
}

func TestGetProductUseCase_Execute(t *testing.T) {
	p := storedProduct(t)
	repo := &mockProductRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*product.Product, error) {
			if sid == p.SID() {
				return p, nil
			}
			return nil, errors.NewNotFoundError("product not found")
		},
	}
	uc := NewGetProductUseCase(repo, markdown.NewService(), &mockLogger{})

	t.Run("renders sanitized description", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), GetProductQuery{ProductSID: p.SID()})

		require.NoError(t, err)
		assert.Contains(t, result.DescriptionHTML, "<strong>solid</strong>")
		assert.NotContains(t, result.DescriptionHTML, "<script>")
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetProductQuery{ProductSID: "prd_missing00000"})

		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestListProductsUseCase_Execute(t *testing.T) {
	var gotFilter product.ListFilter
	repo := &mockProductRepository{
		ListFunc: func(ctx context.Context, filter product.ListFilter) ([]*product.Product, int64, error) {
			gotFilter = filter
			return []*product.Product{storedProduct(t)}, 1, nil
		},
	}

	uc := NewListProductsUseCase(repo, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListProductsQuery{
		IncludeArchived: false,
		Pagination:      utils.Pagination{Page: 1, PageSize: 20},
	})

	require.NoError(t, err)
	assert.False(t, gotFilter.IncludeArchived)
	assert.Equal(t, int64(1), result.Total)
	assert.Len(t, result.Products, 1)
}

func TestAdjustStockUseCase_Execute(t *testing.T) {
	t.Run("sets absolute stock", func(t *testing.T) {
		p := storedProduct(t)
		updated := false
		repo := &mockProductRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*product.Product, error) {
				return p, nil
			},
			UpdateFunc: func(ctx context.Context, u *product.Product) error {
				updated = true
				return nil
			},
		}

		uc := NewAdjustStockUseCase(repo, &mockLogger{})
		result, err := uc.Execute(context.Background(), AdjustStockCommand{
			ProductSID: p.SID(),
			Stock:      42,
		})

		require.NoError(t, err)
		assert.Equal(t, 42, result.Stock())
		assert.True(t, updated)
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		p := storedProduct(t)
		repo := &mockProductRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*product.Product, error) {
				return p, nil
			},
		}

		uc := NewAdjustStockUseCase(repo, &mockLogger{})
		_, err := uc.Execute(context.Background(), AdjustStockCommand{
			ProductSID: p.SID(),
			Stock:      -1,
		})

		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("propagates update failure", func(t *testing.T) {
		p := storedProduct(t)
		repo := &mockProductRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*product.Product, error) {
				return p, nil
			},
			UpdateFunc: func(ctx context.Context, u *product.Product) error {
				return stderrors.New("connection reset")
			},
		}

		uc := NewAdjustStockUseCase(repo, &mockLogger{})
		_, err := uc.Execute(context.Background(), AdjustStockCommand{
			ProductSID: p.SID(),
			Stock:      10,
		})

		assert.Error(t, err)
	})
}

func TestArchiveProductUseCase_Execute(t *testing.T) {
	t.Run("archives product", func(t *testing.T) {
		p := storedProduct(t)
		updated := false
		repo := &mockProductRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*product.Product, error) {
				return p, nil
			},
			UpdateFunc: func(ctx context.Context, u *product.Product) error {
				updated = true
				return nil
			},
		}

		uc := NewArchiveProductUseCase(repo, &mockLogger{})
		result, err := uc.Execute(context.Background(), p.SID())

		require.NoError(t, err)
		assert.True(t, result.IsArchived())
		assert.True(t, updated)
	})

	t.Run("archiving twice stays archived", func(t *testing.T) {
		p := storedProduct(t)
		p.Archive()
		repo := &mockProductRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*product.Product, error) {
				return p, nil
			},
		}

		uc := NewArchiveProductUseCase(repo, &mockLogger{})
		result, err := uc.Execute(context.Background(), p.SID())

		require.NoError(t, err)
		assert.True(t, result.IsArchived())
	})

	t.Run("propagates unknown product", func(t *testing.T) {
		repo := &mockProductRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*product.Product, error) {
				return nil, errors.NewNotFoundError("product not found")
			},
		}

		uc := NewArchiveProductUseCase(repo, &mockLogger{})
		_, err := uc.Execute(context.Background(), "prd_missing")

		assert.True(t, errors.IsNotFoundError(err))
	})
}
