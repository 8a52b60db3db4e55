package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderline-io/orderline/internal/domain/order"
	vo "github.com/orderline-io/orderline/internal/domain/order/valueobjects"
	"github.com/orderline-io/orderline/internal/domain/product"
	"github.com/orderline-io/orderline/internal/shared/authorization"
	"github.com/orderline-io/orderline/internal/shared/errors"
)

func TestCancelOrderUseCase_Execute(t *testing.T) {
	t.Run("cancels pending order and returns stock", func(t *testing.T) {
		o := pendingOrder(t, 42)
		prod := testProduct(t, 10)
		require.NoError(t, prod.ReserveStock(2))

		var updatedOrder *order.Order
		var restocked *product.Product
		orderRepo := &mockOrderRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*order.Order, error) {
				return o, nil
			},
			UpdateFunc: func(ctx context.Context, u *order.Order) error {
				updatedOrder = u
				return nil
			},
		}
		productRepo := &mockProductRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*product.Product, error) {
				return prod, nil
			},
			UpdateFunc: func(ctx context.Context, p *product.Product) error {
				restocked = p
				return nil
			},
		}

		uc := NewCancelOrderUseCase(orderRepo, productRepo, newTestTxManager(t), &mockPublisher{}, &mockLogger{})

		result, err := uc.Execute(context.Background(), CancelOrderCommand{
			OrderSID:   o.SID(),
			CustomerID: 42,
			Role:       authorization.RoleCustomer,
			Reason:     "changed my mind",
		})

		require.NoError(t, err)
		assert.Equal(t, vo.OrderStatusCancelled, result.Status())
		require.NotNil(t, result.CancelReason())
		assert.Equal(t, "changed my mind", *result.CancelReason())
		require.NotNil(t, updatedOrder)
		require.NotNil(t, restocked)
		assert.Equal(t, 10, restocked.Stock())
	})

	t.Run("cancelling an already cancelled order is a no-op", func(t *testing.T) {
		o := pendingOrder(t, 42)
		require.NoError(t, o.Cancel("first"))
		o.ClearEvents()

		updateCalled := false
		orderRepo := &mockOrderRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*order.Order, error) {
				return o, nil
			},
			UpdateFunc: func(ctx context.Context, u *order.Order) error {
				updateCalled = true
				return nil
			},
		}

		uc := NewCancelOrderUseCase(orderRepo, &mockProductRepository{}, newTestTxManager(t), &mockPublisher{}, &mockLogger{})

		result, err := uc.Execute(context.Background(), CancelOrderCommand{
			OrderSID:   o.SID(),
			CustomerID: 42,
			Role:       authorization.RoleCustomer,
		})

		require.NoError(t, err)
		assert.Equal(t, vo.OrderStatusCancelled, result.Status())
		assert.False(t, updateCalled)
	})

	t.Run("rejects cancellation by another customer", func(t *testing.T) {
		o := pendingOrder(t, 42)
		orderRepo := &mockOrderRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*order.Order, error) {
				return o, nil
			},
		}

		uc := NewCancelOrderUseCase(orderRepo, &mockProductRepository{}, newTestTxManager(t), &mockPublisher{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), CancelOrderCommand{
			OrderSID:   o.SID(),
			CustomerID: 7,
			Role:       authorization.RoleCustomer,
		})

		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("admin can cancel any pending order", func(t *testing.T) {
		o := pendingOrder(t, 42)
		prod := testProduct(t, 10)
		require.NoError(t, prod.ReserveStock(2))
		orderRepo := &mockOrderRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*order.Order, error) {
				return o, nil
			},
		}
		productRepo := &mockProductRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*product.Product, error) {
				return prod, nil
			},
		}

		uc := NewCancelOrderUseCase(orderRepo, productRepo, newTestTxManager(t), &mockPublisher{}, &mockLogger{})

		result, err := uc.Execute(context.Background(), CancelOrderCommand{
			OrderSID:   o.SID(),
			CustomerID: 1,
			Role:       authorization.RoleAdmin,
			Reason:     "fraud review",
		})

		require.NoError(t, err)
		assert.Equal(t, vo.OrderStatusCancelled, result.Status())
	})

	t.Run("rejects cancellation of a paid order", func(t *testing.T) {
		o := pendingOrder(t, 42)
		require.NoError(t, o.MarkAsPaid("txn_abc"))
		orderRepo := &mockOrderRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*order.Order, error) {
				return o, nil
			},
		}

		uc := NewCancelOrderUseCase(orderRepo, &mockProductRepository{}, newTestTxManager(t), &mockPublisher{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), CancelOrderCommand{
			OrderSID:   o.SID(),
			CustomerID: 42,
			Role:       authorization.RoleCustomer,
		})

		assert.True(t, errors.IsConflictError(err))
	})
}
