package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderline-io/orderline/internal/domain/order"
	"github.com/orderline-io/orderline/internal/shared/authorization"
	"github.com/orderline-io/orderline/internal/shared/errors"
)

func TestGetOrderUseCase_Execute(t *testing.T) {
	o := pendingOrder(t, 42)
	repo := &mockOrderRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*order.Order, error) {
			if sid == o.SID() {
				return o, nil
			}
			return nil, errors.NewNotFoundError("order not found")
		},
	}
	uc := NewGetOrderUseCase(repo, &mockLogger{})

	t.Run("owner reads own order", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), GetOrderQuery{
			OrderSID:   o.SID(),
			CustomerID: 42,
			Role:       authorization.RoleCustomer,
		})

		require.NoError(t, err)
		assert.Equal(t, o.SID(), result.SID())
	})

	t.Run("admin reads any order", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), GetOrderQuery{
			OrderSID:   o.SID(),
			CustomerID: 1,
			Role:       authorization.RoleAdmin,
		})

		require.NoError(t, err)
		assert.Equal(t, o.SID(), result.SID())
	})

	t.Run("foreign order reads as not found", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetOrderQuery{
			OrderSID:   o.SID(),
			CustomerID: 7,
			Role:       authorization.RoleCustomer,
		})

		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetOrderQuery{
			OrderSID:   "ord_missing00000",
			CustomerID: 42,
			Role:       authorization.RoleCustomer,
		})

		assert.True(t, errors.IsNotFoundError(err))
	})
}
