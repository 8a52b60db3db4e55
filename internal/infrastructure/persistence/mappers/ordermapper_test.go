package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderline-io/orderline/internal/domain/order"
	vo "github.com/orderline-io/orderline/internal/domain/order/valueobjects"
)

func TestOrderMapperRoundTrip(t *testing.T) {
	item1, err := vo.NewLineItem("prd_a1b2c3d4e5f6", "Walnut Desk", vo.NewMoney(19900, "USD"), 1)
	require.NoError(t, err)
	item2, err := vo.NewLineItem("prd_f6e5d4c3b2a1", "Office Chair", vo.NewMoney(4900, "USD"), 2)
	require.NoError(t, err)

	o, err := order.NewOrder(42, []vo.LineItem{item1, item2}, 30*time.Minute)
	require.NoError(t, err)
	o.SetID(7)
	require.NoError(t, o.MarkAsPaid("txn_abc"))
	o.SetMetadata("channel", "web")

	model, err := OrderToModel(o)
	require.NoError(t, err)
	assert.Equal(t, o.SID(), model.SID)
	assert.Equal(t, int64(29700), model.TotalAmount)
	assert.NotEmpty(t, model.Items)
	assert.NotEmpty(t, model.Metadata)

	restored, err := OrderToDomain(model)
	require.NoError(t, err)
	assert.Equal(t, o.SID(), restored.SID())
	assert.Equal(t, o.OrderNo(), restored.OrderNo())
	assert.Equal(t, vo.OrderStatusPaid, restored.Status())
	require.Len(t, restored.Items(), 2)
	assert.Equal(t, "Walnut Desk", restored.Items()[0].ProductName())
	assert.Equal(t, 2, restored.Items()[1].Quantity())
	require.NotNil(t, restored.TransactionID())
	assert.Equal(t, "txn_abc", *restored.TransactionID())
	assert.Equal(t, "web", restored.Metadata()["channel"])
	assert.Empty(t, restored.DomainEvents(), "reconstruction must not emit events")
}

func TestOrderToDomainRejectsBadData(t *testing.T) {
	o, err := order.NewOrder(42, mustItems(t), 30*time.Minute)
	require.NoError(t, err)
	model, err := OrderToModel(o)
	require.NoError(t, err)

	t.Run("unknown status", func(t *testing.T) {
		bad := *model
		bad.Status = "refunded"
		_, err := OrderToDomain(&bad)
		assert.Error(t, err)
	})

	t.Run("corrupt items payload", func(t *testing.T) {
		bad := *model
		bad.Items = []byte("{not json")
		_, err := OrderToDomain(&bad)
		assert.Error(t, err)
	})
}

func mustItems(t *testing.T) []vo.LineItem {
	t.Helper()
	item, err := vo.NewLineItem("prd_a1b2c3d4e5f6", "Walnut Desk", vo.NewMoney(19900, "USD"), 1)
	require.NoError(t, err)
	return []vo.LineItem{item}
}
