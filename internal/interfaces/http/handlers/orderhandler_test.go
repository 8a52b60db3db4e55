package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderline-io/orderline/internal/application/order/usecases"
	"github.com/orderline-io/orderline/internal/domain/order"
	vo "github.com/orderline-io/orderline/internal/domain/order/valueobjects"
	"github.com/orderline-io/orderline/internal/interfaces/http/handlers/testutil"
	"github.com/orderline-io/orderline/internal/shared/errors"
)

type mockPlaceOrderUC struct {
	result  *order.Order
	err     error
	lastCmd usecases.PlaceOrderCommand
}

func (m *mockPlaceOrderUC) Execute(ctx context.Context, cmd usecases.PlaceOrderCommand) (*order.Order, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockPayOrderUC struct {
	result  *order.Order
	err     error
	lastCmd usecases.PayOrderCommand
}

func (m *mockPayOrderUC) Execute(ctx context.Context, cmd usecases.PayOrderCommand) (*order.Order, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockShipOrderUC struct {
	result  *order.Order
	err     error
	lastCmd usecases.ShipOrderCommand
}

func (m *mockShipOrderUC) Execute(ctx context.Context, cmd usecases.ShipOrderCommand) (*order.Order, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockCancelOrderUC struct {
	result  *order.Order
	err     error
	lastCmd usecases.CancelOrderCommand
}

func (m *mockCancelOrderUC) Execute(ctx context.Context, cmd usecases.CancelOrderCommand) (*order.Order, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockGetOrderUC struct {
	result *order.Order
	err    error
}

func (m *mockGetOrderUC) Execute(ctx context.Context, query usecases.GetOrderQuery) (*order.Order, error) {
	return m.result, m.err
}

type mockListOrdersUC struct {
	result    *usecases.ListOrdersResult
	err       error
	lastQuery usecases.ListOrdersQuery
}

func (m *mockListOrdersUC) Execute(ctx context.Context, query usecases.ListOrdersQuery) (*usecases.ListOrdersResult, error) {
	m.lastQuery = query
	return m.result, m.err
}

func createTestOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := vo.NewLineItem("prd_test1", "Mechanical Keyboard", vo.NewMoney(2500, "USD"), 2)
	require.NoError(t, err)
	o, err := order.NewOrder(42, []vo.LineItem{item}, 30*time.Minute)
	require.NoError(t, err)
	o.SetID(1)
	o.ClearEvents()
	return o
}

func newTestOrderHandler(
	placeUC placeOrderUseCase,
	payUC payOrderUseCase,
	shipUC shipOrderUseCase,
	cancelUC cancelOrderUseCase,
	getUC getOrderUseCase,
	listUC listOrdersUseCase,
) *OrderHandler {
	return NewOrderHandler(placeUC, payUC, shipUC, cancelUC, getUC, listUC, testutil.NewMockLogger())
}

func TestOrderHandler_PlaceOrder(t *testing.T) {
	t.Run("places order for authenticated customer", func(t *testing.T) {
		mockUC := &mockPlaceOrderUC{result: createTestOrder(t)}
		handler := newTestOrderHandler(mockUC, nil, nil, nil, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/orders", PlaceOrderRequest{
			Items: []PlaceOrderItemRequest{{ProductSID: "prd_test1", Quantity: 2}},
		})
		testutil.SetAuthContext(c, 42, "cus_test1", "customer")

		handler.PlaceOrder(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, uint(42), mockUC.lastCmd.CustomerID)
		require.Len(t, mockUC.lastCmd.Items, 1)
		assert.Equal(t, "prd_test1", mockUC.lastCmd.Items[0].ProductSID)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.True(t, resp.Success)
	})

	t.Run("rejects unauthenticated request", func(t *testing.T) {
		handler := newTestOrderHandler(&mockPlaceOrderUC{}, nil, nil, nil, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/orders", PlaceOrderRequest{
			Items: []PlaceOrderItemRequest{{ProductSID: "prd_test1", Quantity: 1}},
		})

		handler.PlaceOrder(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects empty item list", func(t *testing.T) {
		mockUC := &mockPlaceOrderUC{}
		handler := newTestOrderHandler(mockUC, nil, nil, nil, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/orders", PlaceOrderRequest{})
		testutil.SetAuthContext(c, 42, "cus_test1", "customer")

		handler.PlaceOrder(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("translates oversell conflict", func(t *testing.T) {
		mockUC := &mockPlaceOrderUC{err: errors.NewConflictError("insufficient stock for product prd_test1")}
		handler := newTestOrderHandler(mockUC, nil, nil, nil, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/orders", PlaceOrderRequest{
			Items: []PlaceOrderItemRequest{{ProductSID: "prd_test1", Quantity: 99}},
		})
		testutil.SetAuthContext(c, 42, "cus_test1", "customer")

		handler.PlaceOrder(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestOrderHandler_PayOrder(t *testing.T) {
	t.Run("pays order with reference", func(t *testing.T) {
		paid := createTestOrder(t)
		require.NoError(t, paid.MarkAsPaid("txn_123"))
		mockUC := &mockPayOrderUC{result: paid}
		handler := newTestOrderHandler(nil, mockUC, nil, nil, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/orders/ord_x/pay", PayOrderRequest{Reference: "pm_abc"})
		testutil.SetAuthContext(c, 42, "cus_test1", "customer")
		testutil.SetURLParam(c, "sid", "ord_x")

		handler.PayOrder(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ord_x", mockUC.lastCmd.OrderSID)
		assert.Equal(t, "pm_abc", mockUC.lastCmd.Reference)
	})

	t.Run("rejects missing reference", func(t *testing.T) {
		handler := newTestOrderHandler(nil, &mockPayOrderUC{}, nil, nil, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/orders/ord_x/pay", PayOrderRequest{})
		testutil.SetAuthContext(c, 42, "cus_test1", "customer")
		testutil.SetURLParam(c, "sid", "ord_x")

		handler.PayOrder(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("translates forbidden for foreign order", func(t *testing.T) {
		mockUC := &mockPayOrderUC{err: errors.NewForbiddenError("you do not have access to this order")}
		handler := newTestOrderHandler(nil, mockUC, nil, nil, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/orders/ord_x/pay", PayOrderRequest{Reference: "pm_abc"})
		testutil.SetAuthContext(c, 7, "cus_other", "customer")
		testutil.SetURLParam(c, "sid", "ord_x")

		handler.PayOrder(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestOrderHandler_ShipOrder(t *testing.T) {
	t.Run("ships paid order", func(t *testing.T) {
		shipped := createTestOrder(t)
		require.NoError(t, shipped.MarkAsPaid("txn_123"))
		require.NoError(t, shipped.Ship("TRK-1"))
		mockUC := &mockShipOrderUC{result: shipped}
		handler := newTestOrderHandler(nil, nil, mockUC, nil, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/orders/ord_x/ship", ShipOrderRequest{Destination: "12 Main St"})
		testutil.SetAuthContext(c, 1, "cus_admin", "admin")
		testutil.SetURLParam(c, "sid", "ord_x")

		handler.ShipOrder(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "12 Main St", mockUC.lastCmd.Destination)
	})

	t.Run("translates unpaid conflict", func(t *testing.T) {
		mockUC := &mockShipOrderUC{err: errors.NewConflictError("only paid orders can be shipped")}
		handler := newTestOrderHandler(nil, nil, mockUC, nil, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/orders/ord_x/ship", ShipOrderRequest{Destination: "12 Main St"})
		testutil.SetAuthContext(c, 1, "cus_admin", "admin")
		testutil.SetURLParam(c, "sid", "ord_x")

		handler.ShipOrder(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestOrderHandler_CancelOrder(t *testing.T) {
	t.Run("cancels with reason", func(t *testing.T) {
		cancelled := createTestOrder(t)
		require.NoError(t, cancelled.Cancel("changed my mind"))
		mockUC := &mockCancelOrderUC{result: cancelled}
		handler := newTestOrderHandler(nil, nil, nil, mockUC, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/orders/ord_x/cancel", CancelOrderRequest{Reason: "changed my mind"})
		testutil.SetAuthContext(c, 42, "cus_test1", "customer")
		testutil.SetURLParam(c, "sid", "ord_x")

		handler.CancelOrder(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "changed my mind", mockUC.lastCmd.Reason)
	})

	t.Run("allows empty body", func(t *testing.T) {
		cancelled := createTestOrder(t)
		require.NoError(t, cancelled.Cancel(""))
		mockUC := &mockCancelOrderUC{result: cancelled}
		handler := newTestOrderHandler(nil, nil, nil, mockUC, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPost, "/orders/ord_x/cancel", nil)
		testutil.SetAuthContext(c, 42, "cus_test1", "customer")
		testutil.SetURLParam(c, "sid", "ord_x")

		handler.CancelOrder(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	t.Run("returns order", func(t *testing.T) {
		mockUC := &mockGetOrderUC{result: createTestOrder(t)}
		handler := newTestOrderHandler(nil, nil, nil, nil, mockUC, nil)

		c, w := testutil.NewTestContext(http.MethodGet, "/orders/ord_x", nil)
		testutil.SetAuthContext(c, 42, "cus_test1", "customer")
		testutil.SetURLParam(c, "sid", "ord_x")

		handler.GetOrder(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("translates not found", func(t *testing.T) {
		mockUC := &mockGetOrderUC{err: errors.NewNotFoundError("order not found")}
		handler := newTestOrderHandler(nil, nil, nil, nil, mockUC, nil)

		c, w := testutil.NewTestContext(http.MethodGet, "/orders/ord_missing", nil)
		testutil.SetAuthContext(c, 42, "cus_test1", "customer")
		testutil.SetURLParam(c, "sid", "ord_missing")

		handler.GetOrder(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestOrderHandler_ListOrders(t *testing.T) {
	t.Run("scopes customer to own orders", func(t *testing.T) {
		mockUC := &mockListOrdersUC{result: &usecases.ListOrdersResult{
			Orders: []*order.Order{createTestOrder(t)},
			Total:  1,
		}}
		handler := newTestOrderHandler(nil, nil, nil, nil, nil, mockUC)

		c, w := testutil.NewTestContext(http.MethodGet, "/orders", nil)
		testutil.SetAuthContext(c, 42, "cus_test1", "customer")

		handler.ListOrders(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(42), mockUC.lastQuery.CustomerID)
		assert.Equal(t, uint(42), mockUC.lastQuery.RequesterID)
	})

	t.Run("admin lists all orders", func(t *testing.T) {
		mockUC := &mockListOrdersUC{result: &usecases.ListOrdersResult{Total: 0}}
		handler := newTestOrderHandler(nil, nil, nil, nil, nil, mockUC)

		c, w := testutil.NewTestContext(http.MethodGet, "/orders", nil)
		testutil.SetAuthContext(c, 1, "cus_admin", "admin")
		testutil.SetQueryParams(c, map[string]string{"status": "paid"})

		handler.ListOrders(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(0), mockUC.lastQuery.CustomerID)
		assert.Equal(t, "paid", mockUC.lastQuery.Status)
	})
}
