package handlers

import (
	"context"

	"github.com/orderline-io/orderline/internal/application/order/usecases"
	"github.com/orderline-io/orderline/internal/domain/order"
)

// Use case interfaces for OrderHandler

type placeOrderUseCase interface {
	Execute(ctx context.Context, cmd usecases.PlaceOrderCommand) (*order.Order, error)
}

type payOrderUseCase interface {
	Execute(ctx context.Context, cmd usecases.PayOrderCommand) (*order.Order, error)
}

type shipOrderUseCase interface {
	Execute(ctx context.Context, cmd usecases.ShipOrderCommand) (*order.Order, error)
}

type cancelOrderUseCase interface {
	Execute(ctx context.Context, cmd usecases.CancelOrderCommand) (*order.Order, error)
}

type getOrderUseCase interface {
	Execute(ctx context.Context, query usecases.GetOrderQuery) (*order.Order, error)
}

type listOrdersUseCase interface {
	Execute(ctx context.Context, query usecases.ListOrdersQuery) (*usecases.ListOrdersResult, error)
}
