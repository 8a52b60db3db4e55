package usecases

import (
	"context"

	"github.com/orderline-io/orderline/internal/domain/order"
	"github.com/orderline-io/orderline/internal/shared/authorization"
	"github.com/orderline-io/orderline/internal/shared/errors"
	"github.com/orderline-io/orderline/internal/shared/logger"
)

type GetOrderQuery struct {
	OrderSID   string
	CustomerID uint
	Role       authorization.Role
}

type GetOrderUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewGetOrderUseCase(orderRepo order.Repository, logger logger.Interface) *GetOrderUseCase {
	return &GetOrderUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (uc *GetOrderUseCase) Execute(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	o, err := uc.orderRepo.GetBySID(ctx, query.OrderSID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanAccess(query.CustomerID, query.Role, o) {
		// Hide existence of other customers' orders.
		return nil, errors.NewNotFoundError("order not found")
	}

	return o, nil
}
