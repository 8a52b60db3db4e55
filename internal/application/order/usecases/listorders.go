package usecases

import (
	"context"
	"fmt"

	"github.com/orderline-io/orderline/internal/domain/order"
	vo "github.com/orderline-io/orderline/internal/domain/order/valueobjects"
	"github.com/orderline-io/orderline/internal/shared/authorization"
	"github.com/orderline-io/orderline/internal/shared/errors"
	"github.com/orderline-io/orderline/internal/shared/logger"
	"github.com/orderline-io/orderline/internal/shared/utils"
)

type ListOrdersQuery struct {
	// CustomerID scopes the listing. Admins may pass 0 to list all.
	CustomerID  uint
	Role        authorization.Role
	RequesterID uint
	Status      string
	Pagination  utils.Pagination
}

type ListOrdersResult struct {
	Orders []*order.Order
	Total  int64
}

type ListOrdersUseCase struct {
	orderRepo order.Repository
	logger    logger.Interface
}

func NewListOrdersUseCase(orderRepo order.Repository, logger logger.Interface) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (uc *ListOrdersUseCase) Execute(ctx context.Context, query ListOrdersQuery) (*ListOrdersResult, error) {
	if !query.Role.IsAdmin() {
		// Non-admins only ever see their own orders.
		query.CustomerID = query.RequesterID
	}

	filter := order.ListFilter{
		CustomerID: query.CustomerID,
		Page:       query.Pagination.Page,
		PageSize:   query.Pagination.PageSize,
	}

	if query.Status != "" {
		status, ok := vo.ParseOrderStatus(query.Status)
		if !ok {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid order status: %s", query.Status))
		}
		filter.Status = status
	}

	orders, total, err := uc.orderRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list orders", "error", err, "customer_id", query.CustomerID)
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return &ListOrdersResult{Orders: orders, Total: total}, nil
}
