package usecases

import (
	"context"

	"github.com/orderline-io/orderline/internal/domain/customer"
	"github.com/orderline-io/orderline/internal/shared/authorization"
	"github.com/orderline-io/orderline/internal/shared/errors"
	"github.com/orderline-io/orderline/internal/shared/logger"
)

type GetCustomerQuery struct {
	CustomerSID string
	RequesterID uint
	Role        authorization.Role
}

type GetCustomerUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewGetCustomerUseCase(customerRepo customer.Repository, logger logger.Interface) *GetCustomerUseCase {
	return &GetCustomerUseCase{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (uc *GetCustomerUseCase) Execute(ctx context.Context, query GetCustomerQuery) (*customer.Customer, error) {
	c, err := uc.customerRepo.GetBySID(ctx, query.CustomerSID)
	if err != nil {
		return nil, err
	}

	if !query.Role.IsAdmin() && c.ID() != query.RequesterID {
		// Hide existence of other accounts.
		return nil, errors.NewNotFoundError("customer not found")
	}

	return c, nil
}
