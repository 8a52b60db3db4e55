package handlers

import (
	"context"

	"github.com/orderline-io/orderline/internal/application/customer/usecases"
	"github.com/orderline-io/orderline/internal/domain/customer"
)

// Use case interfaces for CustomerHandler

type registerCustomerUseCase interface {
	Execute(ctx context.Context, cmd usecases.RegisterCustomerCommand) (*customer.Customer, error)
}

type loginCustomerUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCustomerCommand) (*usecases.LoginCustomerResult, error)
}

type getCustomerUseCase interface {
	Execute(ctx context.Context, query usecases.GetCustomerQuery) (*customer.Customer, error)
}

type tokenRefresher interface {
	Refresh(refreshToken string) (string, error)
}
