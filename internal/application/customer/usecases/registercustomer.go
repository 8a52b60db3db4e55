// Package usecases implements the customer application services.
package usecases

import (
	"context"
	"fmt"

	"github.com/orderline-io/orderline/internal/domain/customer"
	"github.com/orderline-io/orderline/internal/shared/authorization"
	"github.com/orderline-io/orderline/internal/shared/errors"
	"github.com/orderline-io/orderline/internal/shared/logger"
)

// minPasswordLength follows current NIST guidance rather than composition rules.
const minPasswordLength = 8

type RegisterCustomerCommand struct {
	Email    string
	Name     string
	Password string
}

type RegisterCustomerUseCase struct {
	customerRepo customer.Repository
	hasher       customer.PasswordHasher
	logger       logger.Interface
}

func NewRegisterCustomerUseCase(
	customerRepo customer.Repository,
	hasher customer.PasswordHasher,
	logger logger.Interface,
) *RegisterCustomerUseCase {
	return &RegisterCustomerUseCase{
		customerRepo: customerRepo,
		hasher:       hasher,
		logger:       logger,
	}
}

func (uc *RegisterCustomerUseCase) Execute(ctx context.Context, cmd RegisterCustomerCommand) (*customer.Customer, error) {
	if len(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError(
			fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	c, err := customer.NewCustomer(cmd.Email, cmd.Name, hash, authorization.RoleCustomer)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.customerRepo.Create(ctx, c); err != nil {
		if errors.IsDuplicateError(err) || errors.IsConflictError(err) {
			return nil, errors.NewConflictError("email is already registered")
		}
		uc.logger.Errorw("failed to save customer", "error", err)
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	uc.logger.Infow("customer registered", "customer_sid", c.SID(), "email", c.Email())
	return c, nil
}
