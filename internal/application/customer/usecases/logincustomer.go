package usecases

import (
	"context"
	"fmt"

	"github.com/orderline-io/orderline/internal/domain/customer"
	"github.com/orderline-io/orderline/internal/shared/authorization"
	"github.com/orderline-io/orderline/internal/shared/errors"
	"github.com/orderline-io/orderline/internal/shared/logger"
)

// TokenPair carries the issued access and refresh tokens.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// JWTService issues and refreshes signed tokens for customers.
type JWTService interface {
	Generate(customerSID string, role authorization.Role) (*TokenPair, error)
	Refresh(refreshToken string) (string, error)
}

type LoginCustomerCommand struct {
	Email    string
	Password string
}

type LoginCustomerResult struct {
	Customer     *customer.Customer
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type LoginCustomerUseCase struct {
	customerRepo customer.Repository
	hasher       customer.PasswordHasher
	jwtService   JWTService
	logger       logger.Interface
}

func NewLoginCustomerUseCase(
	customerRepo customer.Repository,
	hasher customer.PasswordHasher,
	jwtService JWTService,
	logger logger.Interface,
) *LoginCustomerUseCase {
	return &LoginCustomerUseCase{
		customerRepo: customerRepo,
		hasher:       hasher,
		jwtService:   jwtService,
		logger:       logger,
	}
}

// Execute verifies credentials and issues a token pair. Lookup and
// verification failures both map to the same generic error so the response
// does not reveal whether the email is registered.
func (uc *LoginCustomerUseCase) Execute(ctx context.Context, cmd LoginCustomerCommand) (*LoginCustomerResult, error) {
	c, err := uc.customerRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("invalid email or password")
		}
		uc.logger.Errorw("failed to get customer by email", "error", err)
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	if !c.IsActive() {
		return nil, errors.NewForbiddenError("account is deactivated")
	}

	if err := uc.hasher.Verify(c.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("failed login attempt", "customer_sid", c.SID())
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	pair, err := uc.jwtService.Generate(c.SID(), c.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err, "customer_sid", c.SID())
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	uc.logger.Infow("customer logged in", "customer_sid", c.SID())

	return &LoginCustomerResult{
		Customer:     c,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
