package usecases

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderline-io/orderline/internal/domain/customer"
	"github.com/orderline-io/orderline/internal/shared/authorization"
	"github.com/orderline-io/orderline/internal/shared/errors"
)

func activeCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer("ada@example.com", "Ada", "hashed:secret", authorization.RoleCustomer)
	require.NoError(t, err)
	c.SetID(1)
	return c
}

func TestLoginCustomerUseCase_Execute(t *testing.T) {
	t.Run("issues token pair for valid credentials", func(t *testing.T) {
		c := activeCustomer(t)
		repo := &mockCustomerRepository{
			GetByEmailFunc: func(ctx context.Context, email string) (*customer.Customer, error) {
				assert.Equal(t, "ada@example.com", email)
				return c, nil
			},
		}
		hasher := &mockHasher{
			VerifyFunc: func(hash, password string) error {
				assert.Equal(t, "hashed:secret", hash)
				assert.Equal(t, "secret-password", password)
				return nil
			},
		}

		uc := NewLoginCustomerUseCase(repo, hasher, &mockJWTService{}, &mockLogger{})
		result, err := uc.Execute(context.Background(), LoginCustomerCommand{
			Email:    "ada@example.com",
			Password: "secret-password",
		})

		require.NoError(t, err)
		assert.Equal(t, "access", result.AccessToken)
		assert.Equal(t, "refresh", result.RefreshToken)
		assert.Equal(t, c.SID(), result.Customer.SID())
	})

	t.Run("unknown email and wrong password return the same error", func(t *testing.T) {
		notFoundRepo := &mockCustomerRepository{
			GetByEmailFunc: func(ctx context.Context, email string) (*customer.Customer, error) {
				return nil, errors.NewNotFoundError("customer not found")
			},
		}
		uc := NewLoginCustomerUseCase(notFoundRepo, &mockHasher{}, &mockJWTService{}, &mockLogger{})
		_, errUnknown := uc.Execute(context.Background(), LoginCustomerCommand{
			Email:    "nobody@example.com",
			Password: "whatever",
		})

		c := activeCustomer(t)
		foundRepo := &mockCustomerRepository{
			GetByEmailFunc: func(ctx context.Context, email string) (*customer.Customer, error) {
				return c, nil
			},
		}
		badHasher := &mockHasher{
			VerifyFunc: func(hash, password string) error {
				return stderrors.New("mismatch")
			},
		}
		uc = NewLoginCustomerUseCase(foundRepo, badHasher, &mockJWTService{}, &mockLogger{})
		_, errWrong := uc.Execute(context.Background(), LoginCustomerCommand{
			Email:    "ada@example.com",
			Password: "wrong",
		})

		require.Error(t, errUnknown)
		require.Error(t, errWrong)
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
	})

	t.Run("rejects deactivated account", func(t *testing.T) {
		c := activeCustomer(t)
		c.Deactivate()
		repo := &mockCustomerRepository{
			GetByEmailFunc: func(ctx context.Context, email string) (*customer.Customer, error) {
				return c, nil
			},
		}

		uc := NewLoginCustomerUseCase(repo, &mockHasher{}, &mockJWTService{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), LoginCustomerCommand{
			Email:    "ada@example.com",
			Password: "secret-password",
		})

		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
	})
}

func TestGetCustomerUseCase_Execute(t *testing.T) {
	c := activeCustomer(t)
	repo := &mockCustomerRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*customer.Customer, error) {
			if sid == c.SID() {
				return c, nil
			}
			return nil, errors.NewNotFoundError("customer not found")
		},
	}
	uc := NewGetCustomerUseCase(repo, &mockLogger{})

	t.Run("self lookup", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), GetCustomerQuery{
			CustomerSID: c.SID(),
			RequesterID: 1,
			Role:        authorization.RoleCustomer,
		})

		require.NoError(t, err)
		assert.Equal(t, c.SID(), result.SID())
	})

	t.Run("foreign lookup reads as not found", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetCustomerQuery{
			CustomerSID: c.SID(),
			RequesterID: 2,
			Role:        authorization.RoleCustomer,
		})

		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("admin lookup", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), GetCustomerQuery{
			CustomerSID: c.SID(),
			RequesterID: 99,
			Role:        authorization.RoleAdmin,
		})

		require.NoError(t, err)
		assert.Equal(t, c.SID(), result.SID())
	})
}
