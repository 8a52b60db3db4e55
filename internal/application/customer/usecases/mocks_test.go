package usecases

import (
	"context"

	"github.com/orderline-io/orderline/internal/domain/customer"
	"github.com/orderline-io/orderline/internal/shared/authorization"
	"github.com/orderline-io/orderline/internal/shared/logger"
)

type mockCustomerRepository struct {
	CreateFunc     func(ctx context.Context, c *customer.Customer) error
	UpdateFunc     func(ctx context.Context, c *customer.Customer) error
	GetByIDFunc    func(ctx context.Context, id uint) (*customer.Customer, error)
	GetBySIDFunc   func(ctx context.Context, sid string) (*customer.Customer, error)
	GetByEmailFunc func(ctx context.Context, email string) (*customer.Customer, error)
}

func (m *mockCustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCustomerRepository) GetByID(ctx context.Context, id uint) (*customer.Customer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCustomerRepository) GetBySID(ctx context.Context, sid string) (*customer.Customer, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockCustomerRepository) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

type mockHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hash, password string) error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(hash, password string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hash, password)
	}
	return nil
}

type mockJWTService struct {
	GenerateFunc func(customerSID string, role authorization.Role) (*TokenPair, error)
	RefreshFunc  func(refreshToken string) (string, error)
}

func (m *mockJWTService) Generate(customerSID string, role authorization.Role) (*TokenPair, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(customerSID, role)
	}
	return &TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil
}

func (m *mockJWTService) Refresh(refreshToken string) (string, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(refreshToken)
	}
	return "access", nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)      {}
func (m *mockLogger) Info(msg string, args ...any)       {}
func (m *mockLogger) Warn(msg string, args ...any)       {}
func (m *mockLogger) Error(msg string, args ...any)      {}
func (m *mockLogger) With(args ...any) logger.Interface  { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }
func (m *mockLogger) Debugw(msg string, kv ...any)       {}
func (m *mockLogger) Infow(msg string, kv ...any)        {}
func (m *mockLogger) Warnw(msg string, kv ...any)        {}
func (m *mockLogger) Errorw(msg string, kv ...any)       {}
