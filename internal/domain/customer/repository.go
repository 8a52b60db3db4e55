package customer

import "context"

// Repository is the persistence boundary for customers.
type Repository interface {
	Create(ctx context.Context, c *Customer) error
	Update(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, dbID uint) (*Customer, error)
	GetBySID(ctx context.Context, sid string) (*Customer, error)
	GetByEmail(ctx context.Context, email string) (*Customer, error)
}
