package order

import (
	"context"

	vo "github.com/orderline-io/orderline/internal/domain/order/valueobjects"
)

// ListFilter narrows List queries. Zero values mean "any".
type ListFilter struct {
	CustomerID uint
	Status     vo.OrderStatus
	Page       int
	PageSize   int
}

// Repository is the persistence boundary for orders. Get-style methods
// return a not-found error when the order is absent; Create and Update
// persist the whole aggregate.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	Update(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, dbID uint) (*Order, error)
	GetBySID(ctx context.Context, sid string) (*Order, error)
	GetByOrderNo(ctx context.Context, orderNo string) (*Order, error)
	List(ctx context.Context, filter ListFilter) ([]*Order, int64, error)
	// ListExpiredPending returns pending orders whose payment window has
	// elapsed, capped at limit.
	ListExpiredPending(ctx context.Context, limit int) ([]*Order, error)
}
