package product

import "context"

// ListFilter narrows product listings.
type ListFilter struct {
	IncludeArchived bool
	Page            int
	PageSize        int
}

// Repository persists Product aggregates.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id uint) (*Product, error)
	GetBySID(ctx context.Context, sid string) (*Product, error)
	List(ctx context.Context, filter ListFilter) ([]*Product, int64, error)
}
