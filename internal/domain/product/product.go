// Package product contains the Product aggregate: catalog data plus stock
// accounting with oversell protection.
package product

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/orderline-io/orderline/internal/domain/order/valueobjects"
	"github.com/orderline-io/orderline/internal/shared/biztime"
	"github.com/orderline-io/orderline/internal/shared/id"
)

type Product struct {
	dbID        uint
	sid         string
	name        string
	description string
	price       vo.Money
	stock       int
	archived    bool

	version   int
	createdAt time.Time
	updatedAt time.Time
}

// NewProduct creates a catalog entry. Description is raw markdown; it is
// rendered and sanitized at the read path, never stored as HTML.
func NewProduct(name, description string, price vo.Money, stock int) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("price must be positive")
	}
	if stock < 0 {
		return nil, fmt.Errorf("stock cannot be negative")
	}

	sid, err := id.NewProductSID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate product SID: %w", err)
	}

	now := biztime.NowUTC()
	return &Product{
		sid:         sid,
		name:        name,
		description: description,
		price:       price,
		stock:       stock,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReserveStock deducts stock for an order, rejecting oversell.
func (p *Product) ReserveStock(qty int) error {
	if qty <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", qty)
	}
	if p.archived {
		return fmt.Errorf("product %s is archived", p.sid)
	}
	if qty > p.stock {
		return fmt.Errorf("insufficient stock for product %s: have %d, want %d", p.sid, p.stock, qty)
	}
	p.stock -= qty
	p.touch()
	return nil
}

// ReleaseStock returns stock after a cancellation or expiry.
func (p *Product) ReleaseStock(qty int) error {
	if qty <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", qty)
	}
	p.stock += qty
	p.touch()
	return nil
}

// AdjustStock sets the absolute stock level (admin restock/correction).
func (p *Product) AdjustStock(stock int) error {
	if stock < 0 {
		return fmt.Errorf("stock cannot be negative")
	}
	p.stock = stock
	p.touch()
	return nil
}

// Archive removes the product from sale. Idempotent.
func (p *Product) Archive() {
	if p.archived {
		return
	}
	p.archived = true
	p.touch()
}

func (p *Product) touch() {
	p.updatedAt = biztime.NowUTC()
	p.version++
}

// SetID records the database identity after first persistence.
func (p *Product) SetID(dbID uint) {
	p.dbID = dbID
}

func (p *Product) ID() uint             { return p.dbID }
func (p *Product) SID() string          { return p.sid }
func (p *Product) Name() string         { return p.name }
func (p *Product) Description() string  { return p.description }
func (p *Product) Price() vo.Money      { return p.price }
func (p *Product) Stock() int           { return p.stock }
func (p *Product) IsArchived() bool     { return p.archived }
func (p *Product) Version() int         { return p.version }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }

// ReconstructParams carries persisted state back into a Product.
type ReconstructParams struct {
	ID          uint
	SID         string
	Name        string
	Description string
	Price       vo.Money
	Stock       int
	Archived    bool
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Reconstruct rebuilds a Product from persistence.
func Reconstruct(p ReconstructParams) *Product {
	return &Product{
		dbID:        p.ID,
		sid:         p.SID,
		name:        p.Name,
		description: p.Description,
		price:       p.Price,
		stock:       p.Stock,
		archived:    p.Archived,
		version:     p.Version,
		createdAt:   p.CreatedAt,
		updatedAt:   p.UpdatedAt,
	}
}
