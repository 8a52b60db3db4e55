package handlers

import (
	"time"

	"github.com/orderline-io/orderline/internal/domain/customer"
	"github.com/orderline-io/orderline/internal/domain/order"
	"github.com/orderline-io/orderline/internal/domain/product"
)

// OrderItemResponse is the client-facing line item shape.
type OrderItemResponse struct {
	ProductSID     string `json:"product_sid"`
	ProductName    string `json:"product_name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Currency       string `json:"currency"`
	Quantity       int    `json:"quantity"`
	TotalCents     int64  `json:"total_cents"`
}

type OrderResponse struct {
	SID           string              `json:"sid"`
	OrderNo       string              `json:"order_no"`
	Items         []OrderItemResponse `json:"items"`
	TotalCents    int64               `json:"total_cents"`
	Currency      string              `json:"currency"`
	Status        string              `json:"status"`
	TransactionID *string             `json:"transaction_id,omitempty"`
	TrackingNo    *string             `json:"tracking_no,omitempty"`
	CancelReason  *string             `json:"cancel_reason,omitempty"`
	PaidAt        *time.Time          `json:"paid_at,omitempty"`
	ShippedAt     *time.Time          `json:"shipped_at,omitempty"`
	CancelledAt   *time.Time          `json:"cancelled_at,omitempty"`
	ExpiresAt     time.Time           `json:"expires_at"`
	CreatedAt     time.Time           `json:"created_at"`
}

func toOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ProductSID:     item.ProductSID(),
			ProductName:    item.ProductName(),
			UnitPriceCents: item.UnitPrice().AmountInCents(),
			Currency:       item.UnitPrice().Currency(),
			Quantity:       item.Quantity(),
			TotalCents:     item.Total().AmountInCents(),
		})
	}

	return OrderResponse{
		SID:           o.SID(),
		OrderNo:       o.OrderNo(),
		Items:         items,
		TotalCents:    o.Total().AmountInCents(),
		Currency:      o.Total().Currency(),
		Status:        o.Status().String(),
		TransactionID: o.TransactionID(),
		TrackingNo:    o.TrackingNo(),
		CancelReason:  o.CancelReason(),
		PaidAt:        o.PaidAt(),
		ShippedAt:     o.ShippedAt(),
		CancelledAt:   o.CancelledAt(),
		ExpiresAt:     o.ExpiresAt(),
		CreatedAt:     o.CreatedAt(),
	}
}

func toOrderResponses(orders []*order.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, toOrderResponse(o))
	}
	return responses
}

type CustomerResponse struct {
	SID       string    `json:"sid"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func toCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		SID:       c.SID(),
		Email:     c.Email(),
		Name:      c.Name(),
		Role:      c.Role().String(),
		Status:    string(c.Status()),
		CreatedAt: c.CreatedAt(),
	}
}

type ProductResponse struct {
	SID             string    `json:"sid"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DescriptionHTML string    `json:"description_html,omitempty"`
	PriceCents      int64     `json:"price_cents"`
	Currency        string    `json:"currency"`
	Stock           int       `json:"stock"`
	Archived        bool      `json:"archived"`
	CreatedAt       time.Time `json:"created_at"`
}

func toProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		SID:         p.SID(),
		Name:        p.Name(),
		Description: p.Description(),
		PriceCents:  p.Price().AmountInCents(),
		Currency:    p.Price().Currency(),
		Stock:       p.Stock(),
		Archived:    p.IsArchived(),
		CreatedAt:   p.CreatedAt(),
	}
}

func toProductResponses(products []*product.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, toProductResponse(p))
	}
	return responses
}
