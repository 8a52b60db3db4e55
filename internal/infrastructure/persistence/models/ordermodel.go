// Package models defines the GORM persistence models. Models carry no
// behavior; mappers translate between them and the domain aggregates.
package models

import (
	"time"

	"gorm.io/datatypes"
)

type OrderModel struct {
	ID            uint           `gorm:"primarykey"`
	SID           string         `gorm:"column:sid;uniqueIndex;not null;size:50;comment:Stripe-style ID: ord_xxx"`
	OrderNo       string         `gorm:"uniqueIndex;not null;size:64"`
	CustomerID    uint           `gorm:"not null;index:idx_customer_order"`
	Items         datatypes.JSON `gorm:"not null"`
	TotalAmount   int64          `gorm:"not null"`
	Currency      string         `gorm:"not null;size:10;default:'USD'"`
	Status        string         `gorm:"not null;size:20;index:idx_status"`
	TransactionID *string        `gorm:"size:128"`
	TrackingNo    *string        `gorm:"size:128"`
	CancelReason  *string        `gorm:"size:500"`
	PaidAt        *time.Time
	ShippedAt     *time.Time
	CancelledAt   *time.Time
	ExpiresAt     time.Time `gorm:"not null;index:idx_expires_at"`
	Metadata      datatypes.JSON
	Version       int `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemRecord is the JSON shape of one line item inside OrderModel.Items.
type OrderItemRecord struct {
	ProductSID     string `json:"product_sid"`
	ProductName    string `json:"product_name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Currency       string `json:"currency"`
	Quantity       int    `json:"quantity"`
}
