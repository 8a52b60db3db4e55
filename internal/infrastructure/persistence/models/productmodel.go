package models

import "time"

type ProductModel struct {
	ID          uint   `gorm:"primarykey"`
	SID         string `gorm:"column:sid;uniqueIndex;not null;size:50;comment:Stripe-style ID: prd_xxx"`
	Name        string `gorm:"not null;size:255"`
	Description string `gorm:"type:text;comment:raw markdown"`
	PriceCents  int64  `gorm:"not null"`
	Currency    string `gorm:"not null;size:10;default:'USD'"`
	Stock       int    `gorm:"not null;default:0"`
	Archived    bool   `gorm:"not null;default:false;index:idx_archived"`
	Version     int    `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ProductModel) TableName() string {
	return "products"
}
