package models

import "time"

type CustomerModel struct {
	ID           uint   `gorm:"primarykey"`
	SID          string `gorm:"column:sid;uniqueIndex;not null;size:50;comment:Stripe-style ID: cus_xxx"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	Name         string `gorm:"not null;size:100"`
	PasswordHash string `gorm:"not null;size:255"`
	Role         string `gorm:"not null;size:20;default:'customer'"`
	Status       string `gorm:"not null;size:20;default:'active'"`
	Version      int    `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (CustomerModel) TableName() string {
	return "customers"
}
