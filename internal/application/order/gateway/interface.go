// Package gateway defines the outbound ports the order use cases depend on.
// Infrastructure supplies the concrete providers.
package gateway

import (
	"context"
	"time"
)

// PaymentGateway defines the interface for payment provider integrations.
type PaymentGateway interface {
	// Charge captures a payment for an order.
	// Amount MUST be in the smallest currency unit (e.g., cents for USD).
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResponse, error)
	// Refund reverses a previously captured charge.
	Refund(ctx context.Context, req RefundRequest) (*RefundResponse, error)
}

// ChargeRequest contains the data needed to capture a payment.
type ChargeRequest struct {
	OrderNo   string
	Reference string // provider payment reference (token, intent id)
	Amount    int64  // smallest currency unit (e.g., cents: 100 = 1 USD)
	Currency  string
	Subject   string
}

type ChargeResponse struct {
	TransactionID string
	PaidAt        time.Time
}

// RefundRequest reverses a charge identified by its transaction ID.
type RefundRequest struct {
	OrderNo       string
	TransactionID string
	Amount        int64
	Currency      string
	Reason        string
}

type RefundResponse struct {
	RefundID   string
	RefundedAt time.Time
}

// ShipmentCarrier defines the interface for carrier integrations.
type ShipmentCarrier interface {
	// CreateShipment books a shipment and returns the tracking number.
	CreateShipment(ctx context.Context, req ShipmentRequest) (*ShipmentResponse, error)
}

// ShipmentRequest contains the data needed to book a shipment.
type ShipmentRequest struct {
	OrderNo     string
	OrderSID    string
	CustomerID  uint
	ItemCount   int
	Destination string
}

type ShipmentResponse struct {
	TrackingNo string
	Carrier    string
	ShippedAt  time.Time
}
