// Package order contains the Order aggregate: all state transitions go
// through its methods, which enforce the pending -> paid -> shipped
// lifecycle.
package order

import (
	"fmt"
	"time"

	vo "github.com/orderline-io/orderline/internal/domain/order/valueobjects"
	"github.com/orderline-io/orderline/internal/domain/shared/events"
	"github.com/orderline-io/orderline/internal/domain/shared/services"
	"github.com/orderline-io/orderline/internal/shared/biztime"
	"github.com/orderline-io/orderline/internal/shared/id"
)

type Order struct {
	dbID       uint
	sid        string
	orderNo    string
	customerID uint

	items []vo.LineItem
	total vo.Money

	status        vo.OrderStatus
	transactionID *string
	trackingNo    *string
	cancelReason  *string

	paidAt      *time.Time
	shippedAt   *time.Time
	cancelledAt *time.Time
	expiresAt   time.Time

	metadata map[string]interface{}

	version   int
	createdAt time.Time
	updatedAt time.Time

	domainEvents []events.DomainEvent
}

// NewOrder places a new pending order. paymentWindow bounds how long the
// order may remain unpaid before the expiry job claims it.
func NewOrder(customerID uint, items []vo.LineItem, paymentWindow time.Duration) (*Order, error) {
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("order requires at least one line item")
	}
	if paymentWindow <= 0 {
		return nil, fmt.Errorf("payment window must be positive")
	}

	total := items[0].Total()
	var err error
	for _, item := range items[1:] {
		total, err = total.Add(item.Total())
		if err != nil {
			return nil, fmt.Errorf("invalid line items: %w", err)
		}
	}

	sid, err := id.NewOrderSID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate order SID: %w", err)
	}

	orderNo := services.NewOrderNumberGenerator().Generate("ORD")
	now := biztime.NowUTC()

	o := &Order{
		sid:        sid,
		orderNo:    orderNo,
		customerID: customerID,
		items:      items,
		total:      total,
		status:     vo.OrderStatusPending,
		expiresAt:  now.Add(paymentWindow),
		metadata:   make(map[string]interface{}),
		createdAt:  now,
		updatedAt:  now,
	}

	o.record(NewOrderPlacedEvent(o.sid, o.orderNo, customerID, total))
	return o, nil
}

// MarkAsPaid transitions a pending order to paid. Re-applying the same
// transaction to an already paid order is a no-op.
func (o *Order) MarkAsPaid(transactionID string) error {
	if transactionID == "" {
		return fmt.Errorf("transaction ID is required")
	}
	if o.status == vo.OrderStatusPaid {
		if o.transactionID != nil && *o.transactionID == transactionID {
			return nil
		}
		return fmt.Errorf("order %s already paid with a different transaction", o.orderNo)
	}
	if o.status != vo.OrderStatusPending {
		return fmt.Errorf("cannot mark order as paid with status %s", o.status)
	}

	now := biztime.NowUTC()
	o.status = vo.OrderStatusPaid
	o.transactionID = &transactionID
	o.paidAt = &now
	o.touch(now)

	o.record(NewOrderPaidEvent(o.sid, o.orderNo, o.customerID, o.total, transactionID))
	return nil
}

// Ship transitions a paid order to shipped. An unpaid order cannot ship.
func (o *Order) Ship(trackingNo string) error {
	if trackingNo == "" {
		return fmt.Errorf("tracking number is required")
	}
	if o.status != vo.OrderStatusPaid {
		return fmt.Errorf("cannot ship order with status %s", o.status)
	}

	now := biztime.NowUTC()
	o.status = vo.OrderStatusShipped
	o.trackingNo = &trackingNo
	o.shippedAt = &now
	o.touch(now)

	o.record(NewOrderShippedEvent(o.sid, o.orderNo, o.customerID, trackingNo))
	return nil
}

// Cancel aborts a pending order. Paid and shipped orders cannot be
// cancelled through this path.
func (o *Order) Cancel(reason string) error {
	if o.status == vo.OrderStatusCancelled {
		return nil
	}
	if o.status != vo.OrderStatusPending {
		return fmt.Errorf("cannot cancel order with status %s", o.status)
	}

	now := biztime.NowUTC()
	o.status = vo.OrderStatusCancelled
	if reason != "" {
		o.cancelReason = &reason
	}
	o.cancelledAt = &now
	o.touch(now)

	o.record(NewOrderCancelledEvent(o.sid, o.orderNo, o.customerID, reason))
	return nil
}

// MarkAsExpired moves an overdue pending order to expired. Safe to call on
// orders that already reached a final state.
func (o *Order) MarkAsExpired() error {
	if o.status.IsFinal() {
		return nil
	}
	if o.status != vo.OrderStatusPending {
		return fmt.Errorf("cannot expire order with status %s", o.status)
	}

	o.status = vo.OrderStatusExpired
	o.touch(biztime.NowUTC())

	o.record(NewOrderExpiredEvent(o.sid, o.orderNo, o.customerID))
	return nil
}

// IsExpired reports whether a pending order has passed its payment window.
func (o *Order) IsExpired() bool {
	return o.status == vo.OrderStatusPending && biztime.NowUTC().After(o.expiresAt)
}

func (o *Order) touch(now time.Time) {
	o.updatedAt = now
	o.version++
}

func (o *Order) record(event events.DomainEvent) {
	o.domainEvents = append(o.domainEvents, event)
}

// DomainEvents returns events recorded since construction or the last
// ClearEvents call.
func (o *Order) DomainEvents() []events.DomainEvent {
	return o.domainEvents
}

func (o *Order) ClearEvents() {
	o.domainEvents = nil
}

// SetMetadata stores an auxiliary key-value pair on the order.
func (o *Order) SetMetadata(key string, value interface{}) {
	if o.metadata == nil {
		o.metadata = make(map[string]interface{})
	}
	o.metadata[key] = value
	o.updatedAt = biztime.NowUTC()
}

// SetID records the database identity after the repository persists the
// order for the first time.
func (o *Order) SetID(dbID uint) {
	o.dbID = dbID
}

func (o *Order) ID() uint                         { return o.dbID }
func (o *Order) SID() string                      { return o.sid }
func (o *Order) OrderNo() string                  { return o.orderNo }
func (o *Order) CustomerID() uint                 { return o.customerID }
func (o *Order) Items() []vo.LineItem             { return o.items }
func (o *Order) Total() vo.Money                  { return o.total }
func (o *Order) Status() vo.OrderStatus           { return o.status }
func (o *Order) TransactionID() *string           { return o.transactionID }
func (o *Order) TrackingNo() *string              { return o.trackingNo }
func (o *Order) CancelReason() *string            { return o.cancelReason }
func (o *Order) PaidAt() *time.Time               { return o.paidAt }
func (o *Order) ShippedAt() *time.Time            { return o.shippedAt }
func (o *Order) CancelledAt() *time.Time          { return o.cancelledAt }
func (o *Order) ExpiresAt() time.Time             { return o.expiresAt }
func (o *Order) Metadata() map[string]interface{} { return o.metadata }
func (o *Order) Version() int                     { return o.version }
func (o *Order) CreatedAt() time.Time             { return o.createdAt }
func (o *Order) UpdatedAt() time.Time             { return o.updatedAt }

// OwnerID satisfies authorization.OwnedResource.
func (o *Order) OwnerID() uint { return o.customerID }

// ReconstructParams carries persisted state back into an Order.
type ReconstructParams struct {
	ID            uint
	SID           string
	OrderNo       string
	CustomerID    uint
	Items         []vo.LineItem
	Total         vo.Money
	Status        vo.OrderStatus
	TransactionID *string
	TrackingNo    *string
	CancelReason  *string
	PaidAt        *time.Time
	ShippedAt     *time.Time
	CancelledAt   *time.Time
	ExpiresAt     time.Time
	Metadata      map[string]interface{}
	Version       int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Reconstruct rebuilds an Order from persistence without emitting events.
func Reconstruct(p ReconstructParams) *Order {
	metadata := p.Metadata
	if metadata == nil {
		metadata = make(map[string]interface{})
	}
	return &Order{
		dbID:          p.ID,
		sid:           p.SID,
		orderNo:       p.OrderNo,
		customerID:    p.CustomerID,
		items:         p.Items,
		total:         p.Total,
		status:        p.Status,
		transactionID: p.TransactionID,
		trackingNo:    p.TrackingNo,
		cancelReason:  p.CancelReason,
		paidAt:        p.PaidAt,
		shippedAt:     p.ShippedAt,
		cancelledAt:   p.CancelledAt,
		expiresAt:     p.ExpiresAt,
		metadata:      metadata,
		version:       p.Version,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
	}
}
