package order

import (
	vo "github.com/orderline-io/orderline/internal/domain/order/valueobjects"
	"github.com/orderline-io/orderline/internal/domain/shared/events"
	"github.com/orderline-io/orderline/internal/shared/biztime"
)

const (
	EventTypeOrderPlaced    = "order.placed"
	EventTypeOrderPaid      = "order.paid"
	EventTypeOrderShipped   = "order.shipped"
	EventTypeOrderCancelled = "order.cancelled"
	EventTypeOrderExpired   = "order.expired"
)

type OrderPlacedEvent struct {
	events.BaseEvent
	OrderNo    string   `json:"order_no"`
	CustomerID uint     `json:"customer_id"`
	Total      vo.Money `json:"-"`
}

func NewOrderPlacedEvent(sid, orderNo string, customerID uint, total vo.Money) OrderPlacedEvent {
	return OrderPlacedEvent{
		BaseEvent:  events.BaseEvent{SID: sid, Type: EventTypeOrderPlaced, At: biztime.NowUTC()},
		OrderNo:    orderNo,
		CustomerID: customerID,
		Total:      total,
	}
}

type OrderPaidEvent struct {
	events.BaseEvent
	OrderNo       string   `json:"order_no"`
	CustomerID    uint     `json:"customer_id"`
	Total         vo.Money `json:"-"`
	TransactionID string   `json:"transaction_id"`
}

func NewOrderPaidEvent(sid, orderNo string, customerID uint, total vo.Money, transactionID string) OrderPaidEvent {
	return OrderPaidEvent{
		BaseEvent:     events.BaseEvent{SID: sid, Type: EventTypeOrderPaid, At: biztime.NowUTC()},
		OrderNo:       orderNo,
		CustomerID:    customerID,
		Total:         total,
		TransactionID: transactionID,
	}
}

type OrderShippedEvent struct {
	events.BaseEvent
	OrderNo    string `json:"order_no"`
	CustomerID uint   `json:"customer_id"`
	TrackingNo string `json:"tracking_no"`
}

func NewOrderShippedEvent(sid, orderNo string, customerID uint, trackingNo string) OrderShippedEvent {
	return OrderShippedEvent{
		BaseEvent:  events.BaseEvent{SID: sid, Type: EventTypeOrderShipped, At: biztime.NowUTC()},
		OrderNo:    orderNo,
		CustomerID: customerID,
		TrackingNo: trackingNo,
	}
}

type OrderCancelledEvent struct {
	events.BaseEvent
	OrderNo    string `json:"order_no"`
	CustomerID uint   `json:"customer_id"`
	Reason     string `json:"reason"`
}

func NewOrderCancelledEvent(sid, orderNo string, customerID uint, reason string) OrderCancelledEvent {
	return OrderCancelledEvent{
		BaseEvent:  events.BaseEvent{SID: sid, Type: EventTypeOrderCancelled, At: biztime.NowUTC()},
		OrderNo:    orderNo,
		CustomerID: customerID,
		Reason:     reason,
	}
}

type OrderExpiredEvent struct {
	events.BaseEvent
	OrderNo    string `json:"order_no"`
	CustomerID uint   `json:"customer_id"`
}

func NewOrderExpiredEvent(sid, orderNo string, customerID uint) OrderExpiredEvent {
	return OrderExpiredEvent{
		BaseEvent:  events.BaseEvent{SID: sid, Type: EventTypeOrderExpired, At: biztime.NowUTC()},
		OrderNo:    orderNo,
		CustomerID: customerID,
	}
}
