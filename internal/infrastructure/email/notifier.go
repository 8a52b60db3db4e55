package email

import (
	"context"
	"fmt"

	"github.com/orderline-io/orderline/internal/domain/customer"
	"github.com/orderline-io/orderline/internal/domain/order"
	"github.com/orderline-io/orderline/internal/domain/shared/events"
	"github.com/orderline-io/orderline/internal/shared/logger"
)

// Sender is the subset of the email service the order notifier uses.
type Sender interface {
	SendOrderConfirmationEmail(to, name, orderNo, total string) error
	SendPaymentReceiptEmail(to, name, orderNo, total, transactionID string) error
	SendShipmentEmail(to, name, orderNo, trackingNo string) error
}

// OrderNotifier emails customers as their orders move through the
// lifecycle. It runs on the event dispatcher goroutine, so a send failure
// never rolls back the state change that produced the event.
type OrderNotifier struct {
	sender       Sender
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewOrderNotifier(sender Sender, customerRepo customer.Repository, logger logger.Interface) *OrderNotifier {
	return &OrderNotifier{
		sender:       sender,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Register subscribes the notifier to the order events it handles.
func (n *OrderNotifier) Register(dispatcher events.Dispatcher) error {
	for _, eventType := range []string{
		order.EventTypeOrderPlaced,
		order.EventTypeOrderPaid,
		order.EventTypeOrderShipped,
	} {
		if err := dispatcher.Subscribe(eventType, n); err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", eventType, err)
		}
	}
	return nil
}

func (n *OrderNotifier) Handle(event events.DomainEvent) error {
	switch e := event.(type) {
	case order.OrderPlacedEvent:
		return n.notify(e.CustomerID, e.OrderNo, func(c *customer.Customer) error {
			return n.sender.SendOrderConfirmationEmail(c.Email(), c.Name(), e.OrderNo, e.Total.Format())
		})
	case order.OrderPaidEvent:
		return n.notify(e.CustomerID, e.OrderNo, func(c *customer.Customer) error {
			return n.sender.SendPaymentReceiptEmail(c.Email(), c.Name(), e.OrderNo, e.Total.Format(), e.TransactionID)
		})
	case order.OrderShippedEvent:
		return n.notify(e.CustomerID, e.OrderNo, func(c *customer.Customer) error {
			return n.sender.SendShipmentEmail(c.Email(), c.Name(), e.OrderNo, e.TrackingNo)
		})
	default:
		return nil
	}
}

func (n *OrderNotifier) notify(customerID uint, orderNo string, send func(c *customer.Customer) error) error {
	c, err := n.customerRepo.GetByID(context.Background(), customerID)
	if err != nil {
		return fmt.Errorf("failed to load customer %d for order %s: %w", customerID, orderNo, err)
	}

	if err := send(c); err != nil {
		return err
	}

	n.logger.Debugw("order notification sent",
		"order_no", orderNo,
		"customer_id", customerID)
	return nil
}
