package usecases

import (
	"context"
	"fmt"

	"github.com/orderline-io/orderline/internal/application/order/gateway"
	"github.com/orderline-io/orderline/internal/domain/order"
	"github.com/orderline-io/orderline/internal/domain/shared/events"
	"github.com/orderline-io/orderline/internal/shared/errors"
	"github.com/orderline-io/orderline/internal/shared/logger"
)

type ShipOrderCommand struct {
	OrderSID    string
	Destination string
}

type ShipOrderUseCase struct {
	orderRepo order.Repository
	carrier   gateway.ShipmentCarrier
	publisher events.Publisher
	logger    logger.Interface
}

func NewShipOrderUseCase(
	orderRepo order.Repository,
	carrier gateway.ShipmentCarrier,
	publisher events.Publisher,
	logger logger.Interface,
) *ShipOrderUseCase {
	return &ShipOrderUseCase{
		orderRepo: orderRepo,
		carrier:   carrier,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute books a shipment for a paid order. The carrier is only called
// after the domain confirms the order is shippable, so an unpaid order
// never reaches the carrier.
func (uc *ShipOrderUseCase) Execute(ctx context.Context, cmd ShipOrderCommand) (*order.Order, error) {
	o, err := uc.orderRepo.GetBySID(ctx, cmd.OrderSID)
	if err != nil {
		return nil, err
	}

	if !o.Status().IsPaid() {
		return nil, errors.NewConflictError(
			fmt.Sprintf("order %s cannot be shipped in status %s", o.SID(), o.Status()))
	}

	itemCount := 0
	for _, item := range o.Items() {
		itemCount += item.Quantity()
	}

	resp, err := uc.carrier.CreateShipment(ctx, gateway.ShipmentRequest{
		OrderNo:     o.OrderNo(),
		OrderSID:    o.SID(),
		CustomerID:  o.CustomerID(),
		ItemCount:   itemCount,
		Destination: cmd.Destination,
	})
	if err != nil {
		uc.logger.Errorw("carrier booking failed", "error", err, "order_sid", cmd.OrderSID)
		return nil, fmt.Errorf("carrier booking failed: %w", err)
	}

	if err := o.Ship(resp.TrackingNo); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.orderRepo.Update(ctx, o); err != nil {
		uc.logger.Errorw("failed to update shipped order", "error", err, "order_sid", cmd.OrderSID)
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	uc.publishEvents(o)

	uc.logger.Infow("order shipped",
		"order_sid", o.SID(),
		"order_no", o.OrderNo(),
		"tracking_no", resp.TrackingNo,
		"carrier", resp.Carrier)

	return o, nil
}

func (uc *ShipOrderUseCase) publishEvents(o *order.Order) {
	if err := uc.publisher.PublishAll(o.DomainEvents()); err != nil {
		uc.logger.Warnw("failed to publish order events", "error", err, "order_sid", o.SID())
	}
	o.ClearEvents()
}
