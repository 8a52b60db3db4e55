package usecases

import (
	"context"
	"fmt"

	"github.com/orderline-io/orderline/internal/application/order/gateway"
	"github.com/orderline-io/orderline/internal/domain/order"
	"github.com/orderline-io/orderline/internal/domain/shared/events"
	"github.com/orderline-io/orderline/internal/shared/authorization"
	"github.com/orderline-io/orderline/internal/shared/errors"
	"github.com/orderline-io/orderline/internal/shared/logger"
)

type PayOrderCommand struct {
	OrderSID   string
	CustomerID uint
	Role       authorization.Role
	// Reference is the payment token or intent id obtained client side.
	Reference string
}

type PayOrderUseCase struct {
	orderRepo order.Repository
	gateway   gateway.PaymentGateway
	publisher events.Publisher
	logger    logger.Interface
}

func NewPayOrderUseCase(
	orderRepo order.Repository,
	gw gateway.PaymentGateway,
	publisher events.Publisher,
	logger logger.Interface,
) *PayOrderUseCase {
	return &PayOrderUseCase{
		orderRepo: orderRepo,
		gateway:   gw,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute charges the order total through the payment gateway and marks the
// order paid with the returned transaction ID. Re-paying an already paid
// order with the same transaction is a no-op upstream in the domain.
func (uc *PayOrderUseCase) Execute(ctx context.Context, cmd PayOrderCommand) (*order.Order, error) {
	if cmd.Reference == "" {
		return nil, errors.NewValidationError("payment reference is required")
	}

	o, err := uc.orderRepo.GetBySID(ctx, cmd.OrderSID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanAccess(cmd.CustomerID, cmd.Role, o) {
		uc.logger.Warnw("unauthorized payment attempt",
			"order_sid", cmd.OrderSID,
			"customer_id", cmd.CustomerID,
			"owner_id", o.OwnerID())
		return nil, errors.NewForbiddenError("you do not own this order")
	}

	if o.IsExpired() {
		return nil, errors.NewConflictError("order payment window has elapsed")
	}

	resp, err := uc.gateway.Charge(ctx, gateway.ChargeRequest{
		OrderNo:   o.OrderNo(),
		Reference: cmd.Reference,
		Amount:    o.Total().AmountInCents(),
		Currency:  o.Total().Currency(),
		Subject:   fmt.Sprintf("Order %s", o.OrderNo()),
	})
	if err != nil {
		uc.logger.Errorw("charge failed", "error", err, "order_sid", cmd.OrderSID)
		return nil, fmt.Errorf("charge failed: %w", err)
	}

	if err := o.MarkAsPaid(resp.TransactionID); err != nil {
		// Charge went through but the order cannot accept it. Refund so
		// the customer is not charged for an unfulfillable order.
		uc.refundCharge(ctx, o, resp.TransactionID)
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.orderRepo.Update(ctx, o); err != nil {
		uc.logger.Errorw("failed to update paid order", "error", err, "order_sid", cmd.OrderSID)
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	uc.publishEvents(o)

	uc.logger.Infow("order paid",
		"order_sid", o.SID(),
		"order_no", o.OrderNo(),
		"transaction_id", resp.TransactionID)

	return o, nil
}

func (uc *PayOrderUseCase) refundCharge(ctx context.Context, o *order.Order, transactionID string) {
	_, err := uc.gateway.Refund(ctx, gateway.RefundRequest{
		OrderNo:       o.OrderNo(),
		TransactionID: transactionID,
		Amount:        o.Total().AmountInCents(),
		Currency:      o.Total().Currency(),
		Reason:        "order not payable",
	})
	if err != nil {
		uc.logger.Errorw("refund failed, manual intervention required",
			"error", err,
			"order_sid", o.SID(),
			"transaction_id", transactionID)
	}
}

func (uc *PayOrderUseCase) publishEvents(o *order.Order) {
	if err := uc.publisher.PublishAll(o.DomainEvents()); err != nil {
		uc.logger.Warnw("failed to publish order events", "error", err, "order_sid", o.SID())
	}
	o.ClearEvents()
}
