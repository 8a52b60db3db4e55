package usecases

import (
	"context"
	"fmt"

	"github.com/orderline-io/orderline/internal/domain/order"
	vo "github.com/orderline-io/orderline/internal/domain/order/valueobjects"
	"github.com/orderline-io/orderline/internal/domain/product"
	"github.com/orderline-io/orderline/internal/domain/shared/events"
	"github.com/orderline-io/orderline/internal/shared/authorization"
	"github.com/orderline-io/orderline/internal/shared/db"
	"github.com/orderline-io/orderline/internal/shared/errors"
	"github.com/orderline-io/orderline/internal/shared/logger"
)

type CancelOrderCommand struct {
	OrderSID   string
	CustomerID uint
	Role       authorization.Role
	Reason     string
}

type CancelOrderUseCase struct {
	orderRepo   order.Repository
	productRepo product.Repository
	txManager   *db.TransactionManager
	publisher   events.Publisher
	logger      logger.Interface
}

func NewCancelOrderUseCase(
	orderRepo order.Repository,
	productRepo product.Repository,
	txManager *db.TransactionManager,
	publisher events.Publisher,
	logger logger.Interface,
) *CancelOrderUseCase {
	return &CancelOrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger,
	}
}

// Execute cancels a pending order and returns its reserved stock in one
// transaction. Cancelling an already cancelled order is a no-op.
func (uc *CancelOrderUseCase) Execute(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	o, err := uc.orderRepo.GetBySID(ctx, cmd.OrderSID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanAccess(cmd.CustomerID, cmd.Role, o) {
		uc.logger.Warnw("unauthorized cancel attempt",
			"order_sid", cmd.OrderSID,
			"customer_id", cmd.CustomerID,
			"owner_id", o.OwnerID())
		return nil, errors.NewForbiddenError("you do not own this order")
	}

	alreadyCancelled := o.Status() == vo.OrderStatusCancelled

	if err := o.Cancel(cmd.Reason); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}
	if alreadyCancelled {
		return o, nil
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.orderRepo.Update(txCtx, o); err != nil {
			return fmt.Errorf("failed to update cancelled order: %w", err)
		}
		return restockItems(txCtx, uc.productRepo, uc.logger, o)
	})
	if err != nil {
		uc.logger.Errorw("failed to cancel order", "error", err, "order_sid", cmd.OrderSID)
		return nil, err
	}

	uc.publishEvents(o)

	uc.logger.Infow("order cancelled",
		"order_sid", o.SID(),
		"order_no", o.OrderNo(),
		"reason", cmd.Reason)

	return o, nil
}

// restockItems returns every line's quantity to its product. A missing
// product is logged and skipped, not aborted, so a deleted product does
// not block cancellation of the rest.
func restockItems(ctx context.Context, productRepo product.Repository, log logger.Interface, o *order.Order) error {
	for _, item := range o.Items() {
		prod, err := productRepo.GetBySID(ctx, item.ProductSID())
		if err != nil {
			if errors.IsNotFoundError(err) {
				log.Warnw("product missing during restock", "product_sid", item.ProductSID(), "order_sid", o.SID())
				continue
			}
			return fmt.Errorf("failed to load product for restock: %w", err)
		}
		if err := prod.ReleaseStock(item.Quantity()); err != nil {
			return fmt.Errorf("failed to release stock: %w", err)
		}
		if err := productRepo.Update(ctx, prod); err != nil {
			return fmt.Errorf("failed to persist restock: %w", err)
		}
	}
	return nil
}

func (uc *CancelOrderUseCase) publishEvents(o *order.Order) {
	if err := uc.publisher.PublishAll(o.DomainEvents()); err != nil {
		uc.logger.Warnw("failed to publish order events", "error", err, "order_sid", o.SID())
	}
	o.ClearEvents()
}
