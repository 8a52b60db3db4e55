// Package usecases implements the order application services. Each use case
// takes a command, orchestrates domain objects and outbound ports, and
// returns domain errors untranslated.
package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/orderline-io/orderline/internal/domain/order"
	vo "github.com/orderline-io/orderline/internal/domain/order/valueobjects"
	"github.com/orderline-io/orderline/internal/domain/product"
	"github.com/orderline-io/orderline/internal/domain/shared/events"
	"github.com/orderline-io/orderline/internal/shared/db"
	"github.com/orderline-io/orderline/internal/shared/errors"
	"github.com/orderline-io/orderline/internal/shared/logger"
)

type PlaceOrderItemInput struct {
	ProductSID string
	Quantity   int
}

type PlaceOrderCommand struct {
	CustomerID uint
	Items      []PlaceOrderItemInput
}

type OrderSettings struct {
	PaymentWindow time.Duration
}

type PlaceOrderUseCase struct {
	orderRepo   order.Repository
	productRepo product.Repository
	txManager   *db.TransactionManager
	publisher   events.Publisher
	logger      logger.Interface
	settings    OrderSettings
}

func NewPlaceOrderUseCase(
	orderRepo order.Repository,
	productRepo product.Repository,
	txManager *db.TransactionManager,
	publisher events.Publisher,
	logger logger.Interface,
	settings OrderSettings,
) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger,
		settings:    settings,
	}
}

// Execute reserves stock for every line and creates the order atomically.
// Any failed reservation rolls back the whole placement.
func (uc *PlaceOrderUseCase) Execute(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if len(cmd.Items) == 0 {
		return nil, errors.NewValidationError("order must contain at least one item")
	}

	var placed *order.Order
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		items := make([]vo.LineItem, 0, len(cmd.Items))
		reserved := make([]*product.Product, 0, len(cmd.Items))

		for _, in := range cmd.Items {
			prod, err := uc.productRepo.GetBySID(txCtx, in.ProductSID)
			if err != nil {
				uc.logger.Warnw("product lookup failed", "error", err, "product_sid", in.ProductSID)
				return err
			}

			if err := prod.ReserveStock(in.Quantity); err != nil {
				return errors.NewConflictError(err.Error())
			}
			reserved = append(reserved, prod)

			item, err := vo.NewLineItem(prod.SID(), prod.Name(), prod.Price(), in.Quantity)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			items = append(items, item)
		}

		o, err := order.NewOrder(cmd.CustomerID, items, uc.settings.PaymentWindow)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.orderRepo.Create(txCtx, o); err != nil {
			uc.logger.Errorw("failed to save order", "error", err, "customer_id", cmd.CustomerID)
			return fmt.Errorf("failed to save order: %w", err)
		}

		for _, prod := range reserved {
			if err := uc.productRepo.Update(txCtx, prod); err != nil {
				uc.logger.Errorw("failed to persist stock reservation", "error", err, "product_sid", prod.SID())
				return fmt.Errorf("failed to persist stock reservation: %w", err)
			}
		}

		placed = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publishEvents(placed)

	uc.logger.Infow("order placed",
		"order_sid", placed.SID(),
		"order_no", placed.OrderNo(),
		"customer_id", cmd.CustomerID,
		"total_cents", placed.Total().AmountInCents(),
		"expires_at", placed.ExpiresAt())

	return placed, nil
}

func (uc *PlaceOrderUseCase) publishEvents(o *order.Order) {
	if err := uc.publisher.PublishAll(o.DomainEvents()); err != nil {
		uc.logger.Warnw("failed to publish order events", "error", err, "order_sid", o.SID())
	}
	o.ClearEvents()
}
