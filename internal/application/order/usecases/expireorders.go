package usecases

import (
	"context"
	"fmt"

	"github.com/orderline-io/orderline/internal/domain/order"
	"github.com/orderline-io/orderline/internal/domain/product"
	"github.com/orderline-io/orderline/internal/domain/shared/events"
	"github.com/orderline-io/orderline/internal/shared/db"
	"github.com/orderline-io/orderline/internal/shared/logger"
)

// expireBatchSize caps how many orders one scheduler tick processes.
const expireBatchSize = 100

type ExpireOrdersUseCase struct {
	orderRepo   order.Repository
	productRepo product.Repository
	txManager   *db.TransactionManager
	publisher   events.Publisher
	logger      logger.Interface
}

func NewExpireOrdersUseCase(
	orderRepo order.Repository,
	productRepo product.Repository,
	txManager *db.TransactionManager,
	publisher events.Publisher,
	logger logger.Interface,
) *ExpireOrdersUseCase {
	return &ExpireOrdersUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger,
	}
}

// Execute expires pending orders whose payment window has elapsed and
// returns their stock. Each order is handled in its own transaction so one
// bad order does not block the batch.
func (uc *ExpireOrdersUseCase) Execute(ctx context.Context) (int, error) {
	expired, err := uc.orderRepo.ListExpiredPending(ctx, expireBatchSize)
	if err != nil {
		uc.logger.Errorw("failed to list expired pending orders", "error", err)
		return 0, fmt.Errorf("failed to list expired pending orders: %w", err)
	}

	if len(expired) == 0 {
		uc.logger.Debugw("no expired pending orders")
		return 0, nil
	}

	uc.logger.Infow("expiring pending orders", "count", len(expired))

	expiredCount := 0
	for _, o := range expired {
		if err := o.MarkAsExpired(); err != nil {
			uc.logger.Errorw("failed to mark order as expired",
				"error", err,
				"order_sid", o.SID(),
				"order_no", o.OrderNo())
			continue
		}

		err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
			if err := uc.orderRepo.Update(txCtx, o); err != nil {
				return fmt.Errorf("failed to update expired order: %w", err)
			}
			return restockItems(txCtx, uc.productRepo, uc.logger, o)
		})
		if err != nil {
			uc.logger.Errorw("failed to expire order",
				"error", err,
				"order_sid", o.SID(),
				"order_no", o.OrderNo())
			continue
		}

		if err := uc.publisher.PublishAll(o.DomainEvents()); err != nil {
			uc.logger.Warnw("failed to publish order events", "error", err, "order_sid", o.SID())
		}
		o.ClearEvents()

		expiredCount++
	}

	uc.logger.Infow("expired pending orders", "expired", expiredCount, "candidates", len(expired))
	return expiredCount, nil
}
