// Package scheduler runs the periodic background jobs.
package scheduler

import (
	"context"
	"sync"
	"time"

	orderUsecases "github.com/orderline-io/orderline/internal/application/order/usecases"
	"github.com/orderline-io/orderline/internal/shared/goroutine"
	"github.com/orderline-io/orderline/internal/shared/logger"
)

const defaultExpiryInterval = 5 * time.Minute

// OrderScheduler periodically expires pending orders whose payment window
// has closed and releases their reserved stock.
type OrderScheduler struct {
	expireOrdersUC *orderUsecases.ExpireOrdersUseCase
	logger         logger.Interface
	stopChan       chan struct{}
	stopOnce       sync.Once
	wg             sync.WaitGroup
	interval       time.Duration
}

func NewOrderScheduler(
	expireOrdersUC *orderUsecases.ExpireOrdersUseCase,
	interval time.Duration,
	logger logger.Interface,
) *OrderScheduler {
	if interval <= 0 {
		interval = defaultExpiryInterval
	}
	return &OrderScheduler{
		expireOrdersUC: expireOrdersUC,
		logger:         logger,
		stopChan:       make(chan struct{}),
		interval:       interval,
	}
}

// Start launches the expiry loop. It returns immediately.
func (s *OrderScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting order scheduler", "interval", s.interval)

	s.wg.Add(1)
	goroutine.SafeGo(s.logger, "order-expiry-loop", func() {
		defer s.wg.Done()
		s.runExpireOrdersLoop(ctx)
	})
}

// Stop shuts the scheduler down and waits for the loop to exit. Safe to
// call more than once.
func (s *OrderScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Infow("stopping order scheduler")
		close(s.stopChan)
		s.wg.Wait()
		s.logger.Infow("order scheduler stopped")
	})
}

func (s *OrderScheduler) runExpireOrdersLoop(ctx context.Context) {
	// Run immediately on startup to clear any backlog of overdue orders.
	s.processExpiredOrders(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("order scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.processExpiredOrders(ctx)
		}
	}
}

func (s *OrderScheduler) processExpiredOrders(ctx context.Context) {
	s.logger.Debugw("expire orders task started")

	startTime := time.Now()

	expiredCount, err := s.expireOrdersUC.Execute(ctx)
	if err != nil {
		s.logger.Errorw("failed to expire orders",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if expiredCount > 0 {
		s.logger.Infow("expired orders processed",
			"count", expiredCount,
			"duration", time.Since(startTime),
		)
	}
}
