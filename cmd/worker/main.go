// The worker binary runs the order expiry loop without the HTTP server, for
// deployments that separate API and background processing.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	orderUsecases "github.com/orderline-io/orderline/internal/application/order/usecases"
	"github.com/orderline-io/orderline/internal/domain/shared/events"
	"github.com/orderline-io/orderline/internal/infrastructure/config"
	"github.com/orderline-io/orderline/internal/infrastructure/database"
	"github.com/orderline-io/orderline/internal/infrastructure/repository"
	"github.com/orderline-io/orderline/internal/infrastructure/scheduler"
	"github.com/orderline-io/orderline/internal/shared/constants"
	"github.com/orderline-io/orderline/internal/shared/db"
	"github.com/orderline-io/orderline/internal/shared/logger"
)

func main() {
	env := constants.EnvDevelopment
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger, env == constants.EnvDevelopment); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger()
	log.Infow("starting order expiry worker", "environment", env)

	if err := database.Init(&cfg.Database); err != nil {
		log.Errorw("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	dispatcher := events.NewInMemoryDispatcher(256)
	dispatcher.OnHandlerError(func(event events.DomainEvent, err error) {
		log.Errorw("event handler failed",
			"event_type", event.EventType(),
			"aggregate_sid", event.AggregateSID(),
			"error", err)
	})
	if err := dispatcher.Start(); err != nil {
		log.Errorw("failed to start event dispatcher", "error", err)
		os.Exit(1)
	}
	defer dispatcher.Stop()

	orderRepo := repository.NewOrderRepository(database.Get())
	productRepo := repository.NewProductRepository(database.Get())
	txManager := db.NewTransactionManager(database.Get())

	expireOrders := orderUsecases.NewExpireOrdersUseCase(orderRepo, productRepo, txManager, dispatcher, log)

	interval := time.Duration(cfg.Order.ExpiryIntervalMinutes) * time.Minute
	orderScheduler := scheduler.NewOrderScheduler(expireOrders, interval, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	orderScheduler.Start(ctx)
	log.Infow("order expiry worker started", "interval", interval.String())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	log.Infow("received signal, shutting down", "signal", sig.String())
	orderScheduler.Stop()
	log.Infow("order expiry worker stopped")
}
