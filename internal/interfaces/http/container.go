// Package http wires the application together and exposes it over Gin.
package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	custUsecases "github.com/orderline-io/orderline/internal/application/customer/usecases"
	orderUsecases "github.com/orderline-io/orderline/internal/application/order/usecases"
	prodUsecases "github.com/orderline-io/orderline/internal/application/product/usecases"
	"github.com/orderline-io/orderline/internal/domain/customer"
	"github.com/orderline-io/orderline/internal/domain/order"
	"github.com/orderline-io/orderline/internal/domain/product"
	"github.com/orderline-io/orderline/internal/domain/shared/events"
	"github.com/orderline-io/orderline/internal/infrastructure/auth"
	"github.com/orderline-io/orderline/internal/infrastructure/cache"
	"github.com/orderline-io/orderline/internal/infrastructure/config"
	"github.com/orderline-io/orderline/internal/infrastructure/email"
	"github.com/orderline-io/orderline/internal/infrastructure/payment"
	"github.com/orderline-io/orderline/internal/infrastructure/permission"
	"github.com/orderline-io/orderline/internal/infrastructure/repository"
	"github.com/orderline-io/orderline/internal/infrastructure/scheduler"
	"github.com/orderline-io/orderline/internal/infrastructure/shipping"
	"github.com/orderline-io/orderline/internal/interfaces/http/handlers"
	"github.com/orderline-io/orderline/internal/interfaces/http/middleware"
	"github.com/orderline-io/orderline/internal/shared/db"
	"github.com/orderline-io/orderline/internal/shared/logger"
	"github.com/orderline-io/orderline/internal/shared/services/markdown"
)

// Container holds the wired infrastructure, use cases, handlers, and
// background services, and owns their lifecycle.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	orderRepo    order.Repository
	productRepo  product.Repository
	customerRepo customer.Repository

	// Shared infrastructure
	txManager  *db.TransactionManager
	dispatcher events.Dispatcher
	jwtSvc     *auth.JWTService
	enforcer   *permission.Enforcer

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimiter

	// Handlers
	orderHandler    *handlers.OrderHandler
	customerHandler *handlers.CustomerHandler
	productHandler  *handlers.ProductHandler
	healthHandler   *handlers.HealthHandler

	// Background services
	orderScheduler *scheduler.OrderScheduler
}

// NewContainer wires all dependencies together. Redis is optional: when the
// connection fails the product cache and rate limiter degrade gracefully.
func NewContainer(database *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     database,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	useCases, err := c.initUseCases()
	if err != nil {
		return nil, err
	}

	c.initHandlers(useCases)
	c.initMiddleware()
	c.initBackgroundServices(useCases)

	return c, nil
}

type allUseCases struct {
	placeOrder   *orderUsecases.PlaceOrderUseCase
	payOrder     *orderUsecases.PayOrderUseCase
	shipOrder    *orderUsecases.ShipOrderUseCase
	cancelOrder  *orderUsecases.CancelOrderUseCase
	getOrder     *orderUsecases.GetOrderUseCase
	listOrders   *orderUsecases.ListOrdersUseCase
	expireOrders *orderUsecases.ExpireOrdersUseCase

	registerCustomer *custUsecases.RegisterCustomerUseCase
	loginCustomer    *custUsecases.LoginCustomerUseCase
	getCustomer      *custUsecases.GetCustomerUseCase

	createProduct  *prodUsecases.CreateProductUseCase
	getProduct     *prodUsecases.GetProductUseCase
	listProducts   *prodUsecases.ListProductsUseCase
	adjustStock    *prodUsecases.AdjustStockUseCase
	archiveProduct *prodUsecases.ArchiveProductUseCase
}

func (c *Container) initInfrastructure() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	redisClient, err := cache.NewClient(ctx, c.cfg.Redis.GetAddr(), c.cfg.Redis.Password, c.cfg.Redis.DB)
	if err != nil {
		c.log.Warnw("redis unavailable, product cache and rate limiting disabled", "error", err)
	} else {
		c.redis = redisClient
	}

	c.orderRepo = repository.NewOrderRepository(c.db)
	c.customerRepo = repository.NewCustomerRepository(c.db)

	productRepo := repository.NewProductRepository(c.db)
	if c.redis != nil {
		c.productRepo = cache.NewCachedProductRepository(productRepo, c.redis, c.log)
	} else {
		c.productRepo = productRepo
	}

	c.txManager = db.NewTransactionManager(c.db)

	dispatcher := events.NewInMemoryDispatcher(256)
	dispatcher.OnHandlerError(func(event events.DomainEvent, err error) {
		c.log.Errorw("event handler failed",
			"event_type", event.EventType(),
			"aggregate_sid", event.AggregateSID(),
			"error", err)
	})
	c.dispatcher = dispatcher

	notifier := email.NewOrderNotifier(email.NewSMTPEmailService(c.cfg.Email), c.customerRepo, c.log)
	if err := notifier.Register(c.dispatcher); err != nil {
		return fmt.Errorf("failed to register order notifier: %w", err)
	}

	c.jwtSvc = auth.NewJWTService(
		c.cfg.Auth.JWT.Secret,
		c.cfg.Auth.JWT.AccessExpMinutes,
		c.cfg.Auth.JWT.RefreshExpDays,
	)

	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := permission.InitDefaultPolicies(enforcer, c.log); err != nil {
		return fmt.Errorf("failed to seed default policies: %w", err)
	}
	c.enforcer = enforcer

	return nil
}

func (c *Container) initUseCases() (*allUseCases, error) {
	paymentGateway, err := payment.NewGateway(c.cfg.Payment, c.log)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment gateway: %w", err)
	}

	carrier, err := shipping.NewCarrier(c.cfg.Shipping, c.log)
	if err != nil {
		return nil, fmt.Errorf("failed to create shipment carrier: %w", err)
	}

	hasher := auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)
	markdownSvc := markdown.NewService()

	orderSettings := orderUsecases.OrderSettings{
		PaymentWindow: time.Duration(c.cfg.Order.PaymentWindowMinutes) * time.Minute,
	}

	return &allUseCases{
		placeOrder:   orderUsecases.NewPlaceOrderUseCase(c.orderRepo, c.productRepo, c.txManager, c.dispatcher, c.log, orderSettings),
		payOrder:     orderUsecases.NewPayOrderUseCase(c.orderRepo, paymentGateway, c.dispatcher, c.log),
		shipOrder:    orderUsecases.NewShipOrderUseCase(c.orderRepo, carrier, c.dispatcher, c.log),
		cancelOrder:  orderUsecases.NewCancelOrderUseCase(c.orderRepo, c.productRepo, c.txManager, c.dispatcher, c.log),
		getOrder:     orderUsecases.NewGetOrderUseCase(c.orderRepo, c.log),
		listOrders:   orderUsecases.NewListOrdersUseCase(c.orderRepo, c.log),
		expireOrders: orderUsecases.NewExpireOrdersUseCase(c.orderRepo, c.productRepo, c.txManager, c.dispatcher, c.log),

		registerCustomer: custUsecases.NewRegisterCustomerUseCase(c.customerRepo, hasher, c.log),
		loginCustomer:    custUsecases.NewLoginCustomerUseCase(c.customerRepo, hasher, c.jwtSvc, c.log),
		getCustomer:      custUsecases.NewGetCustomerUseCase(c.customerRepo, c.log),

		createProduct:  prodUsecases.NewCreateProductUseCase(c.productRepo, c.log),
		getProduct:     prodUsecases.NewGetProductUseCase(c.productRepo, markdownSvc, c.log),
		listProducts:   prodUsecases.NewListProductsUseCase(c.productRepo, c.log),
		adjustStock:    prodUsecases.NewAdjustStockUseCase(c.productRepo, c.log),
		archiveProduct: prodUsecases.NewArchiveProductUseCase(c.productRepo, c.log),
	}, nil
}

func (c *Container) initHandlers(ucs *allUseCases) {
	c.orderHandler = handlers.NewOrderHandler(
		ucs.placeOrder,
		ucs.payOrder,
		ucs.shipOrder,
		ucs.cancelOrder,
		ucs.getOrder,
		ucs.listOrders,
		c.log,
	)
	c.customerHandler = handlers.NewCustomerHandler(
		ucs.registerCustomer,
		ucs.loginCustomer,
		ucs.getCustomer,
		c.jwtSvc,
		c.log,
	)
	c.productHandler = handlers.NewProductHandler(
		ucs.createProduct,
		ucs.getProduct,
		ucs.listProducts,
		ucs.adjustStock,
		ucs.archiveProduct,
		c.log,
	)
	c.healthHandler = handlers.NewHealthHandler(c.db, c.redis)
}

func (c *Container) initMiddleware() {
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.customerRepo, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, c.log)
	c.rateLimiter = middleware.NewRateLimiter(
		c.redis,
		c.cfg.RateLimit.Requests,
		time.Duration(c.cfg.RateLimit.WindowSeconds)*time.Second,
	)
}

func (c *Container) initBackgroundServices(ucs *allUseCases) {
	interval := time.Duration(c.cfg.Order.ExpiryIntervalMinutes) * time.Minute
	c.orderScheduler = scheduler.NewOrderScheduler(ucs.expireOrders, interval, c.log)
}

// Start launches the event dispatcher and the background schedulers.
func (c *Container) Start(ctx context.Context) error {
	if err := c.dispatcher.Start(); err != nil {
		return fmt.Errorf("failed to start event dispatcher: %w", err)
	}
	c.orderScheduler.Start(ctx)
	return nil
}

// Shutdown stops background services in reverse start order.
func (c *Container) Shutdown() {
	c.orderScheduler.Stop()

	if err := c.dispatcher.Stop(); err != nil {
		c.log.Errorw("failed to stop event dispatcher", "error", err)
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Errorw("failed to close redis client", "error", err)
		}
	}
}

// GetEngine returns the Gin engine.
func (c *Container) GetEngine() *gin.Engine {
	return c.engine
}
