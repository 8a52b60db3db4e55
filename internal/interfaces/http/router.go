package http

import (
	"github.com/orderline-io/orderline/internal/interfaces/http/middleware"
)

// SetupRoutes configures the middleware chain and all HTTP routes.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestLogger(c.log))
	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())

	c.engine.GET("/health", c.healthHandler.Check)

	c.setupAuthRoutes()
	c.setupProductRoutes()
	c.setupOrderRoutes()
	c.setupCustomerRoutes()
}

func (c *Container) setupAuthRoutes() {
	auth := c.engine.Group("/auth")
	{
		auth.POST("/register", c.rateLimiter.Limit(), c.customerHandler.Register)
		auth.POST("/login", c.rateLimiter.Limit(), c.customerHandler.Login)
		auth.POST("/refresh", c.customerHandler.Refresh)
	}
}

func (c *Container) setupProductRoutes() {
	products := c.engine.Group("/products")
	{
		// Public catalog endpoints
		products.GET("", c.productHandler.ListProducts)
		products.GET("/:sid", c.productHandler.GetProduct)

		productsAdmin := products.Group("")
		productsAdmin.Use(c.authMiddleware.RequireAuth())
		{
			productsAdmin.POST("", c.permissionMiddleware.RequirePermission("product", "create"), c.productHandler.CreateProduct)
			productsAdmin.PUT("/:sid/stock", c.permissionMiddleware.RequirePermission("product", "adjust_stock"), c.productHandler.AdjustStock)
			productsAdmin.POST("/:sid/archive", c.permissionMiddleware.RequirePermission("product", "archive"), c.productHandler.ArchiveProduct)
		}
	}
}

func (c *Container) setupOrderRoutes() {
	orders := c.engine.Group("/orders")
	orders.Use(c.authMiddleware.RequireAuth())
	{
		orders.POST("", c.permissionMiddleware.RequirePermission("order", "create"), c.orderHandler.PlaceOrder)
		orders.GET("", c.orderHandler.ListOrders)
		orders.GET("/:sid", c.orderHandler.GetOrder)
		orders.POST("/:sid/pay", c.permissionMiddleware.RequirePermission("order", "pay"), c.orderHandler.PayOrder)
		orders.POST("/:sid/cancel", c.permissionMiddleware.RequirePermission("order", "cancel"), c.orderHandler.CancelOrder)
		orders.POST("/:sid/ship", c.permissionMiddleware.RequirePermission("order", "ship"), c.orderHandler.ShipOrder)
	}
}

func (c *Container) setupCustomerRoutes() {
	customers := c.engine.Group("/customers")
	customers.Use(c.authMiddleware.RequireAuth())
	{
		customers.GET("/me", c.customerHandler.GetProfile)

		// Parameterized route last so it cannot shadow /me.
		customers.GET("/:sid", c.permissionMiddleware.RequireAdmin(), c.customerHandler.GetCustomer)
	}
}

// Run starts the HTTP server on the given address.
func (c *Container) Run(addr string) error {
	return c.engine.Run(addr)
}
