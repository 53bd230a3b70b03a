// Package http exposes the back-office use cases over a JSON REST API on echo.
// Handlers translate requests into commands and queries, map domain errors to
// status codes and render money as strings with two decimals.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Use case contracts the server depends on. Command handlers have pointer
// receivers, so the composition root passes pointers.
type (
	CreateCustomerHandler interface {
		Handle(ctx context.Context, cmd commands.CreateCustomerCommand) error
	}
	UpdateCustomerHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateCustomerCommand) error
	}
	AddAddressHandler interface {
		Handle(ctx context.Context, cmd commands.AddAddressCommand) error
	}
	UpdateAddressHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateAddressCommand) error
	}
	SetAddressDisabledHandler interface {
		Handle(ctx context.Context, cmd commands.SetAddressDisabledCommand) error
	}
	CreateProductHandler interface {
		Handle(ctx context.Context, cmd commands.CreateProductCommand) error
	}
	UpdateProductHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateProductCommand) error
	}
	ChangeProductPriceHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeProductPriceCommand) error
	}
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}
	AddOrUpdateItemHandler interface {
		Handle(ctx context.Context, cmd commands.AddOrUpdateItemCommand) error
	}
	RemoveItemHandler interface {
		Handle(ctx context.Context, cmd commands.RemoveItemCommand) error
	}
	RecomputeOrderTotalHandler interface {
		Handle(ctx context.Context, cmd commands.RecomputeOrderTotalCommand) error
	}
	CancelOrdersHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrdersCommand) ([]commands.CancelResult, error)
	}
	CompleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CompleteOrderCommand) error
	}

	GetCustomerHandler interface {
		Handle(ctx context.Context, q queries.GetCustomerQuery) (queries.CustomerView, error)
	}
	GetAddressHandler interface {
		Handle(ctx context.Context, q queries.GetAddressQuery) (queries.AddressView, error)
	}
	ListAddressesHandler interface {
		Handle(ctx context.Context, q queries.ListAddressesQuery) ([]queries.AddressView, error)
	}
	GetProductHandler interface {
		Handle(ctx context.Context, q queries.GetProductQuery) (queries.ProductView, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, q queries.GetOrderQuery) (queries.OrderView, error)
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, q queries.ListOrdersQuery) ([]queries.OrderView, error)
	}
	ListOrderItemsHandler interface {
		Handle(ctx context.Context, q queries.ListOrderItemsQuery) ([]queries.OrderItemView, error)
	}
)

// Handlers groups every use case the API serves.
type Handlers struct {
	CreateCustomer      CreateCustomerHandler
	UpdateCustomer      UpdateCustomerHandler
	AddAddress          AddAddressHandler
	UpdateAddress       UpdateAddressHandler
	SetAddressDisabled  SetAddressDisabledHandler
	CreateProduct       CreateProductHandler
	UpdateProduct       UpdateProductHandler
	ChangeProductPrice  ChangeProductPriceHandler
	CreateOrder         CreateOrderHandler
	AddOrUpdateItem     AddOrUpdateItemHandler
	RemoveItem          RemoveItemHandler
	RecomputeOrderTotal RecomputeOrderTotalHandler
	CancelOrders        CancelOrdersHandler
	CompleteOrder       CompleteOrderHandler

	GetCustomer    GetCustomerHandler
	GetAddress     GetAddressHandler
	ListAddresses  ListAddressesHandler
	GetProduct     GetProductHandler
	GetOrder       GetOrderHandler
	ListOrders     ListOrdersHandler
	ListOrderItems ListOrderItemsHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      handlers,
		logger: logger.With("component", "http"),
	}
}

// NewRouter builds the echo instance with recovery, request logging, the
// health check and all API routes.
func NewRouter(s *Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				level = slog.LevelError
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			s.logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	s.Register(e.Group("/api/v1"))
	return e
}

// Register mounts the API routes on g.
func (s *Server) Register(g *echo.Group) {
	g.POST("/customers", s.CreateCustomer)
	g.GET("/customers/:id", s.GetCustomer)
	g.PUT("/customers/:id", s.UpdateCustomer)
	g.POST("/customers/:id/addresses", s.AddAddress)
	g.GET("/customers/:id/addresses", s.ListAddresses)
	g.GET("/addresses/:id", s.GetAddress)
	g.PUT("/addresses/:id", s.UpdateAddress)
	g.PUT("/addresses/:id/disabled", s.SetAddressDisabled)

	g.POST("/products", s.CreateProduct)
	g.GET("/products/:id", s.GetProduct)
	g.PUT("/products/:id", s.UpdateProduct)
	g.PUT("/products/:id/price", s.ChangeProductPrice)

	g.POST("/orders", s.CreateOrder)
	g.GET("/orders", s.ListOrders)
	g.POST("/orders/cancel", s.CancelOrders)
	g.GET("/orders/:id", s.GetOrder)
	g.GET("/orders/:id/items", s.ListOrderItems)
	g.PUT("/orders/:id/items", s.AddOrUpdateItem)
	g.DELETE("/orders/:id/items/:item_id", s.RemoveItem)
	g.POST("/orders/:id/recompute", s.RecomputeOrderTotal)
	g.POST("/orders/:id/cancel", s.CancelOrder)
	g.POST("/orders/:id/complete", s.CompleteOrder)
}
