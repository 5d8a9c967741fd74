// Package http exposes the order and delivery use cases over a JSON API
// served by echo.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/order"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type OrderPlacer interface {
	Handle(ctx context.Context, command commands.PlaceOrderCommand) (*order.Order, error)
}

type OrderCanceler interface {
	Handle(ctx context.Context, command commands.CancelOrderCommand) error
}

type DeliveryAssigner interface {
	Handle(ctx context.Context, command commands.AssignDeliveryCommand) (*delivery.Delivery, error)
}

type DeliveryStatusUpdater interface {
	Handle(ctx context.Context, command commands.UpdateDeliveryStatusCommand) error
}

type OrderFinder interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error)
}

type OrderLister interface {
	Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderResponse, error)
}

type DeliveryFinder interface {
	Handle(ctx context.Context, query queries.GetDeliveryQuery) (queries.DeliveryResponse, error)
}

type RevenueReporter interface {
	Handle(ctx context.Context, query queries.GetRevenueQuery) (queries.GetRevenueQueryResponse, error)
}

type MostOrderedReporter interface {
	Handle(ctx context.Context, query queries.GetMostOrderedQuery) ([]queries.GetMostOrderedQueryResponse, error)
}

type MonthlyRevenueReporter interface {
	Handle(ctx context.Context, query queries.GetMonthlyRevenueQuery) ([]queries.GetMonthlyRevenueQueryResponse, error)
}

type OrdersReporter interface {
	Handle(ctx context.Context, query queries.GetOrdersReportQuery) ([]queries.OrderResponse, error)
}

type RestaurantMostOrderedReporter interface {
	Handle(
		ctx context.Context,
		query queries.GetMostOrderedByRestaurantQuery,
	) ([]queries.GetMostOrderedByRestaurantQueryResponse, error)
}

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	PlaceOrder           OrderPlacer
	CancelOrder          OrderCanceler
	AssignDelivery       DeliveryAssigner
	UpdateDeliveryStatus DeliveryStatusUpdater

	GetOrder          OrderFinder
	ListOrders        OrderLister
	GetDelivery       DeliveryFinder
	GetRevenue        RevenueReporter
	GetMostOrdered    MostOrderedReporter
	GetMonthlyRevenue MonthlyRevenueReporter

	GetOrdersReport            OrdersReporter
	GetMostOrderedByRestaurant RestaurantMostOrderedReporter
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
}

func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// NewRouter builds the echo instance with logging, error rendering, the
// swagger UI, /health and every /api route.
func NewRouter(server *Server, tokens *TokenCodec, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := LoadOpenAPI()
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server.RegisterRoutes(e.Group("/api"), doc, tokens)
	return e, nil
}

// RegisterRoutes mounts the API on g. Request validation runs after the
// capability check so that anonymous callers learn nothing about payloads.
func (s *Server) RegisterRoutes(g *echo.Group, doc *openapi3.T, tokens *TokenCodec) {
	validate := ValidateRequest(doc)
	authenticate := Authenticate(tokens)
	guarded := func(capability identity.Capability) []echo.MiddlewareFunc {
		return []echo.MiddlewareFunc{authenticate, RequireCapability(capability), validate}
	}

	g.POST("/orders", s.PlaceOrder, guarded(identity.CapPlaceOrder)...)
	g.GET("/orders", s.ListOrders, guarded(identity.CapViewAllOrders)...)
	g.GET("/orders/revenue", s.GetRevenue, guarded(identity.CapViewReports)...)
	g.GET("/orders/most-ordered", s.GetMostOrdered, guarded(identity.CapViewReports)...)
	g.PATCH("/orders/cancel/:orderId", s.CancelOrder, guarded(identity.CapCancelOwnOrder)...)
	g.GET("/orders/:orderId", s.GetOrder, validate)

	g.POST("/deliveries", s.AssignDelivery, guarded(identity.CapAssignDelivery)...)
	g.GET("/deliveries/:deliveryId", s.GetDelivery, guarded(identity.CapViewDeliveries)...)
	g.PUT("/deliveries/:orderId/status", s.UpdateDeliveryStatus, guarded(identity.CapUpdateDeliveryStatus)...)

	g.GET("/reports/orders", s.GetOrdersReport, guarded(identity.CapViewReports)...)
	g.GET("/reports/most-ordered", s.GetMostOrderedByRestaurant, guarded(identity.CapViewReports)...)
	g.GET("/reports/monthly-revenue", s.GetMonthlyRevenue, guarded(identity.CapViewOwnRevenue)...)
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
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
				level = slog.LevelWarn
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
