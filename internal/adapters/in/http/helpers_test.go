package http_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type placeOrderFunc func(context.Context, commands.PlaceOrderCommand) (*order.Order, error)

func (f placeOrderFunc) Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (*order.Order, error) {
	return f(ctx, cmd)
}

type cancelOrderFunc func(context.Context, commands.CancelOrderCommand) error

func (f cancelOrderFunc) Handle(ctx context.Context, cmd commands.CancelOrderCommand) error {
	return f(ctx, cmd)
}

type assignDeliveryFunc func(context.Context, commands.AssignDeliveryCommand) (*delivery.Delivery, error)

func (f assignDeliveryFunc) Handle(ctx context.Context, cmd commands.AssignDeliveryCommand) (*delivery.Delivery, error) {
	return f(ctx, cmd)
}

type updateDeliveryStatusFunc func(context.Context, commands.UpdateDeliveryStatusCommand) error

func (f updateDeliveryStatusFunc) Handle(ctx context.Context, cmd commands.UpdateDeliveryStatusCommand) error {
	return f(ctx, cmd)
}

type getOrderFunc func(context.Context, queries.GetOrderQuery) (queries.OrderResponse, error)

func (f getOrderFunc) Handle(ctx context.Context, q queries.GetOrderQuery) (queries.OrderResponse, error) {
	return f(ctx, q)
}

type listOrdersFunc func(context.Context, queries.ListOrdersQuery) ([]queries.OrderResponse, error)

func (f listOrdersFunc) Handle(ctx context.Context, q queries.ListOrdersQuery) ([]queries.OrderResponse, error) {
	return f(ctx, q)
}

type getDeliveryFunc func(context.Context, queries.GetDeliveryQuery) (queries.DeliveryResponse, error)

func (f getDeliveryFunc) Handle(ctx context.Context, q queries.GetDeliveryQuery) (queries.DeliveryResponse, error) {
	return f(ctx, q)
}

type revenueFunc func(context.Context, queries.GetRevenueQuery) (queries.GetRevenueQueryResponse, error)

func (f revenueFunc) Handle(ctx context.Context, q queries.GetRevenueQuery) (queries.GetRevenueQueryResponse, error) {
	return f(ctx, q)
}

type mostOrderedFunc func(context.Context, queries.GetMostOrderedQuery) ([]queries.GetMostOrderedQueryResponse, error)

func (f mostOrderedFunc) Handle(
	ctx context.Context,
	q queries.GetMostOrderedQuery,
) ([]queries.GetMostOrderedQueryResponse, error) {
	return f(ctx, q)
}

type monthlyRevenueFunc func(context.Context, queries.GetMonthlyRevenueQuery) ([]queries.GetMonthlyRevenueQueryResponse, error)

func (f monthlyRevenueFunc) Handle(
	ctx context.Context,
	q queries.GetMonthlyRevenueQuery,
) ([]queries.GetMonthlyRevenueQueryResponse, error) {
	return f(ctx, q)
}

type ordersReportFunc func(context.Context, queries.GetOrdersReportQuery) ([]queries.OrderResponse, error)

func (f ordersReportFunc) Handle(ctx context.Context, q queries.GetOrdersReportQuery) ([]queries.OrderResponse, error) {
	return f(ctx, q)
}

type restaurantMostOrderedFunc func(
	context.Context,
	queries.GetMostOrderedByRestaurantQuery,
) ([]queries.GetMostOrderedByRestaurantQueryResponse, error)

func (f restaurantMostOrderedFunc) Handle(
	ctx context.Context,
	q queries.GetMostOrderedByRestaurantQuery,
) ([]queries.GetMostOrderedByRestaurantQueryResponse, error) {
	return f(ctx, q)
}

func newTestRouter(t *testing.T, handlers httpin.Handlers) *echo.Echo {
	t.Helper()

	tokens, err := httpin.NewTokenCodec(testSecret)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e, err := httpin.NewRouter(httpin.NewServer(handlers), tokens, logger)
	require.NoError(t, err)
	return e
}

func tokenFor(t *testing.T, userID kernel.UUID, role identity.Role) string {
	t.Helper()

	tokens, err := httpin.NewTokenCodec(testSecret)
	require.NoError(t, err)
	principal, err := identity.NewPrincipal(userID, role)
	require.NoError(t, err)

	now := time.Now()
	token, err := tokens.Issue(principal, now, now.Add(time.Hour))
	require.NoError(t, err)
	return token
}

func serve(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(httpin.AuthTokenHeader, token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func mustOrder(t *testing.T, userID kernel.UUID) *order.Order {
	t.Helper()

	price, err := kernel.MoneyFromString("50")
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Margherita", 2, price)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), "001", userID, []order.Item{item}, "1 Main St",
		time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return o
}

// orderBody and deliveryBody decode responses with plain string ids.
type orderBody struct {
	ID          string `json:"id"`
	OrderNumber string `json:"orderNumber"`
	UserID      string `json:"userId"`
	TotalAmount string `json:"totalAmount"`
	Status      string `json:"status"`
	Items       []struct {
		ItemID   string `json:"itemId"`
		Quantity int    `json:"quantity"`
		Price    string `json:"price"`
	} `json:"items"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

type deliveryBody struct {
	ID               string `json:"id"`
	OrderID          string `json:"orderId"`
	DeliveryPersonID string `json:"deliveryPersonId"`
	AssignedBy       string `json:"assignedBy"`
	Status           string `json:"status"`
}
