package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// PlaceOrder handles POST /api/orders.
func (s *Server) PlaceOrder(c echo.Context) error {
	principal, _ := PrincipalFrom(c)

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	items := make([]services.RequestedItem, 0, len(req.Items))
	for _, item := range req.Items {
		menuItemID, err := kernel.UUIDFromString(item.ItemID)
		if err != nil {
			return err
		}
		items = append(items, services.RequestedItem{MenuItemID: menuItemID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewPlaceOrderCommand(principal.UserID, items, req.DeliveryAddress)
	if err != nil {
		return err
	}

	placed, err := s.handlers.PlaceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, orderFromDomain(placed))
}

// GetOrder handles GET /api/orders/:orderId.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := bindUUIDParam(c, "orderId")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return err
	}

	result, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orderFromReadModel(result))
}

// ListOrders handles GET /api/orders.
func (s *Server) ListOrders(c echo.Context) error {
	result, err := s.handlers.ListOrders.Handle(c.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return err
	}

	response := make([]OrderJSON, len(result))
	for i, o := range result {
		response[i] = orderFromReadModel(o)
	}
	return c.JSON(http.StatusOK, response)
}

// CancelOrder handles PATCH /api/orders/cancel/:orderId.
func (s *Server) CancelOrder(c echo.Context) error {
	principal, _ := PrincipalFrom(c)

	orderID, err := bindUUIDParam(c, "orderId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(principal.UserID, orderID)
	if err != nil {
		return err
	}

	if err = s.handlers.CancelOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Order canceled successfully."})
}
