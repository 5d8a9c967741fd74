package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// AssignDelivery handles POST /api/deliveries.
func (s *Server) AssignDelivery(c echo.Context) error {
	principal, _ := PrincipalFrom(c)

	var req AssignDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return err
	}
	deliveryPersonID, err := kernel.UUIDFromString(req.DeliveryPersonID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAssignDeliveryCommand(principal.UserID, orderID, deliveryPersonID)
	if err != nil {
		return err
	}

	assigned, err := s.handlers.AssignDelivery.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, deliveryFromDomain(assigned))
}

// GetDelivery handles GET /api/deliveries/:deliveryId.
func (s *Server) GetDelivery(c echo.Context) error {
	deliveryID, err := bindUUIDParam(c, "deliveryId")
	if err != nil {
		return err
	}

	query, err := queries.NewGetDeliveryQuery(deliveryID)
	if err != nil {
		return err
	}

	result, err := s.handlers.GetDelivery.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, deliveryFromReadModel(result))
}

// UpdateDeliveryStatus handles PUT /api/deliveries/:orderId/status.
func (s *Server) UpdateDeliveryStatus(c echo.Context) error {
	principal, _ := PrincipalFrom(c)

	orderID, err := bindUUIDParam(c, "orderId")
	if err != nil {
		return err
	}

	var req UpdateDeliveryStatusRequest
	if err = c.Bind(&req); err != nil {
		return err
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(principal.UserID, orderID, status)
	if err != nil {
		return err
	}

	if err = s.handlers.UpdateDeliveryStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Order status updated successfully."})
}
