package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand is a delivery agent reporting the outcome of a
// delivery: DELIVERED or CANCELED.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

func NewUpdateDeliveryStatusCommand(agentID, orderID kernel.UUID, status order.Status) (UpdateDeliveryStatusCommand, error) {
	var statusErr error
	if status != order.Delivered && status != order.Canceled {
		statusErr = errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("must be %s or %s, got %s", order.Delivered, order.Canceled, status),
		)
	}

	if err := errors.Join(agentID.Validate(), orderID.Validate(), statusErr); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return UpdateDeliveryStatusCommand{
		agentID: agentID,
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

func (c UpdateDeliveryStatusCommand) AgentID() kernel.UUID {
	return c.agentID
}

func (c UpdateDeliveryStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateDeliveryStatusCommand) Status() order.Status {
	return c.status
}
