package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrAssignDeliveryCommandIsNotConstructed = errors.New(
	"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
)

// AssignDeliveryCommand binds a delivery person to an order on behalf of an admin.
//
// Example:
//
//	cmd, err := NewAssignDeliveryCommand(admin.UserID, orderID, agentID)
//	if err != nil {
//	    return err
//	}
//	d, err := handler.Handle(ctx, cmd)
type AssignDeliveryCommand struct { //nolint:recvcheck //using for validation
	adminID          kernel.UUID
	orderID          kernel.UUID
	deliveryPersonID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignDeliveryCommand(adminID, orderID, deliveryPersonID kernel.UUID) (AssignDeliveryCommand, error) {
	if err := errors.Join(
		adminID.Validate(),
		orderID.Validate(),
		deliveryPersonID.Validate(),
	); err != nil {
		return AssignDeliveryCommand{}, err
	}

	return AssignDeliveryCommand{
		adminID:          adminID,
		orderID:          orderID,
		deliveryPersonID: deliveryPersonID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

func (c AssignDeliveryCommand) AdminID() kernel.UUID {
	return c.adminID
}

func (c AssignDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AssignDeliveryCommand) DeliveryPersonID() kernel.UUID {
	return c.deliveryPersonID
}
