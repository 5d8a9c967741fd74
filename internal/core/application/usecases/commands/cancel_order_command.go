package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand withdraws an order on behalf of its owner.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	requesterID kernel.UUID
	orderID     kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(requesterID, orderID kernel.UUID) (CancelOrderCommand, error) {
	if err := errors.Join(requesterID.Validate(), orderID.Validate()); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		requesterID: requesterID,
		orderID:     orderID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
