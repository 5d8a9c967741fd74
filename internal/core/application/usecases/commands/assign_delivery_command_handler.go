package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/clock"
	"marketplace/internal/pkg/errs"
)

// AssignDeliveryCommandHandler creates the delivery record for an order and
// moves the order to DELIVERYAGENT_ASSIGNED in the same transaction.
//
// Example:
//
//	d, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrConflict):
//	    // the order already has a delivery or is already assigned
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // no such order
//	case errors.Is(err, errs.ErrInvalidState):
//	    // the order is delivered or canceled
//	}
type AssignDeliveryCommandHandler struct {
	uowFactory UoWFactory
	clock      clock.Clock
}

func NewAssignDeliveryCommandHandler(uowFactory UoWFactory, clk clock.Clock) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle checks for an existing delivery before looking at the order. The
// unique index on deliveries.order_id still turns a concurrent second
// assignment into errs.ErrConflict when the insert runs.
func (h AssignDeliveryCommandHandler) Handle(ctx context.Context, command AssignDeliveryCommand) (*delivery.Delivery, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	deliveryRepo := uow.DeliveryRepository()

	_, err := deliveryRepo.GetByOrderID(ctx, command.OrderID())
	if err == nil {
		return nil, errs.NewConflictError("delivery for order", command.OrderID().String())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	o, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	if err = o.AssignDeliveryAgent(now); err != nil {
		return nil, err
	}

	d, err := delivery.NewDelivery(
		kernel.NewUUID(),
		o.ID(),
		command.DeliveryPersonID(),
		command.AdminID(),
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = deliveryRepo.Add(ctx, d); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
