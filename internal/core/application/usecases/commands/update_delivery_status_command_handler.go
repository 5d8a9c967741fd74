package commands

import (
	"context"

	"marketplace/internal/pkg/clock"
	"marketplace/internal/pkg/errs"
)

// UpdateDeliveryStatusCommandHandler writes the reported status to the order
// and its delivery. Both writes share one transaction; a write that matches
// no row surfaces as errs.ErrInvariantViolation and undoes the other.
//
// Errors, in the order they are checked:
//   - errs.ErrObjectNotFound when the order has no delivery
//   - errs.ErrForbidden when the agent is not the assigned delivery person
//   - errs.ErrObjectNotFound when the order itself is missing
//   - errs.ErrInvalidState when the order is already DELIVERED or CANCELED
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory UoWFactory
	clock      clock.Clock
}

func NewUpdateDeliveryStatusCommandHandler(uowFactory UoWFactory, clk clock.Clock) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

func (h UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, command UpdateDeliveryStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	deliveryRepo := uow.DeliveryRepository()

	d, err := deliveryRepo.GetByOrderID(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if !d.IsAssignedTo(command.AgentID()) {
		return errs.NewForbiddenError("update delivery status", "agent is not assigned to this delivery")
	}

	o, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	now := h.clock.Now()
	if err = o.Finish(command.Status(), now); err != nil {
		return err
	}

	if err = d.SyncStatus(o.Status(), now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
