package commands

import (
	"context"
	"errors"

	"marketplace/internal/pkg/clock"
	"marketplace/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels an order and the delivery bound to it,
// if there is one, in a single transaction.
//
// Errors, in the order they are checked:
//   - errs.ErrObjectNotFound when the order does not exist
//   - errs.ErrInvalidState when the order is already DELIVERED or CANCELED
//   - errs.ErrForbidden when the requester does not own the order
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      clock.Clock
}

func NewCancelOrderCommandHandler(uowFactory UoWFactory, clk clock.Clock) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
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

	o, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	now := h.clock.Now()
	if err = o.Cancel(command.RequesterID(), now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	d, err := deliveryRepo.GetByOrderID(ctx, o.ID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		// canceled before assignment
	case err != nil:
		return err
	default:
		if err = d.SyncStatus(o.Status(), now); err != nil {
			return err
		}
		if err = deliveryRepo.Update(ctx, d); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
