package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/clock"
)

// PlaceOrderCommandHandler prices the request against the current menu,
// allocates the next order number and stores the order, all in one
// transaction. A failure at any step leaves nothing behind, including the
// consumed sequence value.
type PlaceOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
	pricer     services.OrderPricer
	clock      clock.Clock
}

func NewPlaceOrderCommandHandler(uowFactory PlacementUoWFactory, clk clock.Clock) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		pricer:     services.NewOrderPricer(),
		clock:      clk,
	}
}

func (h PlaceOrderCommandHandler) Handle(ctx context.Context, command PlaceOrderCommand) (*order.Order, error) {
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

	menuItems, err := uow.MenuItemRepository().GetByIDs(ctx, command.MenuItemIDs())
	if err != nil {
		return nil, err
	}

	items, err := h.pricer.Price(command.Items(), menuItems)
	if err != nil {
		return nil, err
	}

	sequence, err := uow.SequenceGenerator().NextValue(ctx, ports.OrderNumberSequence)
	if err != nil {
		return nil, err
	}

	number, err := order.FormatNumber(sequence)
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		command.UserID(),
		items,
		command.DeliveryAddress(),
		h.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
