package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand is a user's request to buy menu items for delivery to an address.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(principal.UserID, []services.RequestedItem{
//	    {MenuItemID: pizzaID, Quantity: 2},
//	}, "1 Main St")
//	if err != nil {
//	    return err
//	}
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	userID          kernel.UUID
	items           []services.RequestedItem
	deliveryAddress string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand rejects an empty item list, non-positive quantities,
// duplicate menu items and a missing address before any lookup happens.
func NewPlaceOrderCommand(
	userID kernel.UUID,
	items []services.RequestedItem,
	deliveryAddress string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setItems(items),
		cmd.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// Items returns a copy of the requested lines in request order.
func (c PlaceOrderCommand) Items() []services.RequestedItem {
	items := make([]services.RequestedItem, len(c.items))
	copy(items, c.items)
	return items
}

// MenuItemIDs lists the requested menu items for the batch lookup.
func (c PlaceOrderCommand) MenuItemIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(c.items))
	for _, item := range c.items {
		ids = append(ids, item.MenuItemID)
	}
	return ids
}

func (c PlaceOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c *PlaceOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *PlaceOrderCommand) setItems(items []services.RequestedItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err := item.MenuItemID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"quantity",
				fmt.Errorf("quantity of %s must be greater than 0", item.MenuItemID),
			)
		}
		if item.Quantity > order.MaxQuantity {
			return errs.NewValueIsOutOfRangeError("quantity", item.Quantity, 1, order.MaxQuantity)
		}
		if _, ok := seen[item.MenuItemID]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"items",
				fmt.Errorf("menu item %s is listed more than once", item.MenuItemID),
			)
		}
		seen[item.MenuItemID] = struct{}{}
	}

	c.items = make([]services.RequestedItem, len(items))
	copy(c.items, items)
	return nil
}

func (c *PlaceOrderCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	c.deliveryAddress = address
	return nil
}
