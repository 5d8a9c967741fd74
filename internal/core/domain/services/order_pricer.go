package services

import (
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/menu"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// RequestedItem is one line of a placement request before it is priced.
type RequestedItem struct {
	MenuItemID kernel.UUID
	Quantity   int
}

// OrderPricer prices order lines against menu items fetched in one batch.
//
// Example:
//
//	menuItems, err := menuRepo.GetByIDs(ctx, ids)
//	if err != nil {
//	    return err
//	}
//	items, err := services.NewOrderPricer().Price(requested, menuItems)
type OrderPricer struct{}

func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// Price snapshots name and unit price for every requested item, keeping the
// request order. An empty lookup result and any single unresolved id are both
// invalid input.
func (OrderPricer) Price(requested []RequestedItem, menuItems []*menu.MenuItem) ([]order.Item, error) {
	if len(menuItems) == 0 {
		return nil, errs.NewValueIsInvalidError("no menu items found")
	}

	byID := make(map[kernel.UUID]*menu.MenuItem, len(menuItems))
	for _, m := range menuItems {
		if err := m.Validate(); err != nil {
			return nil, err
		}
		byID[m.ID()] = m
	}

	items := make([]order.Item, 0, len(requested))
	for _, r := range requested {
		m, ok := byID[r.MenuItemID]
		if !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"menu item",
				fmt.Errorf("menu item with ID %s not found", r.MenuItemID),
			)
		}

		item, err := order.NewItem(m.ID(), m.Name(), r.Quantity, m.Price())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
