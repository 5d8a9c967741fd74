// Package menu holds the read-only view of restaurant menus that order
// placement prices against. Menus are maintained outside this service.
package menu

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via RestoreMenuItem constructor")

type MenuItem struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	price        kernel.Money

	isConstructed bool
}

func RestoreMenuItem(id, restaurantID kernel.UUID, name string, price kernel.Money) (*MenuItem, error) {
	var nameErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("menu item name")
	}

	if err := errors.Join(
		id.Validate(),
		restaurantID.Validate(),
		nameErr,
		price.Validate(),
	); err != nil {
		return nil, err
	}

	return &MenuItem{
		id:            id,
		restaurantID:  restaurantID,
		name:          name,
		price:         price,
		isConstructed: true,
	}, nil
}

func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

func (m *MenuItem) ID() kernel.UUID           { return m.id }
func (m *MenuItem) RestaurantID() kernel.UUID { return m.restaurantID }
func (m *MenuItem) Name() string              { return m.name }
func (m *MenuItem) Price() kernel.Money       { return m.price }
