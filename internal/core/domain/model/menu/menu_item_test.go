package menu_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/menu"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreMenuItem(t *testing.T) {
	price, _ := kernel.MoneyFromString("9.90")
	id, restaurantID := kernel.NewUUID(), kernel.NewUUID()

	item, err := menu.RestoreMenuItem(id, restaurantID, "Pepperoni", price)

	require.NoError(t, err)
	require.NoError(t, item.Validate())
	assert.True(t, item.ID().IsEqual(id))
	assert.True(t, item.RestaurantID().IsEqual(restaurantID))
	assert.Equal(t, "Pepperoni", item.Name())
	assert.Equal(t, "9.90", item.Price().String())
}

func TestRestoreMenuItem_Invalid(t *testing.T) {
	var zeroPrice kernel.Money

	item, err := menu.RestoreMenuItem(kernel.NewUUID(), kernel.NewUUID(), "  ", zeroPrice)

	require.Error(t, err)
	assert.Nil(t, item)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "menu item name")
	assert.Contains(t, err.Error(), "money must be created")
}
