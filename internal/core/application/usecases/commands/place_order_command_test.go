package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand_Success(t *testing.T) {
	userID := kernel.NewUUID()
	first := kernel.NewUUID()
	second := kernel.NewUUID()

	cmd, err := commands.NewPlaceOrderCommand(userID, []services.RequestedItem{
		{MenuItemID: first, Quantity: 2},
		{MenuItemID: second, Quantity: 1},
	}, "1 Main St")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, userID, cmd.UserID())
	assert.Equal(t, []kernel.UUID{first, second}, cmd.MenuItemIDs())
	assert.Equal(t, "1 Main St", cmd.DeliveryAddress())
}

func TestNewPlaceOrderCommand_InvalidInput(t *testing.T) {
	userID := kernel.NewUUID()
	itemID := kernel.NewUUID()

	testCases := []struct {
		name     string
		items    []services.RequestedItem
		address  string
		expected error
	}{
		{"no items", nil, "1 Main St", errs.ErrValueIsRequired},
		{"zero quantity", []services.RequestedItem{{MenuItemID: itemID, Quantity: 0}}, "1 Main St", errs.ErrValueIsInvalid},
		{"negative quantity", []services.RequestedItem{{MenuItemID: itemID, Quantity: -1}}, "1 Main St", errs.ErrValueIsInvalid},
		{
			"quantity over the line cap",
			[]services.RequestedItem{{MenuItemID: itemID, Quantity: order.MaxQuantity + 1}},
			"1 Main St",
			errs.ErrValueIsOutOfRange,
		},
		{
			"duplicate item",
			[]services.RequestedItem{{MenuItemID: itemID, Quantity: 1}, {MenuItemID: itemID, Quantity: 3}},
			"1 Main St",
			errs.ErrValueIsInvalid,
		},
		{"missing address", []services.RequestedItem{{MenuItemID: itemID, Quantity: 1}}, "", errs.ErrValueIsRequired},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := commands.NewPlaceOrderCommand(userID, tc.items, tc.address)

			require.ErrorIs(t, err, tc.expected)
			require.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
		})
	}
}

func TestPlaceOrderCommand_ItemsIsACopy(t *testing.T) {
	itemID := kernel.NewUUID()
	requested := []services.RequestedItem{{MenuItemID: itemID, Quantity: 1}}
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), requested, "1 Main St")
	require.NoError(t, err)

	requested[0].Quantity = 99
	items := cmd.Items()
	items[0].Quantity = 42

	assert.Equal(t, 1, cmd.Items()[0].Quantity)
}
