package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/clock"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() clock.Clock {
	return clock.NewFixed(now)
}

// storedOrder returns an order as a repository would load it.
func storedOrder(t *testing.T, owner kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	price, err := kernel.MoneyFromString("50")
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Margherita", 2, price)
	require.NoError(t, err)
	total, err := kernel.MoneyFromString("100")
	require.NoError(t, err)

	o, err := order.RestoreOrder(kernel.NewUUID(), "001", owner, []order.Item{item}, total,
		"1 Main St", status, now.Add(-time.Hour), nil)
	require.NoError(t, err)
	return o
}

func storedDelivery(t *testing.T, orderID, agentID kernel.UUID, status order.Status) *delivery.Delivery {
	t.Helper()
	d, err := delivery.RestoreDelivery(kernel.NewUUID(), orderID, agentID, kernel.NewUUID(),
		status, now.Add(-time.Hour), nil)
	require.NoError(t, err)
	return d
}
