package services_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var syncAt = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func restoredPair(t *testing.T, orderStatus, deliveryStatus order.Status) (*order.Order, *delivery.Delivery) {
	t.Helper()
	price, _ := kernel.MoneyFromString("10")
	item, err := order.NewItem(kernel.NewUUID(), "Soup", 1, price)
	require.NoError(t, err)

	o, err := order.RestoreOrder(kernel.NewUUID(), "001", kernel.NewUUID(), []order.Item{item}, price,
		"1 Main St", orderStatus, syncAt.Add(-time.Hour), nil)
	require.NoError(t, err)

	d, err := delivery.RestoreDelivery(kernel.NewUUID(), o.ID(), kernel.NewUUID(), kernel.NewUUID(),
		deliveryStatus, syncAt.Add(-time.Hour), nil)
	require.NoError(t, err)

	return o, d
}

func TestStatusSynchronizer_Reconcile(t *testing.T) {
	testCases := []struct {
		name            string
		orderStatus     order.Status
		deliveryStatus  order.Status
		wantStatus      order.Status
		orderChanged    bool
		deliveryChanged bool
	}{
		{
			name:           "in sync",
			orderStatus:    order.DeliveryAgentAssigned,
			deliveryStatus: order.DeliveryAgentAssigned,
			wantStatus:     order.DeliveryAgentAssigned,
		},
		{
			name:           "order was never flipped after assignment",
			orderStatus:    order.NotDelivered,
			deliveryStatus: order.DeliveryAgentAssigned,
			wantStatus:     order.DeliveryAgentAssigned,
			orderChanged:   true,
		},
		{
			name:            "cancel did not reach the delivery",
			orderStatus:     order.Canceled,
			deliveryStatus:  order.DeliveryAgentAssigned,
			wantStatus:      order.Canceled,
			deliveryChanged: true,
		},
		{
			name:            "delivered only on the delivery side",
			orderStatus:     order.DeliveryAgentAssigned,
			deliveryStatus:  order.Delivered,
			wantStatus:      order.DeliveryAgentAssigned,
			deliveryChanged: true,
		},
		{
			name:            "order not flipped and delivery ahead",
			orderStatus:     order.NotDelivered,
			deliveryStatus:  order.Delivered,
			wantStatus:      order.DeliveryAgentAssigned,
			orderChanged:    true,
			deliveryChanged: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o, d := restoredPair(t, tc.orderStatus, tc.deliveryStatus)

			orderChanged, deliveryChanged, err := services.NewStatusSynchronizer().Reconcile(o, d, syncAt)

			require.NoError(t, err)
			assert.Equal(t, tc.orderChanged, orderChanged)
			assert.Equal(t, tc.deliveryChanged, deliveryChanged)
			assert.Equal(t, tc.wantStatus, o.Status())
			assert.Equal(t, tc.wantStatus, d.Status())
		})
	}
}

func TestStatusSynchronizer_RejectsForeignDelivery(t *testing.T) {
	o, _ := restoredPair(t, order.Canceled, order.DeliveryAgentAssigned)
	_, other := restoredPair(t, order.Canceled, order.DeliveryAgentAssigned)

	_, _, err := services.NewStatusSynchronizer().Reconcile(o, other, syncAt)

	require.ErrorIs(t, err, services.ErrDeliveryBelongsToAnotherOrder)
}
