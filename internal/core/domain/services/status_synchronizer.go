package services

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/order"
)

var ErrDeliveryBelongsToAnotherOrder = errors.New("delivery does not belong to the order")

// StatusSynchronizer decides how an order and its delivery are brought back
// to the same status.
//
// Rules:
//   - A NOT_DELIVERED order that already has a delivery was assigned; the
//     order is advanced to DELIVERYAGENT_ASSIGNED
//   - Otherwise the order is authoritative and the delivery takes its status
type StatusSynchronizer struct{}

func NewStatusSynchronizer() StatusSynchronizer {
	return StatusSynchronizer{}
}

// Reconcile reports which of the two aggregates it changed so the caller
// only persists those.
func (StatusSynchronizer) Reconcile(
	o *order.Order,
	d *delivery.Delivery,
	now time.Time,
) (orderChanged bool, deliveryChanged bool, err error) {
	if err = errors.Join(o.Validate(), d.Validate()); err != nil {
		return false, false, err
	}
	if !o.ID().IsEqual(d.OrderID()) {
		return false, false, ErrDeliveryBelongsToAnotherOrder
	}

	if o.Status() == order.NotDelivered {
		if err = o.AssignDeliveryAgent(now); err != nil {
			return false, false, err
		}
		orderChanged = true
	}

	if d.Status() != o.Status() {
		if err = d.SyncStatus(o.Status(), now); err != nil {
			return orderChanged, false, err
		}
		deliveryChanged = true
	}

	return orderChanged, deliveryChanged, nil
}
