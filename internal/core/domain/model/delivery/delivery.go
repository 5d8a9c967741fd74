// Package delivery provides the Delivery aggregate: the binding of one order
// to the delivery person who carries it.
//
// A delivery exists only for orders that left NOT_DELIVERED. Its status mirrors
// the status of the order it belongs to.
package delivery

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery constructor")

const AssignedEventName = "delivery.assigned"

// AssignedEvent is raised when an admin binds a delivery person to an order.
type AssignedEvent struct {
	ID               kernel.UUID `json:"eventId"`
	DeliveryID       kernel.UUID `json:"deliveryId"`
	OrderID          kernel.UUID `json:"orderId"`
	DeliveryPersonID kernel.UUID `json:"deliveryPersonId"`
	AssignedBy       kernel.UUID `json:"assignedBy"`
	At               time.Time   `json:"occurredAt"`
}

func (e AssignedEvent) EventID() kernel.UUID  { return e.ID }
func (e AssignedEvent) EventName() string     { return AssignedEventName }
func (e AssignedEvent) OccurredAt() time.Time { return e.At }

type Delivery struct {
	kernel.EventRecorder

	id               kernel.UUID
	orderID          kernel.UUID
	deliveryPersonID kernel.UUID
	assignedBy       kernel.UUID
	status           order.Status
	createdAt        time.Time
	updatedAt        *time.Time

	isConstructed bool
}

// NewDelivery creates a delivery in DELIVERYAGENT_ASSIGNED status.
func NewDelivery(id, orderID, deliveryPersonID, assignedBy kernel.UUID, now time.Time) (*Delivery, error) {
	d := &Delivery{
		status:        order.DeliveryAgentAssigned,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		deliveryPersonID.Validate(),
		assignedBy.Validate(),
	); err != nil {
		return nil, err
	}

	d.id = id
	d.orderID = orderID
	d.deliveryPersonID = deliveryPersonID
	d.assignedBy = assignedBy

	d.Record(AssignedEvent{
		ID:               kernel.NewUUID(),
		DeliveryID:       id,
		OrderID:          orderID,
		DeliveryPersonID: deliveryPersonID,
		AssignedBy:       assignedBy,
		At:               now,
	})

	return d, nil
}

// RestoreDelivery rebuilds a delivery from persisted state.
func RestoreDelivery(
	id, orderID, deliveryPersonID, assignedBy kernel.UUID,
	status order.Status,
	createdAt time.Time,
	updatedAt *time.Time,
) (*Delivery, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		deliveryPersonID.Validate(),
		assignedBy.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Delivery{
		id:               id,
		orderID:          orderID,
		deliveryPersonID: deliveryPersonID,
		assignedBy:       assignedBy,
		status:           status,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		isConstructed:    true,
	}, nil
}

// Validate checks that the delivery was built by NewDelivery or
// RestoreDelivery.
//
// Returns:
//   - nil for a constructed delivery
//   - ErrDeliveryIsNotConstructed for a nil pointer or a zero value
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the unique identifier of the delivery.
func (d *Delivery) ID() kernel.UUID { return d.id }

// OrderID returns the order this delivery belongs to. An order has at most
// one delivery.
func (d *Delivery) OrderID() kernel.UUID { return d.orderID }

// DeliveryPersonID returns the agent who carries the order. Only this agent
// may report its outcome.
func (d *Delivery) DeliveryPersonID() kernel.UUID { return d.deliveryPersonID }

// AssignedBy returns the admin who made the assignment.
func (d *Delivery) AssignedBy() kernel.UUID { return d.assignedBy }

// Status returns the delivery status. After every committed command it equals
// the status of the order; the reconciliation job repairs rows where it does not.
func (d *Delivery) Status() order.Status { return d.status }

// CreatedAt returns the assignment time.
func (d *Delivery) CreatedAt() time.Time { return d.createdAt }

// UpdatedAt returns the time of the last status change, or nil.
func (d *Delivery) UpdatedAt() *time.Time { return d.updatedAt }

// IsAssignedTo reports whether agentID is the delivery person of this delivery.
//
// Example:
//
//	if !d.IsAssignedTo(command.AgentID()) {
//	    return errs.NewForbiddenError("update delivery status", "agent is not assigned to the order")
//	}
func (d *Delivery) IsAssignedTo(agentID kernel.UUID) bool {
	return d.deliveryPersonID.IsEqual(agentID)
}

// SyncStatus copies the order's status onto the delivery. NOT_DELIVERED is
// never valid for a delivery.
func (d *Delivery) SyncStatus(status order.Status, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status == order.NotDelivered {
		return errs.NewValueIsInvalidError("delivery status cannot be NOT_DELIVERED")
	}

	d.status = status
	d.updatedAt = &now
	return nil
}
