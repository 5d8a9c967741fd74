package order

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

const (
	PlacedEventName        = "order.placed"
	StatusChangedEventName = "order.status_changed"
)

// PlacedEvent is raised once per order, when it is first created.
type PlacedEvent struct {
	ID          kernel.UUID `json:"eventId"`
	OrderID     kernel.UUID `json:"orderId"`
	OrderNumber string      `json:"orderNumber"`
	UserID      kernel.UUID `json:"userId"`
	TotalAmount string      `json:"totalAmount"`
	At          time.Time   `json:"occurredAt"`
}

func (e PlacedEvent) EventID() kernel.UUID  { return e.ID }
func (e PlacedEvent) EventName() string     { return PlacedEventName }
func (e PlacedEvent) OccurredAt() time.Time { return e.At }

// StatusChangedEvent is raised on every status transition of an order.
type StatusChangedEvent struct {
	ID      kernel.UUID `json:"eventId"`
	OrderID kernel.UUID `json:"orderId"`
	From    string      `json:"from"`
	To      string      `json:"to"`
	At      time.Time   `json:"occurredAt"`
}

func (e StatusChangedEvent) EventID() kernel.UUID  { return e.ID }
func (e StatusChangedEvent) EventName() string     { return StatusChangedEventName }
func (e StatusChangedEvent) OccurredAt() time.Time { return e.At }
