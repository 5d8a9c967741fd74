package kernel

import "time"

// DomainEvent is a fact raised by an aggregate and published once the unit
// of work that changed the aggregate commits. EventName doubles as the
// routing key on the message broker.
type DomainEvent interface {
	EventID() UUID
	EventName() string
	OccurredAt() time.Time
}

// EventRecorder collects events raised by an aggregate until they are pulled
// by the persistence layer.
type EventRecorder struct {
	events []DomainEvent
}

func (r *EventRecorder) Record(event DomainEvent) {
	r.events = append(r.events, event)
}

func (r *EventRecorder) DomainEvents() []DomainEvent {
	return r.events
}

func (r *EventRecorder) ClearDomainEvents() {
	r.events = nil
}
