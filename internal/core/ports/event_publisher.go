package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// EventPublisher delivers domain events to interested parties once the
// transaction that produced them has committed.
type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.DomainEvent) error
}
