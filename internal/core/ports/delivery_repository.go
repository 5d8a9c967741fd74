package ports

import (
	"context"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// At most one delivery exists per order.
type DeliveryRepository interface {
	// Add persists a new delivery. A second delivery for the same order is
	// reported as a ConflictError.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists status and updatedAt. A write that matches no row is an
	// invariant violation.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByOrderID returns an ObjectNotFoundError when the order has no delivery.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// GetAllOutOfSync returns deliveries whose status differs from the status
	// of their order.
	GetAllOutOfSync(ctx context.Context) ([]*delivery.Delivery, error)
}
