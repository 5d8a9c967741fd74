// Package ports defines the contracts between the marketplace core and its
// infrastructure adapters.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the mutable part of an order: status and updatedAt.
	// A write that matches no row is an invariant violation.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items. Returns an ObjectNotFoundError
	// when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
