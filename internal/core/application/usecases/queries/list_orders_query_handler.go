package queries

import (
	"context"

	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler returns every order, newest first.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler reading from db.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle loads all orders with their lines.
//
// Returns:
//   - orders sorted by creation time, newest first
//   - an ObjectNotFoundError when there are no orders at all, rather than an
//     empty list
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := fetchOrders(ctx, h.db, "ORDER BY created_at DESC, number DESC")
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return nil, errs.NewObjectNotFoundError("orders", "any")
	}

	return orders, nil
}
