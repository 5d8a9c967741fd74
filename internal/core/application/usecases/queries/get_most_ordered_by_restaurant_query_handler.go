package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMostOrderedByRestaurantQueryHandler groups the most-ordered ranking by
// the restaurant that sells each item.
type GetMostOrderedByRestaurantQueryHandler struct {
	db *gorm.DB
}

func NewGetMostOrderedByRestaurantQueryHandler(db *gorm.DB) GetMostOrderedByRestaurantQueryHandler {
	return GetMostOrderedByRestaurantQueryHandler{db: db}
}

// Handle sums quantities per restaurant and item name over the orders created
// in the range, in any status.
//
// Returns:
//   - restaurants ordered by name, each with its items sorted by total
//     quantity descending and equal totals by name
//   - an empty slice when no order falls in the range
func (h GetMostOrderedByRestaurantQueryHandler) Handle(
	ctx context.Context,
	query GetMostOrderedByRestaurantQuery,
) ([]GetMostOrderedByRestaurantQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.name,
			oi.name,
			SUM(oi.quantity) AS total_ordered
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN menu_items mi ON mi.id = oi.menu_item_id
		JOIN restaurants r ON r.id = mi.restaurant_id
		WHERE o.created_at BETWEEN ? AND ?
		GROUP BY r.id, r.name, oi.name
		ORDER BY r.name, r.id, total_ordered DESC, oi.name
	`, query.Period().Start, query.Period().End).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := make([]GetMostOrderedByRestaurantQueryResponse, 0)
	var current uuid.UUID
	for rows.Next() {
		var (
			restaurantID   uuid.UUID
			restaurantName string
			item           GetMostOrderedQueryResponse
		)
		if err = rows.Scan(&restaurantID, &restaurantName, &item.Name, &item.TotalOrdered); err != nil {
			return nil, err
		}

		// rows arrive grouped by restaurant
		if len(report) == 0 || restaurantID != current {
			id, err := kernel.UUIDFromBytes(restaurantID[:])
			if err != nil {
				return nil, err
			}
			report = append(report, GetMostOrderedByRestaurantQueryResponse{
				RestaurantID:     id,
				RestaurantName:   restaurantName,
				MostOrderedItems: make([]GetMostOrderedQueryResponse, 0),
			})
			current = restaurantID
		}

		last := &report[len(report)-1]
		last.MostOrderedItems = append(last.MostOrderedItems, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return report, nil
}
