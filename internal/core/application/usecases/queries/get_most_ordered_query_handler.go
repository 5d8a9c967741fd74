package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetMostOrderedQueryHandler ranks menu items by the quantity ordered in a
// date range. Items are grouped by the name snapshot stored on each line.
type GetMostOrderedQueryHandler struct {
	db *gorm.DB
}

// NewGetMostOrderedQueryHandler creates a handler reading from db.
func NewGetMostOrderedQueryHandler(db *gorm.DB) GetMostOrderedQueryHandler {
	return GetMostOrderedQueryHandler{db: db}
}

// Handle aggregates the order lines of every order created in the range,
// whatever its status.
//
// Returns:
//   - items sorted by total quantity descending, equal totals by name
//   - an empty slice when no order falls in the range
func (h GetMostOrderedQueryHandler) Handle(
	ctx context.Context,
	query GetMostOrderedQuery,
) ([]GetMostOrderedQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			oi.name,
			SUM(oi.quantity) AS total_ordered
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.created_at BETWEEN ? AND ?
		GROUP BY oi.name
		ORDER BY total_ordered DESC, oi.name
	`, query.Period().Start, query.Period().End).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetMostOrderedQueryResponse, 0)
	for rows.Next() {
		var item GetMostOrderedQueryResponse
		if err = rows.Scan(&item.Name, &item.TotalOrdered); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
