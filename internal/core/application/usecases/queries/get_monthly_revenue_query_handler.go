package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetMonthlyRevenueQueryHandler builds a restaurant owner's revenue per
// calendar month over delivered orders.
//
// Example:
//
//	query, err := NewGetMonthlyRevenueQuery(principal.UserID, period)
//	if err != nil {
//	    return err
//	}
//
//	months, err := NewGetMonthlyRevenueQueryHandler(db).Handle(ctx, query)
//	for _, m := range months {
//	    fmt.Printf("%s: %s\n", m.Month, m.TotalRevenue.StringFixed(2))
//	}
type GetMonthlyRevenueQueryHandler struct {
	db *gorm.DB
}

// NewGetMonthlyRevenueQueryHandler creates a handler reading from db.
func NewGetMonthlyRevenueQueryHandler(db *gorm.DB) GetMonthlyRevenueQueryHandler {
	return GetMonthlyRevenueQueryHandler{db: db}
}

// Handle sums the totals of DELIVERED orders in the range that contain at
// least one item of a restaurant owned by the requester. An order is counted
// once even when it holds items of several of those restaurants.
//
// Returns:
//   - one row per month ("YYYY-MM"), oldest first
//   - a ForbiddenError when the requester owns no restaurant
//   - an ObjectNotFoundError when no order qualifies
func (h GetMonthlyRevenueQueryHandler) Handle(
	ctx context.Context,
	query GetMonthlyRevenueQuery,
) ([]GetMonthlyRevenueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	ownerID := query.OwnerID().Bytes()

	var restaurants int64
	if err := db.Raw(`SELECT COUNT(*) FROM restaurants WHERE owner_id = ?`, ownerID).
		Row().Scan(&restaurants); err != nil {
		return nil, err
	}
	if restaurants == 0 {
		return nil, errs.NewForbiddenError("view monthly revenue", "requester owns no restaurant")
	}

	rows, err := db.Raw(`
		SELECT
			to_char(o.created_at AT TIME ZONE 'UTC', 'YYYY-MM') AS month,
			SUM(o.total_amount) AS total_revenue
		FROM orders o
		WHERE o.status = ?
			AND o.created_at BETWEEN ? AND ?
			AND EXISTS (
				SELECT 1
				FROM order_items oi
				JOIN menu_items mi ON mi.id = oi.menu_item_id
				JOIN restaurants r ON r.id = mi.restaurant_id
				WHERE oi.order_id = o.id AND r.owner_id = ?
			)
		GROUP BY month
		ORDER BY month
	`, int(order.Delivered), query.Period().Start, query.Period().End, ownerID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := make([]GetMonthlyRevenueQueryResponse, 0)
	for rows.Next() {
		var line GetMonthlyRevenueQueryResponse
		if err = rows.Scan(&line.Month, &line.TotalRevenue); err != nil {
			return nil, err
		}
		report = append(report, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(report) == 0 {
		return nil, errs.NewObjectNotFoundError("revenue for owner", query.OwnerID().String())
	}

	return report, nil
}
