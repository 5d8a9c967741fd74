package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersReportQueryHandler backs the admin orders report.
//
// Example:
//
//	period, err := NewDateRange(monthStart, monthEnd)
//	if err != nil {
//	    return err
//	}
//	orders, err := NewGetOrdersReportQueryHandler(db).Handle(ctx, NewGetOrdersReportQuery(period))
type GetOrdersReportQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersReportQueryHandler(db *gorm.DB) GetOrdersReportQueryHandler {
	return GetOrdersReportQueryHandler{db: db}
}

// Handle loads the orders created in the range with their lines, oldest
// first. Unlike ListOrders an empty range is an empty report, not an error.
func (h GetOrdersReportQueryHandler) Handle(ctx context.Context, query GetOrdersReportQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return fetchOrders(ctx, h.db,
		"WHERE created_at BETWEEN ? AND ? ORDER BY created_at, number",
		query.Period().Start, query.Period().End,
	)
}
