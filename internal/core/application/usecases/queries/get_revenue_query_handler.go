package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetRevenueQueryHandler sums order totals over an inclusive creation-time
// range for the admin reports.
type GetRevenueQueryHandler struct {
	db *gorm.DB
}

// NewGetRevenueQueryHandler creates a handler reading from db.
func NewGetRevenueQueryHandler(db *gorm.DB) GetRevenueQueryHandler {
	return GetRevenueQueryHandler{db: db}
}

// Handle adds up the stored totals of orders created in the range, in any
// status. A range without orders yields zero, not an error.
func (h GetRevenueQueryHandler) Handle(ctx context.Context, query GetRevenueQuery) (GetRevenueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRevenueQueryResponse{}, err
	}

	var response GetRevenueQueryResponse
	err := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE created_at BETWEEN ? AND ?
	`, query.Period().Start, query.Period().End).Row().Scan(&response.TotalRevenue)
	if err != nil {
		return GetRevenueQueryResponse{}, err
	}

	return response, nil
}
