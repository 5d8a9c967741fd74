package queries

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrGetOrdersReportQueryIsNotConstructed = errors.New(
	"GetOrdersReportQuery must be created via NewGetOrdersReportQuery constructor",
)

// GetOrdersReportQuery lists the orders created inside an inclusive range,
// whatever their status.
type GetOrdersReportQuery struct {
	period DateRange

	guard guard.ConstructorGuard
}

func NewGetOrdersReportQuery(period DateRange) GetOrdersReportQuery {
	return GetOrdersReportQuery{period: period, guard: guard.NewConstructorGuard()}
}

func (q GetOrdersReportQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersReportQueryIsNotConstructed)
}

func (q GetOrdersReportQuery) Period() DateRange {
	return q.period
}
