package queries

import (
	"errors"

	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetRevenueQueryIsNotConstructed = errors.New(
	"GetRevenueQuery must be created via NewGetRevenueQuery constructor",
)

// GetRevenueQuery sums the total amount of every order created inside the range,
// whatever its status.
type GetRevenueQuery struct {
	period DateRange

	guard guard.ConstructorGuard
}

func NewGetRevenueQuery(period DateRange) GetRevenueQuery {
	return GetRevenueQuery{period: period, guard: guard.NewConstructorGuard()}
}

func (q GetRevenueQuery) Validate() error {
	return q.guard.Validate(ErrGetRevenueQueryIsNotConstructed)
}

func (q GetRevenueQuery) Period() DateRange {
	return q.period
}

type GetRevenueQueryResponse struct {
	TotalRevenue decimal.Decimal
}
