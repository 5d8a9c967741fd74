package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetMonthlyRevenueQueryIsNotConstructed = errors.New(
	"GetMonthlyRevenueQuery must be created via NewGetMonthlyRevenueQuery constructor",
)

// GetMonthlyRevenueQuery is a restaurant owner's revenue per calendar month
// (UTC). Only DELIVERED orders count, and only those with at least one item
// from a restaurant the owner runs. Each qualifying order contributes its
// whole total once.
type GetMonthlyRevenueQuery struct {
	ownerID kernel.UUID
	period  DateRange

	guard guard.ConstructorGuard
}

func NewGetMonthlyRevenueQuery(ownerID kernel.UUID, period DateRange) (GetMonthlyRevenueQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetMonthlyRevenueQuery{}, err
	}
	return GetMonthlyRevenueQuery{
		ownerID: ownerID,
		period:  period,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetMonthlyRevenueQuery) Validate() error {
	return q.guard.Validate(ErrGetMonthlyRevenueQueryIsNotConstructed)
}

func (q GetMonthlyRevenueQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

func (q GetMonthlyRevenueQuery) Period() DateRange {
	return q.period
}

type GetMonthlyRevenueQueryResponse struct {
	// Month is formatted as YYYY-MM.
	Month        string
	TotalRevenue decimal.Decimal
}
