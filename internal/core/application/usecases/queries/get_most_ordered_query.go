package queries

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrGetMostOrderedQueryIsNotConstructed = errors.New(
	"GetMostOrderedQuery must be created via NewGetMostOrderedQuery constructor",
)

// GetMostOrderedQuery ranks item names by the quantity ordered inside the range.
// Lines are grouped by the name captured at placement, so a renamed menu
// item is counted under both names.
type GetMostOrderedQuery struct {
	period DateRange

	guard guard.ConstructorGuard
}

func NewGetMostOrderedQuery(period DateRange) GetMostOrderedQuery {
	return GetMostOrderedQuery{period: period, guard: guard.NewConstructorGuard()}
}

func (q GetMostOrderedQuery) Validate() error {
	return q.guard.Validate(ErrGetMostOrderedQueryIsNotConstructed)
}

func (q GetMostOrderedQuery) Period() DateRange {
	return q.period
}

type GetMostOrderedQueryResponse struct {
	Name         string
	TotalOrdered int64
}
