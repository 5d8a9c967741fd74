package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetMostOrderedByRestaurantQueryIsNotConstructed = errors.New(
	"GetMostOrderedByRestaurantQuery must be created via NewGetMostOrderedByRestaurantQuery constructor",
)

// GetMostOrderedByRestaurantQuery ranks ordered items inside the range per
// restaurant. Lines are attributed to a restaurant through the menu item they
// were placed from; lines whose menu item no longer exists are skipped.
type GetMostOrderedByRestaurantQuery struct {
	period DateRange

	guard guard.ConstructorGuard
}

func NewGetMostOrderedByRestaurantQuery(period DateRange) GetMostOrderedByRestaurantQuery {
	return GetMostOrderedByRestaurantQuery{period: period, guard: guard.NewConstructorGuard()}
}

func (q GetMostOrderedByRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetMostOrderedByRestaurantQueryIsNotConstructed)
}

func (q GetMostOrderedByRestaurantQuery) Period() DateRange {
	return q.period
}

type GetMostOrderedByRestaurantQueryResponse struct {
	RestaurantID     kernel.UUID
	RestaurantName   string
	MostOrderedItems []GetMostOrderedQueryResponse
}
