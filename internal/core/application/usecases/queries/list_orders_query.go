package queries

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves every order, newest first. It is parameterless
// and reserved for admins.
//
// Example:
//
//	orders, err := handler.Handle(ctx, NewListOrdersQuery())
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // there are no orders yet
//	}
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}
