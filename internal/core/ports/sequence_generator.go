package ports

import "context"

// OrderNumberSequence is the counter order numbers are drawn from.
const OrderNumberSequence = "order_number"

// SequenceGenerator hands out per-name integers starting at 1. Concurrent
// callers never receive the same value for the same name.
type SequenceGenerator interface {
	NextValue(ctx context.Context, name string) (int64, error)
}
