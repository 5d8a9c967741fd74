package queries

import (
	"fmt"
	"time"

	"marketplace/internal/pkg/errs"
)

// DateRange is an inclusive [Start, End] window on order creation time.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.IsZero() {
		return DateRange{}, errs.NewValueIsRequiredError("startDate")
	}
	if end.IsZero() {
		return DateRange{}, errs.NewValueIsRequiredError("endDate")
	}
	if end.Before(start) {
		return DateRange{}, errs.NewValueIsInvalidErrorWithCause(
			"date range",
			fmt.Errorf("endDate %s is before startDate %s", end.Format(time.RFC3339), start.Format(time.RFC3339)),
		)
	}
	return DateRange{Start: start.UTC(), End: end.UTC()}, nil
}
