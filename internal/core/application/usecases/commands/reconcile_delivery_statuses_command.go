package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrReconcileDeliveryStatusesCommandIsNotConstructed = errors.New(
	"ReconcileDeliveryStatusesCommand must be created via NewReconcileDeliveryStatusesCommand constructor",
)

// ReconcileDeliveryStatusesCommand triggers a repair pass over every delivery
// whose status no longer matches its order. It is parameterless and is
// issued by the status reconciliation job.
type ReconcileDeliveryStatusesCommand struct {
	guard guard.ConstructorGuard
}

func NewReconcileDeliveryStatusesCommand() ReconcileDeliveryStatusesCommand {
	return ReconcileDeliveryStatusesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c *ReconcileDeliveryStatusesCommand) Validate() error {
	return c.guard.Validate(ErrReconcileDeliveryStatusesCommandIsNotConstructed)
}
