package commands

import (
	"context"

	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/clock"
)

// ReconcileDeliveryStatusesCommandHandler brings diverged order/delivery
// pairs back in step using services.StatusSynchronizer. All repairs of one
// pass commit together; the first failure rolls the whole pass back.
type ReconcileDeliveryStatusesCommandHandler struct {
	uowFactory   UoWFactory
	synchronizer services.StatusSynchronizer
	clock        clock.Clock
}

func NewReconcileDeliveryStatusesCommandHandler(uowFactory UoWFactory, clk clock.Clock) ReconcileDeliveryStatusesCommandHandler {
	return ReconcileDeliveryStatusesCommandHandler{
		uowFactory:   uowFactory,
		synchronizer: services.NewStatusSynchronizer(),
		clock:        clk,
	}
}

// Handle returns the number of deliveries it repaired.
func (h ReconcileDeliveryStatusesCommandHandler) Handle(
	ctx context.Context,
	command ReconcileDeliveryStatusesCommand,
) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	deliveryRepo := uow.DeliveryRepository()

	diverged, err := deliveryRepo.GetAllOutOfSync(ctx)
	if err != nil {
		return 0, err
	}
	if len(diverged) == 0 {
		return 0, nil
	}

	now := h.clock.Now()
	for _, d := range diverged {
		o, err := orderRepo.Get(ctx, d.OrderID())
		if err != nil {
			return 0, err
		}

		orderChanged, deliveryChanged, err := h.synchronizer.Reconcile(o, d, now)
		if err != nil {
			return 0, err
		}

		if orderChanged {
			if err = orderRepo.Update(ctx, o); err != nil {
				return 0, err
			}
		}
		if deliveryChanged {
			if err = deliveryRepo.Update(ctx, d); err != nil {
				return 0, err
			}
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(diverged), nil
}
