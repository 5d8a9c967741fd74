package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultReconcileSchedule runs the reconciliation at the top of every minute.
const DefaultReconcileSchedule = "0 * * * * *"

type deliveryStatusReconciler interface {
	Handle(ctx context.Context, command commands.ReconcileDeliveryStatusesCommand) (int, error)
}

// StatusReconciliationJob periodically repairs deliveries whose status has
// drifted from their order's. A pass that is still running when the next one
// is due causes the next one to be skipped.
type StatusReconciliationJob struct {
	handler  deliveryStatusReconciler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStatusReconciliationJob creates the job. schedule is a six field cron
// expression (seconds first); an empty schedule means DefaultReconcileSchedule.
func NewStatusReconciliationJob(
	handler deliveryStatusReconciler,
	schedule string,
	logger *slog.Logger,
) *StatusReconciliationJob {
	if schedule == "" {
		schedule = DefaultReconcileSchedule
	}
	return &StatusReconciliationJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "status_reconciliation_job"),
	}
}

func (j *StatusReconciliationJob) Name() string {
	return "status reconciliation"
}

// Start schedules the job. It fails when the schedule cannot be parsed.
func (j *StatusReconciliationJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Status reconciliation job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single reconciliation pass and logs its outcome.
func (j *StatusReconciliationJob) RunOnce(ctx context.Context) {
	repaired, err := j.handler.Handle(ctx, commands.NewReconcileDeliveryStatusesCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Status reconciliation failed", "error", err)
		return
	}
	if repaired > 0 {
		j.logger.InfoContext(ctx, "Delivery statuses reconciled", "repaired", repaired)
	}
}

// Stop unschedules the job and waits for a running pass to finish.
func (j *StatusReconciliationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Status reconciliation job stopped")
}
