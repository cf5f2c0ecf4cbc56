package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/metrics"

	"github.com/robfig/cron/v3"
)

// ConsistencyAuditJob periodically sweeps every product, comparing its stored
// amounts and status against its ledger. The sweep runs in report-only mode:
// drift is logged and counted, repair stays an explicit operator action. It
// is the safety net behind the synchronous per-command reconciliation, which
// should normally leave nothing for the sweep to find.
type ConsistencyAuditJob struct {
	handler  commands.ReconcileAllProductsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
	registry *metrics.Registry
}

// NewConsistencyAuditJob creates the scheduled audit job. The schedule is a
// six-field cron expression from configuration.
func NewConsistencyAuditJob(
	handler commands.ReconcileAllProductsCommandHandler,
	schedule string,
	logger *slog.Logger,
	registry *metrics.Registry,
) *ConsistencyAuditJob {
	return &ConsistencyAuditJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "consistency_audit_job"),
		registry: registry,
	}
}

// Start begins the consistency audit job on its configured schedule.
func (j *ConsistencyAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.runOnce)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Consistency audit job started", "schedule", j.schedule)
	return nil
}

// Stop stops the consistency audit job.
func (j *ConsistencyAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Consistency audit job stopped")
}

// runOnce executes one report-only sweep and records its outcome.
func (j *ConsistencyAuditJob) runOnce() {
	ctx := context.Background()
	started := time.Now()

	cmd, err := commands.NewReconcileAllProductsCommand(false)
	if err != nil {
		j.logger.ErrorContext(ctx, "Consistency audit job failed to build command", "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Consistency audit job failed", "error", err)
		return
	}

	j.registry.ProductsAudited.Add(float64(result.Inspected))
	j.registry.DriftDetected.Add(float64(result.Inconsistent))
	j.registry.ProductsRepaired.Add(float64(result.Fixed))
	j.registry.RepairFailures.Add(float64(result.Failed))
	j.registry.AuditRunSec.Observe(time.Since(started).Seconds())

	if result.Inconsistent > 0 || result.Failed > 0 {
		j.logger.WarnContext(ctx, "Consistency audit found drift",
			"inspected", result.Inspected,
			"inconsistent", result.Inconsistent,
			"failed", result.Failed,
		)
		return
	}

	j.logger.InfoContext(ctx, "Consistency audit clean", "inspected", result.Inspected)
}
