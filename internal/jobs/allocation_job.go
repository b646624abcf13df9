package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Vaibhav-crux/delivery-management-system/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// allocationSchedule fires the daily run at 07:00 in the configured timezone.
const allocationSchedule = "0 7 * * *"

// AllocationRunner executes one allocation run. Satisfied by
// commands.AllocateOrdersCommandHandler.
type AllocationRunner interface {
	Handle(ctx context.Context, cmd commands.AllocateOrdersCommand) (*commands.AllocationReport, error)
}

// AllocationJob triggers the daily order allocation run. The handler instance
// is shared with the HTTP API so a manual trigger and the schedule can never
// run concurrently.
type AllocationJob struct {
	handler AllocationRunner
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAllocationJob creates the daily allocation job in the given timezone.
func NewAllocationJob(handler AllocationRunner, location *time.Location, logger *slog.Logger) *AllocationJob {
	return &AllocationJob{
		handler: handler,
		cron:    cron.New(cron.WithLocation(location)),
		logger:  logger.With("component", "allocation_job"),
	}
}

// Start schedules the daily allocation run.
func (j *AllocationJob) Start() error {
	_, err := j.cron.AddFunc(allocationSchedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Allocation job started (daily at 07:00)")
	return nil
}

// Stop stops the allocation job.
func (j *AllocationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Allocation job stopped")
}

// run executes one scheduled allocation. Every error is caught here so a
// failed run never unschedules the job.
func (j *AllocationJob) run() {
	ctx := context.Background()

	cmd, err := commands.NewAllocateOrdersCommand(time.Now().UTC())
	if err != nil {
		j.logger.ErrorContext(ctx, "Allocation job could not build command", "error", err)
		return
	}

	report, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		if errors.Is(err, commands.ErrAllocationInProgress) {
			// A manual run via the API is still going. Expected, not a failure.
			j.logger.InfoContext(ctx, "Allocation job skipped, a run is already in progress")
			return
		}
		j.logger.ErrorContext(ctx, "Allocation job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Allocation run completed",
		"assignments", report.AssignmentsCreated,
		"deferred", report.DeferredCount,
		"requeued", report.RequeuedCount,
		"totalCost", report.TotalCost,
	)
}
