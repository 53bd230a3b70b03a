package jobs

import (
	"context"
	"log/slog"

	"ecommerce/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultRelaySchedule runs the relay every two seconds.
const DefaultRelaySchedule = "*/2 * * * * *"

// OutboxRelayHandler is the command handler the relay job drives.
type OutboxRelayHandler interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (commands.RelayReport, error)
}

// OutboxRelayJob periodically forwards pending outbox messages to the broker.
// A run that is still in progress when the next tick fires causes that tick to be skipped.
type OutboxRelayJob struct {
	handler   OutboxRelayHandler
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxRelayJob creates the relay job. schedule is a six-field cron spec
// (seconds first) or a descriptor such as "@every 5s".
func NewOutboxRelayJob(handler OutboxRelayHandler, schedule string, batchSize int, logger *slog.Logger) *OutboxRelayJob {
	if schedule == "" {
		schedule = DefaultRelaySchedule
	}

	return &OutboxRelayJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "outbox_relay_job"),
	}
}

// Start registers the relay with the scheduler and starts it.
func (j *OutboxRelayJob) Start() error {
	cmd, err := commands.NewRelayOutboxCommand(j.batchSize)
	if err != nil {
		return err
	}

	if _, err = j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background(), cmd) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started", "schedule", j.schedule, "batch_size", j.batchSize)
	return nil
}

// RunOnce performs a single relay pass and logs its outcome.
func (j *OutboxRelayJob) RunOnce(ctx context.Context, cmd commands.RelayOutboxCommand) {
	report, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay failed", "error", err)
		return
	}

	if report.Failed > 0 {
		j.logger.WarnContext(ctx, "Outbox relay could not publish some events",
			"published", report.Published, "failed", report.Failed)
		return
	}
	if report.Published > 0 {
		j.logger.DebugContext(ctx, "Outbox relay published events", "published", report.Published)
	}
}

// Stop stops the scheduler and waits for a running relay pass to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
