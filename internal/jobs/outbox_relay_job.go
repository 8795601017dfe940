package jobs

import (
	"context"
	"log/slog"

	"eats/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultOutboxRelaySchedule runs the relay every five seconds.
const DefaultOutboxRelaySchedule = "*/5 * * * * *"

type outboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error)
}

// OutboxRelayJob periodically publishes pending order events. A run that is
// still going when the next tick fires makes that tick a no-op.
type OutboxRelayJob struct {
	handler  outboxRelayer
	schedule string
	batch    int
	cron     *cron.Cron
	logger   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

func NewOutboxRelayJob(handler outboxRelayer, schedule string, batch int, logger *slog.Logger) *OutboxRelayJob {
	ctx, cancel := context.WithCancel(context.Background())
	return &OutboxRelayJob{
		handler:  handler,
		schedule: schedule,
		batch:    batch,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "outbox_relay_job"),
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (j *OutboxRelayJob) Start() error {
	cmd, err := commands.NewRelayOutboxCommand(j.batch)
	if err != nil {
		return err
	}

	if _, err = j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(j.ctx, cmd)
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(j.ctx, "Outbox relay job started", "schedule", j.schedule, "batch", j.batch)
	return nil
}

// RunOnce relays one batch and logs the outcome.
func (j *OutboxRelayJob) RunOnce(ctx context.Context, cmd commands.RelayOutboxCommand) {
	n, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay failed", "published", n, "error", err)
		return
	}
	if n > 0 {
		j.logger.InfoContext(ctx, "Order events published", "count", n)
	}
}

// Stop cancels a run in progress and waits for it to return.
func (j *OutboxRelayJob) Stop() {
	j.cancel()
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
