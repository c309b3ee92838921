package jobs

import (
	"context"
	"log/slog"

	"careplan/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OutboxRelayJob periodically drains pending outbox entries to the event
// publisher. Runs every second so integration events leave the outbox
// shortly after the mutation that produced them commits.
type OutboxRelayJob struct {
	handler   commands.RelayOutboxEventsCommandHandler
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxRelayJob creates a new relay job draining up to batchSize entries
// per pass.
func NewOutboxRelayJob(
	handler commands.RelayOutboxEventsCommandHandler,
	batchSize int,
	logger *slog.Logger,
) *OutboxRelayJob {
	return &OutboxRelayJob{
		handler:   handler,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

// Start begins the relay job to run every second.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewRelayOutboxEventsCommand(j.batchSize)
		if err != nil {
			j.logger.ErrorContext(ctx, "Outbox relay job misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Outbox relay pass failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)")
	return nil
}

// Stop stops the relay job.
func (j *OutboxRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
