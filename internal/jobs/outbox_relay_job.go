package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fasttechfoods/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// outboxRelayBatchSize bounds how many messages one relay pass picks up.
const outboxRelayBatchSize = 50

// OutboxRelayJob manages the scheduled publishing of outbox messages.
// Runs every second so creation events reach the bus shortly after commit.
type OutboxRelayJob struct {
	handler commands.RelayOutboxCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOutboxRelayJob creates a new job for relaying the transactional outbox.
// Uses RelayOutboxCommandHandler to push unpublished messages every second.
func NewOutboxRelayJob(handler commands.RelayOutboxCommandHandler, logger *slog.Logger) *OutboxRelayJob {
	return &OutboxRelayJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "outbox_relay_job"),
	}
}

// Start begins the outbox relay job to run every second.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd, cmdErr := commands.NewRelayOutboxCommand(outboxRelayBatchSize)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build relay command", "error", cmdErr)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty outbox is the normal idle state, not a failure
			if !errors.Is(err, commands.ErrNoUnpublishedMessages) {
				j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)")
	return nil
}

// Stop stops the outbox relay job.
func (j *OutboxRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
