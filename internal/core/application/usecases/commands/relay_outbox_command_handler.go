package commands

import (
	"context"
	"errors"

	"fasttechfoods/internal/core/ports"
)

// ErrNoUnpublishedMessages signals an empty relay pass. This is the normal
// idle state of the scheduler, not a failure.
var ErrNoUnpublishedMessages = errors.New("no unpublished messages found")

// RelayOutboxCommandHandler pushes recorded outbox messages to the message
// bus. Publishing is at-least-once: a message is only marked published after
// the bus accepts it, so a crash between the two can replay it. Consumers
// deduplicate by event id.
//
// Example:
//
//	handler := NewRelayOutboxCommandHandler(uowFactory, bus)
//	cmd, _ := NewRelayOutboxCommand(50)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoUnpublishedMessages) {
//	    // nothing to relay this pass
//	}
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	bus        ports.MessageBus
}

// NewRelayOutboxCommandHandler creates a handler for outbox relay passes.
func NewRelayOutboxCommandHandler(uowFactory OutboxUoWFactory, bus ports.MessageBus) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		bus:        bus,
	}
}

// Handle processes one relay pass. Messages are taken oldest first so
// consumers observe events in creation order. A publish failure records a
// failed attempt on that message and does not block the rest of the batch.
func (h RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OutboxRepository()

	messages, err := repo.GetUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		return ErrNoUnpublishedMessages
	}

	var failures []error
	for _, message := range messages {
		if pubErr := h.bus.Publish(ctx, message.Payload()); pubErr != nil {
			failures = append(failures, pubErr)
			if markErr := repo.RecordFailedAttempt(ctx, message.ID()); markErr != nil {
				failures = append(failures, markErr)
			}
			continue
		}

		if markErr := repo.MarkPublished(ctx, message.ID()); markErr != nil {
			failures = append(failures, markErr)
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return errors.Join(failures...)
}
