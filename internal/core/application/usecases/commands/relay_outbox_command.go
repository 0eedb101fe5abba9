package commands

import (
	"errors"

	"fasttechfoods/internal/pkg/guard"
)

var (
	ErrRelayOutboxCommandIsNotConstructed = errors.New(
		"RelayOutboxCommand must be created via NewRelayOutboxCommand constructor",
	)
	ErrBatchSizeIsRequired = errors.New("batch size must be positive")
)

// RelayOutboxCommand triggers one relay pass over the transactional outbox.
// Each pass picks up to batchSize unpublished messages, oldest first, and
// pushes them to the message bus.
type RelayOutboxCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

// NewRelayOutboxCommand creates a command for one outbox relay pass.
func NewRelayOutboxCommand(batchSize int) (RelayOutboxCommand, error) {
	cmd := RelayOutboxCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBatchSize(batchSize); err != nil {
		return RelayOutboxCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRelayOutboxCommandIsNotConstructed if validation fails.
func (c RelayOutboxCommand) Validate() error {
	return c.guard.Validate(ErrRelayOutboxCommandIsNotConstructed)
}

// BatchSize returns the maximum number of messages relayed per pass.
func (c RelayOutboxCommand) BatchSize() int {
	return c.batchSize
}

func (c *RelayOutboxCommand) setBatchSize(batchSize int) error {
	if batchSize <= 0 {
		return ErrBatchSizeIsRequired
	}

	c.batchSize = batchSize
	return nil
}
