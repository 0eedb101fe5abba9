package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"fasttechfoods/internal/core/ports"
	"fasttechfoods/internal/pkg/errs"
)

// EventHandler processes a single event body on behalf of one consumer group.
// The returned error decides how the delivery is settled: nil and duplicate
// errors acknowledge, validation errors reject without requeue, everything
// else rejects with requeue.
type EventHandler interface {
	// Group returns the consumer group name this handler subscribes as.
	Group() string
	// Handle processes one event body.
	Handle(ctx context.Context, body []byte) error
}

// ConsumerGroup runs a pool of workers over a message bus subscription and
// routes every delivery through a single EventHandler.
type ConsumerGroup struct {
	bus     ports.MessageBus
	handler EventHandler
	workers int
	logger  *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewConsumerGroup creates a consumer pool for the handler's group.
// At least one worker always runs.
func NewConsumerGroup(bus ports.MessageBus, handler EventHandler, workers int, logger *slog.Logger) *ConsumerGroup {
	if workers < 1 {
		workers = 1
	}

	return &ConsumerGroup{
		bus:     bus,
		handler: handler,
		workers: workers,
		logger:  logger.With("component", handler.Group()+"_consumer"),
	}
}

// Start subscribes to the bus and launches the worker pool.
func (c *ConsumerGroup) Start() error {
	ctx, cancel := context.WithCancel(context.Background())

	deliveries, err := c.bus.Subscribe(ctx, c.handler.Group())
	if err != nil {
		cancel()
		return fmt.Errorf("failed to subscribe group %s: %w", c.handler.Group(), err)
	}

	c.cancel = cancel
	for i := 0; i < c.workers; i++ {
		c.wg.Add(1)
		go c.work(ctx, deliveries)
	}

	c.logger.InfoContext(ctx, "Consumer group started", "workers", c.workers)
	return nil
}

// Stop cancels the subscription and waits for in-flight deliveries to settle.
func (c *ConsumerGroup) Stop() {
	if c.cancel == nil {
		return
	}

	c.cancel()
	c.wg.Wait()
	c.logger.InfoContext(context.Background(), "Consumer group stopped")
}

func (c *ConsumerGroup) work(ctx context.Context, deliveries <-chan ports.Delivery) {
	defer c.wg.Done()

	for delivery := range deliveries {
		c.process(ctx, delivery)
	}
}

func (c *ConsumerGroup) process(ctx context.Context, delivery ports.Delivery) {
	err := c.handler.Handle(ctx, delivery.Body())

	switch {
	case err == nil:
		if ackErr := delivery.Ack(); ackErr != nil {
			c.logger.ErrorContext(ctx, "Failed to acknowledge delivery", "error", ackErr)
		}
	case errors.Is(err, errs.ErrAlreadyExists):
		// Redelivery of an event this group already processed.
		c.logger.InfoContext(ctx, "Duplicate event acknowledged", "error", err)
		if ackErr := delivery.Ack(); ackErr != nil {
			c.logger.ErrorContext(ctx, "Failed to acknowledge duplicate delivery", "error", ackErr)
		}
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		// Poison message: no amount of redelivery makes the body valid.
		c.logger.ErrorContext(ctx, "Poison message rejected", "error", err)
		if nackErr := delivery.Nack(false); nackErr != nil {
			c.logger.ErrorContext(ctx, "Failed to reject poison message", "error", nackErr)
		}
	default:
		c.logger.ErrorContext(ctx, "Event processing failed, requeueing", "error", err)
		if nackErr := delivery.Nack(true); nackErr != nil {
			c.logger.ErrorContext(ctx, "Failed to requeue delivery", "error", nackErr)
		}
	}
}
