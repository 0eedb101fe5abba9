package queue

import (
	"context"
	"fmt"
	"log/slog"

	"fasttechfoods/internal/core/application/usecases/commands"
	"fasttechfoods/internal/core/domain/model/kernel"
	"fasttechfoods/internal/core/domain/model/order"
	"fasttechfoods/internal/messaging"
)

// OrderServiceGroup is the consumer group of the order service itself.
// Persisting the aggregate here closes the creation loop: the command
// handler only writes the outbox record, this consumer writes the order.
const OrderServiceGroup = "order-service"

// OrderProjectionConsumer persists order aggregates from creation events.
type OrderProjectionConsumer struct {
	uowFactory commands.OrderUoWFactory
	logger     *slog.Logger
}

// NewOrderProjectionConsumer creates the order service's event consumer.
func NewOrderProjectionConsumer(uowFactory commands.OrderUoWFactory, logger *slog.Logger) *OrderProjectionConsumer {
	return &OrderProjectionConsumer{
		uowFactory: uowFactory,
		logger:     logger.With("component", "order_projection_consumer"),
	}
}

// Group returns the order service consumer group name.
func (c *OrderProjectionConsumer) Group() string {
	return OrderServiceGroup
}

// Handle rebuilds the order aggregate from the event and stores it under the
// event's idempotency key. The storage-assigned identifier becomes visible to
// queries once this commit lands.
func (c *OrderProjectionConsumer) Handle(ctx context.Context, body []byte) error {
	event, err := messaging.DecodeOrderCreated(body)
	if err != nil {
		return err
	}

	eventID, err := kernel.UUIDFromString(event.EventID)
	if err != nil {
		return err
	}

	aggregate, err := restoreOrderFromEvent(event)
	if err != nil {
		return err
	}

	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if err := uow.OrderRepository().Add(ctx, aggregate, eventID); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	c.logger.InfoContext(ctx, "Order persisted from creation event",
		"event_id", event.EventID, "customer_id", event.CustomerID)
	return nil
}

func restoreOrderFromEvent(event messaging.OrderCreatedEvent) (*order.Order, error) {
	channel, err := order.ChannelFromString(event.DeliveryChannel)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(event.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(event.Lines))
	for _, payload := range event.Lines {
		line, err := order.RestoreLine(payload.MenuItemID, payload.MenuItemName,
			payload.Quantity, payload.UnitPrice, payload.TotalPrice)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(0, 0, event.CustomerID, event.CustomerName,
		channel, lines, event.TotalAmount, status, event.CreatedAt, nil, "")
}
