package queue

import (
	"context"
	"fmt"
	"log/slog"

	"fasttechfoods/internal/core/application/usecases/commands"
	"fasttechfoods/internal/core/domain/model/kernel"
	"fasttechfoods/internal/core/domain/model/kitchen"
	"fasttechfoods/internal/core/domain/model/order"
	"fasttechfoods/internal/messaging"
)

// KitchenServiceGroup is the kitchen service's consumer group.
const KitchenServiceGroup = "kitchen-service"

// KitchenTicketConsumer materializes kitchen tickets from creation events so
// the preparation backlog fills without the kitchen polling the order service.
type KitchenTicketConsumer struct {
	uowFactory commands.KitchenUoWFactory
	logger     *slog.Logger
}

// NewKitchenTicketConsumer creates the kitchen service's event consumer.
func NewKitchenTicketConsumer(uowFactory commands.KitchenUoWFactory, logger *slog.Logger) *KitchenTicketConsumer {
	return &KitchenTicketConsumer{
		uowFactory: uowFactory,
		logger:     logger.With("component", "kitchen_ticket_consumer"),
	}
}

// Group returns the kitchen service consumer group name.
func (c *KitchenTicketConsumer) Group() string {
	return KitchenServiceGroup
}

// Handle builds a ticket from the event and stores it under the event's
// idempotency key.
func (c *KitchenTicketConsumer) Handle(ctx context.Context, body []byte) error {
	event, err := messaging.DecodeOrderCreated(body)
	if err != nil {
		return err
	}

	ticket, err := ticketFromEvent(event)
	if err != nil {
		return err
	}

	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if err := uow.KitchenTicketRepository().Add(ctx, ticket); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	c.logger.InfoContext(ctx, "Kitchen ticket created from event",
		"event_id", event.EventID, "customer_id", event.CustomerID)
	return nil
}

func ticketFromEvent(event messaging.OrderCreatedEvent) (*kitchen.Ticket, error) {
	eventID, err := kernel.UUIDFromString(event.EventID)
	if err != nil {
		return nil, err
	}

	channel, err := order.ChannelFromString(event.DeliveryChannel)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(event.Status)
	if err != nil {
		return nil, err
	}

	items := make([]kitchen.Item, 0, len(event.Lines))
	for _, payload := range event.Lines {
		items = append(items, kitchen.Item{
			MenuItemID:   payload.MenuItemID,
			MenuItemName: payload.MenuItemName,
			Quantity:     payload.Quantity,
			UnitPrice:    payload.UnitPrice,
			TotalPrice:   payload.TotalPrice,
		})
	}

	return kitchen.NewTicket(eventID, event.CustomerID, event.CustomerName,
		channel, items, event.TotalAmount, status, event.CreatedAt)
}
