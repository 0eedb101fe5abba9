package queue

import (
	"context"
	"log/slog"

	"fasttechfoods/internal/messaging"
)

// MenuServiceGroup is the menu service's consumer group.
const MenuServiceGroup = "menu-service"

// MenuNotificationConsumer records demand signals from order traffic. The
// menu service keeps no per-order state, so a structurally valid event only
// needs to be observed and acknowledged.
type MenuNotificationConsumer struct {
	logger *slog.Logger
}

// NewMenuNotificationConsumer creates the menu service's event consumer.
func NewMenuNotificationConsumer(logger *slog.Logger) *MenuNotificationConsumer {
	return &MenuNotificationConsumer{
		logger: logger.With("component", "menu_notification_consumer"),
	}
}

// Group returns the menu service consumer group name.
func (c *MenuNotificationConsumer) Group() string {
	return MenuServiceGroup
}

// Handle logs the items ordered so catalog demand can be traced.
func (c *MenuNotificationConsumer) Handle(ctx context.Context, body []byte) error {
	event, err := messaging.DecodeOrderCreated(body)
	if err != nil {
		return err
	}

	for _, line := range event.Lines {
		c.logger.InfoContext(ctx, "Menu item ordered",
			"event_id", event.EventID,
			"menu_item_id", line.MenuItemID,
			"menu_item_name", line.MenuItemName,
			"quantity", line.Quantity)
	}

	return nil
}
