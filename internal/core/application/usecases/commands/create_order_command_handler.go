package commands

import (
	"context"

	"fasttechfoods/internal/core/domain/model/kernel"
	"fasttechfoods/internal/core/domain/model/order"
	"fasttechfoods/internal/core/domain/model/outbox"
	"fasttechfoods/internal/core/ports"
	"fasttechfoods/internal/messaging"
	"fasttechfoods/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Validates every requested item against the catalog, snapshots names and
// prices into the order, and records the creation event in the transactional
// outbox. The order itself is persisted asynchronously when the event is
// consumed, so the returned view carries no storage-assigned identifier yet.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, menuClient, identityClient)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// created.Status() == order.Pending, created.ID() == 0 until persisted
type CreateOrderCommandHandler struct {
	uowFactory OutboxUoWFactory
	menu       ports.MenuClient
	identity   ports.IdentityClient
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OutboxUoWFactory for the transactional event write and clients
// for the catalog and identity collaborators.
func NewCreateOrderCommandHandler(
	uowFactory OutboxUoWFactory,
	menu ports.MenuClient,
	identity ports.IdentityClient,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		menu:       menu,
		identity:   identity,
	}
}

// Handle processes the order placement command.
// The caller must be the customer the order is for. All items are resolved
// against the catalog before anything is written: a single missing or
// unavailable item aborts the whole order. On success the creation event is
// committed to the outbox and the pending order is returned to the caller.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Claims().Owns(cmd.CustomerID()) {
		return nil, errs.NewForbiddenError("create order for another customer")
	}

	lines := make([]order.Line, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		menuItem, err := h.menu.GetMenuItem(ctx, item.MenuItemID)
		if err != nil {
			return nil, errs.NewItemUnavailableErrorWithCause(item.MenuItemID, err)
		}
		if !menuItem.Available {
			return nil, errs.NewItemUnavailableError(item.MenuItemID)
		}

		line, err := order.NewLine(menuItem.ID, menuItem.Name, item.Quantity, menuItem.Price)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	customer, err := h.identity.GetUser(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(cmd.CustomerID(), customer.Name, cmd.DeliveryChannel(), lines)
	if err != nil {
		return nil, err
	}

	eventID := kernel.NewUUID()
	payload, err := messaging.NewOrderCreated(eventID, newOrder).Encode()
	if err != nil {
		return nil, err
	}

	message, err := outbox.NewMessage(eventID, payload)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OutboxRepository().Add(ctx, message); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
