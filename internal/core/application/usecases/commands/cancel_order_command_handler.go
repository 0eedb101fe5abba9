package commands

import (
	"context"

	"fasttechfoods/internal/core/domain/model/order"
	"fasttechfoods/internal/pkg/errs"
)

// CancelOrderCommandHandler handles order cancellation.
// Cancellation is only legal while the order is Pending or Accepted; once
// preparation has started the state machine refuses it.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires an OrderUoWFactory for transactional persistence.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// The caller must own the order or be staff. Returns the cancelled order on
// success.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !cmd.Claims().IsStaff() && !cmd.Claims().Owns(aggregate.CustomerID()) {
		return nil, errs.NewForbiddenError("cancel another customer's order")
	}

	if err = aggregate.Cancel(cmd.Reason()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
