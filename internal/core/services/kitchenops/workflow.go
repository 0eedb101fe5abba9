// Package kitchenops provides the kitchen-side workflow over the order
// service's API. The kitchen holds no order state of its own: every read and
// every transition is a remote call carrying the kitchen staff member's own
// bearer credential, so authorization stays with the order service.
package kitchenops

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"fasttechfoods/internal/core/domain/model/order"
	"fasttechfoods/internal/core/ports"
	"fasttechfoods/internal/pkg/errs"
)

// Workflow exposes the preparation backlog and the kitchen's status
// transitions.
//
// Reads degrade: when the order service is unreachable the backlog renders
// empty instead of failing the kitchen display, and the outage is logged.
// Writes never degrade, a failed transition surfaces to the caller.
type Workflow struct {
	orders ports.OrderServiceClient
	logger *slog.Logger
}

// NewWorkflow creates the kitchen workflow over the given order service
// client.
func NewWorkflow(orders ports.OrderServiceClient, logger *slog.Logger) *Workflow {
	return &Workflow{
		orders: orders,
		logger: logger.With("component", "kitchen_workflow"),
	}
}

// GetPendingOrders returns orders waiting for an accept/reject decision.
func (w *Workflow) GetPendingOrders(ctx context.Context, token string) ([]ports.OrderSnapshot, error) {
	snapshots, err := w.orders.GetOrdersByStatus(ctx, token, order.Pending.String())
	return w.degradeRead(ctx, snapshots, err)
}

// GetAcceptedOrders returns orders accepted but not yet in preparation.
func (w *Workflow) GetAcceptedOrders(ctx context.Context, token string) ([]ports.OrderSnapshot, error) {
	snapshots, err := w.orders.GetOrdersByStatus(ctx, token, order.Accepted.String())
	return w.degradeRead(ctx, snapshots, err)
}

// GetActiveOrders returns every order still moving through the pipeline,
// excluding cancelled and delivered ones.
func (w *Workflow) GetActiveOrders(ctx context.Context, token string) ([]ports.OrderSnapshot, error) {
	snapshots, err := w.orders.GetAllOrders(ctx, token)
	snapshots, err = w.degradeRead(ctx, snapshots, err)
	if err != nil {
		return nil, err
	}

	active := make([]ports.OrderSnapshot, 0, len(snapshots))
	for _, snapshot := range snapshots {
		if snapshot.Status == order.Cancelled.String() || snapshot.Status == order.Delivered.String() {
			continue
		}
		active = append(active, snapshot)
	}
	return active, nil
}

// Accept approves a pending order for preparation.
func (w *Workflow) Accept(ctx context.Context, token string, orderID uint64) (*ports.OrderSnapshot, error) {
	return w.orders.UpdateOrderStatus(ctx, token, orderID, order.Accepted.String(), "")
}

// Reject declines a pending order. A reason is required.
func (w *Workflow) Reject(ctx context.Context, token string, orderID uint64, reason string) (*ports.OrderSnapshot, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, errs.NewValueIsRequiredError("reason")
	}
	return w.orders.UpdateOrderStatus(ctx, token, orderID, order.Rejected.String(), reason)
}

// StartPreparing moves an accepted order into preparation.
func (w *Workflow) StartPreparing(ctx context.Context, token string, orderID uint64) (*ports.OrderSnapshot, error) {
	return w.orders.UpdateOrderStatus(ctx, token, orderID, order.Preparing.String(), "")
}

// Finish marks an order in preparation as ready for handoff.
func (w *Workflow) Finish(ctx context.Context, token string, orderID uint64) (*ports.OrderSnapshot, error) {
	return w.orders.UpdateOrderStatus(ctx, token, orderID, order.Ready.String(), "")
}

// degradeRead turns a remote outage into an empty backlog. Authorization
// failures still surface: an empty list must never mask a rejected
// credential silently succeeding.
func (w *Workflow) degradeRead(ctx context.Context, snapshots []ports.OrderSnapshot, err error) ([]ports.OrderSnapshot, error) {
	if err == nil {
		if snapshots == nil {
			snapshots = []ports.OrderSnapshot{}
		}
		return snapshots, nil
	}

	if errors.Is(err, errs.ErrRemoteCollaborator) {
		w.logger.ErrorContext(ctx, "Order service unavailable, rendering empty backlog", "error", err)
		return []ports.OrderSnapshot{}, nil
	}

	return nil, err
}
